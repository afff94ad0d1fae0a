package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// DailyStatsRepository persists per-day counters. Increments are atomic
// upserts so concurrent requests never lose updates.
type DailyStatsRepository interface {
	FindOrCreate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error)
	IncrementTime(ctx context.Context, userID primitive.ObjectID, day time.Time, seconds int64) (*domain.UserDailyStats, error)
	IncrementPomodoro(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error)
}

type DailyStatsService interface {
	GetToday(ctx context.Context, userID primitive.ObjectID) (*domain.UserDailyStats, error)
	AddTime(ctx context.Context, userID primitive.ObjectID, seconds int64) (*domain.UserDailyStats, error)
	AddPomodoro(ctx context.Context, userID primitive.ObjectID) (*domain.UserDailyStats, error)
}
