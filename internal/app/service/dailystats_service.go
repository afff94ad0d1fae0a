package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

var errNonPositiveSeconds = errors.New("seconds must be positive")

// DailyStatsService keeps per-user counters for the current UTC day. A
// fresh zeroed row appears on first access each day; increments go through
// the repository's atomic upsert so concurrent requests cannot lose counts.
type DailyStatsService struct {
	stats ports.DailyStatsRepository
	now   func() time.Time
}

func NewDailyStatsService(stats ports.DailyStatsRepository) *DailyStatsService {
	return &DailyStatsService{stats: stats, now: time.Now}
}

func (s *DailyStatsService) GetToday(ctx context.Context, userID primitive.ObjectID) (*domain.UserDailyStats, error) {
	return s.stats.FindOrCreate(ctx, userID, s.today())
}

func (s *DailyStatsService) AddTime(ctx context.Context, userID primitive.ObjectID, seconds int64) (*domain.UserDailyStats, error) {
	if seconds <= 0 {
		return nil, errNonPositiveSeconds
	}
	return s.stats.IncrementTime(ctx, userID, s.today(), seconds)
}

func (s *DailyStatsService) AddPomodoro(ctx context.Context, userID primitive.ObjectID) (*domain.UserDailyStats, error) {
	return s.stats.IncrementPomodoro(ctx, userID, s.today())
}

func (s *DailyStatsService) today() time.Time {
	return domain.CalendarDay(s.now())
}

var _ ports.DailyStatsService = (*DailyStatsService)(nil)
