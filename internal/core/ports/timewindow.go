package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// TimeWindowRepository persists time windows. Find methods return
// domain.ErrTimeWindowNotFound when no document matches.
type TimeWindowRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.TimeWindow, error)
	FindActiveByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.TimeWindow, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.TimeWindow, error)
	ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.TimeWindow, error)
	Insert(ctx context.Context, window *domain.TimeWindow) error
	Update(ctx context.Context, window *domain.TimeWindow) error
}

type TimeWindowService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateTimeWindowInput) (*domain.TimeWindow, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.TimeWindow, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.TimeWindow, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateTimeWindowInput) (*domain.TimeWindow, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
