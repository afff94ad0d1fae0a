package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// DailyPlanRepository persists daily plans. Find methods return
// domain.ErrDailyPlanNotFound when no document matches. Dates passed to
// FindByUserAndDate are expected to be normalized to UTC midnight.
type DailyPlanRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyPlan, error)
	FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.DailyPlan, error)
	Insert(ctx context.Context, plan *domain.DailyPlan) error
	Update(ctx context.Context, plan *domain.DailyPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DailyPlanService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateDailyPlanInput) (*domain.DailyPlan, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.DailyPlan, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateDailyPlanInput) (*domain.DailyPlan, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	Approve(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, error)
	Reconcile(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, []string, error)
}
