package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// DayTemplateRepository persists day templates. Templates are hard-deleted.
type DayTemplateRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.DayTemplate, error)
	FindByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.DayTemplate, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.DayTemplate, error)
	Insert(ctx context.Context, template *domain.DayTemplate) error
	Update(ctx context.Context, template *domain.DayTemplate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DayTemplateService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateDayTemplateInput) (*domain.DayTemplate, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.DayTemplate, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.DayTemplate, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateDayTemplateInput) (*domain.DayTemplate, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
