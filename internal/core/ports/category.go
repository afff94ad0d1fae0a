package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// CategoryRepository persists categories. Find methods return
// domain.ErrCategoryNotFound when no document matches.
type CategoryRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
	FindActiveByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Category, error)
	ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
}

type CategoryService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateCategoryInput) (*domain.Category, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Category, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Category, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
