package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// TaskRepository persists tasks. Find methods return domain.ErrTaskNotFound
// when no document matches.
type TaskRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error)
	FindActiveByTitle(ctx context.Context, userID primitive.ObjectID, title string) (*domain.Task, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Task, error)
	ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.Task, error)
	Insert(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
}

type TaskService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Task, error)
	List(ctx context.Context, userID primitive.ObjectID, opts domain.ListTasksOptions) ([]domain.Task, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
