package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type TaskService struct {
	tasks      ports.TaskRepository
	categories ports.CategoryRepository
	now        func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, categories ports.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateTaskInput) (*domain.Task, error) {
	if err := s.checkTitleFree(ctx, userID, input.Title, primitive.NilObjectID); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	now := s.now()
	task := &domain.Task{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Task, error) {
	return s.ownedActive(ctx, userID, id)
}

func (s *TaskService) List(ctx context.Context, userID primitive.ObjectID, opts domain.ListTasksOptions) ([]domain.Task, error) {
	tasks, err := s.tasks.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortTasks(tasks, opts)
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.ownedActive(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != task.Title {
		if err := s.checkTitleFree(ctx, userID, *input.Title, id); err != nil {
			return nil, err
		}
		task.Title = *input.Title
	}
	if input.CategoryIDSet {
		if input.CategoryID != nil {
			if err := s.checkCategory(ctx, userID, *input.CategoryID); err != nil {
				return nil, err
			}
		}
		task.CategoryID = input.CategoryID
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	now := s.now()
	// The status transition contributes to the accumulated time first; a
	// manual correction stacks on top within the same update.
	if input.Status != nil && *input.Status != task.Status {
		task.Statistics.ApplyStatusChange(task.Status, *input.Status, now)
		task.Status = *input.Status
	}
	if input.AddMinutes != nil {
		task.Statistics.AddMinutes(*input.AddMinutes)
	}
	task.UpdatedAt = now

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete soft-deletes a task. Deleting an already-deleted task succeeds
// silently.
func (s *TaskService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task.IsDeleted {
		return nil
	}
	if task.UserID != userID {
		return domain.ErrForbidden
	}

	task.IsDeleted = true
	task.UpdatedAt = s.now()
	return s.tasks.Update(ctx, task)
}

func (s *TaskService) ownedActive(ctx context.Context, userID, id primitive.ObjectID) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.IsDeleted {
		return nil, domain.ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) checkTitleFree(ctx context.Context, userID primitive.ObjectID, title string, excludeID primitive.ObjectID) error {
	existing, err := s.tasks.FindActiveByTitle(ctx, userID, title)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrNameConflict
	}
	return nil
}

func (s *TaskService) checkCategory(ctx context.Context, userID, id primitive.ObjectID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category.IsDeleted {
		return domain.ErrCategoryNotFound
	}
	if category.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

// sortTasks orders tasks by the requested field. Ties are broken by id so
// repeated queries return a stable order.
func sortTasks(tasks []domain.Task, opts domain.ListTasksOptions) {
	if opts.SortBy == "" {
		opts.SortBy = domain.TaskSortCreatedAt
	}
	desc := opts.SortOrder == domain.SortDesc

	sort.SliceStable(tasks, func(i, j int) bool {
		c := compareTasks(tasks[i], tasks[j], opts.SortBy)
		if c == 0 {
			return tasks[i].ID.Hex() < tasks[j].ID.Hex()
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareTasks(a, b domain.Task, field domain.TaskSortField) int {
	switch field {
	case domain.TaskSortDueDate:
		// Tasks without a due date sort last ascending, first descending.
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		case a.DueDate.Before(*b.DueDate):
			return -1
		case a.DueDate.After(*b.DueDate):
			return 1
		}
		return 0
	case domain.TaskSortPriority:
		return domain.PriorityRank[a.Priority] - domain.PriorityRank[b.Priority]
	case domain.TaskSortTitle:
		return strings.Compare(a.Title, b.Title)
	default:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		}
		return 0
	}
}

var _ ports.TaskService = (*TaskService)(nil)
