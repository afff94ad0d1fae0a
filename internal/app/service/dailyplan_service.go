package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

// DailyPlanService assembles daily plans. It is the one service composing
// across the category and task stores, so both are injected collaborators.
type DailyPlanService struct {
	plans      ports.DailyPlanRepository
	categories ports.CategoryRepository
	tasks      ports.TaskRepository
	now        func() time.Time
}

func NewDailyPlanService(
	plans ports.DailyPlanRepository,
	categories ports.CategoryRepository,
	tasks ports.TaskRepository,
) *DailyPlanService {
	return &DailyPlanService{
		plans:      plans,
		categories: categories,
		tasks:      tasks,
		now:        time.Now,
	}
}

// Create rejects a second plan for the same user and calendar day,
// whatever the time-of-day component of the requested date.
func (s *DailyPlanService) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateDailyPlanInput) (*domain.DailyPlan, error) {
	day := domain.CalendarDay(input.Date)

	_, err := s.plans.FindByUserAndDate(ctx, userID, day)
	if err == nil {
		return nil, domain.ErrDailyPlanExists
	}
	if !errors.Is(err, domain.ErrDailyPlanNotFound) {
		return nil, err
	}

	allocations, err := s.validateAllocations(ctx, userID, input.Allocations)
	if err != nil {
		return nil, err
	}

	now := s.now()
	plan := &domain.DailyPlan{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Date:        day,
		Allocations: allocations,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *DailyPlanService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, error) {
	plan, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *DailyPlanService) GetByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.DailyPlan, error) {
	plan, err := s.plans.FindByUserAndDate(ctx, userID, domain.CalendarDay(date))
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update re-validates a replaced allocations list and leaves allocations
// untouched when the field is omitted. Every update resets the reviewed
// flag; Approve is the only path that sets it.
func (s *DailyPlanService) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateDailyPlanInput) (*domain.DailyPlan, error) {
	plan, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.AllocationsSet {
		allocations, err := s.validateAllocations(ctx, userID, input.Allocations)
		if err != nil {
			return nil, err
		}
		plan.Allocations = allocations
	}
	if input.ReflectionSet {
		plan.ReflectionContent = input.Reflection
	}
	if input.NotesSet {
		plan.NotesContent = input.Notes
	}
	plan.Reviewed = false
	plan.UpdatedAt = s.now()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *DailyPlanService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

func (s *DailyPlanService) Approve(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, error) {
	plan, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if plan.Reviewed {
		return nil, domain.ErrAlreadyReviewed
	}

	plan.Reviewed = true
	plan.UpdatedAt = s.now()
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Reconcile merges overlapping same-category allocations and reports
// cross-category overlaps as conflicts, leaving those allocations for the
// caller to resolve.
func (s *DailyPlanService) Reconcile(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, []string, error) {
	plan, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	merged, conflicts := domain.ReconcileAllocations(plan.Allocations)
	plan.Allocations = merged
	plan.Reviewed = false
	plan.UpdatedAt = s.now()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, nil, err
	}
	if err := s.resolve(ctx, plan); err != nil {
		return nil, nil, err
	}
	return plan, conflicts, nil
}

func (s *DailyPlanService) owned(ctx context.Context, userID, id primitive.ObjectID) (*domain.DailyPlan, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return plan, nil
}

// validateAllocations checks every allocation before anything is persisted:
// ranges are well formed, every category and task resolves to an active
// entity owned by the user, and every task with a category matches its
// allocation's category. The first violation wins.
func (s *DailyPlanService) validateAllocations(ctx context.Context, userID primitive.ObjectID, inputs []domain.AllocationInput) ([]domain.TimeWindowAllocation, error) {
	for _, in := range inputs {
		if !domain.ValidTimeRange(in.StartTime, in.EndTime) {
			return nil, domain.ErrInvalidTimeRange
		}
	}

	categoryByID, err := s.fetchCategories(ctx, collectCategoryIDs(inputs))
	if err != nil {
		return nil, err
	}
	taskByID, err := s.fetchTasks(ctx, collectTaskIDs(inputs))
	if err != nil {
		return nil, err
	}

	allocations := make([]domain.TimeWindowAllocation, 0, len(inputs))
	for _, in := range inputs {
		category, ok := categoryByID[in.CategoryID]
		if !ok || category.IsDeleted {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, in.CategoryID.Hex())
		}
		if category.UserID != userID {
			return nil, domain.ErrForbidden
		}
		for _, taskID := range in.TaskIDs {
			task, ok := taskByID[taskID]
			if !ok || task.IsDeleted {
				return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID.Hex())
			}
			if task.UserID != userID {
				return nil, domain.ErrForbidden
			}
			if task.CategoryID != nil && *task.CategoryID != in.CategoryID {
				return nil, domain.ErrCategoryMismatch
			}
		}
		allocations = append(allocations, domain.TimeWindowAllocation{
			CategoryID:  in.CategoryID,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			TaskIDs:     in.TaskIDs,
			Description: in.Description,
		})
	}
	return allocations, nil
}

// resolve expands every allocation's category and tasks from two batch
// fetches. Any reference that no longer resolves to an active entity fails
// the whole read, naming the id.
func (s *DailyPlanService) resolve(ctx context.Context, plan *domain.DailyPlan) error {
	categoryByID, err := s.fetchCategories(ctx, collectPlanCategoryIDs(plan))
	if err != nil {
		return err
	}
	taskByID, err := s.fetchTasks(ctx, collectPlanTaskIDs(plan))
	if err != nil {
		return err
	}

	for i := range plan.Allocations {
		alloc := &plan.Allocations[i]
		category, ok := categoryByID[alloc.CategoryID]
		if !ok || category.IsDeleted {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, alloc.CategoryID.Hex())
		}
		allocCategory := category
		alloc.Category = &allocCategory

		tasks := make([]domain.Task, 0, len(alloc.TaskIDs))
		for _, taskID := range alloc.TaskIDs {
			task, ok := taskByID[taskID]
			if !ok || task.IsDeleted {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID.Hex())
			}
			tasks = append(tasks, task)
		}
		alloc.Tasks = tasks
	}
	return nil
}

func (s *DailyPlanService) fetchCategories(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.Category, error) {
	byID := make(map[primitive.ObjectID]domain.Category, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}

func (s *DailyPlanService) fetchTasks(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.Task, error) {
	byID := make(map[primitive.ObjectID]domain.Task, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	tasks, err := s.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return byID, nil
}

func collectCategoryIDs(inputs []domain.AllocationInput) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(inputs))
	ids := make([]primitive.ObjectID, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.CategoryID]; !ok {
			seen[in.CategoryID] = struct{}{}
			ids = append(ids, in.CategoryID)
		}
	}
	return ids
}

func collectTaskIDs(inputs []domain.AllocationInput) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	for _, in := range inputs {
		for _, id := range in.TaskIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func collectPlanCategoryIDs(plan *domain.DailyPlan) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(plan.Allocations))
	ids := make([]primitive.ObjectID, 0, len(plan.Allocations))
	for _, a := range plan.Allocations {
		if _, ok := seen[a.CategoryID]; !ok {
			seen[a.CategoryID] = struct{}{}
			ids = append(ids, a.CategoryID)
		}
	}
	return ids
}

func collectPlanTaskIDs(plan *domain.DailyPlan) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	for _, a := range plan.Allocations {
		for _, id := range a.TaskIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

var _ ports.DailyPlanService = (*DailyPlanService)(nil)
