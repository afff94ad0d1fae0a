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

type TimeWindowService struct {
	windows    ports.TimeWindowRepository
	categories ports.CategoryRepository
	templates  ports.DayTemplateRepository
	now        func() time.Time
}

func NewTimeWindowService(
	windows ports.TimeWindowRepository,
	categories ports.CategoryRepository,
	templates ports.DayTemplateRepository,
) *TimeWindowService {
	return &TimeWindowService{
		windows:    windows,
		categories: categories,
		templates:  templates,
		now:        time.Now,
	}
}

func (s *TimeWindowService) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateTimeWindowInput) (*domain.TimeWindow, error) {
	if !domain.ValidTimeRange(input.StartTime, input.EndTime) {
		return nil, domain.ErrInvalidTimeRange
	}
	if _, err := s.checkCategory(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkTemplate(ctx, userID, input.DayTemplateID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, userID, input.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := s.now()
	window := &domain.TimeWindow{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Name:          input.Name,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		CategoryID:    input.CategoryID,
		DayTemplateID: input.DayTemplateID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.windows.Insert(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

func (s *TimeWindowService) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.TimeWindow, error) {
	window, err := s.ownedActive(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	category, err := s.checkCategory(ctx, userID, window.CategoryID)
	if err != nil {
		return nil, err
	}
	window.Category = category
	return window, nil
}

func (s *TimeWindowService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.TimeWindow, error) {
	windows, err := s.windows.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return windows, nil
	}

	ids := make([]primitive.ObjectID, 0, len(windows))
	seen := make(map[primitive.ObjectID]struct{}, len(windows))
	for _, w := range windows {
		if _, ok := seen[w.CategoryID]; !ok {
			seen[w.CategoryID] = struct{}{}
			ids = append(ids, w.CategoryID)
		}
	}
	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range windows {
		category, ok := byID[windows[i].CategoryID]
		if !ok || category.IsDeleted {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, windows[i].CategoryID.Hex())
		}
		resolved := category
		windows[i].Category = &resolved
	}
	return windows, nil
}

// Update merges start/end with the stored values before re-checking the
// range, so a partial update cannot produce an inverted window.
func (s *TimeWindowService) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateTimeWindowInput) (*domain.TimeWindow, error) {
	window, err := s.ownedActive(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	start := window.StartTime
	end := window.EndTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	if !domain.ValidTimeRange(start, end) {
		return nil, domain.ErrInvalidTimeRange
	}

	if input.CategoryID != nil && *input.CategoryID != window.CategoryID {
		if _, err := s.checkCategory(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
		window.CategoryID = *input.CategoryID
	}
	if input.Name != nil && *input.Name != window.Name {
		if err := s.checkNameFree(ctx, userID, *input.Name, id); err != nil {
			return nil, err
		}
		window.Name = *input.Name
	}

	window.StartTime = start
	window.EndTime = end
	window.UpdatedAt = s.now()

	if err := s.windows.Update(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

// Delete soft-deletes a time window without touching day templates that
// still reference it; template reads fail loudly instead.
func (s *TimeWindowService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	window, err := s.windows.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if window.IsDeleted {
		return nil
	}
	if window.UserID != userID {
		return domain.ErrForbidden
	}

	window.IsDeleted = true
	window.UpdatedAt = s.now()
	return s.windows.Update(ctx, window)
}

func (s *TimeWindowService) ownedActive(ctx context.Context, userID, id primitive.ObjectID) (*domain.TimeWindow, error) {
	window, err := s.windows.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if window.IsDeleted {
		return nil, domain.ErrTimeWindowNotFound
	}
	if window.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return window, nil
}

func (s *TimeWindowService) checkCategory(ctx context.Context, userID, id primitive.ObjectID) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.IsDeleted {
		return nil, domain.ErrCategoryNotFound
	}
	if category.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return category, nil
}

func (s *TimeWindowService) checkTemplate(ctx context.Context, userID, id primitive.ObjectID) error {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if template.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *TimeWindowService) checkNameFree(ctx context.Context, userID primitive.ObjectID, name string, excludeID primitive.ObjectID) error {
	existing, err := s.windows.FindActiveByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrTimeWindowNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrNameConflict
	}
	return nil
}

var _ ports.TimeWindowService = (*TimeWindowService)(nil)
