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

type DayTemplateService struct {
	templates  ports.DayTemplateRepository
	windows    ports.TimeWindowRepository
	categories ports.CategoryRepository
	now        func() time.Time
}

func NewDayTemplateService(
	templates ports.DayTemplateRepository,
	windows ports.TimeWindowRepository,
	categories ports.CategoryRepository,
) *DayTemplateService {
	return &DayTemplateService{
		templates:  templates,
		windows:    windows,
		categories: categories,
		now:        time.Now,
	}
}

func (s *DayTemplateService) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateDayTemplateInput) (*domain.DayTemplate, error) {
	if err := s.checkNameFree(ctx, userID, input.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}
	if err := s.checkWindowRefs(ctx, userID, input.TimeWindowIDs); err != nil {
		return nil, err
	}

	now := s.now()
	template := &domain.DayTemplate{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Name:          input.Name,
		Description:   input.Description,
		TimeWindowIDs: input.TimeWindowIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.templates.Insert(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *DayTemplateService) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.DayTemplate, error) {
	template, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *DayTemplateService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.DayTemplate, error) {
	return s.templates.List(ctx, userID)
}

func (s *DayTemplateService) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateDayTemplateInput) (*domain.DayTemplate, error) {
	template, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != template.Name {
		if err := s.checkNameFree(ctx, userID, *input.Name, id); err != nil {
			return nil, err
		}
		template.Name = *input.Name
	}
	if input.DescriptionSet {
		template.Description = input.Description
	}
	if input.TimeWindowsSet {
		if err := s.checkWindowRefs(ctx, userID, input.TimeWindowIDs); err != nil {
			return nil, err
		}
		template.TimeWindowIDs = input.TimeWindowIDs
	}
	template.UpdatedAt = s.now()

	if err := s.templates.Update(ctx, template); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *DayTemplateService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.templates.Delete(ctx, id)
}

func (s *DayTemplateService) owned(ctx context.Context, userID, id primitive.ObjectID) (*domain.DayTemplate, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return template, nil
}

// checkWindowRefs verifies every referenced time window is an active window
// owned by the user. The first unresolvable id is surfaced.
func (s *DayTemplateService) checkWindowRefs(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	windows, err := s.windows.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]domain.TimeWindow, len(windows))
	for _, w := range windows {
		byID[w.ID] = w
	}
	for _, id := range ids {
		window, ok := byID[id]
		if !ok || window.IsDeleted {
			return fmt.Errorf("%w: %s", domain.ErrTimeWindowNotFound, id.Hex())
		}
		if window.UserID != userID {
			return domain.ErrForbidden
		}
	}
	return nil
}

// resolve expands every referenced time window, with its category, in the
// stored order. A reference to a missing or soft-deleted window or category
// fails the whole read.
func (s *DayTemplateService) resolve(ctx context.Context, template *domain.DayTemplate) error {
	if len(template.TimeWindowIDs) == 0 {
		template.TimeWindows = nil
		return nil
	}

	windows, err := s.windows.FindByIDs(ctx, template.TimeWindowIDs)
	if err != nil {
		return err
	}
	windowByID := make(map[primitive.ObjectID]domain.TimeWindow, len(windows))
	categoryIDs := make([]primitive.ObjectID, 0, len(windows))
	seen := make(map[primitive.ObjectID]struct{}, len(windows))
	for _, w := range windows {
		windowByID[w.ID] = w
		if _, ok := seen[w.CategoryID]; !ok {
			seen[w.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, w.CategoryID)
		}
	}

	categories, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return err
	}
	categoryByID := make(map[primitive.ObjectID]domain.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	resolved := make([]domain.TimeWindow, 0, len(template.TimeWindowIDs))
	for _, id := range template.TimeWindowIDs {
		window, ok := windowByID[id]
		if !ok || window.IsDeleted {
			return fmt.Errorf("%w: %s", domain.ErrTimeWindowNotFound, id.Hex())
		}
		category, ok := categoryByID[window.CategoryID]
		if !ok || category.IsDeleted {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, window.CategoryID.Hex())
		}
		windowCategory := category
		window.Category = &windowCategory
		resolved = append(resolved, window)
	}
	template.TimeWindows = resolved
	return nil
}

func (s *DayTemplateService) checkNameFree(ctx context.Context, userID primitive.ObjectID, name string, excludeID primitive.ObjectID) error {
	existing, err := s.templates.FindByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrDayTemplateNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrNameConflict
	}
	return nil
}

var _ ports.DayTemplateService = (*DayTemplateService)(nil)
