package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	now        func() time.Time
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories, now: time.Now}
}

func (s *CategoryService) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateCategoryInput) (*domain.Category, error) {
	if err := s.checkNameFree(ctx, userID, input.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := s.now()
	category := &domain.Category{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Category, error) {
	return s.ownedActive(ctx, userID, id)
}

func (s *CategoryService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Category, error) {
	return s.categories.ListActive(ctx, userID)
}

func (s *CategoryService) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.ownedActive(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != category.Name {
		if err := s.checkNameFree(ctx, userID, *input.Name, id); err != nil {
			return nil, err
		}
		category.Name = *input.Name
	}
	if input.DescriptionSet {
		category.Description = input.Description
	}
	if input.ColorSet {
		category.Color = input.Color
	}
	category.UpdatedAt = s.now()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category. Deleting an already-deleted category
// succeeds silently.
func (s *CategoryService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category.IsDeleted {
		return nil
	}
	if category.UserID != userID {
		return domain.ErrForbidden
	}

	category.IsDeleted = true
	category.UpdatedAt = s.now()
	return s.categories.Update(ctx, category)
}

func (s *CategoryService) ownedActive(ctx context.Context, userID, id primitive.ObjectID) (*domain.Category, error) {
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

// checkNameFree enforces name uniqueness among the user's active
// categories. excludeID skips the category being updated.
func (s *CategoryService) checkNameFree(ctx context.Context, userID primitive.ObjectID, name string, excludeID primitive.ObjectID) error {
	existing, err := s.categories.FindActiveByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrNameConflict
	}
	return nil
}

var _ ports.CategoryService = (*CategoryService)(nil)
