package mapper

import (
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	item := dto.CategoryItem{
		ID:        category.ID.Hex(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.Format(time.RFC3339),
	}

	if category.Description != nil {
		value := *category.Description
		item.Description = &value
	}
	if category.Color != nil {
		value := *category.Color
		item.Color = &value
	}

	return item
}
