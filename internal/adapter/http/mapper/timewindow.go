package mapper

import (
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToTimeWindowItems(windows []domain.TimeWindow) []dto.TimeWindowItem {
	items := make([]dto.TimeWindowItem, 0, len(windows))
	for _, window := range windows {
		items = append(items, ToTimeWindowItem(window))
	}
	return items
}

func ToTimeWindowItem(window domain.TimeWindow) dto.TimeWindowItem {
	item := dto.TimeWindowItem{
		ID:            window.ID.Hex(),
		Name:          window.Name,
		StartTime:     window.StartTime,
		EndTime:       window.EndTime,
		DayTemplateID: window.DayTemplateID.Hex(),
		CreatedAt:     window.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     window.UpdatedAt.Format(time.RFC3339),
	}

	if window.Category != nil {
		item.Category = ToCategoryItem(*window.Category)
	}

	return item
}
