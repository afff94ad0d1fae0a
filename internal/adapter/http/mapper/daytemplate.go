package mapper

import (
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToDayTemplateItems(templates []domain.DayTemplate) []dto.DayTemplateItem {
	items := make([]dto.DayTemplateItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, ToDayTemplateItem(template))
	}
	return items
}

func ToDayTemplateItem(template domain.DayTemplate) dto.DayTemplateItem {
	item := dto.DayTemplateItem{
		ID:        template.ID.Hex(),
		Name:      template.Name,
		CreatedAt: template.CreatedAt.Format(time.RFC3339),
		UpdatedAt: template.UpdatedAt.Format(time.RFC3339),
	}

	if template.Description != nil {
		value := *template.Description
		item.Description = &value
	}
	if len(template.TimeWindows) > 0 {
		item.TimeWindows = ToTimeWindowItems(template.TimeWindows)
	}

	return item
}
