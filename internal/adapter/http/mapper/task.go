package mapper

import (
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID.Hex(),
		Title:      task.Title,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		Statistics: toStatisticsItem(task.Statistics),
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}
	if task.CategoryID != nil {
		value := task.CategoryID.Hex()
		item.CategoryID = &value
	}

	return item
}

func toStatisticsItem(stats domain.TaskStatistics) dto.StatisticsItem {
	item := dto.StatisticsItem{LastsMinutes: stats.LastsMinutes}

	if stats.WasStartedAt != nil {
		value := stats.WasStartedAt.Format(time.RFC3339)
		item.WasStartedAt = &value
	}
	if stats.WasTakenAt != nil {
		value := stats.WasTakenAt.Format(time.RFC3339)
		item.WasTakenAt = &value
	}
	if stats.WasStoppedAt != nil {
		value := stats.WasStoppedAt.Format(time.RFC3339)
		item.WasStoppedAt = &value
	}

	return item
}
