package mapper

import (
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToDailyPlanItem(plan domain.DailyPlan) dto.DailyPlanItem {
	allocations := make([]dto.AllocationItem, 0, len(plan.Allocations))
	for _, alloc := range plan.Allocations {
		allocations = append(allocations, toAllocationItem(alloc))
	}

	item := dto.DailyPlanItem{
		ID:          plan.ID.Hex(),
		Date:        plan.Date.Format("2006-01-02"),
		Allocations: allocations,
		Reviewed:    plan.Reviewed,
		CreatedAt:   plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   plan.UpdatedAt.Format(time.RFC3339),
	}

	if plan.ReflectionContent != nil {
		value := *plan.ReflectionContent
		item.ReflectionContent = &value
	}
	if plan.NotesContent != nil {
		value := *plan.NotesContent
		item.NotesContent = &value
	}

	return item
}

func toAllocationItem(alloc domain.TimeWindowAllocation) dto.AllocationItem {
	item := dto.AllocationItem{
		StartTime:   alloc.StartTime,
		EndTime:     alloc.EndTime,
		Tasks:       ToTaskItems(alloc.Tasks),
		Description: alloc.Description,
	}

	if alloc.Category != nil {
		item.Category = ToCategoryItem(*alloc.Category)
	}

	return item
}
