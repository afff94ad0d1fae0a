package domain

import (
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReconcileAllocations merges overlapping or touching allocations of the
// same category into a single spanning allocation, and reports strict
// overlaps between allocations of different categories as conflicts.
// Conflicting allocations are left as they are; resolving them is up to
// the caller.
func ReconcileAllocations(allocations []TimeWindowAllocation) ([]TimeWindowAllocation, []string) {
	byCategory := make(map[primitive.ObjectID][]TimeWindowAllocation)
	order := make([]primitive.ObjectID, 0, len(allocations))
	for _, a := range allocations {
		if _, seen := byCategory[a.CategoryID]; !seen {
			order = append(order, a.CategoryID)
		}
		byCategory[a.CategoryID] = append(byCategory[a.CategoryID], a)
	}

	merged := make([]TimeWindowAllocation, 0, len(allocations))
	for _, categoryID := range order {
		merged = append(merged, mergeCategoryAllocations(byCategory[categoryID])...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StartTime != merged[j].StartTime {
			return merged[i].StartTime < merged[j].StartTime
		}
		return merged[i].EndTime < merged[j].EndTime
	})

	var conflicts []string
	for i := 0; i < len(merged); i++ {
		for j := i + 1; j < len(merged); j++ {
			a, b := merged[i], merged[j]
			if a.CategoryID == b.CategoryID {
				continue
			}
			// Strict overlap only: touching boundaries across categories
			// is a valid back-to-back schedule.
			if a.StartTime < b.EndTime && b.StartTime < a.EndTime {
				conflicts = append(conflicts, fmt.Sprintf(
					"%s-%s overlaps %s-%s",
					formatMinutes(a.StartTime), formatMinutes(a.EndTime),
					formatMinutes(b.StartTime), formatMinutes(b.EndTime),
				))
			}
		}
	}

	return merged, conflicts
}

// mergeCategoryAllocations sweeps same-category allocations in start order,
// folding every overlapping or touching pair into one spanning allocation.
func mergeCategoryAllocations(allocations []TimeWindowAllocation) []TimeWindowAllocation {
	if len(allocations) <= 1 {
		return allocations
	}

	sorted := make([]TimeWindowAllocation, len(allocations))
	copy(sorted, allocations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	result := []TimeWindowAllocation{sorted[0]}
	for _, next := range sorted[1:] {
		last := &result[len(result)-1]
		if next.StartTime > last.EndTime {
			result = append(result, next)
			continue
		}
		if next.EndTime > last.EndTime {
			last.EndTime = next.EndTime
		}
		last.TaskIDs = unionTaskIDs(last.TaskIDs, next.TaskIDs)
		last.Description = joinDescriptions(last.Description, next.Description)
		last.Category = nil
		last.Tasks = nil
	}

	return result
}

func unionTaskIDs(a, b []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(a)+len(b))
	union := make([]primitive.ObjectID, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	return union
}

func joinDescriptions(a, b string) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(a) != "" {
		parts = append(parts, a)
	}
	if strings.TrimSpace(b) != "" {
		parts = append(parts, b)
	}
	return strings.Join(parts, "; ")
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
