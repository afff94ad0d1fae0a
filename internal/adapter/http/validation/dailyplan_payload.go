package validation

import (
	"encoding/json"
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

// ParsePlanDate accepts a full timestamp or a bare date; the service keys
// plans by calendar day either way.
func ParsePlanDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidPayload
	}
	return parsed, nil
}

func BuildCreateDailyPlanInput(req dto.CreateDailyPlanRequest) (domain.CreateDailyPlanInput, error) {
	date, err := ParsePlanDate(req.Date)
	if err != nil {
		return domain.CreateDailyPlanInput{}, err
	}

	allocations, err := buildAllocationInputs(req.Allocations)
	if err != nil {
		return domain.CreateDailyPlanInput{}, err
	}

	return domain.CreateDailyPlanInput{Date: date, Allocations: allocations}, nil
}

func BuildUpdateDailyPlanInput(req dto.UpdateDailyPlanRequest, raw map[string]json.RawMessage) (domain.UpdateDailyPlanInput, error) {
	if !hasJSONField(raw, "allocations") &&
		!hasJSONField(raw, "reflection_content") &&
		!hasJSONField(raw, "notes_content") {
		return domain.UpdateDailyPlanInput{}, ErrInvalidPayload
	}

	input := domain.UpdateDailyPlanInput{}

	if hasJSONField(raw, "allocations") && !isJSONNull(raw["allocations"]) {
		allocations, err := buildAllocationInputs(req.Allocations)
		if err != nil {
			return domain.UpdateDailyPlanInput{}, err
		}
		input.Allocations = allocations
		input.AllocationsSet = true
	}

	reflectionSet := hasJSONField(raw, "reflection_content")
	if reflectionSet && !isJSONNull(raw["reflection_content"]) && req.ReflectionContent == nil {
		return domain.UpdateDailyPlanInput{}, ErrInvalidPayload
	}
	input.Reflection = req.ReflectionContent
	input.ReflectionSet = reflectionSet

	notesSet := hasJSONField(raw, "notes_content")
	if notesSet && !isJSONNull(raw["notes_content"]) && req.NotesContent == nil {
		return domain.UpdateDailyPlanInput{}, ErrInvalidPayload
	}
	input.Notes = req.NotesContent
	input.NotesSet = notesSet

	return input, nil
}

func buildAllocationInputs(reqs []dto.AllocationRequest) ([]domain.AllocationInput, error) {
	allocations := make([]domain.AllocationInput, 0, len(reqs))
	for _, req := range reqs {
		if req.StartTime == nil || req.EndTime == nil {
			return nil, ErrInvalidPayload
		}
		categoryID, err := parseObjectID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		taskIDs, err := parseObjectIDs(req.TaskIDs)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, domain.AllocationInput{
			CategoryID:  categoryID,
			StartTime:   *req.StartTime,
			EndTime:     *req.EndTime,
			TaskIDs:     taskIDs,
			Description: req.Description,
		})
	}
	return allocations, nil
}
