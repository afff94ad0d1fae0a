package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
	}

	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		input.DueDate = &dueDate
	}
	if req.CategoryID != nil {
		categoryID, err := parseObjectID(*req.CategoryID)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.CategoryID = &categoryID
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		dueDate = &parsed
	}

	input := domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Priority:       priority,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		AddMinutes:     req.AddMinutes,
	}

	categoryIDSet := hasJSONField(raw, "category_id")
	if categoryIDSet {
		input.CategoryIDSet = true
		if !isJSONNull(raw["category_id"]) {
			if req.CategoryID == nil {
				return domain.UpdateTaskInput{}, ErrInvalidPayload
			}
			categoryID, err := parseObjectID(*req.CategoryID)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			input.CategoryID = &categoryID
		}
	}

	if req.AddMinutes != nil && *req.AddMinutes < 0 {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "category_id") ||
		hasJSONField(raw, "add_minutes")
}
