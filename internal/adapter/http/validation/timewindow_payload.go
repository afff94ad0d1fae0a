package validation

import (
	"strings"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func BuildCreateTimeWindowInput(req dto.CreateTimeWindowRequest) (domain.CreateTimeWindowInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.StartTime == nil || req.EndTime == nil {
		return domain.CreateTimeWindowInput{}, ErrInvalidPayload
	}

	categoryID, err := parseObjectID(req.CategoryID)
	if err != nil {
		return domain.CreateTimeWindowInput{}, err
	}
	templateID, err := parseObjectID(req.DayTemplateID)
	if err != nil {
		return domain.CreateTimeWindowInput{}, err
	}

	return domain.CreateTimeWindowInput{
		Name:          name,
		StartTime:     *req.StartTime,
		EndTime:       *req.EndTime,
		CategoryID:    categoryID,
		DayTemplateID: templateID,
	}, nil
}

func BuildUpdateTimeWindowInput(req dto.UpdateTimeWindowRequest) (domain.UpdateTimeWindowInput, error) {
	if req.Name == nil && req.StartTime == nil && req.EndTime == nil && req.CategoryID == nil {
		return domain.UpdateTimeWindowInput{}, ErrInvalidPayload
	}

	input := domain.UpdateTimeWindowInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateTimeWindowInput{}, ErrInvalidPayload
		}
		input.Name = &value
	}
	if req.CategoryID != nil {
		categoryID, err := parseObjectID(*req.CategoryID)
		if err != nil {
			return domain.UpdateTimeWindowInput{}, err
		}
		input.CategoryID = &categoryID
	}

	return input, nil
}
