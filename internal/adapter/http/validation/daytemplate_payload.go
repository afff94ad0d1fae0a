package validation

import (
	"encoding/json"
	"strings"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func BuildCreateDayTemplateInput(req dto.CreateDayTemplateRequest) (domain.CreateDayTemplateInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateDayTemplateInput{}, ErrInvalidPayload
	}

	windowIDs, err := parseObjectIDs(req.TimeWindowIDs)
	if err != nil {
		return domain.CreateDayTemplateInput{}, err
	}

	return domain.CreateDayTemplateInput{
		Name:          name,
		Description:   req.Description,
		TimeWindowIDs: windowIDs,
	}, nil
}

func BuildUpdateDayTemplateInput(req dto.UpdateDayTemplateRequest, raw map[string]json.RawMessage) (domain.UpdateDayTemplateInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") && !hasJSONField(raw, "time_window_ids") {
		return domain.UpdateDayTemplateInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateDayTemplateInput{}, ErrInvalidPayload
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateDayTemplateInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateDayTemplateInput{}, ErrInvalidPayload
	}

	input := domain.UpdateDayTemplateInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
	}

	if hasJSONField(raw, "time_window_ids") && !isJSONNull(raw["time_window_ids"]) {
		windowIDs, err := parseObjectIDs(req.TimeWindowIDs)
		if err != nil {
			return domain.UpdateDayTemplateInput{}, err
		}
		input.TimeWindowIDs = windowIDs
		input.TimeWindowsSet = true
	}

	return input, nil
}
