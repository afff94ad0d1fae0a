package validation

import (
	"encoding/json"
	"strings"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func BuildCreateCategoryInput(req dto.CreateCategoryRequest) (domain.CreateCategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCategoryInput{}, ErrInvalidPayload
	}

	return domain.CreateCategoryInput{
		Name:        name,
		Description: req.Description,
		Color:       req.Color,
	}, nil
}

func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.UpdateCategoryInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") && !hasJSONField(raw, "color") {
		return domain.UpdateCategoryInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateCategoryInput{}, ErrInvalidPayload
	}

	colorSet := hasJSONField(raw, "color")
	if colorSet && !isJSONNull(raw["color"]) && req.Color == nil {
		return domain.UpdateCategoryInput{}, ErrInvalidPayload
	}

	return domain.UpdateCategoryInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Color:          req.Color,
		ColorSet:       colorSet,
	}, nil
}
