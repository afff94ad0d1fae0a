package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/mapper"
	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/adapter/http/validation"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type DayTemplateHandler struct {
	dayTemplateService ports.DayTemplateService
}

func NewDayTemplateHandler(dayTemplateService ports.DayTemplateService) *DayTemplateHandler {
	return &DayTemplateHandler{dayTemplateService: dayTemplateService}
}

func (h *DayTemplateHandler) Create(c *gin.Context) {
	var req dto.CreateDayTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateDayTemplateInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	template, err := h.dayTemplateService.Create(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDayTemplateItem(*template))
}

func (h *DayTemplateHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	template, err := h.dayTemplateService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayTemplateItem(*template))
}

func (h *DayTemplateHandler) List(c *gin.Context) {
	templates, err := h.dayTemplateService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayTemplateItems(templates))
}

func (h *DayTemplateHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDayTemplateRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateDayTemplateInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	template, err := h.dayTemplateService.Update(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayTemplateItem(*template))
}

func (h *DayTemplateHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.dayTemplateService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
