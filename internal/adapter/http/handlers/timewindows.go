package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/mapper"
	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/adapter/http/validation"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type TimeWindowHandler struct {
	timeWindowService ports.TimeWindowService
}

func NewTimeWindowHandler(timeWindowService ports.TimeWindowService) *TimeWindowHandler {
	return &TimeWindowHandler{timeWindowService: timeWindowService}
}

func (h *TimeWindowHandler) Create(c *gin.Context) {
	var req dto.CreateTimeWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateTimeWindowInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	window, err := h.timeWindowService.Create(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeWindowItem(*window))
}

func (h *TimeWindowHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	window, err := h.timeWindowService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeWindowItem(*window))
}

func (h *TimeWindowHandler) List(c *gin.Context) {
	windows, err := h.timeWindowService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeWindowItems(windows))
}

func (h *TimeWindowHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateTimeWindowInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	window, err := h.timeWindowService.Update(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeWindowItem(*window))
}

func (h *TimeWindowHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.timeWindowService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
