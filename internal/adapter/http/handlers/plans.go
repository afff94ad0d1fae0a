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

type DailyPlanHandler struct {
	planService ports.DailyPlanService
}

func NewDailyPlanHandler(planService ports.DailyPlanService) *DailyPlanHandler {
	return &DailyPlanHandler{planService: planService}
}

func (h *DailyPlanHandler) Create(c *gin.Context) {
	var req dto.CreateDailyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateDailyPlanInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDailyPlanItem(*plan))
}

func (h *DailyPlanHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyPlanItem(*plan))
}

func (h *DailyPlanHandler) GetByDate(c *gin.Context) {
	date, err := validation.ParsePlanDate(c.Param("date"))
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	plan, err := h.planService.GetByDate(c.Request.Context(), middleware.GetUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyPlanItem(*plan))
}

func (h *DailyPlanHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDailyPlanRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateDailyPlanInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyPlanItem(*plan))
}

func (h *DailyPlanHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DailyPlanHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	plan, err := h.planService.Approve(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyPlanItem(*plan))
}

func (h *DailyPlanHandler) Reconcile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	plan, conflicts, err := h.planService.Reconcile(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if conflicts == nil {
		conflicts = []string{}
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		Plan:      mapper.ToDailyPlanItem(*plan),
		Conflicts: conflicts,
	})
}
