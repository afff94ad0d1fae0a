package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/mapper"
	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type DailyStatsHandler struct {
	statsService ports.DailyStatsService
}

func NewDailyStatsHandler(statsService ports.DailyStatsService) *DailyStatsHandler {
	return &DailyStatsHandler{statsService: statsService}
}

func (h *DailyStatsHandler) GetToday(c *gin.Context) {
	stats, err := h.statsService.GetToday(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyStatsItem(*stats))
}

func (h *DailyStatsHandler) AddTime(c *gin.Context) {
	var req dto.AddTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	stats, err := h.statsService.AddTime(c.Request.Context(), middleware.GetUserID(c), req.Seconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyStatsItem(*stats))
}

func (h *DailyStatsHandler) AddPomodoro(c *gin.Context) {
	stats, err := h.statsService.AddPomodoro(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyStatsItem(*stats))
}
