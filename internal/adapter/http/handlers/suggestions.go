package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type SuggestionHandler struct {
	suggestionService ports.SuggestionService
}

func NewSuggestionHandler(suggestionService ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

func (h *SuggestionHandler) ImproveTitle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.ImproveTitle(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: suggestion})
}

func (h *SuggestionHandler) ImproveDescription(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.ImproveDescription(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: suggestion})
}
