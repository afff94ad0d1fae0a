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

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateCategoryInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(*category))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(*category))
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateCategoryInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(*category))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
