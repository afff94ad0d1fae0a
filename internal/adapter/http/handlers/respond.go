package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/adapter/http/validation"
	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/pkg/apierrors"
)

// respondError maps a service error onto a localized JSON error response.
// Unrecognized errors are logged and surfaced as 500s.
func respondError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	var status int
	var msgKey string

	switch {
	case errors.Is(err, validation.ErrInvalidPayload):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidPayload
	case errors.Is(err, domain.ErrCategoryNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgCategoryNotFound
	case errors.Is(err, domain.ErrTimeWindowNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTimeWindowNotFound
	case errors.Is(err, domain.ErrDayTemplateNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgDayTemplateNotFound
	case errors.Is(err, domain.ErrTaskNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrDailyPlanNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgPlanNotFound
	case errors.Is(err, domain.ErrForbidden):
		status, msgKey = http.StatusForbidden, apierrors.MsgForbidden
	case errors.Is(err, domain.ErrNameConflict):
		status, msgKey = http.StatusConflict, apierrors.MsgNameConflict
	case errors.Is(err, domain.ErrInvalidTimeRange):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidTimeRange
	case errors.Is(err, domain.ErrCategoryMismatch):
		status, msgKey = http.StatusBadRequest, apierrors.MsgCategoryMismatch
	case errors.Is(err, domain.ErrDailyPlanExists):
		status, msgKey = http.StatusConflict, apierrors.MsgPlanExists
	case errors.Is(err, domain.ErrAlreadyReviewed):
		status, msgKey = http.StatusConflict, apierrors.MsgAlreadyReviewed
	case errors.Is(err, domain.ErrDataMissing):
		status, msgKey = http.StatusBadRequest, apierrors.MsgDataMissing
	case errors.Is(err, domain.ErrGenerationFailed):
		status, msgKey = http.StatusBadGateway, apierrors.MsgGenerationFailed
	default:
		zap.L().Error("unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
		status, msgKey = http.StatusInternalServerError, apierrors.MsgInternalError
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
	)
}

// parseIDParam reads the :id path parameter as an object id, answering a
// 400 itself when the value is malformed.
func parseIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return primitive.NilObjectID, false
	}
	return id, true
}
