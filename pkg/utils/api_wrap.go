package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestling/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses:
// guardianship failures are 403, missing records 404, validation 400,
// credential problems 401, everything else 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrChildNotOwned),
		errors.Is(err, ErrNotResourceOwner):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrInvalidRefreshToken):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrRecordNotFound),
		errors.Is(err, ErrChildNotFound),
		errors.Is(err, ErrParentNotFound),
		errors.Is(err, ErrMedicineNotFound),
		errors.Is(err, ErrMedicationNotFound),
		errors.Is(err, ErrVaccineNotFound),
		errors.Is(err, ErrSymptomNotFound),
		errors.Is(err, ErrMilkTypeNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCategoryItemNotFound),
		errors.Is(err, ErrArticleNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidLimit),
		errors.Is(err, ErrInvalidOffset),
		errors.Is(err, ErrProtectedField),
		errors.Is(err, ErrInvalidSlotStatus),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrPhoneAlreadyExists),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrDefaultCatalogItem),
		errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, err.Error())

	default:
		logger.GetLogger().Error("internal error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
