package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"lot-market/internal/marketerrors"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrMessageNotFound):
		return http.StatusNotFound, "message not found"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for lot"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrEmailTaken):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid email or password"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrQuotaExceeded):
		return http.StatusForbidden, "active lot quota exceeded"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, marketerrors.ErrStorage):
		return http.StatusBadGateway, "object storage failure"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps, sends and logs a service error in one step.
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Error(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
