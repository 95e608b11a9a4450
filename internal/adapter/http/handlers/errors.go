package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errWrongRole      = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
)

var kindStatus = map[errs.Kind]int{
	errs.KindInvalid:      http.StatusBadRequest,
	errs.KindForbidden:    http.StatusForbidden,
	errs.KindNotFound:     http.StatusNotFound,
	errs.KindConflict:     http.StatusConflict,
	errs.KindInvalidState: http.StatusConflict,
	errs.KindVerification: http.StatusUnprocessableEntity,
	errs.KindRateLimited:  http.StatusTooManyRequests,
	errs.KindUnavailable:  http.StatusServiceUnavailable,
	errs.KindTransport:    http.StatusServiceUnavailable,
}

// mapError turns a usecase error into the response envelope. The message of
// a typed error is meant for users; anything untyped becomes INTERNAL_ERROR.
func mapError(err error) *pkg.AppError {
	var e *errs.Error
	if errors.As(err, &e) {
		if status, ok := kindStatus[e.Kind]; ok {
			return pkg.NewDomainError(strings.ToUpper(string(e.Kind)), e.Message, err, status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	fields := []zap.Field{zap.String("path", c.FullPath()), zap.Int("status", appErr.HTTPStatus), zap.Error(err)}
	switch {
	case appErr.HTTPStatus >= http.StatusInternalServerError:
		logger.Error("["+area+"][handler] request failed", fields...)
	case appErr.HTTPStatus == http.StatusUnprocessableEntity:
		logger.Warn("["+area+"][handler] verification failed", fields...)
	default:
		logger.Debug("["+area+"][handler] request rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireRole rejects callers whose token carries a different role. Tokens
// without a role claim are let through; the usecases still check ownership.
func requireRole(c *gin.Context, role string) bool {
	got := middleware.Role(c)
	if got != "" && !strings.EqualFold(got, role) {
		writeAppError(c, errWrongRole)
		return false
	}
	return true
}
