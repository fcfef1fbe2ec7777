package http

import (
	"errors"
	"fmt"
	"net/http"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps the error
// taxonomy onto status codes and renders {"error": "..."}. Schedule conflicts
// also carry the competing order. Only unexpected errors are logged above
// debug, and their details never reach the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		} else {
			log.Debug().Err(err).Int("status", code).Str("path", c.Path()).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var conflict *order.ScheduleConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, errorResponse{
			Error: err.Error(),
			ConflictingOrder: &conflictingOrderResponse{
				ID:            conflict.OrderID.String(),
				CustomerName:  conflict.CustomerName,
				ScheduledDate: conflict.ScheduledDate.String(),
				EstimatedDays: conflict.EstimatedDays,
			},
		}
	}

	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "authentication required"}
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, errorResponse{Error: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error()}
	case errs.IsValidation(err):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
