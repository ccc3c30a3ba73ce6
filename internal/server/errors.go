package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/julianstephens/infoboard/internal/logger"
)

// APIError is returned by handlers and rendered as JSON by errorHandler.
// Message is safe to show to clients; Internal is only logged.
type APIError struct {
	Code     int    `json:"-"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *APIError) Unwrap() error { return e.Internal }

func badRequest(format string, args ...any) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Type:    "bad_request",
		Message: fmt.Sprintf(format, args...),
	}
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	typ := "internal_error"
	message := "an unexpected error occurred"

	var apiErr *APIError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		code, typ, message = apiErr.Code, apiErr.Type, apiErr.Message
		if apiErr.Internal != nil {
			logger.Error("internal error", "type", apiErr.Type, "path", c.Request().URL.Path, "error", apiErr.Internal)
		}
	case errors.As(err, &echoErr):
		code = echoErr.Code
		typ = "http_error"
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	default:
		logger.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
	}

	if err := c.JSON(code, map[string]string{"error": typ, "message": message}); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
