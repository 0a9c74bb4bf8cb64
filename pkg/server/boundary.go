package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"xmrtdash/pkg/log"
)

// apiResult is what an API handler produces: a payload and the status code
// to serialize it with.
type apiResult struct {
	code    int
	payload any
}

type apiFunc func(ctx echo.Context) (apiResult, error)

// apiError carries a client-visible fault with its HTTP status. Handlers
// return it for validation and logical failures; anything else is treated as
// an internal fault.
type apiError struct {
	code    int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func badRequest(message string) error {
	return &apiError{code: http.StatusBadRequest, message: message}
}

// apiBoundary is the single catch-all isolation point for API routes. A
// fault in one endpoint's data gathering becomes a structured JSON error for
// that request and nothing more.
func (d *Dashboard) apiBoundary(fn apiFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		result, err := fn(ctx)
		if err != nil {
			var apiErr *apiError
			if errors.As(err, &apiErr) {
				return ctx.JSON(apiErr.code, map[string]string{"error": apiErr.message})
			}

			log.Error().Err(err).Str("path", ctx.Request().URL.Path).Msg("API request failed")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		return ctx.JSON(result.code, result.payload)
	}
}

func ok(payload any) apiResult {
	return apiResult{code: http.StatusOK, payload: payload}
}

func created(payload any) apiResult {
	return apiResult{code: http.StatusCreated, payload: payload}
}
