package server

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"xmrtdash/pkg/provider"
)

// systemLogs serves the synthetic log feed. limit defaults to 100 and is
// capped by the provider's 20-entry ceiling; level defaults to INFO.
func (d *Dashboard) systemLogs(ctx echo.Context) (apiResult, error) {
	limit := provider.DefaultLogLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiResult{}, badRequest("Invalid limit parameter")
		}
		limit = parsed
	}

	level := ctx.QueryParam("level")
	if level == "" {
		level = provider.DefaultLogLevel
	}

	return ok(provider.Logs(d.clock, limit, level)), nil
}
