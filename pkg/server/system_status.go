package server

import (
	"github.com/labstack/echo/v4"
)

func (d *Dashboard) systemStatus(ctx echo.Context) (apiResult, error) {
	snapshot, err := d.aggregator.Snapshot(ctx.Request().Context())
	if err != nil {
		return apiResult{}, err
	}
	return ok(snapshot), nil
}
