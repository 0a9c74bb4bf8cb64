package server

import (
	"github.com/labstack/echo/v4"

	"xmrtdash/pkg/provider"
)

func (d *Dashboard) treasury(ctx echo.Context) (apiResult, error) {
	return ok(provider.Treasury(d.clock)), nil
}

func (d *Dashboard) workflows(ctx echo.Context) (apiResult, error) {
	return ok(provider.Workflows(d.clock)), nil
}
