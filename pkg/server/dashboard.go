package server

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"xmrtdash/pkg/log"
	"xmrtdash/pkg/models"
	"xmrtdash/pkg/provider"
)

type dashboardData struct {
	Title            string
	SystemStatus     models.SystemStatus
	Agents           []models.AgentSummary
	TreasuryData     models.TreasurySnapshot
	RecentActivities []models.ActivityRecord
}

// dashboardPage composes status, agents, treasury and recent activity into
// the main overview page. Any fault falls back to the generic error page.
func (d *Dashboard) dashboardPage(ctx echo.Context) error {
	snapshot, err := d.aggregator.Snapshot(ctx.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Dashboard error")
		return d.renderErrorPage(ctx, http.StatusInternalServerError, err.Error())
	}

	agentsResult, err := d.listAgents(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Dashboard error")
		return d.renderErrorPage(ctx, http.StatusInternalServerError, err.Error())
	}
	agents, _ := agentsResult.payload.([]models.AgentSummary)

	data := dashboardData{
		Title:            "XMRT Dashboard",
		SystemStatus:     snapshot,
		Agents:           agents,
		TreasuryData:     provider.Treasury(d.clock),
		RecentActivities: provider.Activities(d.clock),
	}

	tmplPath := filepath.Join(d.webDir, "dashboard.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Error().Err(err).Str("template_path", tmplPath).Msg("Failed to load template")
		return d.renderErrorPage(ctx, http.StatusInternalServerError, err.Error())
	}

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(http.StatusOK)
	return tmpl.Execute(ctx.Response().Writer, data)
}

// renderErrorPage writes the generic error view. When even the template is
// unavailable it degrades to plain text so the status code still reaches the
// client.
func (d *Dashboard) renderErrorPage(ctx echo.Context, code int, message string) error {
	tmplPath := filepath.Join(d.webDir, "error.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Error().Err(err).Str("template_path", tmplPath).Msg("Failed to load error template")
		return ctx.String(code, message)
	}

	data := struct {
		Title string
		Error string
	}{
		Title: "XMRT Dashboard - Error",
		Error: message,
	}

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(code)
	return tmpl.Execute(ctx.Response().Writer, data)
}
