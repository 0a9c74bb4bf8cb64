package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"xmrtdash/pkg/log"
	"xmrtdash/pkg/orchestrator"
	"xmrtdash/pkg/provider"
	"xmrtdash/pkg/status"
)

const shutdownTimeout = 10 * time.Second

// Dashboard is the HTTP surface of the admin dashboard: JSON API routes
// plus the rendered overview page.
type Dashboard struct {
	webDir     string
	version    string
	echo       *echo.Echo
	aggregator *status.Aggregator
	orch       *orchestrator.Client
	clock      provider.Clock
}

// New creates a Dashboard server. orch may be nil when no orchestrator is
// configured; agent routes then serve fixture data only.
func New(webDir, version string, aggregator *status.Aggregator, orch *orchestrator.Client, clock provider.Clock) *Dashboard {
	if clock == nil {
		clock = provider.SystemClock{}
	}
	return &Dashboard{
		webDir:     webDir,
		version:    version,
		echo:       echo.New(),
		aggregator: aggregator,
		orch:       orch,
		clock:      clock,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (d *Dashboard) Start(addr string) error {
	d.setupRoutes()

	go func() {
		log.Info().
			Str("addr", addr).
			Str("web_dir", d.webDir).
			Str("version", d.version).
			Msg("Starting XMRT dashboard")

		if err := d.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return d.Shutdown()
}

// Shutdown stops the server with a bounded grace period.
func (d *Dashboard) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := d.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (d *Dashboard) setupRoutes() {
	d.echo.HideBanner = true
	d.echo.HidePort = true

	d.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	d.echo.Use(middleware.Recover())
	// The dashboard is consumed cross-origin by the admin frontend
	d.echo.Use(middleware.CORS())

	d.echo.HTTPErrorHandler = d.errorHandler

	d.echo.GET("/", d.dashboardPage)
	d.echo.GET("/api/system/status", d.apiBoundary(d.systemStatus))
	d.echo.GET("/api/agents", d.apiBoundary(d.listAgents))
	d.echo.POST("/api/agents", d.apiBoundary(d.createAgent))
	d.echo.GET("/api/treasury", d.apiBoundary(d.treasury))
	d.echo.GET("/api/workflows", d.apiBoundary(d.workflows))
	d.echo.GET("/api/logs", d.apiBoundary(d.systemLogs))
}

// errorHandler renders JSON for API paths and the generic error page for
// everything else, covering unknown routes and faults that escape handlers.
func (d *Dashboard) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch {
		case code == http.StatusNotFound:
			message = "Page not found"
		case code < http.StatusInternalServerError:
			if msg, msgOK := httpErr.Message.(string); msgOK {
				message = msg
			}
		}
	}

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.Request().URL.Path).Msg("Request failed")
	}

	if strings.HasPrefix(ctx.Request().URL.Path, "/api/") {
		if jsonErr := ctx.JSON(code, map[string]string{"error": message}); jsonErr != nil {
			log.Error().Err(jsonErr).Msg("Failed to write error response")
		}
		return
	}

	if renderErr := d.renderErrorPage(ctx, code, message); renderErr != nil {
		log.Error().Err(renderErr).Msg("Failed to render error page")
	}
}
