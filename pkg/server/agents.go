package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"xmrtdash/pkg/log"
	"xmrtdash/pkg/models"
	"xmrtdash/pkg/orchestrator"
	"xmrtdash/pkg/provider"
)

// listAgents serves the live roster when the orchestrator answers and falls
// back to fixture data on any upstream fault. Upstream trouble is logged,
// never surfaced: the dashboard stays usable while the orchestrator is down.
func (d *Dashboard) listAgents(ctx echo.Context) (apiResult, error) {
	if d.orch != nil {
		agents, err := d.orch.ListAgents(ctx.Request().Context())
		if err == nil {
			return ok(agents), nil
		}
		log.Warn().Err(err).Msg("Agent roster unavailable, serving fixture data")
	}
	return ok(provider.Agents(d.clock)), nil
}

// createAgent validates the request, generates the agent identifier and, if
// an orchestrator is configured, forwards the creation upstream. An explicit
// upstream rejection is a 400; an unreachable orchestrator is not a failure.
func (d *Dashboard) createAgent(ctx echo.Context) (apiResult, error) {
	var req models.CreateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return apiResult{}, badRequest("Invalid JSON body")
	}

	if req.Name == nil {
		return apiResult{}, badRequest("Missing required field: name")
	}
	if req.Type == nil {
		return apiResult{}, badRequest("Missing required field: type")
	}
	if req.Config == nil {
		return apiResult{}, badRequest("Missing required field: config")
	}

	if d.orch != nil {
		if err := d.orch.CreateAgent(ctx.Request().Context(), *req.Name, *req.Type, req.Config); err != nil {
			var upstream *orchestrator.UpstreamError
			if errors.As(err, &upstream) && upstream.Rejected() {
				return apiResult{code: http.StatusBadRequest, payload: models.CreateAgentResponse{
					Success: false,
					Error:   upstream.Error(),
				}}, nil
			}
			log.Warn().Err(err).Msg("Agent creation not forwarded to orchestrator")
		}
	}

	agentID := provider.AgentID(d.clock, *req.Type)
	return created(models.CreateAgentResponse{
		Success: true,
		AgentID: agentID,
		Message: fmt.Sprintf("Agent '%s' created successfully", *req.Name),
	}), nil
}
