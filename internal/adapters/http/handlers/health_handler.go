package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Probe statuses.
const (
	ProbeAlive    = "ok"
	ProbeReady    = "ready"
	ProbeNotReady = "not_ready"
)

// HealthResponse is the body of both probes. Checks and Components are
// only filled for readiness.
type HealthResponse struct {
	Status     string              `json:"status"`
	Checks     map[string]string   `json:"checks,omitempty"`
	Components []ComponentResponse `json:"components,omitempty"`
}

// ComponentResponse details one readiness check.
type ComponentResponse struct {
	Name      string  `json:"name"`
	Healthy   bool    `json:"healthy"`
	Error     string  `json:"error,omitempty"`
	LatencyMS float64 `json:"latencyMs"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never consults the registry.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, HealthResponse{Status: ProbeAlive})
}

// Readiness handles GET /health/ready: 200 when every component passes,
// 503 otherwise. The body is a success envelope in both cases.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.CheckAll(r.Context())

	resp := HealthResponse{
		Status:     ProbeReady,
		Checks:     report.Summary(),
		Components: make([]ComponentResponse, len(report.Components)),
	}
	for i, c := range report.Components {
		resp.Components[i] = ComponentResponse{
			Name:      c.Name,
			Healthy:   c.Err == nil,
			LatencyMS: float64(c.Latency.Microseconds()) / 1000,
		}
		if c.Err != nil {
			resp.Components[i].Error = c.Err.Error()
		}
	}

	status := http.StatusOK
	if !report.Healthy() {
		resp.Status, status = ProbeNotReady, http.StatusServiceUnavailable
	}
	dto.WriteJSON(w, r, status, resp)
}
