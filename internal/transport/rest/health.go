package rest

import (
	"context"
	"net/http"
	"time"
)

// corePinger defines the minimal interface for core service health checks.
type corePinger interface {
	Ready() bool
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	core    corePinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(core corePinger, version string) *HealthHandler {
	return &HealthHandler{core: core, version: version}
}

// HealthResponse is the JSON response for /healthz and /readyz.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the core service with latency
// measurement: 200 if reachable, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if !h.core.Ready() {
		components["core"] = CompStatus{Status: "connecting"}
		overallStatus = "down"
	} else {
		start := time.Now()
		err := h.core.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["core"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["core"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
