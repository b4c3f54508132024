package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// Capabilities reports which optional collaborators are wired. A missing
// generator is not an outage: every operation has a deterministic fallback.
type Capabilities struct {
	Generation bool
	Extraction bool
}

// HealthHandler serves the banner and health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	caps    Capabilities
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, caps Capabilities) *HealthHandler {
	return &HealthHandler{db: db, version: version, caps: caps}
}

// HealthResponse is the JSON response for /health and /ready.
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

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Spanish Learning API",
		"version": h.version,
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the database with its ping latency, plus whether the
// generation and extraction collaborators are configured.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := map[string]CompStatus{
		"generation": capabilityStatus(h.caps.Generation, "fallback"),
		"extraction": capabilityStatus(h.caps.Extraction, "disabled"),
	}

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	status, overall := http.StatusOK, "ok"
	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		status, overall = http.StatusServiceUnavailable, "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func capabilityStatus(enabled bool, otherwise string) CompStatus {
	if enabled {
		return CompStatus{Status: "ok"}
	}
	return CompStatus{Status: otherwise}
}
