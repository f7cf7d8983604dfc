package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from this call.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now(), now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health reports per-component status with ping latency, the build version
// and process uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	now := h.now()

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     now.Sub(h.started).Round(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Timestamp:  now,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
