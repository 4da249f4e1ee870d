package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// HealthCheck is a named dependency check, e.g. the database pool's Ping.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	checks  []HealthCheck
	version string
	now     func() time.Time
}

func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

// HealthResponse is the body of every health endpoint. Version and
// Components are only filled by /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers 200 as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready answers 503 when any dependency check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.runChecks(r.Context())
	code, status := verdict(healthy)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health is Ready plus per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.runChecks(r.Context())
	code, status := verdict(healthy)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func verdict(healthy bool) (int, string) {
	if healthy {
		return http.StatusOK, statusOK
	}
	return http.StatusServiceUnavailable, statusDown
}

// runChecks pings every dependency concurrently under a shared deadline.
func (h *HealthHandler) runChecks(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		healthy    = true
		components = make(map[string]CompStatus, len(h.checks))
	)

	var g errgroup.Group
	for _, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Ping(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				healthy = false
				components[c.Name] = CompStatus{Status: statusDown}
				return nil
			}
			components[c.Name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	return components, healthy
}
