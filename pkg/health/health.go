// Package health provides health check functionality for the demo
// process. It exposes HTTP liveness and readiness probes so kiosk and
// exhibition deployments can detect a stalled tick loop or a tripped
// gesture input breaker.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// HealthCheck defines the interface for individual health checks.
// Each component can implement this interface to provide its health status.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health status of the demo.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth represents the health status of an individual component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker manages and executes health checks for the demo.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a new health check with the health checker.
// If a check with the same name already exists, it will be replaced.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a health check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth executes all registered health checks and returns the aggregated status.
// The overall status is "healthy" only if all individual checks pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: "healthy",
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: "healthy",
			}
		}
	}

	return status
}

// LivenessHandler provides a simple liveness probe endpoint.
// It returns 200 OK whenever the process is able to handle requests.
func (hc *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]string{"status": "alive"}
	json.NewEncoder(w).Encode(response)
}

// ReadinessHandler provides a readiness probe endpoint that executes all health checks.
// It returns 200 OK when every check passes, or 503 Service Unavailable otherwise.
func (hc *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := hc.CheckHealth(ctx)

	w.Header().Set("Content-Type", "application/json")

	if health.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(health)
}

// TickLoopHealthCheck verifies that the scene tick counter keeps
// advancing between probes.
type TickLoopHealthCheck struct {
	currentTick func() uint64
	mu          sync.Mutex
	lastTick    uint64
	probed      bool
}

// NewTickLoopHealthCheck creates a health check over the tick counter.
func NewTickLoopHealthCheck(currentTick func() uint64) *TickLoopHealthCheck {
	return &TickLoopHealthCheck{
		currentTick: currentTick,
	}
}

// Name returns the name of this health check.
func (t *TickLoopHealthCheck) Name() string {
	return "tick_loop"
}

// Check fails when the tick counter has not advanced since the last
// probe. The first probe only records a baseline.
func (t *TickLoopHealthCheck) Check(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tick := t.currentTick()
	if t.probed && tick == t.lastTick {
		return fmt.Errorf("tick loop stalled at tick %d", tick)
	}
	t.lastTick = tick
	t.probed = true
	return nil
}

// GestureInputHealthCheck reports the gesture input circuit breaker
// state. An open circuit means the input source is down and the demo
// is degraded to the untracked pause state.
type GestureInputHealthCheck struct {
	breakerState func() gobreaker.State
}

// NewGestureInputHealthCheck creates a health check over the input breaker.
func NewGestureInputHealthCheck(breakerState func() gobreaker.State) *GestureInputHealthCheck {
	return &GestureInputHealthCheck{
		breakerState: breakerState,
	}
}

// Name returns the name of this health check.
func (g *GestureInputHealthCheck) Name() string {
	return "gesture_input"
}

// Check verifies that the input circuit breaker is not open.
func (g *GestureInputHealthCheck) Check(ctx context.Context) error {
	if state := g.breakerState(); state == gobreaker.StateOpen {
		return fmt.Errorf("gesture input circuit breaker is open")
	}
	return nil
}
