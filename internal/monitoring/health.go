package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker reports the bot's liveness and the outcome of the most
// recent conversion cycle.
type HealthChecker struct {
	mu          sync.RWMutex
	lastRun     time.Time
	lastOutcome string
	errors      []string
}

type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	LastRun     time.Time `json:"last_run"`
	LastOutcome string    `json:"last_outcome"`
	Uptime      string    `json:"uptime"`
	Errors      []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// SetLastRun records the completion of a cycle.
func (h *HealthChecker) SetLastRun(at time.Time, outcome string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastRun = at
	h.lastOutcome = outcome
}

// AddError appends to the error tail shown by the health endpoint.
func (h *HealthChecker) AddError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
	if len(h.errors) > 10 {
		h.errors = h.errors[len(h.errors)-10:]
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	code := http.StatusOK
	if !h.lastRun.IsZero() && time.Since(h.lastRun) > 2*time.Hour {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	if h.lastOutcome == "error" {
		status = "unhealthy"
		code = http.StatusInternalServerError
	}

	health := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		LastRun:     h.lastRun,
		LastOutcome: h.lastOutcome,
		Uptime:      time.Since(startTime).String(),
		Errors:      h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(health)
}
