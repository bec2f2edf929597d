package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking store health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	users HealthChecker
	books HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for stores that are not yet initialized.
func NewHealthHandler(users, books HealthChecker) *HealthHandler {
	return &HealthHandler{
		users: users,
		books: books,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
// No dependency checks - this is for Kubernetes liveness probes.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}
	writeJSON(w, http.StatusOK, response)
}

// Readyz is a readiness probe endpoint.
// It checks the backing document stores and returns 200 only if all
// are reachable. For Kubernetes readiness probes.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if h.users != nil {
		if err := h.users.Ping(ctx); err != nil {
			checks["users_store"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["users_store"] = "ok"
		}
	} else {
		checks["users_store"] = "not configured"
	}

	if h.books != nil {
		if err := h.books.Ping(ctx); err != nil {
			checks["books_store"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["books_store"] = "ok"
		}
	} else {
		checks["books_store"] = "not configured"
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status: status,
		Checks: checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
