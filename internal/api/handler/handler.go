// Package handler provides HTTP handlers for all API endpoints. Handlers
// decode and shape payloads; the session, league and clublogo packages do
// the work.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Wozus/Fc-tournament/internal/api/respond"
	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/clublogo"
	"github.com/Wozus/Fc-tournament/internal/league"
	"github.com/Wozus/Fc-tournament/internal/session"
)

const maxBodyBytes = 1 << 20

// HealthChecker verifies the database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	sessions *session.Manager
	league   *league.Service
	logos    *clublogo.Resolver
	db       HealthChecker
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(sessions *session.Manager, svc *league.Service, logos *clublogo.Resolver, db HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		league:   svc,
		logos:    logos,
		db:       db,
		logger:   logger,
	}
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "FC Tournament API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	respond.Error(w, h.logger, err)
}

// decode reads a JSON body into v. Malformed bodies are Validation errors.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.Validationf("request body too large")
		}
		return apperr.Validationf("invalid JSON")
	}
	return nil
}
