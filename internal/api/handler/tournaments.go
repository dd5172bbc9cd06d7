package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Wozus/Fc-tournament/internal/api/respond"
	"github.com/Wozus/Fc-tournament/internal/league"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/session"
)

type tournamentResponse struct {
	Tournament models.Tournament `json:"tournament"`
}

// ListTournaments returns a page of tournaments.
// @Summary List tournaments
// @Description Newest first. q matches tournament names and owner usernames case-insensitively.
// @Tags tournaments
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number, from 1"
// @Param pageSize query int false "Page size, 1 to 50 (default 12)"
// @Success 200 {object} league.Page
// @Router /api/tournaments [get]
func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.league.ListTournaments(r.Context(), league.ListQuery{
		Q:        q.Get("q"),
		Page:     positiveInt(q.Get("page")),
		PageSize: positiveInt(q.Get("pageSize")),
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, page)
}

// CreateTournament creates a tournament owned by the caller.
// @Summary Create tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param body body league.TournamentInput true "Tournament"
// @Success 201 {object} tournamentResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /api/tournaments [post]
func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	user, err := session.FromContext(r.Context()).Require()
	if err != nil {
		h.fail(w, err)
		return
	}
	var in league.TournamentInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, err)
		return
	}
	t, err := h.league.CreateTournament(r.Context(), user, in)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, tournamentResponse{Tournament: t})
}

// GetTournament returns a tournament with its roster.
// @Summary Get tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} tournamentResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id} [get]
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	t, err := h.league.Tournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, tournamentResponse{Tournament: t})
}

// DeleteTournament deletes a tournament and its matches.
// @Summary Delete tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} okResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id} [delete]
func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	user, err := session.FromContext(r.Context()).Require()
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := h.league.DeleteTournament(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, okResponse{OK: true})
}

// GetLeaderboard returns per-player and overall totals.
// @Summary Tournament leaderboard
// @Description Recomputed from the match list on every request. Supports If-None-Match.
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} scoring.Leaderboard
// @Success 304
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	lb, err := h.league.Leaderboard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONRevalidate(w, r, lb)
}

// positiveInt parses a query value, returning 0 for anything that is not a
// positive integer.
func positiveInt(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
