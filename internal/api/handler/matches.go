package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Wozus/Fc-tournament/internal/api/respond"
	"github.com/Wozus/Fc-tournament/internal/league"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/session"
)

type matchResponse struct {
	Match models.Match `json:"match"`
}

type matchesResponse struct {
	Matches []models.Match `json:"matches"`
}

type nextResponse struct {
	Next int `json:"next"`
}

// ListMatches returns a tournament's matches.
// @Summary List matches
// @Tags matches
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} matchesResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.league.Matches(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matchesResponse{Matches: matches})
}

// NextMatchNo returns the number the next auto-numbered match gets.
// @Summary Next match number
// @Tags matches
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} nextResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches/next [get]
func (h *Handler) NextMatchNo(w http.ResponseWriter, r *http.Request) {
	next, err := h.league.NextMatchNo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, nextResponse{Next: next})
}

// GetMatch returns one match.
// @Summary Get match
// @Tags matches
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Success 200 {object} matchResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches/{matchId} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	m, err := h.league.Match(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "matchId"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matchResponse{Match: m})
}

// CreateMatch records a match.
// @Summary Create match
// @Description A missing or non-positive number takes the next free one.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param body body league.MatchInput true "Match"
// @Success 201 {object} matchResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	user, in, ok := h.matchWrite(w, r)
	if !ok {
		return
	}
	m, err := h.league.CreateMatch(r.Context(), user, chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, matchResponse{Match: m})
}

// UpdateMatch replaces a match.
// @Summary Update match
// @Description Revalidated like a new match. A missing number keeps the current one.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Param body body league.MatchInput true "Match"
// @Success 200 {object} matchResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches/{matchId} [put]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	user, in, ok := h.matchWrite(w, r)
	if !ok {
		return
	}
	m, err := h.league.UpdateMatch(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "matchId"), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matchResponse{Match: m})
}

// DeleteMatch removes a match.
// @Summary Delete match
// @Tags matches
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Success 200 {object} okResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/tournaments/{id}/matches/{matchId} [delete]
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	user, err := session.FromContext(r.Context()).Require()
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := h.league.DeleteMatch(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "matchId")); err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, okResponse{OK: true})
}

// matchWrite authenticates the caller and decodes a match payload.
func (h *Handler) matchWrite(w http.ResponseWriter, r *http.Request) (models.User, league.MatchInput, bool) {
	var in league.MatchInput
	user, err := session.FromContext(r.Context()).Require()
	if err == nil {
		err = decode(w, r, &in)
	}
	if err != nil {
		h.fail(w, err)
		return models.User{}, in, false
	}
	return user, in, true
}
