package handler

import (
	"net/http"

	"github.com/Wozus/Fc-tournament/internal/api/respond"
	"github.com/Wozus/Fc-tournament/internal/apperr"
)

type noLogoResponse struct {
	URL *string `json:"url"`
}

// GetClubLogo resolves a club name to a logo URL.
// @Summary Club logo
// @Description Looks the club up in the local table, the 30-day cache and TheSportsDB, in that order.
// @Tags clubs
// @Produce json
// @Param name query string true "Club name"
// @Success 200 {object} clublogo.Logo
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} noLogoResponse
// @Router /api/club-logo [get]
func (h *Handler) GetClubLogo(w http.ResponseWriter, r *http.Request) {
	logo, err := h.logos.Resolve(r.Context(), r.URL.Query().Get("name"))
	if apperr.Is(err, apperr.NotFound) {
		respond.WriteJSONObject(w, http.StatusNotFound, noLogoResponse{})
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, logo)
}
