package handler

import (
	"net/http"

	"github.com/Wozus/Fc-tournament/internal/api/respond"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/session"
)

type userResponse struct {
	User *models.User `json:"user"`
}

// Register creates an account and logs it in.
// @Summary Register
// @Description Creates an account with a normalized username and opens a 30-day session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body session.RegisterInput true "Credentials"
// @Success 201 {object} userResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in session.RegisterInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, err)
		return
	}
	user, token, err := h.sessions.Register(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.sessions.SetCookie(w, token)
	respond.WriteJSONObject(w, http.StatusCreated, userResponse{User: &user})
}

// Login checks credentials and opens a session.
// @Summary Log in
// @Description Unknown usernames and wrong passwords produce the same 401.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body session.LoginInput true "Credentials"
// @Success 200 {object} userResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in session.LoginInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, err)
		return
	}
	user, token, err := h.sessions.Login(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.sessions.SetCookie(w, token)
	respond.WriteJSONObject(w, http.StatusOK, userResponse{User: &user})
}

// Logout ends the current session. It always clears the cookie and succeeds,
// even without a session or when the session row cannot be deleted.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} okResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), session.TokenFromRequest(r)); err != nil {
		h.logger.Warn("Session delete failed on logout", "error", err)
	}
	h.sessions.ClearCookie(w)
	respond.WriteJSONObject(w, http.StatusOK, okResponse{OK: true})
}

// Me returns the logged-in user.
// @Summary Current user
// @Description Returns 401 with a null user when there is no valid session.
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} userResponse
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	st := session.FromContext(r.Context())
	if st.Err != nil {
		h.fail(w, st.Err)
		return
	}
	if st.User == nil {
		respond.WriteJSONObject(w, http.StatusUnauthorized, userResponse{})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, userResponse{User: st.User})
}
