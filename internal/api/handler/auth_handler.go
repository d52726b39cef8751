package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"campus_portal/internal/api/middleware"
	"campus_portal/internal/app/form"
	"campus_portal/internal/app/session"
	"campus_portal/internal/common"
	"campus_portal/internal/common/security"
	"campus_portal/internal/platform/campus"
	"campus_portal/internal/platform/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionCookieName is jwtauth.Verifier's default cookie name. Browsers carry
// the session on this cookie; non-browser clients can instead replay the
// `token` value from the login response as a bearer header, which the
// verifier accepts equally.
const sessionCookieName = "jwt"

type AuthHandler struct {
	sessions *session.Manager
	authAPI  *campus.AuthAPI
}

func NewAuthHandler(sessions *session.Manager, authAPI *campus.AuthAPI) *AuthHandler {
	return &AuthHandler{sessions: sessions, authAPI: authAPI}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Post("/refresh", h.refresh)
	r.Get("/me", h.me)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var f form.LoginForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields := form.Validate(f); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	// Re-login reuses the caller's existing store so a rejected attempt
	// cannot clobber a session that is already authenticated.
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		store = h.sessions.NewSession()
	}

	if !store.Login(r.Context(), f.Email, f.Password) {
		common.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := security.GenerateSessionToken(store.ID())
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	common.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"user":  store.User(),
		"token": token,
		"state": store.State(),
	})
}

// logout clears local session state no matter what the campus API says; the
// remote call is best-effort only.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if store, ok := middleware.GetStoreFromContext(r.Context()); ok {
		if token := store.AccessToken(); token != "" {
			if err := h.authAPI.Logout(r.Context(), token); err != nil {
				logging.L.Warn("Remote logout failed, clearing local session anyway", zap.Error(err))
			}
		}
		store.Logout(r.Context())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondWithData(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// refresh exchanges the stored refresh token for a new token pair. A rejected
// refresh token means the session is dead upstream and is torn down; transport
// failures leave it alone so the client can retry.
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok || store.RefreshToken() == "" {
		common.RespondWithError(w, http.StatusUnauthorized, "No session to refresh")
		return
	}

	pair, err := h.authAPI.Refresh(r.Context(), store.RefreshToken())
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			store.Logout(r.Context())
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	store.SetTokens(r.Context(), pair.AccessToken, pair.RefreshToken)
	common.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"state": store.State(),
	})
}

// me confirms the session against the campus API and folds the result back
// into the store, which stays the single authority on authentication state.
func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok || !store.IsAuthenticated() {
		common.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := store.ConfirmProfile(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"state": store.State(),
	})
}
