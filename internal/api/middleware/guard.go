package middleware

import (
	"context"
	"net/http"

	"campus_portal/internal/app/session"
	"campus_portal/internal/common"
	"campus_portal/internal/common/security"
)

type contextKey string

const SessionCtxKey contextKey = "sessionStore"

const (
	loginPath   = "/login"
	defaultPath = "/"
)

// SessionLoader resolves the sid claim of the portal session token (put in
// context by jwtauth.Verifier) into a rehydrated session store. Requests
// without a valid token pass through storeless; the guard decides what that
// means per route.
func SessionLoader(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := security.ClaimsFromRequest(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			sid, err := security.GetSessionIDFromClaims(claims)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			store, err := manager.Load(r.Context(), sid)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), SessionCtxKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the session store, in this order: a store
// still loading yields a retryable 503 (never a premature deny), a missing or
// unauthenticated store redirects to login, a wrong role redirects to the
// default page. Only then does protected content render.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, ok := GetStoreFromContext(r.Context())

			if ok && store.IsLoading() {
				w.Header().Set("Retry-After", "1")
				common.RespondWithError(w, http.StatusServiceUnavailable, common.ErrSessionRehydrating.Error())
				return
			}

			if !ok || !store.IsAuthenticated() {
				respondRedirect(w, http.StatusUnauthorized, loginPath, "Authentication required")
				return
			}

			user := store.User()
			if user == nil {
				respondRedirect(w, http.StatusUnauthorized, loginPath, "Authentication required")
				return
			}
			if _, member := allowedSet[user.Role]; !member {
				respondRedirect(w, http.StatusForbidden, defaultPath, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRedirect(w http.ResponseWriter, code int, redirect, message string) {
	common.RespondWithJSON(w, code, common.Envelope{
		Success: false,
		Message: message,
		Data:    map[string]string{"redirect": redirect},
	})
}

// GetStoreFromContext returns the session store loaded for this request.
func GetStoreFromContext(ctx context.Context) (*session.Store, bool) {
	store, ok := ctx.Value(SessionCtxKey).(*session.Store)
	return store, ok
}

// TokenFromContext is a convenience for handlers issuing campus API calls.
func TokenFromContext(ctx context.Context) string {
	if store, ok := GetStoreFromContext(ctx); ok {
		return store.AccessToken()
	}
	return ""
}
