package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus_portal/internal/api/middleware"
	"campus_portal/internal/app/session"
	"campus_portal/internal/common"
	"campus_portal/internal/common/security"
	"campus_portal/internal/domain/model"
	"campus_portal/internal/domain/repository"
	"campus_portal/internal/platform/campus"
	"campus_portal/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authFixture backs the auth handler with a scripted remote API.
type authFixture struct {
	router  chi.Router
	manager *session.Manager
	repo    *repository.InMemorySessionRepository
}

func newAuthFixture(t *testing.T, remote http.HandlerFunc) *authFixture {
	t.Helper()

	config.AppConfig = &config.Config{
		SessionJWTKey: []byte("test-secret"),
		SessionTTL:    time.Hour,
	}
	security.InitJWT()

	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)
	client := campus.NewClient(srv.URL, 5*time.Second, 0)

	repo := repository.NewInMemorySessionRepository()
	manager := session.NewManager(repo, client.Auth)

	r := chi.NewRouter()
	r.Route("/auth", NewAuthHandler(manager, client.Auth).RegisterRoutes)
	return &authFixture{router: r, manager: manager, repo: repo}
}

// seedAuthenticated plants a persisted, authenticated session and returns its
// rehydrated store.
func (f *authFixture) seedAuthenticated(t *testing.T) *session.Store {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.repo.Save(ctx, "sid-1", &repository.SessionRecord{
		User:            &model.User{ID: "u1", Email: "jo@example.com", Role: model.RoleAdmin},
		AccessToken:     "access-old",
		RefreshToken:    "refresh-old",
		IsAuthenticated: true,
	}))
	store, err := f.manager.Load(ctx, "sid-1")
	require.NoError(t, err)
	return store
}

func (f *authFixture) serve(t *testing.T, method, target string, body string, store *session.Store) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if store != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.SessionCtxKey, store))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"user":         map[string]string{"id": "u1", "email": "jo@example.com", "role": "admin"},
				"accessToken":  "access-new",
				"refreshToken": "refresh-new",
			},
		})
	})

	rec := f.serve(t, http.MethodPost, "/auth/login", `{"email":"jo@example.com","password":"Passw0rd!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestFailedLoginPreservesExistingSession(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "bad credentials"})
	})
	store := f.seedAuthenticated(t)

	rec := f.serve(t, http.MethodPost, "/auth/login", `{"email":"jo@example.com","password":"wrong-pass"}`, store)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.True(t, store.IsAuthenticated(), "a rejected re-login must not tear down the session")
	assert.Equal(t, "access-old", store.AccessToken())

	rehydrated, err := f.manager.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, rehydrated.IsAuthenticated(), "persisted slot must survive the failed attempt")
}

func TestLoginValidationRejectedLocally(t *testing.T) {
	remoteCalled := false
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		remoteCalled = true
	})

	rec := f.serve(t, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":""}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, remoteCalled)
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh-token", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]string{
				"accessToken":  "access-rotated",
				"refreshToken": "refresh-rotated",
			},
		})
	})
	store := f.seedAuthenticated(t)

	rec := f.serve(t, http.MethodPost, "/auth/refresh", "", store)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "access-rotated", store.AccessToken())
	assert.Equal(t, "refresh-rotated", store.RefreshToken())

	rehydrated, err := f.manager.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "access-rotated", rehydrated.AccessToken())
}

func TestRefreshRejectedTearsSessionDown(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "refresh token revoked"})
	})
	store := f.seedAuthenticated(t)

	rec := f.serve(t, http.MethodPost, "/auth/refresh", "", store)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, store.IsAuthenticated(), "a revoked refresh token must end the session")
}

func TestLogoutClearsSessionEvenWhenRemoteFails(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "upstream down"})
	})
	store := f.seedAuthenticated(t)

	rec := f.serve(t, http.MethodPost, "/auth/logout", "", store)
	require.Equal(t, http.StatusOK, rec.Code, "logout is fail-open")

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())

	_, err := f.repo.Load(context.Background(), "sid-1")
	require.ErrorIs(t, err, common.ErrSessionNotFound, "persisted slot must be gone")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
