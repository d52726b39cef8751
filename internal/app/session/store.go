// Package session holds the authenticated user and tokens for one browser
// session. The store is the single authority on "is this user logged in":
// the profile-confirmation flow updates it instead of keeping a second
// derived flag, so there is exactly one source of truth.
package session

import (
	"context"
	"errors"
	"sync"

	"campus_portal/internal/common"
	"campus_portal/internal/domain/model"
	"campus_portal/internal/domain/repository"
	"campus_portal/internal/platform/campus"
	"campus_portal/internal/platform/logging"

	"go.uber.org/zap"
)

// AuthStatus is the tagged session state exposed to the guard and handlers.
type AuthStatus string

const (
	StatusUnauthenticated AuthStatus = "unauthenticated"
	StatusAuthenticating  AuthStatus = "authenticating"
	StatusAuthenticated   AuthStatus = "authenticated"
)

type AuthState struct {
	Status AuthStatus  `json:"status"`
	User   *model.User `json:"user,omitempty"`
}

// Authenticator is the slice of the campus API the store needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*campus.LoginData, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*model.User, error)
}

type Store struct {
	id   string
	repo repository.SessionRepository
	auth Authenticator

	mu              sync.Mutex
	user            *model.User
	accessToken     string
	refreshToken    string
	isAuthenticated bool
	isLoading       bool
}

// NewStore builds an empty store; use Rehydrate to restore persisted state.
// isLoading always starts false regardless of what happened last run.
func NewStore(id string, repo repository.SessionRepository, auth Authenticator) *Store {
	return &Store{id: id, repo: repo, auth: auth}
}

// Rehydrate restores user/tokens/isAuthenticated from the persisted slot.
// A missing slot is not an error; the store just starts unauthenticated.
func (s *Store) Rehydrate(ctx context.Context) error {
	rec, err := s.repo.Load(ctx, s.id)
	if err != nil {
		if errors.Is(err, common.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = rec.User
	s.accessToken = rec.AccessToken
	s.refreshToken = rec.RefreshToken
	s.isAuthenticated = rec.IsAuthenticated
	s.isLoading = false
	return nil
}

// Login exchanges credentials with the campus API. On failure of any kind,
// envelope rejection or transport error alike, the previous user and tokens
// are left untouched: a failed re-login must not log out an existing session.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()

	data, err := s.auth.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil || data == nil || data.User == nil {
		if err != nil {
			logging.L.Info("Login rejected", zap.String("email", email), zap.Error(err))
		}
		return false
	}

	s.user = data.User
	s.accessToken = data.AccessToken
	s.refreshToken = data.RefreshToken
	s.isAuthenticated = true
	s.persistLocked(ctx)
	return true
}

// Logout clears everything unconditionally. The server-side logout call is
// made at call sites and is allowed to fail; local state goes regardless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.isAuthenticated = false
	s.isLoading = false
	if err := s.repo.Delete(ctx, s.id); err != nil {
		logging.L.Warn("Failed to delete persisted session", zap.String("sid", s.id), zap.Error(err))
	}
}

// SetUser overwrites the profile, e.g. after a profile refresh.
func (s *Store) SetUser(ctx context.Context, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.persistLocked(ctx)
}

// SetTokens overwrites both tokens, e.g. after a token-refresh flow.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
	s.persistLocked(ctx)
}

// ConfirmProfile re-fetches the profile for the stored access token and folds
// the outcome back into this store. A 401 means the token is dead server-side
// and tears the session down; transport failures leave the session alone.
func (s *Store) ConfirmProfile(ctx context.Context) (*model.User, error) {
	token := s.AccessToken()
	if token == "" {
		return nil, common.ErrUnauthorized
	}
	user, err := s.auth.Me(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.Logout(ctx)
		}
		return nil, err
	}
	s.SetUser(ctx, user)
	return user, nil
}

func (s *Store) persistLocked(ctx context.Context) {
	rec := &repository.SessionRecord{
		User:            s.user,
		AccessToken:     s.accessToken,
		RefreshToken:    s.refreshToken,
		IsAuthenticated: s.isAuthenticated,
	}
	if err := s.repo.Save(ctx, s.id, rec); err != nil {
		logging.L.Warn("Failed to persist session", zap.String("sid", s.id), zap.Error(err))
	}
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken
}

func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.isLoading:
		return AuthState{Status: StatusAuthenticating}
	case s.isAuthenticated:
		return AuthState{Status: StatusAuthenticated, User: s.user}
	default:
		return AuthState{Status: StatusUnauthenticated}
	}
}
