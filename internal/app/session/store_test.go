package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"campus_portal/internal/common"
	"campus_portal/internal/domain/model"
	"campus_portal/internal/domain/repository"
	"campus_portal/internal/platform/campus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	loginData   *campus.LoginData
	loginErr    error
	logoutErr   error
	logoutCalls int
	meUser      *model.User
	meErr       error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*campus.LoginData, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginData, nil
}

func (f *fakeAuth) Logout(ctx context.Context, token string) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) Me(ctx context.Context, token string) (*model.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meUser, nil
}

func studentUser() *model.User {
	return &model.User{ID: "u1", FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Role: model.RoleStudent}
}

func authenticatedStore(t *testing.T, auth Authenticator) (*Store, *repository.InMemorySessionRepository) {
	t.Helper()
	repo := repository.NewInMemorySessionRepository()
	store := NewStore("sid-1", repo, auth)
	require.NoError(t, repo.Save(context.Background(), "sid-1", &repository.SessionRecord{
		User:            studentUser(),
		AccessToken:     "access-old",
		RefreshToken:    "refresh-old",
		IsAuthenticated: true,
	}))
	require.NoError(t, store.Rehydrate(context.Background()))
	return store, repo
}

func TestLoginSuccess(t *testing.T) {
	auth := &fakeAuth{loginData: &campus.LoginData{
		User:         studentUser(),
		AccessToken:  "access-new",
		RefreshToken: "refresh-new",
	}}
	repo := repository.NewInMemorySessionRepository()
	store := NewStore("sid-1", repo, auth)

	ok := store.Login(context.Background(), "jo@x.com", "Passw0rd!")

	assert.True(t, ok)
	assert.True(t, store.IsAuthenticated())
	assert.False(t, store.IsLoading())
	assert.Equal(t, "access-new", store.AccessToken())
	assert.Equal(t, "refresh-new", store.RefreshToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().ID)

	rec, err := repo.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, rec.IsAuthenticated)
	assert.Equal(t, "access-new", rec.AccessToken)
}

// A rejected re-login must not log out a session that is already
// authenticated: user, tokens and the authenticated flag all stay put.
func TestLoginFailurePreservesExistingSession(t *testing.T) {
	auth := &fakeAuth{loginErr: fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)}
	store, repo := authenticatedStore(t, auth)

	ok := store.Login(context.Background(), "jo@x.com", "wrong")

	assert.False(t, ok)
	assert.True(t, store.IsAuthenticated())
	assert.False(t, store.IsLoading())
	assert.Equal(t, "access-old", store.AccessToken())
	assert.Equal(t, "refresh-old", store.RefreshToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().ID)

	rec, err := repo.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, rec.IsAuthenticated, "persisted slot must be untouched too")
}

func TestLoginTransportFailurePreservesExistingSession(t *testing.T) {
	auth := &fakeAuth{loginErr: fmt.Errorf("%w: connection refused", common.ErrRemoteUnavailable)}
	store, _ := authenticatedStore(t, auth)

	ok := store.Login(context.Background(), "jo@x.com", "Passw0rd!")

	assert.False(t, ok)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-old", store.AccessToken())
}

func TestLogoutClearsEverything(t *testing.T) {
	store, repo := authenticatedStore(t, &fakeAuth{})

	store.Logout(context.Background())

	assert.Nil(t, store.User())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.False(t, store.IsAuthenticated())
	assert.False(t, store.IsLoading())

	_, err := repo.Load(context.Background(), "sid-1")
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestSetUserAndSetTokensOverwrite(t *testing.T) {
	store, repo := authenticatedStore(t, &fakeAuth{})

	updated := studentUser()
	updated.FirstName = "Joanna"
	store.SetUser(context.Background(), updated)
	store.SetTokens(context.Background(), "access-2", "refresh-2")

	assert.Equal(t, "Joanna", store.User().FirstName)
	assert.Equal(t, "access-2", store.AccessToken())
	assert.Equal(t, "refresh-2", store.RefreshToken())

	rec, err := repo.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "Joanna", rec.User.FirstName)
	assert.Equal(t, "access-2", rec.AccessToken)
}

func TestRehydrateMissingSlotStartsUnauthenticated(t *testing.T) {
	repo := repository.NewInMemorySessionRepository()
	store := NewStore("nope", repo, &fakeAuth{})

	require.NoError(t, store.Rehydrate(context.Background()))
	assert.False(t, store.IsAuthenticated())
	assert.False(t, store.IsLoading())
	assert.Nil(t, store.User())
}

func TestConfirmProfileUpdatesStore(t *testing.T) {
	refreshed := studentUser()
	refreshed.Department = "Physics"
	auth := &fakeAuth{meUser: refreshed}
	store, _ := authenticatedStore(t, auth)

	user, err := store.ConfirmProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Physics", user.Department)
	assert.Equal(t, "Physics", store.User().Department)
}

// A 401 on profile confirmation means the token died server-side; the single
// authority (this store) is torn down rather than a second flag diverging.
func TestConfirmProfileUnauthorizedLogsOut(t *testing.T) {
	auth := &fakeAuth{meErr: fmt.Errorf("%w: token expired", common.ErrUnauthorized)}
	store, _ := authenticatedStore(t, auth)

	_, err := store.ConfirmProfile(context.Background())
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestConfirmProfileTransportErrorKeepsSession(t *testing.T) {
	auth := &fakeAuth{meErr: errors.New("connection reset")}
	store, _ := authenticatedStore(t, auth)

	_, err := store.ConfirmProfile(context.Background())
	require.Error(t, err)
	assert.True(t, store.IsAuthenticated(), "a flaky network must not destroy the session")
}

func TestState(t *testing.T) {
	store, _ := authenticatedStore(t, &fakeAuth{})
	state := store.State()
	assert.Equal(t, StatusAuthenticated, state.Status)
	require.NotNil(t, state.User)

	store.Logout(context.Background())
	assert.Equal(t, StatusUnauthenticated, store.State().Status)
	assert.Nil(t, store.State().User)
}
