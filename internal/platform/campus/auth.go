package campus

import (
	"context"
	"net/http"

	"campus_portal/internal/domain/model"
)

type AuthAPI struct {
	client *Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the credential-exchange payload: the profile plus both tokens.
type LoginData struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*LoginData, error) {
	var data LoginData
	err := a.client.mutate(ctx, http.MethodPost, "", "/auth/login", LoginRequest{Email: email, Password: password}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Logout is best-effort server-side invalidation; callers clear local state
// regardless of the outcome.
func (a *AuthAPI) Logout(ctx context.Context, token string) error {
	return a.client.mutate(ctx, http.MethodPost, token, "/auth/logout", nil, nil)
}

// Me fetches the profile for the given access token. A 401 here means the
// token is no longer honored and the session should be torn down.
func (a *AuthAPI) Me(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := a.client.get(ctx, token, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"refreshToken": refreshToken}
	if err := a.client.mutate(ctx, http.MethodPost, "", "/auth/refresh-token", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
