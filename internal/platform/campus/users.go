package campus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"campus_portal/internal/domain/model"
)

type UsersAPI struct {
	client *Client
}

type ListUsersQuery struct {
	Page       int
	Limit      int
	Search     string
	Role       string
	Department string
}

// Filters returns the non-empty filter values, used both for the request and
// for cache-key derivation so identical queries share one cache entry.
func (q ListUsersQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.Search != "" {
		f["search"] = q.Search
	}
	if q.Role != "" {
		f["role"] = q.Role
	}
	if q.Department != "" {
		f["department"] = q.Department
	}
	return f
}

// UserList is the nested list payload: data.users + data.pagination.
type UserList struct {
	Users      []model.User     `json:"users"`
	Pagination model.Pagination `json:"pagination"`
}

type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type UpdateUserRequest struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

func (u *UsersAPI) List(ctx context.Context, token string, q ListUsersQuery) (*UserList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	for name, value := range q.Filters() {
		query.Set(name, value)
	}

	var list UserList
	if err := u.client.get(ctx, token, "/users", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (u *UsersAPI) Get(ctx context.Context, token, id string) (*model.User, error) {
	var user model.User
	if err := u.client.get(ctx, token, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersAPI) Create(ctx context.Context, token string, req CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := u.client.mutate(ctx, http.MethodPost, token, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersAPI) Update(ctx context.Context, token, id string, req UpdateUserRequest) (*model.User, error) {
	var user model.User
	if err := u.client.mutate(ctx, http.MethodPut, token, "/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersAPI) Delete(ctx context.Context, token, id string) error {
	return u.client.mutate(ctx, http.MethodDelete, token, "/users/"+id, nil, nil)
}

func (u *UsersAPI) Activate(ctx context.Context, token, id string) error {
	return u.client.mutate(ctx, http.MethodPatch, token, "/users/"+id+"/activate", nil, nil)
}

func (u *UsersAPI) Deactivate(ctx context.Context, token, id string) error {
	return u.client.mutate(ctx, http.MethodPatch, token, "/users/"+id+"/deactivate", nil, nil)
}

func (u *UsersAPI) ResetPassword(ctx context.Context, token, id, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}
	return u.client.mutate(ctx, http.MethodPatch, token, "/users/"+id+"/reset-password", body, nil)
}
