// Package service wraps the campus client with the request cache: reads are
// served through cache keys derived from their parameters, and every
// successful mutation invalidates the mutated resource so open views refetch.
// Nothing is applied optimistically; a failed mutation leaves the cache and
// therefore every view in its pre-mutation state.
package service

import (
	"context"

	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
)

const usersResource = "users"

type UsersService struct {
	api   *campus.UsersAPI
	cache *cache.QueryCache
}

func NewUsersService(api *campus.UsersAPI, qc *cache.QueryCache) *UsersService {
	return &UsersService{api: api, cache: qc}
}

func (s *UsersService) List(ctx context.Context, token string, q campus.ListUsersQuery) (*campus.UserList, error) {
	key := cache.PageKey(usersResource, q.Page, q.Limit, scopeParams(token, q.Filters()))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, token, q)
	})
	if err != nil {
		return nil, err
	}
	return v.(*campus.UserList), nil
}

func (s *UsersService) Get(ctx context.Context, token, id string) (*model.User, error) {
	key := cache.Key(usersResource, scopeParams(token, map[string]string{"id": id}))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.User), nil
}

func (s *UsersService) Create(ctx context.Context, token string, req campus.CreateUserRequest) (*model.User, error) {
	user, err := s.api.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(usersResource)
	return user, nil
}

// Update writes through the server-confirmed record after invalidating, so a
// following detail read needs no extra round trip.
func (s *UsersService) Update(ctx context.Context, token, id string, req campus.UpdateUserRequest) (*model.User, error) {
	user, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(usersResource)
	s.cache.Set(cache.Key(usersResource, scopeParams(token, map[string]string{"id": id})), user)
	return user, nil
}

func (s *UsersService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(usersResource)
	return nil
}

func (s *UsersService) Activate(ctx context.Context, token, id string) error {
	if err := s.api.Activate(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(usersResource)
	return nil
}

func (s *UsersService) Deactivate(ctx context.Context, token, id string) error {
	if err := s.api.Deactivate(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(usersResource)
	return nil
}

func (s *UsersService) ResetPassword(ctx context.Context, token, id, newPassword string) error {
	// No cache touch: passwords are never part of any cached payload.
	return s.api.ResetPassword(ctx, token, id, newPassword)
}
