package service

import (
	"context"

	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
)

const noticesResource = "notices"

type NoticesService struct {
	api   *campus.NoticesAPI
	cache *cache.QueryCache
}

func NewNoticesService(api *campus.NoticesAPI, qc *cache.QueryCache) *NoticesService {
	return &NoticesService{api: api, cache: qc}
}

func (s *NoticesService) List(ctx context.Context, token string, q campus.ListNoticesQuery) (*campus.NoticeList, error) {
	key := cache.PageKey(noticesResource, q.Page, q.Limit, scopeParams(token, q.Filters()))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, token, q)
	})
	if err != nil {
		return nil, err
	}
	return v.(*campus.NoticeList), nil
}

func (s *NoticesService) Get(ctx context.Context, token, id string) (*model.Notice, error) {
	key := cache.Key(noticesResource, scopeParams(token, map[string]string{"id": id}))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Notice), nil
}

func (s *NoticesService) Create(ctx context.Context, token string, req campus.NoticeRequest) (*model.Notice, error) {
	notice, err := s.api.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(noticesResource)
	return notice, nil
}

func (s *NoticesService) Update(ctx context.Context, token, id string, req campus.NoticeRequest) (*model.Notice, error) {
	notice, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(noticesResource)
	return notice, nil
}

func (s *NoticesService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(noticesResource)
	return nil
}

func (s *NoticesService) Pin(ctx context.Context, token, id string) error {
	if err := s.api.Pin(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(noticesResource)
	return nil
}

func (s *NoticesService) Unpin(ctx context.Context, token, id string) error {
	if err := s.api.Unpin(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(noticesResource)
	return nil
}
