package service

import (
	"context"

	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
)

const blogsResource = "blogs"

type BlogsService struct {
	api   *campus.BlogsAPI
	cache *cache.QueryCache
}

func NewBlogsService(api *campus.BlogsAPI, qc *cache.QueryCache) *BlogsService {
	return &BlogsService{api: api, cache: qc}
}

func (s *BlogsService) List(ctx context.Context, token string, q campus.ListBlogsQuery) (*campus.BlogList, error) {
	key := cache.PageKey(blogsResource, q.Page, q.Limit, scopeParams(token, q.Filters()))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, token, q)
	})
	if err != nil {
		return nil, err
	}
	return v.(*campus.BlogList), nil
}

func (s *BlogsService) GetBySlug(ctx context.Context, token, slug string) (*model.BlogPost, error) {
	key := cache.Key(blogsResource, scopeParams(token, map[string]string{"slug": slug}))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.GetBySlug(ctx, token, slug)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.BlogPost), nil
}

func (s *BlogsService) Create(ctx context.Context, token string, req campus.BlogRequest) (*model.BlogPost, error) {
	post, err := s.api.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(blogsResource)
	return post, nil
}

func (s *BlogsService) Update(ctx context.Context, token, id string, req campus.BlogRequest) (*model.BlogPost, error) {
	post, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(blogsResource)
	return post, nil
}

func (s *BlogsService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(blogsResource)
	return nil
}

func (s *BlogsService) Publish(ctx context.Context, token, id string) error {
	if err := s.api.Publish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(blogsResource)
	return nil
}

func (s *BlogsService) Unpublish(ctx context.Context, token, id string) error {
	if err := s.api.Unpublish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(blogsResource)
	return nil
}
