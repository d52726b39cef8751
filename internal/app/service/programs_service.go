package service

import (
	"context"

	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
)

const programsResource = "programs"

type ProgramsService struct {
	api   *campus.ProgramsAPI
	cache *cache.QueryCache
}

func NewProgramsService(api *campus.ProgramsAPI, qc *cache.QueryCache) *ProgramsService {
	return &ProgramsService{api: api, cache: qc}
}

func (s *ProgramsService) List(ctx context.Context, token string, q campus.ListProgramsQuery) (*campus.ProgramList, error) {
	key := cache.PageKey(programsResource, q.Page, q.Limit, scopeParams(token, q.Filters()))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, token, q)
	})
	if err != nil {
		return nil, err
	}
	return v.(*campus.ProgramList), nil
}

func (s *ProgramsService) Get(ctx context.Context, token, id string) (*model.Program, error) {
	key := cache.Key(programsResource, scopeParams(token, map[string]string{"id": id}))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Program), nil
}

func (s *ProgramsService) Create(ctx context.Context, token string, req campus.ProgramRequest) (*model.Program, error) {
	program, err := s.api.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(programsResource)
	return program, nil
}

func (s *ProgramsService) Update(ctx context.Context, token, id string, req campus.ProgramRequest) (*model.Program, error) {
	program, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(programsResource)
	return program, nil
}

func (s *ProgramsService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(programsResource)
	return nil
}

func (s *ProgramsService) Publish(ctx context.Context, token, id string) error {
	if err := s.api.Publish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(programsResource)
	return nil
}

func (s *ProgramsService) Unpublish(ctx context.Context, token, id string) error {
	if err := s.api.Unpublish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(programsResource)
	return nil
}
