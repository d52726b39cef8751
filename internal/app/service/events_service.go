package service

import (
	"context"

	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
)

const eventsResource = "events"

type EventsService struct {
	api   *campus.EventsAPI
	cache *cache.QueryCache
}

func NewEventsService(api *campus.EventsAPI, qc *cache.QueryCache) *EventsService {
	return &EventsService{api: api, cache: qc}
}

func (s *EventsService) List(ctx context.Context, token string, q campus.ListEventsQuery) (*campus.EventList, error) {
	key := cache.PageKey(eventsResource, q.Page, q.Limit, scopeParams(token, q.Filters()))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, token, q)
	})
	if err != nil {
		return nil, err
	}
	return v.(*campus.EventList), nil
}

func (s *EventsService) Get(ctx context.Context, token, id string) (*model.Event, error) {
	key := cache.Key(eventsResource, scopeParams(token, map[string]string{"id": id}))
	v, err := s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Event), nil
}

func (s *EventsService) Create(ctx context.Context, token string, req campus.EventRequest) (*model.Event, error) {
	event, err := s.api.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(eventsResource)
	return event, nil
}

func (s *EventsService) Update(ctx context.Context, token, id string, req campus.EventRequest) (*model.Event, error) {
	event, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(eventsResource)
	return event, nil
}

func (s *EventsService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(eventsResource)
	return nil
}

func (s *EventsService) Publish(ctx context.Context, token, id string) error {
	if err := s.api.Publish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(eventsResource)
	return nil
}

func (s *EventsService) Unpublish(ctx context.Context, token, id string) error {
	if err := s.api.Unpublish(ctx, token, id); err != nil {
		return err
	}
	s.cache.Invalidate(eventsResource)
	return nil
}
