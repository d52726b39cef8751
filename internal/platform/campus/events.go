package campus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"campus_portal/internal/domain/model"
)

type EventsAPI struct {
	client *Client
}

type ListEventsQuery struct {
	Page      int
	Limit     int
	Search    string
	EventType string
	Status    string
	Published *bool
}

func (q ListEventsQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.Search != "" {
		f["search"] = q.Search
	}
	if q.EventType != "" {
		f["eventType"] = q.EventType
	}
	if q.Status != "" {
		f["status"] = q.Status
	}
	if q.Published != nil {
		f["isPublished"] = strconv.FormatBool(*q.Published)
	}
	return f
}

type EventList struct {
	Events     []model.Event    `json:"events"`
	Pagination model.Pagination `json:"pagination"`
}

type EventRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	EventType   string              `json:"eventType"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Location    model.EventLocation `json:"location"`
	Capacity    int                 `json:"capacity"`
	ImageURL    string              `json:"imageUrl,omitempty"`
}

func (e *EventsAPI) List(ctx context.Context, token string, q ListEventsQuery) (*EventList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	for name, value := range q.Filters() {
		query.Set(name, value)
	}

	var list EventList
	if err := e.client.get(ctx, token, "/events", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (e *EventsAPI) Get(ctx context.Context, token, id string) (*model.Event, error) {
	var event model.Event
	if err := e.client.get(ctx, token, "/events/"+id, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *EventsAPI) Create(ctx context.Context, token string, req EventRequest) (*model.Event, error) {
	var event model.Event
	if err := e.client.mutate(ctx, http.MethodPost, token, "/events", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *EventsAPI) Update(ctx context.Context, token, id string, req EventRequest) (*model.Event, error) {
	var event model.Event
	if err := e.client.mutate(ctx, http.MethodPut, token, "/events/"+id, req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *EventsAPI) Delete(ctx context.Context, token, id string) error {
	return e.client.mutate(ctx, http.MethodDelete, token, "/events/"+id, nil, nil)
}

func (e *EventsAPI) Publish(ctx context.Context, token, id string) error {
	return e.client.mutate(ctx, http.MethodPatch, token, "/events/"+id+"/publish", nil, nil)
}

func (e *EventsAPI) Unpublish(ctx context.Context, token, id string) error {
	return e.client.mutate(ctx, http.MethodPatch, token, "/events/"+id+"/unpublish", nil, nil)
}
