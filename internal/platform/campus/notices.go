package campus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"campus_portal/internal/domain/model"
)

type NoticesAPI struct {
	client *Client
}

type ListNoticesQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Priority string
}

func (q ListNoticesQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.Search != "" {
		f["search"] = q.Search
	}
	if q.Category != "" {
		f["category"] = q.Category
	}
	if q.Priority != "" {
		f["priority"] = q.Priority
	}
	return f
}

type NoticeList struct {
	Notices    []model.Notice   `json:"notices"`
	Pagination model.Pagination `json:"pagination"`
}

type NoticeRequest struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	PublishDate time.Time `json:"publishDate"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

func (n *NoticesAPI) List(ctx context.Context, token string, q ListNoticesQuery) (*NoticeList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	for name, value := range q.Filters() {
		query.Set(name, value)
	}

	var list NoticeList
	if err := n.client.get(ctx, token, "/notices", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (n *NoticesAPI) Get(ctx context.Context, token, id string) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.get(ctx, token, "/notices/"+id, nil, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Create(ctx context.Context, token string, req NoticeRequest) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.mutate(ctx, http.MethodPost, token, "/notices", req, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Update(ctx context.Context, token, id string, req NoticeRequest) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.mutate(ctx, http.MethodPut, token, "/notices/"+id, req, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Delete(ctx context.Context, token, id string) error {
	return n.client.mutate(ctx, http.MethodDelete, token, "/notices/"+id, nil, nil)
}

func (n *NoticesAPI) Pin(ctx context.Context, token, id string) error {
	return n.client.mutate(ctx, http.MethodPatch, token, "/notices/"+id+"/pin", nil, nil)
}

func (n *NoticesAPI) Unpin(ctx context.Context, token, id string) error {
	return n.client.mutate(ctx, http.MethodPatch, token, "/notices/"+id+"/unpin", nil, nil)
}
