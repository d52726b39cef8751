package campus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"campus_portal/internal/domain/model"
)

type ProgramsAPI struct {
	client *Client
}

type ListProgramsQuery struct {
	Page       int
	Limit      int
	Search     string
	Department string
	Level      string
}

func (q ListProgramsQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.Search != "" {
		f["search"] = q.Search
	}
	if q.Department != "" {
		f["department"] = q.Department
	}
	if q.Level != "" {
		f["level"] = q.Level
	}
	return f
}

type ProgramList struct {
	Programs   []model.Program  `json:"programs"`
	Pagination model.Pagination `json:"pagination"`
}

type ProgramRequest struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	Department    string   `json:"department"`
	Level         string   `json:"level"`
	DurationYears int      `json:"durationYears"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

func (p *ProgramsAPI) List(ctx context.Context, token string, q ListProgramsQuery) (*ProgramList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	for name, value := range q.Filters() {
		query.Set(name, value)
	}

	var list ProgramList
	if err := p.client.get(ctx, token, "/programs", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (p *ProgramsAPI) Get(ctx context.Context, token, id string) (*model.Program, error) {
	var program model.Program
	if err := p.client.get(ctx, token, "/programs/"+id, nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (p *ProgramsAPI) Create(ctx context.Context, token string, req ProgramRequest) (*model.Program, error) {
	var program model.Program
	if err := p.client.mutate(ctx, http.MethodPost, token, "/programs", req, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (p *ProgramsAPI) Update(ctx context.Context, token, id string, req ProgramRequest) (*model.Program, error) {
	var program model.Program
	if err := p.client.mutate(ctx, http.MethodPut, token, "/programs/"+id, req, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (p *ProgramsAPI) Delete(ctx context.Context, token, id string) error {
	return p.client.mutate(ctx, http.MethodDelete, token, "/programs/"+id, nil, nil)
}

func (p *ProgramsAPI) Publish(ctx context.Context, token, id string) error {
	return p.client.mutate(ctx, http.MethodPatch, token, "/programs/"+id+"/publish", nil, nil)
}

func (p *ProgramsAPI) Unpublish(ctx context.Context, token, id string) error {
	return p.client.mutate(ctx, http.MethodPatch, token, "/programs/"+id+"/unpublish", nil, nil)
}
