package campus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"campus_portal/internal/domain/model"

	"github.com/gosimple/slug"
)

type BlogsAPI struct {
	client *Client
}

type ListBlogsQuery struct {
	Page      int
	Limit     int
	Search    string
	Tag       string
	Published *bool
}

func (q ListBlogsQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.Search != "" {
		f["search"] = q.Search
	}
	if q.Tag != "" {
		f["tag"] = q.Tag
	}
	if q.Published != nil {
		f["published"] = strconv.FormatBool(*q.Published)
	}
	return f
}

type BlogList struct {
	Blogs      []model.BlogPost `json:"blogs"`
	Pagination model.Pagination `json:"pagination"`
}

type BlogRequest struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug,omitempty"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
}

func (b *BlogsAPI) List(ctx context.Context, token string, q ListBlogsQuery) (*BlogList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	for name, value := range q.Filters() {
		query.Set(name, value)
	}

	var list BlogList
	if err := b.client.get(ctx, token, "/blogs", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (b *BlogsAPI) GetBySlug(ctx context.Context, token, postSlug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := b.client.get(ctx, token, "/blogs/"+postSlug, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create derives the slug from the title when the caller did not set one,
// matching what the editing UI always did.
func (b *BlogsAPI) Create(ctx context.Context, token string, req BlogRequest) (*model.BlogPost, error) {
	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	var post model.BlogPost
	if err := b.client.mutate(ctx, http.MethodPost, token, "/blogs", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (b *BlogsAPI) Update(ctx context.Context, token, id string, req BlogRequest) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := b.client.mutate(ctx, http.MethodPut, token, "/blogs/"+id, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (b *BlogsAPI) Delete(ctx context.Context, token, id string) error {
	return b.client.mutate(ctx, http.MethodDelete, token, "/blogs/"+id, nil, nil)
}

func (b *BlogsAPI) Publish(ctx context.Context, token, id string) error {
	return b.client.mutate(ctx, http.MethodPatch, token, "/blogs/"+id+"/publish", nil, nil)
}

func (b *BlogsAPI) Unpublish(ctx context.Context, token, id string) error {
	return b.client.mutate(ctx, http.MethodPatch, token, "/blogs/"+id+"/unpublish", nil, nil)
}
