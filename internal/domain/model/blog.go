package model

import (
	"time"
)

type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	Content     string    `json:"content"` // rich text / HTML as stored by the API
	Excerpt     string    `json:"excerpt,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	IsPublished bool      `json:"isPublished"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
