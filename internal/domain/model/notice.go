package model

import (
	"encoding/json"
	"time"
)

type NoticePriority string

const (
	PriorityLow    NoticePriority = "low"
	PriorityMedium NoticePriority = "medium"
	PriorityHigh   NoticePriority = "high"
	PriorityUrgent NoticePriority = "urgent"
)

// NoticeAuthor tolerates both shapes the campus API returns for the author
// field: a bare name string, or an embedded `{id, firstName, lastName}` object.
type NoticeAuthor struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (a *NoticeAuthor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.Name = name
		return nil
	}
	var obj struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.ID = obj.ID
	a.Name = obj.FirstName + " " + obj.LastName
	return nil
}

func (a NoticeAuthor) MarshalJSON() ([]byte, error) {
	if a.ID == "" {
		return json.Marshal(a.Name)
	}
	type alias NoticeAuthor
	return json.Marshal(alias(a))
}

type Notice struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Category    string         `json:"category"` // general, academic, examination, admission...
	Priority    NoticePriority `json:"priority"`
	PublishDate time.Time      `json:"publishDate"`
	ExpiryDate  time.Time      `json:"expiryDate"`
	Author      NoticeAuthor   `json:"author"`
	IsPinned    bool           `json:"isPinned"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
