package model

import (
	"time"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type EventLocation struct {
	Venue   string `json:"venue"`
	Room    string `json:"room,omitempty"`
	Address string `json:"address,omitempty"`
}

type Event struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	EventType        string        `json:"eventType"` // academic, cultural, sports, workshop...
	StartDate        time.Time     `json:"startDate"`
	EndDate          time.Time     `json:"endDate"`
	Location         EventLocation `json:"location"`
	Capacity         int           `json:"capacity"`
	CurrentAttendees int           `json:"currentAttendees"`
	IsPublished      bool          `json:"isPublished"`
	Status           EventStatus   `json:"status"`
	Organizer        string        `json:"organizer,omitempty"` // user ID of the organizing account
	ImageURL         string        `json:"imageUrl,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
