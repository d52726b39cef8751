package model

// Pagination mirrors the pagination block the campus API nests inside list
// payloads (data.pagination).
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
