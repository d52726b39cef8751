package model

import (
	"time"
)

type ProgramLevel string

const (
	LevelCertificate   ProgramLevel = "certificate"
	LevelDiploma       ProgramLevel = "diploma"
	LevelUndergraduate ProgramLevel = "undergraduate"
	LevelPostgraduate  ProgramLevel = "postgraduate"
)

type Program struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	Department    string       `json:"department"`
	Level         ProgramLevel `json:"level"`
	DurationYears int          `json:"durationYears"`
	Description   string       `json:"description,omitempty"`
	Prerequisites []string     `json:"prerequisites,omitempty"`
	IsPublished   bool         `json:"isPublished"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
