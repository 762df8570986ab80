package models

import (
	"strings"
	"time"
)

// Idea is a free-form note captured for later.
type Idea struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the idea has valid field values.
func (i *Idea) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return invalidf("title is required")
	}
	return nil
}

// HouseItem is a household chore.
type HouseItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Notes     *string   `json:"notes,omitempty"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks that the house item has valid field values.
func (h *HouseItem) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return invalidf("title is required")
	}
	return nil
}
