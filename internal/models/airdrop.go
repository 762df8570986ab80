package models

import (
	"strings"
	"time"
)

// Airdrop is a tracked airdrop campaign. Airdrops form one ordered collection.
type Airdrop struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	AirdropTypeID *int64    `json:"airdrop_type_id,omitempty"`
	Chain         *string   `json:"chain,omitempty"`
	WalletAddress *string   `json:"wallet_address,omitempty"`
	Position      int       `json:"position"`
	Notes         *string   `json:"notes,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks that the airdrop has valid field values.
func (a *Airdrop) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return invalidf("name is required")
	}
	if strings.TrimSpace(a.URL) == "" {
		return invalidf("url is required")
	}
	return nil
}

// AirdropType is a template whose default task titles are copied onto new airdrops.
type AirdropType struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DefaultTasks []string  `json:"default_tasks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks that the airdrop type has valid field values.
func (t *AirdropType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalidf("name is required")
	}
	for i, title := range t.DefaultTasks {
		if strings.TrimSpace(title) == "" {
			return invalidf("default task %d has an empty title", i)
		}
	}
	return nil
}

// DailyTask is a repeatable task belonging to an airdrop. Tasks are ordered
// within their airdrop.
type DailyTask struct {
	ID        int64     `json:"id"`
	AirdropID int64     `json:"airdrop_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	DoneDates DoneDates `json:"done_dates"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks that the daily task has valid field values.
func (t *DailyTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return invalidf("title is required")
	}
	if t.AirdropID == 0 {
		return invalidf("airdrop_id is required")
	}
	return nil
}

// DoneOn reports whether the task was completed on date.
func (t *DailyTask) DoneOn(date string) bool {
	return t.DoneDates.Contains(date)
}

// PositionUpdate moves one record of an ordered collection.
type PositionUpdate struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}
