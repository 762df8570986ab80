package models

import (
	"database/sql/driver"
	"fmt"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus uint8

const (
	StatusActive ProjectStatus = iota + 1
	StatusPaused
	StatusCompleted
	StatusArchived
)

// ParseProjectStatus maps the stored lowercase name to a status.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "paused":
		return StatusPaused, nil
	case "completed":
		return StatusCompleted, nil
	case "archived":
		return StatusArchived, nil
	default:
		return 0, invalidf("status must be 'active', 'paused', 'completed', or 'archived'")
	}
}

// Valid reports whether s is one of the declared statuses.
func (s ProjectStatus) Valid() bool {
	return s >= StatusActive && s <= StatusArchived
}

func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	case StatusArchived:
		return "archived"
	default:
		return fmt.Sprintf("ProjectStatus(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ProjectStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidf("cannot encode %s", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ProjectStatus) UnmarshalText(text []byte) error {
	v, err := ParseProjectStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value implements driver.Valuer.
func (s ProjectStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, invalidf("cannot store %s", s)
	}
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *ProjectStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into ProjectStatus", src)
	}
}
