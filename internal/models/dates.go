package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-day format used in completion sets.
const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate checks that s is a canonical YYYY-MM-DD date and returns it unchanged.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return "", invalidf("date must be YYYY-MM-DD, got %q", s)
	}
	return s, nil
}

// DoneDates is the set of days on which a daily task was completed. It is
// stored as a JSON array; element order is insertion order and carries no meaning.
type DoneDates []string

// Contains reports whether date is in the set.
func (d DoneDates) Contains(date string) bool {
	for _, v := range d {
		if v == date {
			return true
		}
	}
	return false
}

// Add inserts date unless it is already present. It reports whether the set changed.
func (d *DoneDates) Add(date string) bool {
	if d.Contains(date) {
		return false
	}
	*d = append(*d, date)
	return true
}

// MarshalJSON always emits an array, never null.
func (d DoneDates) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(d))
}

// Value implements driver.Valuer.
func (d DoneDates) Value() (driver.Value, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. Unparseable stored values are read as an
// empty set and duplicates already in storage are collapsed.
func (d *DoneDates) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = DoneDates{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into DoneDates", src)
	}

	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		*d = DoneDates{}
		return nil
	}

	set := make(DoneDates, 0, len(dates))
	for _, date := range dates {
		set.Add(date)
	}
	*d = set
	return nil
}
