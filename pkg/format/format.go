// Package format normalizes the display values shared by the write and read
// paths: doctor honorifics, calendar dates and times of day.
package format

import (
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	honorific = "Dr. "
)

// The honorific must be followed by a period or a space; "Drake" is a name.
var honorificPrefix = regexp.MustCompile(`(?i)^dr(\.\s*|\s+)`)

// CanonicalDoctorName trims raw and prefixes it with "Dr. " unless it already
// starts with "dr" in any case. Applying it twice yields the same result.
func CanonicalDoctorName(raw string) string {
	name := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(name), "dr") {
		return name
	}
	return honorific + name
}

// StripHonorific removes a leading "Dr" / "Dr." and the spaces after it so an
// edit form can show the bare name.
func StripHonorific(name string) string {
	return honorificPrefix.ReplaceAllString(strings.TrimSpace(name), "")
}

// NormalizeDate drops the time-of-day part of an ISO date-time
// ("2024-05-01T09:00:00Z" or "2024-05-01 09:00:00"). Date-only input is
// returned unchanged.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "T "); i >= 0 {
		return raw[:i]
	}
	return raw
}

// NormalizeTime reduces "HH:MM:SS" to "HH:MM" so the same slot is always
// stored under the same key.
func NormalizeTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("15:04:05", raw); err == nil {
		return t.Format(TimeLayout)
	}
	if t, err := time.Parse(TimeLayout, raw); err == nil {
		return t.Format(TimeLayout)
	}
	return raw
}

// IsValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidTime reports whether s is a time of day in HH:MM form.
func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
