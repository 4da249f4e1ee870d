package event

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/workchatseattle/community-backend/internal/domain"
)

const MaxTitleLength = 200

// EventInput holds every editable field of an event. Updates replace all of them.
type EventInput struct {
	Title        string
	Description  string
	Date         time.Time
	IsOnline     bool
	ZoomLink     *string
	Location     *string
	RecordingURL *string
	ImageURL     *string
}

// Normalize trims text fields; blank optional fields become nil.
func (i EventInput) Normalize() EventInput {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.ZoomLink = trimOrNil(i.ZoomLink)
	i.Location = trimOrNil(i.Location)
	i.RecordingURL = trimOrNil(i.RecordingURL)
	i.ImageURL = trimOrNil(i.ImageURL)
	return i
}

// Validate checks all fields and collects all errors. Call on normalized input.
func (i EventInput) Validate() error {
	var v domain.Violations

	if i.Title == "" {
		v.Add("title", "required")
	} else if utf8.RuneCountInString(i.Title) > MaxTitleLength {
		v.Add("title", "max 200 characters")
	}
	if i.Description == "" {
		v.Add("description", "required")
	}
	if i.Date.IsZero() {
		v.Add("date", "required")
	}

	for _, u := range []struct {
		field string
		value *string
	}{
		{"zoomLink", i.ZoomLink},
		{"recordingUrl", i.RecordingURL},
		{"imageUrl", i.ImageURL},
	} {
		if u.value != nil && !domain.IsHTTPURL(*u.value) {
			v.Add(u.field, "must be an absolute http(s) URL")
		}
	}

	return v.Err()
}

func (i EventInput) apply(e domain.Event) domain.Event {
	e.Title = i.Title
	e.Description = i.Description
	e.Date = i.Date.UTC()
	e.IsOnline = i.IsOnline
	e.ZoomLink = i.ZoomLink
	e.Location = i.Location
	e.RecordingURL = i.RecordingURL
	e.ImageURL = i.ImageURL
	return e
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
