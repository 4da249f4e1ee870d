package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a community event, online or in person.
type Event struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Date         time.Time
	IsOnline     bool
	ZoomLink     *string
	Location     *string
	RecordingURL *string
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPast reports whether the event started before now.
// An event starting exactly at now is still upcoming.
func (e Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}

// EventCounts is the number of events overall and still upcoming.
type EventCounts struct {
	Total    int
	Upcoming int
}

// DashboardStats summarizes the admin dashboard.
type DashboardStats struct {
	TotalEvents     int
	UpcomingEvents  int
	ApprovedMentors int
	PendingMentors  int
}

// AuditRecord logs a mutation on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
