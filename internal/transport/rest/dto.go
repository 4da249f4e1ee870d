package rest

import (
	"time"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type tagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type mentorResponse struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	Bio            string        `json:"bio"`
	ContactEmail   string        `json:"contactEmail"`
	LinkedInURL    *string       `json:"linkedInUrl"`
	IsApproved     bool          `json:"isApproved"`
	Industries     []tagResponse `json:"industries"`
	ExpertiseAreas []tagResponse `json:"expertiseAreas"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type optionsResponse struct {
	Industries     []tagResponse `json:"industries"`
	ExpertiseAreas []tagResponse `json:"expertiseAreas"`
}

type eventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	IsPast       bool      `json:"isPast"`
	IsOnline     bool      `json:"isOnline"`
	ZoomLink     *string   `json:"zoomLink"`
	Location     *string   `json:"location"`
	RecordingURL *string   `json:"recordingUrl"`
	ImageURL     *string   `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type statsResponse struct {
	TotalEvents     int `json:"totalEvents"`
	UpcomingEvents  int `json:"upcomingEvents"`
	ApprovedMentors int `json:"approvedMentors"`
	PendingMentors  int `json:"pendingMentors"`
}

type auditResponse struct {
	ID        string         `json:"id"`
	ActorID   string         `json:"actorId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagResponse{ID: t.ID, Name: t.Name}
	}
	return out
}

func toMentorResponse(m domain.Mentor) mentorResponse {
	return mentorResponse{
		ID:             m.ID.String(),
		UserID:         m.UserID.String(),
		Bio:            m.Bio,
		ContactEmail:   m.ContactEmail,
		LinkedInURL:    m.LinkedInURL,
		IsApproved:     m.IsApproved,
		Industries:     toTagResponses(m.Industries),
		ExpertiseAreas: toTagResponses(m.ExpertiseAreas),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMentorResponses(mentors []domain.Mentor) []mentorResponse {
	out := make([]mentorResponse, len(mentors))
	for i, m := range mentors {
		out[i] = toMentorResponse(m)
	}
	return out
}

// toEventResponse classifies e as past or upcoming relative to now.
func toEventResponse(e domain.Event, now time.Time) eventResponse {
	return eventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		IsPast:       e.IsPast(now),
		IsOnline:     e.IsOnline,
		ZoomLink:     e.ZoomLink,
		Location:     e.Location,
		RecordingURL: e.RecordingURL,
		ImageURL:     e.ImageURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toEventResponses(events []domain.Event, now time.Time) []eventResponse {
	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e, now)
	}
	return out
}

func toAuditResponses(records []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, len(records))
	for i, rec := range records {
		out[i] = auditResponse{
			ID:        rec.ID.String(),
			ActorID:   rec.ActorID.String(),
			Action:    rec.Action.String(),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
	}
	return out
}
