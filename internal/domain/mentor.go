package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is an entry of one of the reference vocabularies (industries, expertise areas).
// ID is a stable slug derived from Name.
type Tag struct {
	ID   string
	Name string
}

// TagCatalog holds both reference vocabularies, each sorted by name.
type TagCatalog struct {
	Industries     []Tag
	ExpertiseAreas []Tag
}

// Mentor is a community member's offer to mentor others.
// Industries and ExpertiseAreas are loaded from the join tables and sorted by name.
type Mentor struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Bio            string
	ContactEmail   string
	LinkedInURL    *string
	IsApproved     bool
	Industries     []Tag
	ExpertiseAreas []Tag
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IndustryIDs returns the ids of the mentor's industries.
func (m *Mentor) IndustryIDs() []string {
	return tagIDs(m.Industries)
}

// ExpertiseIDs returns the ids of the mentor's expertise areas.
func (m *Mentor) ExpertiseIDs() []string {
	return tagIDs(m.ExpertiseAreas)
}

// IsOwnedBy reports whether the mentor record belongs to the given user.
func (m *Mentor) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && m.UserID == userID
}

func tagIDs(tags []Tag) []string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}

// MentorFilter narrows the public directory. Both filters apply with AND semantics.
type MentorFilter struct {
	IndustryID  *string
	ExpertiseID *string
}

// MentorUpdateParams holds the scalar fields of a partial mentor update.
// nil means "leave unchanged"; LinkedInURL = ptr("") clears the link.
type MentorUpdateParams struct {
	Bio          *string
	ContactEmail *string
	LinkedInURL  *string
}

// MentorCounts is the number of mentors per approval state.
type MentorCounts struct {
	Approved int
	Pending  int
}
