package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workchatseattle/community-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTag inserts a tag of the given kind with a unique name and returns it.
func SeedTag(t *testing.T, pool *pgxpool.Pool, kind domain.TagKind, name string) domain.Tag {
	t.Helper()

	name = name + " " + uniqueSuffix()
	tag := domain.Tag{ID: domain.TagSlug(name), Name: name}

	table := "industries"
	if kind == domain.TagKindExpertise {
		table = "expertise_areas"
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+table+` (id, name) VALUES ($1, $2)`, tag.ID, tag.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert %s: %v", table, err)
	}
	return tag
}

// MentorSeed controls SeedMentor. Zero values get sensible defaults.
type MentorSeed struct {
	OwnerID      uuid.UUID
	Approved     bool
	CreatedAt    time.Time
	IndustryIDs  []string
	ExpertiseIDs []string
}

// SeedMentor inserts a mentor and its join rows directly, bypassing the repository.
func SeedMentor(t *testing.T, pool *pgxpool.Pool, seed MentorSeed) domain.Mentor {
	t.Helper()
	ctx := context.Background()

	if seed.OwnerID == uuid.Nil {
		seed.OwnerID = uuid.New()
	}
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	suffix := uniqueSuffix()
	m := domain.Mentor{
		ID:           uuid.New(),
		UserID:       seed.OwnerID,
		Bio:          "Mentor bio " + suffix,
		ContactEmail: "mentor-" + suffix + "@example.com",
		IsApproved:   seed.Approved,
		CreatedAt:    seed.CreatedAt,
		UpdatedAt:    seed.CreatedAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO mentors (id, owner_id, bio, contact_email, is_approved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.UserID, m.Bio, m.ContactEmail, m.IsApproved, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMentor insert mentor: %v", err)
	}

	for _, id := range seed.IndustryIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO mentor_industries (mentor_id, industry_id) VALUES ($1, $2)`, m.ID, id); err != nil {
			t.Fatalf("testhelper: SeedMentor insert industry %s: %v", id, err)
		}
	}
	for _, id := range seed.ExpertiseIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO mentor_expertise (mentor_id, expertise_id) VALUES ($1, $2)`, m.ID, id); err != nil {
			t.Fatalf("testhelper: SeedMentor insert expertise %s: %v", id, err)
		}
	}

	return m
}

// SeedEvent inserts an event dated at the given time and returns it.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, date time.Time) domain.Event {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Event{
		ID:          uuid.New(),
		Title:       "Event " + uniqueSuffix(),
		Description: "Seeded event",
		Date:        date.UTC().Truncate(time.Microsecond),
		IsOnline:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, title, description, date, is_online, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Title, e.Description, e.Date, e.IsOnline, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}
	return e
}
