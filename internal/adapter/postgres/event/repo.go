// Package event implements the community event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/workchatseattle/community-backend/internal/adapter/postgres"
	"github.com/workchatseattle/community-backend/internal/domain"
)

const entity = "event"

var columns = []string{
	"id", "title", "description", "date", "is_online",
	"zoom_link", "location", "recording_url", "image_url",
	"created_at", "updated_at",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type eventRow struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Date         time.Time `db:"date"`
	IsOnline     bool      `db:"is_online"`
	ZoomLink     *string   `db:"zoom_link"`
	Location     *string   `db:"location"`
	RecordingURL *string   `db:"recording_url"`
	ImageURL     *string   `db:"image_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Date:         row.Date,
		IsOnline:     row.IsOnline,
		ZoomLink:     row.ZoomLink,
		Location:     row.Location,
		RecordingURL: row.RecordingURL,
		ImageURL:     row.ImageURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the event with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build get event query: %w", err)
	}

	row, err := postgres.SelectOne[eventRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// ListUpcoming returns events dated at or after now, soonest first.
func (r *Repo) ListUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error) {
	return r.list(ctx, squirrel.GtOrEq{"date": now}, "date ASC")
}

// ListPast returns events dated before now, most recent first.
func (r *Repo) ListPast(ctx context.Context, now time.Time) ([]domain.Event, error) {
	return r.list(ctx, squirrel.Lt{"date": now}, "date DESC")
}

// ListAll returns every event, latest date first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, nil, "date DESC")
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, order string) ([]domain.Event, error) {
	sb := postgres.Builder.Select(columns...).From("events").OrderBy(order, "id ASC")
	if where != nil {
		sb = sb.Where(where)
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	rows, err := postgres.SelectAll[eventRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]domain.Event, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}
	return events, nil
}

// Count returns the total number of events and how many are upcoming at now.
func (r *Repo) Count(ctx context.Context, now time.Time) (domain.EventCounts, error) {
	var counts domain.EventCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE date >= $1) FROM events`, now,
	).Scan(&counts.Total, &counts.Upcoming)
	if err != nil {
		return domain.EventCounts{}, fmt.Errorf("count events: %w", err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	query, args, err := postgres.Builder.
		Insert("events").
		Columns(columns...).
		Values(e.ID, e.Title, e.Description, e.Date, e.IsOnline,
			e.ZoomLink, e.Location, e.RecordingURL, e.ImageURL,
			e.CreatedAt, e.UpdatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build insert event query: %w", err)
	}

	row, err := postgres.SelectOne[eventRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, e.ID)
	}
	return row.toDomain(), nil
}

// Update replaces every editable field of the event.
func (r *Repo) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	query, args, err := postgres.Builder.
		Update("events").
		SetMap(map[string]any{
			"title":         e.Title,
			"description":   e.Description,
			"date":          e.Date,
			"is_online":     e.IsOnline,
			"zoom_link":     e.ZoomLink,
			"location":      e.Location,
			"recording_url": e.RecordingURL,
			"image_url":     e.ImageURL,
			"updated_at":    squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build update event query: %w", err)
	}

	row, err := postgres.SelectOne[eventRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, e.ID)
	}
	return row.toDomain(), nil
}

// Delete removes the event.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
