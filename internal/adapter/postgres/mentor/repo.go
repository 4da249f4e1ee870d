// Package mentor implements the mentor directory repository: mentor rows
// plus their industry and expertise join rows.
package mentor

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

const entity = "mentor"

var columns = []string{
	"id", "owner_id", "bio", "contact_email", "linkedin_url",
	"is_approved", "created_at", "updated_at",
}

// Repo provides mentor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mentor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type mentorRow struct {
	ID           uuid.UUID `db:"id"`
	OwnerID      uuid.UUID `db:"owner_id"`
	Bio          string    `db:"bio"`
	ContactEmail string    `db:"contact_email"`
	LinkedInURL  *string   `db:"linkedin_url"`
	IsApproved   bool      `db:"is_approved"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row mentorRow) toDomain() domain.Mentor {
	return domain.Mentor{
		ID:             row.ID,
		UserID:         row.OwnerID,
		Bio:            row.Bio,
		ContactEmail:   row.ContactEmail,
		LinkedInURL:    row.LinkedInURL,
		IsApproved:     row.IsApproved,
		Industries:     []domain.Tag{},
		ExpertiseAreas: []domain.Tag{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type tagLinkRow struct {
	MentorID uuid.UUID `db:"mentor_id"`
	ID       string    `db:"id"`
	Name     string    `db:"name"`
}

// joinTable describes one mentor<->tag relation. field is the request field
// reported when tagFK rejects an id.
type joinTable struct {
	name     string
	tagCol   string
	tagTable string
	tagFK    string
	field    string
}

var (
	industryJoin = joinTable{
		name: "mentor_industries", tagCol: "industry_id", tagTable: "industries",
		tagFK: "fk_mentor_industries_tag", field: "industryIds",
	}
	expertiseJoin = joinTable{
		name: "mentor_expertise", tagCol: "expertise_id", tagTable: "expertise_areas",
		tagFK: "fk_mentor_expertise_tag", field: "expertiseAreaIds",
	}
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a mentor in any approval state, tags included.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Mentor, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByOwner returns the mentor owned by the given identity.
func (r *Repo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Mentor, error) {
	return r.getOne(ctx, squirrel.Eq{"owner_id": ownerID}, ownerID)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (domain.Mentor, error) {
	query, args, err := postgres.Builder.Select(columns...).From("mentors").Where(where).ToSql()
	if err != nil {
		return domain.Mentor{}, fmt.Errorf("build get mentor query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row, err := postgres.SelectOne[mentorRow](ctx, q, query, args...)
	if err != nil {
		return domain.Mentor{}, postgres.MapError(err, entity, id)
	}

	mentors := []domain.Mentor{row.toDomain()}
	if err := r.attachTags(ctx, mentors); err != nil {
		return domain.Mentor{}, err
	}
	return mentors[0], nil
}

// ListApproved returns approved mentors newest first. Each set filter must
// match one of the mentor's tags (AND across filters).
func (r *Repo) ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error) {
	sb := postgres.Builder.
		Select(columns...).
		From("mentors").
		Where(squirrel.Eq{"is_approved": true})

	if filter.IndustryID != nil {
		sb = sb.Where(hasTag(industryJoin, *filter.IndustryID))
	}
	if filter.ExpertiseID != nil {
		sb = sb.Where(hasTag(expertiseJoin, *filter.ExpertiseID))
	}

	return r.list(ctx, sb.OrderBy("created_at DESC", "id ASC"))
}

// ListAll returns every mentor, pending ones first, then newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Mentor, error) {
	sb := postgres.Builder.
		Select(columns...).
		From("mentors").
		OrderBy("is_approved ASC", "created_at DESC", "id ASC")

	return r.list(ctx, sb)
}

func hasTag(j joinTable, tagID string) squirrel.Sqlizer {
	return squirrel.Expr(
		fmt.Sprintf("EXISTS (SELECT 1 FROM %s j WHERE j.mentor_id = mentors.id AND j.%s = ?)", j.name, j.tagCol),
		tagID,
	)
}

func (r *Repo) list(ctx context.Context, sb squirrel.SelectBuilder) ([]domain.Mentor, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list mentors query: %w", err)
	}

	rows, err := postgres.SelectAll[mentorRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	mentors := make([]domain.Mentor, len(rows))
	for i, row := range rows {
		mentors[i] = row.toDomain()
	}
	if err := r.attachTags(ctx, mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// CountByApproval returns the number of approved and pending mentors.
func (r *Repo) CountByApproval(ctx context.Context) (domain.MentorCounts, error) {
	var counts domain.MentorCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FILTER (WHERE is_approved), count(*) FILTER (WHERE NOT is_approved) FROM mentors`,
	).Scan(&counts.Approved, &counts.Pending)
	if err != nil {
		return domain.MentorCounts{}, fmt.Errorf("count mentors: %w", err)
	}
	return counts, nil
}

// attachTags loads industries and expertise areas for the given mentors in
// two queries, each tag list ordered by name.
func (r *Repo) attachTags(ctx context.Context, mentors []domain.Mentor) error {
	if len(mentors) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(mentors))
	index := make(map[uuid.UUID]int, len(mentors))
	for i, m := range mentors {
		ids[i] = m.ID
		index[m.ID] = i
	}

	for _, j := range []joinTable{industryJoin, expertiseJoin} {
		links, err := r.loadLinks(ctx, j, ids)
		if err != nil {
			return err
		}
		for _, l := range links {
			m := &mentors[index[l.MentorID]]
			tag := domain.Tag{ID: l.ID, Name: l.Name}
			if j == industryJoin {
				m.Industries = append(m.Industries, tag)
			} else {
				m.ExpertiseAreas = append(m.ExpertiseAreas, tag)
			}
		}
	}
	return nil
}

func (r *Repo) loadLinks(ctx context.Context, j joinTable, mentorIDs []uuid.UUID) ([]tagLinkRow, error) {
	query, args, err := postgres.Builder.
		Select("j.mentor_id", "t.id", "t.name").
		From(j.name+" j").
		Join(fmt.Sprintf("%s t ON t.id = j.%s", j.tagTable, j.tagCol)).
		Where(squirrel.Eq{"j.mentor_id": mentorIDs}).
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", j.name, err)
	}

	links, err := postgres.SelectAll[tagLinkRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", j.name, err)
	}
	return links, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the mentor row and its join rows. The caller provides the
// transaction; a second mentor for the same owner yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m domain.Mentor, industryIDs, expertiseIDs []string) (domain.Mentor, error) {
	query, args, err := postgres.Builder.
		Insert("mentors").
		Columns(columns...).
		Values(m.ID, m.UserID, m.Bio, m.ContactEmail, m.LinkedInURL, m.IsApproved, m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Mentor{}, fmt.Errorf("build insert mentor query: %w", err)
	}

	row, err := postgres.SelectOne[mentorRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return domain.Mentor{}, postgres.MapError(err, entity, m.ID)
	}

	if err := r.insertLinks(ctx, industryJoin, row.ID, industryIDs); err != nil {
		return domain.Mentor{}, err
	}
	if err := r.insertLinks(ctx, expertiseJoin, row.ID, expertiseIDs); err != nil {
		return domain.Mentor{}, err
	}

	return r.GetByID(ctx, row.ID)
}

// Update applies the non-nil scalar fields and bumps updated_at.
// An empty LinkedInURL clears the stored link.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MentorUpdateParams) (domain.Mentor, error) {
	ub := postgres.Builder.
		Update("mentors").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Bio != nil {
		ub = ub.Set("bio", *params.Bio)
	}
	if params.ContactEmail != nil {
		ub = ub.Set("contact_email", *params.ContactEmail)
	}
	if params.LinkedInURL != nil {
		if *params.LinkedInURL == "" {
			ub = ub.Set("linkedin_url", nil)
		} else {
			ub = ub.Set("linkedin_url", *params.LinkedInURL)
		}
	}

	return r.updateReturning(ctx, ub, id)
}

// SetApproval sets is_approved. Repeating the same value is a no-op that
// leaves updated_at untouched.
func (r *Repo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (domain.Mentor, error) {
	ub := postgres.Builder.
		Update("mentors").
		Set("is_approved", approved).
		Set("updated_at", squirrel.Expr("CASE WHEN is_approved = ? THEN updated_at ELSE now() END", approved)).
		Where(squirrel.Eq{"id": id})

	return r.updateReturning(ctx, ub, id)
}

func (r *Repo) updateReturning(ctx context.Context, ub squirrel.UpdateBuilder, id uuid.UUID) (domain.Mentor, error) {
	query, args, err := ub.Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return domain.Mentor{}, fmt.Errorf("build update mentor query: %w", err)
	}

	if _, err := postgres.SelectOne[mentorRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...); err != nil {
		return domain.Mentor{}, postgres.MapError(err, entity, id)
	}
	return r.GetByID(ctx, id)
}

// ReplaceIndustries rewrites the mentor's industry links to exactly ids.
// Must run inside the same transaction as the surrounding edit.
func (r *Repo) ReplaceIndustries(ctx context.Context, mentorID uuid.UUID, ids []string) error {
	return r.replaceLinks(ctx, industryJoin, mentorID, ids)
}

// ReplaceExpertise rewrites the mentor's expertise links to exactly ids.
// Must run inside the same transaction as the surrounding edit.
func (r *Repo) ReplaceExpertise(ctx context.Context, mentorID uuid.UUID, ids []string) error {
	return r.replaceLinks(ctx, expertiseJoin, mentorID, ids)
}

func (r *Repo) replaceLinks(ctx context.Context, j joinTable, mentorID uuid.UUID, ids []string) error {
	query, args, err := postgres.Builder.
		Delete(j.name).
		Where(squirrel.Eq{"mentor_id": mentorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", j.name, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, j.name, mentorID)
	}

	return r.insertLinks(ctx, j, mentorID, ids)
}

func (r *Repo) insertLinks(ctx context.Context, j joinTable, mentorID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	ib := postgres.Builder.Insert(j.name).Columns("mentor_id", j.tagCol)
	for _, id := range ids {
		ib = ib.Values(mentorID, id)
	}

	query, args, err := ib.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", j.name, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		// A tag removed after the service checked the ids.
		if postgres.ConstraintName(err) == j.tagFK {
			return domain.NewValidationError(j.field, "unknown id")
		}
		return postgres.MapError(err, j.name, mentorID)
	}
	return nil
}

// Delete removes the mentor; join rows cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("mentors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete mentor query: %w", err)
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

func joinColumns() string {
	return strings.Join(columns, ", ")
}
