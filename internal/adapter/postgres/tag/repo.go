// Package tag implements the Industry / ExpertiseArea catalog repository.
package tag

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/workchatseattle/community-backend/internal/adapter/postgres"
	"github.com/workchatseattle/community-backend/internal/domain"
)

// Repo provides tag catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type tagRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func tableFor(kind domain.TagKind) (string, error) {
	switch kind {
	case domain.TagKindIndustry:
		return "industries", nil
	case domain.TagKindExpertise:
		return "expertise_areas", nil
	}
	return "", fmt.Errorf("unknown tag kind %q", kind)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every tag of the given kind ordered by name.
func (r *Repo) List(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select("id", "name").
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", table, err)
	}

	rows, err := postgres.SelectAll[tagRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = domain.Tag{ID: row.ID, Name: row.Name}
	}
	return tags, nil
}

// Catalog returns both vocabularies, each ordered by name.
func (r *Repo) Catalog(ctx context.Context) (domain.TagCatalog, error) {
	industries, err := r.List(ctx, domain.TagKindIndustry)
	if err != nil {
		return domain.TagCatalog{}, err
	}
	expertise, err := r.List(ctx, domain.TagKindExpertise)
	if err != nil {
		return domain.TagCatalog{}, err
	}
	return domain.TagCatalog{Industries: industries, ExpertiseAreas: expertise}, nil
}

// MissingIDs returns the ids (in input order) that do not exist in the catalog.
func (r *Repo) MissingIDs(ctx context.Context, kind domain.TagKind, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Select("id").
		From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup %s query: %w", table, err)
	}

	found, err := postgres.SelectAll[string](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", table, err)
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the tags or renames existing ones with the same id.
// Returns the number of rows written.
func (r *Repo) Upsert(ctx context.Context, kind domain.TagKind, tags []domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	insert := postgres.Builder.Insert(table).Columns("id", "name")
	for _, t := range tags {
		insert = insert.Values(t.ID, t.Name)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert %s query: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, string(kind), tags[0].ID)
	}
	return tag.RowsAffected(), nil
}
