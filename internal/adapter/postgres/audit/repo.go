// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/workchatseattle/community-backend/internal/adapter/postgres"
	"github.com/workchatseattle/community-backend/internal/domain"
)

const entity = "audit_record"

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type auditRow struct {
	ID         uuid.UUID   `db:"id"`
	ActorID    uuid.UUID   `db:"actor_id"`
	EntityType string      `db:"entity_type"`
	EntityID   pgtype.UUID `db:"entity_id"`
	Action     string      `db:"action"`
	Changes    []byte      `db:"changes"`
	CreatedAt  time.Time   `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// ID and CreatedAt are generated when zero.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("%s marshal changes: %w", entity, err)
	}

	query, args, err := postgres.Builder.
		Insert("audit_log").
		Columns(columns...).
		Values(record.ID, record.ActorID, string(record.EntityType), uuidPtrToPgUUID(record.EntityID),
			string(record.Action), changesJSON, record.CreatedAt).
		Suffix("RETURNING id, actor_id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert %s query: %w", entity, err)
	}

	row, err := postgres.SelectOne[auditRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, entity, record.ID)
	}

	return toDomainAuditRecord(row)
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger dependency of the mentor, moderation and event services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the change history for a specific entity, newest
// first, limited to `limit` records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit)
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("audit_log").
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", entity, err)
	}

	rows, err := postgres.SelectAll[auditRow](ctx, postgres.QuerierFromCtx(ctx, r.pool), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomainAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainAuditRecord(row auditRow) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		ActorID:    row.ActorID,
		EntityType: domain.EntityType(row.EntityType),
		Action:     domain.AuditAction(row.Action),
		Changes:    map[string]any{},
		CreatedAt:  row.CreatedAt,
	}

	if row.EntityID.Valid {
		id := uuid.UUID(row.EntityID.Bytes)
		record.EntityID = &id
	}

	if len(row.Changes) > 0 {
		if err := json.Unmarshal(row.Changes, &record.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("%s %s unmarshal changes: %w", entity, row.ID, err)
		}
	}

	return record, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
