package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type mentorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Mentor, error)
	ListAll(ctx context.Context) ([]domain.Mentor, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (domain.Mentor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByApproval(ctx context.Context) (domain.MentorCounts, error)
}

type eventCounter interface {
	Count(ctx context.Context, now time.Time) (domain.EventCounts, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the admin side of the mentor program: approval,
// removal, the dashboard counters and the change history.
type Service struct {
	mentors mentorRepo
	events  eventCounter
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	mentors mentorRepo,
	events eventCounter,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		mentors: mentors,
		events:  events,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "moderation"),
		now:     time.Now,
	}
}
