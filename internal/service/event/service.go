package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error)
	ListPast(ctx context.Context, now time.Time) ([]domain.Event, error)
	ListAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
	Update(ctx context.Context, e domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the community event catalog.
type Service struct {
	events eventRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new event service.
func NewService(log *slog.Logger, events eventRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		events: events,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "event"),
		now:    time.Now,
	}
}
