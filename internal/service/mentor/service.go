package mentor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type mentorRepo interface {
	Create(ctx context.Context, m domain.Mentor, industryIDs, expertiseIDs []string) (domain.Mentor, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Mentor, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Mentor, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MentorUpdateParams) (domain.Mentor, error)
	ReplaceIndustries(ctx context.Context, mentorID uuid.UUID, ids []string) error
	ReplaceExpertise(ctx context.Context, mentorID uuid.UUID, ids []string) error
	ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error)
}

type tagCatalog interface {
	Catalog(ctx context.Context) (domain.TagCatalog, error)
	MissingIDs(ctx context.Context, kind domain.TagKind, ids []string) ([]string, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides mentor registration, self-service profile editing and
// the public directory.
type Service struct {
	mentors mentorRepo
	tags    tagCatalog
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Mentor service.
func NewService(
	log *slog.Logger,
	mentors mentorRepo,
	tags tagCatalog,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		mentors: mentors,
		tags:    tags,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "mentor"),
		now:     time.Now,
	}
}

// checkTags reports unknown industry / expertise ids as field errors.
// nil slices are skipped.
func (s *Service) checkTags(ctx context.Context, industryIDs, expertiseIDs []string) error {
	var v domain.Violations

	for _, c := range []struct {
		kind  domain.TagKind
		field string
		ids   []string
	}{
		{domain.TagKindIndustry, fieldIndustryIDs, industryIDs},
		{domain.TagKindExpertise, fieldExpertiseIDs, expertiseIDs},
	} {
		if len(c.ids) == 0 {
			continue
		}
		missing, err := s.tags.MissingIDs(ctx, c.kind, c.ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			v.Add(c.field, "unknown id: "+strings.Join(missing, ", "))
		}
	}

	return v.Err()
}
