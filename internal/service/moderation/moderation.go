package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/mentor"
)

// DefaultHistoryLimit caps History when the caller passes limit <= 0.
const DefaultHistoryLimit = 50

// SetApproval approves or revokes a mentor and reports whether the approval
// state changed. Repeating the current state is a no-op that is not audited.
func (s *Service) SetApproval(ctx context.Context, mentorID uuid.UUID, approved bool) (domain.Mentor, bool, error) {
	admin, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate)
	if err != nil {
		return domain.Mentor{}, false, err
	}

	var updated domain.Mentor
	changed := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.mentors.GetByID(txCtx, mentorID)
		if getErr != nil {
			return fmt.Errorf("get mentor: %w", getErr)
		}

		var setErr error
		updated, setErr = s.mentors.SetApproval(txCtx, mentorID, approved)
		if setErr != nil {
			return fmt.Errorf("set approval: %w", setErr)
		}

		if old.IsApproved == approved {
			return nil
		}
		changed = true

		action := domain.AuditActionRevoke
		if approved {
			action = domain.AuditActionApprove
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    admin.UserID,
			EntityType: domain.EntityTypeMentor,
			EntityID:   &mentorID,
			Action:     action,
			Changes: map[string]any{
				"isApproved": map[string]any{"old": old.IsApproved, "new": approved},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Mentor{}, false, err
	}

	if changed {
		s.log.InfoContext(ctx, "mentor approval changed",
			slog.String("admin_id", admin.UserID.String()),
			slog.String("mentor_id", mentorID.String()),
			slog.Bool("approved", approved),
		)
	}

	return updated, changed, nil
}

// DeleteMentor removes a mentor and its tag links. The audit record keeps a
// snapshot of the removed profile.
func (s *Service) DeleteMentor(ctx context.Context, mentorID uuid.UUID) error {
	admin, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.mentors.GetByID(txCtx, mentorID)
		if getErr != nil {
			return fmt.Errorf("get mentor: %w", getErr)
		}

		if delErr := s.mentors.Delete(txCtx, mentorID); delErr != nil {
			return fmt.Errorf("delete mentor: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    admin.UserID,
			EntityType: domain.EntityTypeMentor,
			EntityID:   &mentorID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"userId":           map[string]any{"old": old.UserID.String()},
				"bio":              map[string]any{"old": old.Bio},
				"contactEmail":     map[string]any{"old": old.ContactEmail},
				"isApproved":       map[string]any{"old": old.IsApproved},
				"industryIds":      map[string]any{"old": old.IndustryIDs()},
				"expertiseAreaIds": map[string]any{"old": old.ExpertiseIDs()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "mentor deleted",
		slog.String("admin_id", admin.UserID.String()),
		slog.String("mentor_id", mentorID.String()),
	)

	return nil
}

// ListMentors returns every mentor, pending first.
func (s *Service) ListMentors(ctx context.Context) ([]domain.Mentor, error) {
	if _, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate); err != nil {
		return nil, err
	}

	mentors, err := s.mentors.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	return mentors, nil
}

// Stats returns the dashboard counters. Mentor and event counts are read
// concurrently.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if _, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate); err != nil {
		return domain.DashboardStats{}, err
	}

	var (
		mentorCounts domain.MentorCounts
		eventCounts  domain.EventCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mentorCounts, err = s.mentors.CountByApproval(gctx)
		if err != nil {
			return fmt.Errorf("count mentors: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		eventCounts, err = s.events.Count(gctx, s.now())
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		TotalEvents:     eventCounts.Total,
		UpcomingEvents:  eventCounts.Upcoming,
		ApprovedMentors: mentorCounts.Approved,
		PendingMentors:  mentorCounts.Pending,
	}, nil
}

// History returns the audit trail of one mentor, newest first. Records of
// deleted mentors remain available.
func (s *Service) History(ctx context.Context, mentorID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if _, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.audit.ListByEntity(ctx, domain.EntityTypeMentor, mentorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list mentor history: %w", err)
	}
	return records, nil
}
