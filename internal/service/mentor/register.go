package mentor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

// Register creates a pending mentor record owned by the caller.
// A caller may own at most one mentor record.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.Mentor, error) {
	caller, err := AuthorizeCtx(ctx, ActionRegister)
	if err != nil {
		return domain.Mentor{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Mentor{}, err
	}

	_, err = s.mentors.GetByOwner(ctx, caller.UserID)
	switch {
	case err == nil:
		return domain.Mentor{}, fmt.Errorf("mentor for user %s: %w", caller.UserID, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Mentor{}, fmt.Errorf("get mentor by owner: %w", err)
	}

	if err := s.checkTags(ctx, input.IndustryIDs, input.ExpertiseIDs); err != nil {
		return domain.Mentor{}, err
	}

	now := s.now()
	var created domain.Mentor
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.mentors.Create(txCtx, domain.Mentor{
			ID:           uuid.New(),
			UserID:       caller.UserID,
			Bio:          input.Bio,
			ContactEmail: input.ContactEmail,
			LinkedInURL:  input.LinkedInURL,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, input.IndustryIDs, input.ExpertiseIDs)
		if createErr != nil {
			return fmt.Errorf("create mentor: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    caller.UserID,
			EntityType: domain.EntityTypeMentor,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"industryIds":      map[string]any{"new": input.IndustryIDs},
				"expertiseAreaIds": map[string]any{"new": input.ExpertiseIDs},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.Mentor{}, err
	}

	s.log.InfoContext(ctx, "mentor registered",
		slog.String("user_id", caller.UserID.String()),
		slog.String("mentor_id", created.ID.String()),
	)

	return created, nil
}
