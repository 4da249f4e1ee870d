package mentor

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/workchatseattle/community-backend/internal/domain"
)

// GetOwnProfile returns the caller's mentor record in any approval state.
func (s *Service) GetOwnProfile(ctx context.Context) (domain.Mentor, error) {
	caller, err := AuthorizeCtx(ctx, ActionManageOwn)
	if err != nil {
		return domain.Mentor{}, err
	}

	m, err := s.mentors.GetByOwner(ctx, caller.UserID)
	if err != nil {
		return domain.Mentor{}, fmt.Errorf("get own mentor: %w", err)
	}
	return m, nil
}

// UpdateOwnProfile applies a partial edit to the caller's mentor record.
// The target is always resolved from the caller's identity. Supplied tag
// sets replace the current ones in the same transaction as the scalar edit.
func (s *Service) UpdateOwnProfile(ctx context.Context, input UpdateProfileInput) (domain.Mentor, error) {
	caller, err := AuthorizeCtx(ctx, ActionManageOwn)
	if err != nil {
		return domain.Mentor{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Mentor{}, err
	}

	if err := s.checkTags(ctx, input.IndustryIDs, input.ExpertiseIDs); err != nil {
		return domain.Mentor{}, err
	}

	var updated domain.Mentor
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.mentors.GetByOwner(txCtx, caller.UserID)
		if getErr != nil {
			return fmt.Errorf("get own mentor: %w", getErr)
		}

		if _, updErr := s.mentors.Update(txCtx, old.ID, input.params()); updErr != nil {
			return fmt.Errorf("update mentor: %w", updErr)
		}
		if input.IndustryIDs != nil {
			if repErr := s.mentors.ReplaceIndustries(txCtx, old.ID, input.IndustryIDs); repErr != nil {
				return fmt.Errorf("replace industries: %w", repErr)
			}
		}
		if input.ExpertiseIDs != nil {
			if repErr := s.mentors.ReplaceExpertise(txCtx, old.ID, input.ExpertiseIDs); repErr != nil {
				return fmt.Errorf("replace expertise: %w", repErr)
			}
		}

		var reloadErr error
		updated, reloadErr = s.mentors.GetByID(txCtx, old.ID)
		if reloadErr != nil {
			return fmt.Errorf("reload mentor: %w", reloadErr)
		}

		changes := buildProfileChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    caller.UserID,
			EntityType: domain.EntityTypeMentor,
			EntityID:   &old.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Mentor{}, err
	}

	s.log.InfoContext(ctx, "mentor profile updated",
		slog.String("user_id", caller.UserID.String()),
		slog.String("mentor_id", updated.ID.String()),
	)

	return updated, nil
}

func buildProfileChanges(old, updated domain.Mentor) map[string]any {
	changes := make(map[string]any)

	if old.Bio != updated.Bio {
		changes["bio"] = map[string]any{"old": old.Bio, "new": updated.Bio}
	}
	if old.ContactEmail != updated.ContactEmail {
		changes["contactEmail"] = map[string]any{"old": old.ContactEmail, "new": updated.ContactEmail}
	}
	if !ptrStringEqual(old.LinkedInURL, updated.LinkedInURL) {
		changes["linkedInUrl"] = map[string]any{"old": old.LinkedInURL, "new": updated.LinkedInURL}
	}
	if oldIDs, newIDs := old.IndustryIDs(), updated.IndustryIDs(); !sameSet(oldIDs, newIDs) {
		changes["industryIds"] = map[string]any{"old": oldIDs, "new": newIDs}
	}
	if oldIDs, newIDs := old.ExpertiseIDs(), updated.ExpertiseIDs(); !sameSet(oldIDs, newIDs) {
		changes["expertiseAreaIds"] = map[string]any{"old": oldIDs, "new": newIDs}
	}

	return changes
}

func ptrStringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
