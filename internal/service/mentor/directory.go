package mentor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/pkg/ctxutil"
)

// ListApproved returns the public directory, newest first.
// Blank filter values are ignored.
func (s *Service) ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error) {
	filter.IndustryID = blankToNil(filter.IndustryID)
	filter.ExpertiseID = blankToNil(filter.ExpertiseID)

	mentors, err := s.mentors.ListApproved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list approved mentors: %w", err)
	}
	return mentors, nil
}

// GetPublic returns one mentor. Unapproved mentors are reported as not
// found unless the caller owns the record or is an admin.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (domain.Mentor, error) {
	m, err := s.mentors.GetByID(ctx, id)
	if err != nil {
		return domain.Mentor{}, fmt.Errorf("get mentor: %w", err)
	}

	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !CanView(caller, ok, m) {
		return domain.Mentor{}, fmt.Errorf("mentor %s: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// Options returns the industry and expertise vocabularies sorted by name.
func (s *Service) Options(ctx context.Context) (domain.TagCatalog, error) {
	catalog, err := s.tags.Catalog(ctx)
	if err != nil {
		return domain.TagCatalog{}, fmt.Errorf("tag catalog: %w", err)
	}
	return catalog, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
