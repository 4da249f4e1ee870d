package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/mentor"
)

// ---------------------------------------------------------------------------
// Public catalog
// ---------------------------------------------------------------------------

// ListUpcoming returns events starting now or later, soonest first.
func (s *Service) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

// ListPast returns events that already started, most recent first.
func (s *Service) ListPast(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.ListPast(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list past events: %w", err)
	}
	return events, nil
}

// GetEvent returns a single event.
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Administration
// ---------------------------------------------------------------------------

// ListAll returns every event, latest date first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Event, error) {
	if _, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate); err != nil {
		return nil, err
	}

	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// CreateEvent adds an event to the catalog.
func (s *Service) CreateEvent(ctx context.Context, input EventInput) (domain.Event, error) {
	admin, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate)
	if err != nil {
		return domain.Event{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	now := s.now()
	var created domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.events.Create(txCtx, input.apply(domain.Event{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		}))
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    admin.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title": map[string]any{"new": created.Title},
				"date":  map[string]any{"new": created.Date},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("admin_id", admin.UserID.String()),
		slog.String("event_id", created.ID.String()),
	)

	return created, nil
}

// UpdateEvent replaces every editable field of an event.
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, input EventInput) (domain.Event, error) {
	admin, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate)
	if err != nil {
		return domain.Event{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	var updated domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.events.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get event: %w", getErr)
		}

		var updErr error
		updated, updErr = s.events.Update(txCtx, input.apply(old))
		if updErr != nil {
			return fmt.Errorf("update event: %w", updErr)
		}

		changes := buildEventChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    admin.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	s.log.InfoContext(ctx, "event updated",
		slog.String("admin_id", admin.UserID.String()),
		slog.String("event_id", id.String()),
	)

	return updated, nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	admin, err := mentor.AuthorizeCtx(ctx, mentor.ActionModerate)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.events.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get event: %w", getErr)
		}

		if delErr := s.events.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete event: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    admin.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": old.Title},
				"date":  map[string]any{"old": old.Date},
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

	s.log.InfoContext(ctx, "event deleted",
		slog.String("admin_id", admin.UserID.String()),
		slog.String("event_id", id.String()),
	)

	return nil
}

func buildEventChanges(old, updated domain.Event) map[string]any {
	changes := make(map[string]any)

	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if !old.Date.Equal(updated.Date) {
		changes["date"] = map[string]any{"old": old.Date, "new": updated.Date}
	}
	if old.IsOnline != updated.IsOnline {
		changes["isOnline"] = map[string]any{"old": old.IsOnline, "new": updated.IsOnline}
	}
	for field, pair := range map[string][2]*string{
		"zoomLink":     {old.ZoomLink, updated.ZoomLink},
		"location":     {old.Location, updated.Location},
		"recordingUrl": {old.RecordingURL, updated.RecordingURL},
		"imageUrl":     {old.ImageURL, updated.ImageURL},
	} {
		if !ptrStringEqual(pair[0], pair[1]) {
			changes[field] = map[string]any{"old": pair[0], "new": pair[1]}
		}
	}

	return changes
}

func ptrStringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
