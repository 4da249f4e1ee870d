// Package seeder fills the reference vocabularies and, on request, the
// sample event catalog.
package seeder

import (
	"context"

	"github.com/workchatseattle/community-backend/internal/domain"
)

// TagWriter is implemented by tag.Repo.
type TagWriter interface {
	Upsert(ctx context.Context, kind domain.TagKind, tags []domain.Tag) (int64, error)
}

// EventWriter is implemented by event.Repo.
type EventWriter interface {
	ListAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
}
