package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

const (
	PhaseIndustries = "industries"
	PhaseExpertise  = "expertise"
	PhaseEvents     = "events"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseIndustries, PhaseExpertise, PhaseEvents}

// DefaultPhases are run when the caller names none. Sample events are opt-in.
var DefaultPhases = []string{PhaseIndustries, PhaseExpertise}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Written  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the database phase by phase. Every phase is idempotent.
type Pipeline struct {
	log     *slog.Logger
	tags    TagWriter
	events  EventWriter
	vocab   Vocabulary
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, tags TagWriter, events EventWriter, vocab Vocabulary, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		tags:    tags,
		events:  events,
		vocab:   vocab,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the named phases in canonical order; empty means DefaultPhases.
// Unknown phase names are rejected before anything is written.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if len(phases) == 0 {
		phases = DefaultPhases
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("unknown phase %q (known: %s)", ph, strings.Join(allPhases, ", "))
		}
	}

	var toRun []string
	for _, ph := range allPhases {
		if slices.Contains(phases, ph) {
			toRun = append(toRun, ph)
		}
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case PhaseIndustries:
			result = p.runTags(ctx, domain.TagKindIndustry, p.vocab.Industries)
		case PhaseExpertise:
			result = p.runTags(ctx, domain.TagKindExpertise, p.vocab.ExpertiseAreas)
		case PhaseEvents:
			result = p.runEvents(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("written", result.Written),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runTags upserts one vocabulary. Names mapping to the same slug collapse
// to the first occurrence.
func (p *Pipeline) runTags(ctx context.Context, kind domain.TagKind, names []string) PhaseResult {
	tags, dupes := buildTags(names)
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(tags) + dupes}
	}

	written, err := batchProcess(tags, p.cfg.BatchSize, func(batch []domain.Tag) (int, error) {
		n, err := p.tags.Upsert(ctx, kind, batch)
		return int(n), err
	})
	if err != nil {
		return PhaseResult{Written: written, Err: fmt.Errorf("upsert %s: %w", kind, err)}
	}
	return PhaseResult{Written: written, Skipped: dupes}
}

// runEvents inserts the sample events missing from the catalog. An event
// counts as present when one with the same title and start time exists.
func (p *Pipeline) runEvents(ctx context.Context) PhaseResult {
	existing, err := p.events.ListAll(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list events: %w", err)}
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[eventKey(e)] = true
	}

	var result PhaseResult
	now := p.now().UTC()
	for _, e := range SampleEvents() {
		if seen[eventKey(e)] || p.cfg.DryRun {
			result.Skipped++
			continue
		}
		e.ID = uuid.New()
		e.CreatedAt = now
		e.UpdatedAt = now
		if _, err := p.events.Create(ctx, e); err != nil {
			result.Err = fmt.Errorf("create event %q: %w", e.Title, err)
			return result
		}
		result.Written++
	}
	return result
}

func eventKey(e domain.Event) string {
	return e.Title + "|" + e.Date.UTC().Format(time.RFC3339)
}

func buildTags(names []string) ([]domain.Tag, int) {
	tags := make([]domain.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	dupes := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		id := domain.TagSlug(name)
		if id == "" || seen[id] {
			dupes++
			continue
		}
		seen[id] = true
		tags = append(tags, domain.Tag{ID: id, Name: name})
	}
	return tags, dupes
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
