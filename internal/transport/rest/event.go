package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type publicEventService interface {
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	ListPast(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

// EventHandler serves the public event catalog.
type EventHandler struct {
	svc publicEventService
	log *slog.Logger
	now func() time.Time
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc publicEventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event"), now: time.Now}
}

// ListUpcoming handles GET /events.
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListUpcoming(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events, h.now()))
}

// ListPast handles GET /events/past.
func (h *EventHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListPast(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events, h.now()))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e, h.now()))
}
