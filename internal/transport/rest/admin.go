package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/event"
)

type moderationService interface {
	ListMentors(ctx context.Context) ([]domain.Mentor, error)
	SetApproval(ctx context.Context, mentorID uuid.UUID, approved bool) (domain.Mentor, bool, error)
	DeleteMentor(ctx context.Context, mentorID uuid.UUID) error
	Stats(ctx context.Context) (domain.DashboardStats, error)
	History(ctx context.Context, mentorID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type eventAdminService interface {
	ListAll(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEvent(ctx context.Context, input event.EventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input event.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type moderationRecorder interface {
	IncrementModeration(action string)
}

// AdminHandler serves the admin dashboard endpoints. Routes are expected to
// sit behind middleware.AdminOnly; the services enforce the role again.
type AdminHandler struct {
	moderation moderationService
	events     eventAdminService
	metrics    moderationRecorder
	log        *slog.Logger
	now        func() time.Time
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, events eventAdminService, metrics moderationRecorder, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		events:     events,
		metrics:    metrics,
		log:        logger.With("handler", "admin"),
		now:        time.Now,
	}
}

type setApprovalRequest struct {
	IsApproved *bool `json:"isApproved"`
}

type eventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	IsOnline     bool      `json:"isOnline"`
	ZoomLink     *string   `json:"zoomLink"`
	Location     *string   `json:"location"`
	RecordingURL *string   `json:"recordingUrl"`
	ImageURL     *string   `json:"imageUrl"`
}

func (req eventRequest) toInput() event.EventInput {
	return event.EventInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		IsOnline:     req.IsOnline,
		ZoomLink:     req.ZoomLink,
		Location:     req.Location,
		RecordingURL: req.RecordingURL,
		ImageURL:     req.ImageURL,
	}
}

// ---------------------------------------------------------------------------
// Mentors
// ---------------------------------------------------------------------------

// ListMentors handles GET /admin/mentors.
func (h *AdminHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.moderation.ListMentors(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponses(mentors))
}

// SetApproval handles PATCH /admin/mentors/{id}.
func (h *AdminHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setApprovalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsApproved == nil {
		handleError(h.log, w, r, domain.NewValidationError("isApproved", "required"))
		return
	}

	m, changed, err := h.moderation.SetApproval(r.Context(), id, *req.IsApproved)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	switch {
	case !changed:
	case *req.IsApproved:
		h.metrics.IncrementModeration("approve")
	default:
		h.metrics.IncrementModeration("revoke")
	}
	writeJSON(w, http.StatusOK, toMentorResponse(m))
}

// DeleteMentor handles DELETE /admin/mentors/{id}.
func (h *AdminHandler) DeleteMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.moderation.DeleteMentor(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.IncrementModeration("delete")
	w.WriteHeader(http.StatusNoContent)
}

// MentorHistory handles GET /admin/mentors/{id}/history?limit=.
func (h *AdminHandler) MentorHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer in 1..500"))
			return
		}
		limit = n
	}

	records, err := h.moderation.History(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.moderation.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse(stats))
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// ListEvents handles GET /admin/events.
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events, h.now()))
}

// GetEvent handles GET /admin/events/{id}.
func (h *AdminHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e, h.now()))
}

// CreateEvent handles POST /admin/events.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.events.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(e, h.now()))
}

// UpdateEvent handles PUT /admin/events/{id}.
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.events.UpdateEvent(r.Context(), id, req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e, h.now()))
}

// DeleteEvent handles DELETE /admin/events/{id}.
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.events.DeleteEvent(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
