package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/internal/service/mentor"
)

type mentorService interface {
	Register(ctx context.Context, input mentor.RegisterInput) (domain.Mentor, error)
	GetOwnProfile(ctx context.Context) (domain.Mentor, error)
	UpdateOwnProfile(ctx context.Context, input mentor.UpdateProfileInput) (domain.Mentor, error)
	ListApproved(ctx context.Context, filter domain.MentorFilter) ([]domain.Mentor, error)
	GetPublic(ctx context.Context, id uuid.UUID) (domain.Mentor, error)
	Options(ctx context.Context) (domain.TagCatalog, error)
}

type registrationRecorder interface {
	IncrementMentorsRegistered()
}

// MentorHandler serves the public directory and the caller's own mentor profile.
type MentorHandler struct {
	svc     mentorService
	metrics registrationRecorder
	log     *slog.Logger
}

// NewMentorHandler creates a MentorHandler.
func NewMentorHandler(svc mentorService, metrics registrationRecorder, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{svc: svc, metrics: metrics, log: logger.With("handler", "mentor")}
}

type registerMentorRequest struct {
	Bio          string   `json:"bio"`
	LinkedInURL  *string  `json:"linkedInUrl"`
	ContactEmail string   `json:"contactEmail"`
	IndustryIDs  []string `json:"industryIds"`
	ExpertiseIDs []string `json:"expertiseAreaIds"`
}

// updateProfileRequest distinguishes an absent or null tag list (nil pointer)
// from an explicitly empty one.
type updateProfileRequest struct {
	Bio          *string   `json:"bio"`
	LinkedInURL  *string   `json:"linkedInUrl"`
	ContactEmail *string   `json:"contactEmail"`
	IndustryIDs  *[]string `json:"industryIds"`
	ExpertiseIDs *[]string `json:"expertiseAreaIds"`
}

// Register handles POST /mentors/register.
func (h *MentorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMentorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.Register(r.Context(), mentor.RegisterInput{
		Bio:          req.Bio,
		ContactEmail: req.ContactEmail,
		LinkedInURL:  req.LinkedInURL,
		IndustryIDs:  req.IndustryIDs,
		ExpertiseIDs: req.ExpertiseIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.IncrementMentorsRegistered()
	writeJSON(w, http.StatusOK, toMentorResponse(m))
}

// GetProfile handles GET /mentors/profile.
func (h *MentorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetOwnProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponse(m))
}

// UpdateProfile handles PUT /mentors/profile.
func (h *MentorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := mentor.UpdateProfileInput{
		Bio:          req.Bio,
		ContactEmail: req.ContactEmail,
		LinkedInURL:  req.LinkedInURL,
	}
	if req.IndustryIDs != nil {
		input.IndustryIDs = nonNil(*req.IndustryIDs)
	}
	if req.ExpertiseIDs != nil {
		input.ExpertiseIDs = nonNil(*req.ExpertiseIDs)
	}

	m, err := h.svc.UpdateOwnProfile(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponse(m))
}

// List handles GET /mentors?industry=&expertise=.
func (h *MentorHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.MentorFilter
	q := r.URL.Query()
	if v := q.Get("industry"); v != "" {
		filter.IndustryID = &v
	}
	if v := q.Get("expertise"); v != "" {
		filter.ExpertiseID = &v
	}

	mentors, err := h.svc.ListApproved(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponses(mentors))
}

// Get handles GET /mentors/{id}.
func (h *MentorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponse(m))
}

// Options handles GET /mentors/options.
func (h *MentorHandler) Options(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.Options(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{
		Industries:     toTagResponses(catalog.Industries),
		ExpertiseAreas: toTagResponses(catalog.ExpertiseAreas),
	})
}

// nonNil keeps an explicit list non-nil so the service treats it as a replacement.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
