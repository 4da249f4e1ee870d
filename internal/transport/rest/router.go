package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workchatseattle/community-backend/internal/config"
	"github.com/workchatseattle/community-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter wires together.
type RouterDeps struct {
	Config         config.Config
	Logger         *slog.Logger
	TokenValidator middleware.TokenValidator
	RequestMetrics middleware.RequestObserver
	MetricsHandler http.Handler
	RateLimiter    *middleware.RateLimiter

	Health *HealthHandler
	Mentor *MentorHandler
	Event  *EventHandler
	Admin  *AdminHandler
}

// NewRouter builds the HTTP routing tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	var observe middleware.Middleware
	if d.RequestMetrics != nil {
		observe = middleware.Metrics(d.RequestMetrics)
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		observe,
		middleware.CORS(d.Config.CORS),
		middleware.MaxBody(d.Config.Server.MaxBodyBytes),
		middleware.Auth(d.TokenValidator),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Config.Metrics.Enabled && d.MetricsHandler != nil {
		r.Method(http.MethodGet, d.Config.Metrics.Path, d.MetricsHandler)
	}

	limiter := d.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(time.Minute)
	}
	writeLimit := limiter.Limit(d.Config.Server.WriteRateLimit)

	r.Route("/mentors", func(r chi.Router) {
		r.Get("/", d.Mentor.List)
		r.Get("/options", d.Mentor.Options)
		r.Get("/profile", d.Mentor.GetProfile)
		r.With(writeLimit).Post("/register", d.Mentor.Register)
		r.With(writeLimit).Put("/profile", d.Mentor.UpdateProfile)
		r.Get("/{id}", d.Mentor.Get)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", d.Event.ListUpcoming)
		r.Get("/past", d.Event.ListPast)
		r.Get("/{id}", d.Event.Get)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminOnly)

		r.Get("/stats", d.Admin.Stats)

		r.Get("/mentors", d.Admin.ListMentors)
		r.Patch("/mentors/{id}", d.Admin.SetApproval)
		r.Delete("/mentors/{id}", d.Admin.DeleteMentor)
		r.Get("/mentors/{id}/history", d.Admin.MentorHistory)

		r.Get("/events", d.Admin.ListEvents)
		r.Post("/events", d.Admin.CreateEvent)
		r.Get("/events/{id}", d.Admin.GetEvent)
		r.Put("/events/{id}", d.Admin.UpdateEvent)
		r.Delete("/events/{id}", d.Admin.DeleteEvent)
	})

	return r
}
