package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limelight-casting/limelight/internal/geocode"
	"github.com/limelight-casting/limelight/internal/notify"
	"github.com/limelight-casting/limelight/internal/recommend"
	"github.com/limelight-casting/limelight/internal/scoring"
	"github.com/limelight-casting/limelight/internal/store"
)

// RouterDeps bundles the collaborators the router wires into handlers.
type RouterDeps struct {
	Store          store.Store
	Engine         *scoring.Engine
	Recommend      *recommend.Service
	Geocoder       geocode.Client
	Notifier       *notify.Notifier
	DefaultWeights scoring.CriteriaWeights
	Fallback       geocode.Point
	AdminToken     string
	Logger         *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(deps.Logger))
	r.Use(MetricsMiddleware)
	r.Use(RateLimitMiddleware(120))

	auditions := NewAuditionsHandler(deps.Store, deps.Geocoder, deps.Notifier, deps.DefaultWeights, deps.Logger)
	submissions := NewSubmissionsHandler(deps.Store, deps.Engine, deps.Notifier, deps.Logger)
	views := NewViewsHandler(deps.Recommend, deps.Geocoder, deps.Fallback, deps.Logger)
	notifications := NewNotificationsHandler(deps.Store)
	admin := NewAdminHandler(deps.Store)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/auditions", auditions.List)

		r.Group(func(r chi.Router) {
			r.Use(UserIDMiddleware)

			r.Post("/auditions", auditions.Create)
			r.Get("/auditions/nearby", views.Nearby)
			r.Get("/auditions/recommendations", views.Recommendations)
			r.Get("/auditions/{id}", auditions.Get)
			r.Post("/auditions/{id}/like", auditions.Like)
			r.Post("/auditions/{id}/comment", auditions.Comment)
			r.Post("/auditions/{id}/submit", submissions.Submit)

			r.Get("/views", views.Views)
			r.Get("/locate", views.Locate)

			r.Get("/submissions/{id}", submissions.Get)
			r.Get("/submissions/{id}/explain", submissions.Explain)

			r.Get("/notifications", notifications.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(deps.AdminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
