// Package httptransport assembles the single HTTP surface: the public
// intake and schedule routes, the secret-gated admin routes, and the
// operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adev-backend/internal/platform/middleware"
	registrationhandler "adev-backend/internal/registration/handler"
	schedulehandler "adev-backend/internal/schedule/handler"
	"adev-backend/pkg/platform/httputil"
	"adev-backend/pkg/platform/middleware/admin"
)

// Deps carries everything the router wires together.
type Deps struct {
	Logger       *slog.Logger
	Registration *registrationhandler.Handler
	Schedule     *schedulehandler.Handler
	AdminSecret  string
	Gatherer     prometheus.Gatherer
}

// NewRouter wires all endpoints. Admin routes are mounted under /admin
// behind the shared-secret middleware; everything else is public.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	// The public site is served from a different origin, so the whole
	// surface is open to cross-origin calls.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", handleBanner)
	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	d.Registration.Register(r)
	d.Schedule.Register(r)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(admin.RequireAdminSecret(d.AdminSecret, d.Logger))
		d.Schedule.RegisterAdmin(ar)
	})

	return r
}

func handleBanner(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<h1>Backend da ADEVV está no ar!</h1>"))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
