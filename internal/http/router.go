// Package http assembles the service router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trustgate/internal/admin"
	"trustgate/internal/platform/middleware"
	verificationhandler "trustgate/internal/verification/handler"
	"trustgate/pkg/jwttoken"
)

// NewRouter mounts all routes: the public verification API, the JWT-guarded
// admin API, and the operational endpoints.
func NewRouter(
	verifyHandler *verificationhandler.Handler,
	adminHandler *admin.Handler,
	tokens *jwttoken.Service,
	registry *prometheus.Registry,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)

	r.Group(func(r chi.Router) {
		verifyHandler.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(tokens, logger))
		adminHandler.Register(r)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
