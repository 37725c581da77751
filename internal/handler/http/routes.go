package http

import (
	"net/http"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the handler's role. Every role serves the
// welcome, version, health and metrics endpoints.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withCORS, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.welcome)
	router.Get("/version", h.getServerVersion)
	router.Get("/healthz", h.healthz)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	switch h.role {
	case config.RoleUserService:
		router.Post("/register", h.register)
		router.Post("/login", h.login)
	case config.RoleGoalService:
		router.Post("/goals", h.createGoal)
		router.Get("/goals", h.listGoals)
		router.Get("/pagedgoals", h.listPagedGoals)
		router.Get("/goals/{id}", h.getGoal)
		router.Put("/goals/{id}", h.replaceGoal)
		router.Delete("/goals/{id}", h.deleteGoal)
		router.Patch("/goals/{id}/completed", h.setCompletion)
		router.Patch("/goals/{id}/progress", h.setProgress)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
