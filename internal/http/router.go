package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stablemate/internal/http/backup"
	"stablemate/internal/http/billing"
	"stablemate/internal/http/calendar"
	"stablemate/internal/http/joblog"
	"stablemate/internal/http/stable"
)

func New(
	stableV1 *stable.Handler,
	joblogV1 *joblog.Handler,
	billingV1 *billing.Handler,
	calendarV1 *calendar.Handler,
	backupV1 *backup.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/stable", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			stableV1.Routes(r)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			joblogV1.Routes(r)
		})

		r.Route("/billing", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			billingV1.Routes(r)
		})

		r.Route("/calendar", calendarV1.Routes)

		r.Route("/backup", backupV1.Routes)
	})

	return router
}
