package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/phonebook-api/internal/api"
	apiMiddleware "github.com/phrazzld/phonebook-api/internal/api/middleware"
	"github.com/phrazzld/phonebook-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRequestLogger(app.logger))
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.Recoverer)

	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	infoHandler := api.NewInfoHandler(app.contactService, app.now, app.logger)
	healthHandler := api.NewHealthHandler(app.contactService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/persons", contactHandler.ListContacts)
		r.Post("/persons", contactHandler.CreateContact)
		r.Get("/persons/{id}", contactHandler.GetContact)
		r.Put("/persons/{id}", contactHandler.UpdateContact)
		r.Delete("/persons/{id}", contactHandler.DeleteContact)
	})

	r.Get("/info", infoHandler.Info)
	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
