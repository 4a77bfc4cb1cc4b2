package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/httpserver/handlers"
)

func init() {
	Register(func(r chi.Router, d deps.Deps) {
		r.Get("/healthz", handlers.Healthz(d))
		r.Get("/readyz", handlers.Readyz(d))
	})
}
