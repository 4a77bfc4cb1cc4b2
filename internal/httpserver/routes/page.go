package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/httpserver/handlers"
)

// Catch-all presenter page. Specific routes above always win; everything
// else, including the reserved admin marker, lands here.
func init() {
	Register(func(r chi.Router, d deps.Deps) {
		r.Get("/*", handlers.Page(d))
	})
}
