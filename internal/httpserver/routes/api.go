package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/httpserver/handlers"
	"github.com/vmedia/showreel/internal/httpserver/mw"
)

func init() {
	Register(func(r chi.Router, d deps.Deps) {
		r.Route("/api", func(r chi.Router) {
			// Public read-and-navigate surface used by the presenter.
			r.Get("/entries", handlers.ListEntries(d))
			r.Get("/profile", handlers.GetProfile(d))
			r.Get("/embed", handlers.ResolveEmbed(d))

			r.Get("/view", handlers.GetView(d))
			r.Post("/view", handlers.Navigate(d))

			r.Put("/active", handlers.SetActive(d))
			r.Post("/active/next", handlers.NextActive(d))
			r.Post("/active/prev", handlers.PrevActive(d))

			r.Post("/login", handlers.Login(d))

			// Editing surface. Everything below requires a live admin
			// session, and the whole group can additionally be fenced to
			// operator networks via CIDRs.
			r.Group(func(r chi.Router) {
				r.Use(mw.AllowOnlyCIDRS(d.AdminCIDRs, d.TrustProxy, d.Logger))
				r.Use(mw.RequireAdmin(d.Sessions))

				r.Post("/entries", handlers.UpsertEntry(d))
				r.Delete("/entries/{id}", handlers.DeleteEntry(d))
				r.Put("/profile", handlers.UpdateProfile(d))

				r.Get("/lookup", handlers.LookupTitle(d))
				r.Get("/export", handlers.ExportDataset(d))
				r.Post("/import", handlers.ImportDataset(d))
				r.Post("/backup", handlers.TriggerBackup(d))

				r.Group(func(r chi.Router) {
					r.Use(mw.RateLimit(mw.RateLimitConfig{
						Burst:             d.SuggestBurst,
						RefillPerIPPerMin: d.SuggestPerMin,
						MaxEntries:        1024,
						IdleTTL:           15 * time.Minute,
						TrustProxy:        d.TrustProxy,
					}))
					r.Post("/suggest", handlers.Suggest(d))
				})
			})
		})
	})
}
