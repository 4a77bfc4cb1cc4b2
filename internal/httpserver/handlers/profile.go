package handlers

import (
	"net/http"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
)

// GetProfile returns the single contact/SEO record.
func GetProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Profile.Get())
	}
}

// UpdateProfile replaces the record wholesale and pushes it to the backend.
// Field-level merging only happens on load, never on save.
func UpdateProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.Profile
		if !decodeBody(w, r, &p) {
			return
		}
		d.Profile.Replace(p)
		if err := d.Syncer.PushProfile(r.Context()); err != nil {
			d.Logger.Warn("profile saved locally but sync push failed", logger.Error(err))
		}
		writeJSON(w, http.StatusOK, d.Profile.Get())
	}
}
