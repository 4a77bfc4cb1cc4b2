package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
)

type entriesResponse struct {
	Entries  []domain.Entry `json:"portfolioItems"`
	ActiveID string         `json:"activeId,omitempty"`
}

// ListEntries returns the ordered collection and the active selection.
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := entriesResponse{Entries: d.Items.All()}
		if active, ok := d.Items.Active(); ok {
			resp.ActiveID = active.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// UpsertEntry inserts or replaces a single entry, then pushes the full
// snapshot to the persistence backend. A missing ID means a brand new entry.
func UpsertEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.Entry
		if !decodeBody(w, r, &entry) {
			return
		}
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if err := entry.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		d.Items.Upsert(entry)
		if err := d.Syncer.PushEntries(r.Context()); err != nil {
			// The in-memory state already moved; surface the sync failure
			// without undoing the edit.
			d.Logger.Warn("entry saved locally but sync push failed",
				logger.String("id", entry.ID), logger.Error(err))
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

// DeleteEntry removes an entry by ID. Unknown IDs are a no-op 404.
func DeleteEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Items.Remove(id) {
			writeError(w, http.StatusNotFound, "unknown entry")
			return
		}
		if err := d.Syncer.PushEntries(r.Context()); err != nil {
			d.Logger.Warn("entry removed locally but sync push failed",
				logger.String("id", id), logger.Error(err))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
