package handlers

import (
	"net/http"

	"github.com/vmedia/showreel/internal/httpserver/deps"
)

type activeRequest struct {
	ID string `json:"id"`
}

type activeResponse struct {
	ActiveID string `json:"activeId,omitempty"`
}

func currentActive(d deps.Deps) activeResponse {
	var resp activeResponse
	if active, ok := d.Items.Active(); ok {
		resp.ActiveID = active.ID
	}
	return resp
}

// SetActive points the presenter at a specific entry. The selection is
// presentation state and is never persisted.
func SetActive(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req activeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !d.Items.SetActive(req.ID) {
			writeError(w, http.StatusNotFound, "unknown entry")
			return
		}
		writeJSON(w, http.StatusOK, currentActive(d))
	}
}

// NextActive advances the selection with wrap-around.
func NextActive(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Items.Next()
		writeJSON(w, http.StatusOK, currentActive(d))
	}
}

// PrevActive steps the selection backwards with wrap-around.
func PrevActive(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Items.Prev()
		writeJSON(w, http.StatusOK, currentActive(d))
	}
}
