package handlers

import (
	"net/http"

	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/view"
)

type viewResponse struct {
	View          view.State `json:"view"`
	ClearedMarker bool       `json:"clearedMarker,omitempty"`
}

type navigateRequest struct {
	View view.State `json:"view"`
}

// GetView reports the current overlay.
func GetView(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, viewResponse{View: d.Views.Current()})
	}
}

// Navigate switches the overlay. Unknown targets leave the state unchanged
// and are reported as a client error. When the transition leaves the admin
// view the response tells the caller to scrub the marker from its location.
func Navigate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !req.View.Valid() {
			writeError(w, http.StatusUnprocessableEntity, "unknown view")
			return
		}
		current, cleared := d.Views.Navigate(req.View)
		writeJSON(w, http.StatusOK, viewResponse{View: current, ClearedMarker: cleared})
	}
}
