package handlers

import (
	"net/http"

	"github.com/vmedia/showreel/internal/httpserver/deps"
)

type lookupResponse struct {
	Title string `json:"title"`
}

// LookupTitle fetches the public title of a video URL via oEmbed. Lookup
// failures degrade to an empty title; the editor just types one by hand.
func LookupTitle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := r.URL.Query().Get("url")
		if rawURL == "" {
			writeError(w, http.StatusBadRequest, "missing url parameter")
			return
		}
		title, _ := d.Lookup.Title(r.Context(), rawURL)
		writeJSON(w, http.StatusOK, lookupResponse{Title: title})
	}
}
