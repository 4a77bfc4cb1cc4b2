package handlers

import (
	"net/http"
	"strconv"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/httpserver/deps"
)

type embedResponse struct {
	Platform    domain.Platform `json:"platform"`
	PlaybackURL string          `json:"playbackUrl"`
}

// ResolveEmbed turns a stored source URL into the canonical embeddable
// reference. Query parameters override the preview defaults:
// autoplay, mute, controls (all "0"/"1") and start (seconds).
func ResolveEmbed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := r.URL.Query().Get("url")
		if rawURL == "" {
			writeError(w, http.StatusBadRequest, "missing url parameter")
			return
		}

		opts := domain.DefaultPlayback()
		q := r.URL.Query()
		if v := q.Get("autoplay"); v != "" {
			opts.Autoplay = v == "1"
		}
		if v := q.Get("mute"); v != "" {
			opts.Muted = v == "1"
		}
		if v := q.Get("controls"); v != "" {
			opts.Controls = v == "1"
		}
		if v := q.Get("start"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				opts.Start = n
			}
		}

		writeJSON(w, http.StatusOK, embedResponse{
			Platform:    domain.Classify(rawURL),
			PlaybackURL: domain.BuildPlaybackURL(rawURL, opts),
		})
	}
}
