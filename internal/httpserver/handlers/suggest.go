package handlers

import (
	"errors"
	"net/http"

	"github.com/vmedia/showreel/internal/genai"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
)

type suggestRequest struct {
	URL string `json:"url"`
}

// Suggest asks the generative model for draft display copy. The result is
// returned to the editor for review only; nothing is written server-side.
func Suggest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.GenAI == nil {
			writeError(w, http.StatusServiceUnavailable, "content suggestions are not configured")
			return
		}

		var req suggestRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.URL == "" {
			writeError(w, http.StatusBadRequest, "missing url")
			return
		}

		suggestion, err := d.GenAI.Suggest(r.Context(), req.URL)
		if err != nil {
			switch {
			case errors.Is(err, genai.ErrBusy):
				writeError(w, http.StatusConflict, err.Error())
			case errors.Is(err, genai.ErrMalformed):
				writeError(w, http.StatusBadGateway, err.Error())
			default:
				d.Logger.Warn("suggestion request failed", logger.Error(err))
				writeError(w, http.StatusBadGateway, "suggestion request failed")
			}
			return
		}
		writeJSON(w, http.StatusOK, suggestion)
	}
}
