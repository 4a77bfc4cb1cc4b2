package handlers

import (
	"io"
	"net/http"

	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
)

// ExportDataset streams the full dataset as a downloadable JSON document.
func ExportDataset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := d.Syncer.Export()
		if err != nil {
			d.Logger.Error("dataset export failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="showreel-backup.json"`)
		_, _ = w.Write(data)
	}
}

// ImportDataset replaces the entire dataset from an uploaded JSON document.
// The document is validated before anything is touched.
func ImportDataset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read body")
			return
		}
		if err := d.Syncer.Import(r.Context(), data); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"entries": d.Items.Len()})
	}
}
