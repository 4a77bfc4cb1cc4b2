package handlers

import (
	"net/http"

	"github.com/vmedia/showreel/internal/httpserver/deps"
)

// TriggerBackup asks the backup writer for an immediate snapshot. The write
// happens asynchronously; a full trigger channel means one is already queued.
func TriggerBackup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.BackupTrigger == nil {
			writeError(w, http.StatusServiceUnavailable, "backups are not configured")
			return
		}
		select {
		case d.BackupTrigger <- struct{}{}:
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "backup scheduled"})
		default:
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "backup already pending"})
		}
	}
}
