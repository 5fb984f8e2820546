package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/sync"
)

// SyncNow triggers a sync pass on demand and reports what it changed. The
// pass runs synchronously: the response only comes back once the database
// reflects the latest bank state.
func SyncNow(syncer *sync.Syncer, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := syncer.Run(r.Context())
		if err != nil {
			log.Error().Err(err).Str("run_id", summary.RunID).Msg("manual sync failed")
			http.Error(w, "sync failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, summary)
	}
}
