package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/cache"
	"github.com/Mammoth1930/FinanceTracker/src/models"
	"github.com/Mammoth1930/FinanceTracker/src/store"
)

const accountsCacheKey = "accounts:all"

const selectAccounts = `
	SELECT id, "displayName", "accountType", "ownershipType", balance, created, deleted
	FROM "Accounts"
	ORDER BY created
`

func GetAccounts(st *store.Store, c *cache.Cache, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := c.Get(accountsCacheKey); ok {
			writeJSON(w, cached)
			return
		}

		tbl, err := st.Query(r.Context(), selectAccounts)
		if err != nil {
			log.Error().Err(err).Msg("listing accounts")
			http.Error(w, "failed to list accounts", http.StatusInternalServerError)
			return
		}

		accounts := models.AccountsFromTable(tbl)
		c.Set(accountsCacheKey, accounts)
		writeJSON(w, accounts)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
