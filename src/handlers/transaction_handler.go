package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/cache"
	"github.com/Mammoth1930/FinanceTracker/src/models"
	"github.com/Mammoth1930/FinanceTracker/src/store"
)

const transactionColumns = `
	id, status, "rawText", description, message, "isCategorizable", held,
	"heldAmount", "roundUpAmount", "boostProportion", "cashbackDesc",
	"cashbackAmount", amount, "foreignCurrency", "foreignAmount",
	"cardPurchaseMethod", "cardNumberSuffix", "settledAt", "createdAt",
	account, "transferAccount", category, "parentCategory"
`

func GetTransactions(st *store.Store, c *cache.Cache, log zerolog.Logger) http.HandlerFunc {
	query := `SELECT ` + transactionColumns + ` FROM "Transactions" ORDER BY "createdAt" DESC LIMIT $1`

	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, 100)
		cacheKey := fmt.Sprintf("transactions:recent:%d", limit)
		if cached, ok := c.Get(cacheKey); ok {
			writeJSON(w, cached)
			return
		}

		tbl, err := st.Query(r.Context(), query, limit)
		if err != nil {
			log.Error().Err(err).Msg("listing transactions")
			http.Error(w, "failed to list transactions", http.StatusInternalServerError)
			return
		}

		txns := models.TransactionsFromTable(tbl)
		c.Set(cacheKey, txns)
		writeJSON(w, txns)
	}
}

func GetAccountTransactions(st *store.Store, c *cache.Cache, log zerolog.Logger) http.HandlerFunc {
	query := `SELECT ` + transactionColumns + ` FROM "Transactions"
		WHERE account = $1 OR "transferAccount" = $1
		ORDER BY "createdAt" DESC LIMIT $2`

	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")
		limit := parseLimit(r, 100)
		cacheKey := fmt.Sprintf("transactions:account:%s:%d", accountID, limit)
		if cached, ok := c.Get(cacheKey); ok {
			writeJSON(w, cached)
			return
		}

		tbl, err := st.Query(r.Context(), query, accountID, limit)
		if err != nil {
			log.Error().Err(err).Str("account", accountID).Msg("listing account transactions")
			http.Error(w, "failed to list transactions", http.StatusInternalServerError)
			return
		}

		txns := models.TransactionsFromTable(tbl)
		c.Set(cacheKey, txns)
		writeJSON(w, txns)
	}
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 1000 {
		return fallback
	}
	return limit
}
