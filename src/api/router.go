package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/cache"
	"github.com/Mammoth1930/FinanceTracker/src/handlers"
	"github.com/Mammoth1930/FinanceTracker/src/middleware"
	"github.com/Mammoth1930/FinanceTracker/src/store"
	"github.com/Mammoth1930/FinanceTracker/src/sync"
)

func NewRouter(st *store.Store, c *cache.Cache, syncer *sync.Syncer, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/accounts", handlers.GetAccounts(st, c, log))
		r.Get("/accounts/{account_id}/transactions", handlers.GetAccountTransactions(st, c, log))
		r.Get("/transactions", handlers.GetTransactions(st, c, log))
		r.Post("/sync", handlers.SyncNow(syncer, log))
	})

	return r
}
