package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/cache"
	"github.com/Mammoth1930/FinanceTracker/src/models"
)

// Bank is the external source of snapshots, implemented by upbank.Client.
type Bank interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListTransactions(ctx context.Context, since time.Time) ([]models.Transaction, error)
}

// Summary reports what a single sync run changed.
type Summary struct {
	RunID               string `json:"run_id"`
	Accounts            int    `json:"accounts"`
	NewTransactions     int    `json:"new_transactions"`
	UpdatedTransactions int    `json:"updated_transactions"`
}

// Syncer drives one full fetch-and-reconcile pass: accounts first (so
// transaction foreign keys have something to reference), then transactions
// within the lookback window, partitioned into new and already-stored before
// the upsert calls.
type Syncer struct {
	store    Store
	bank     Bank
	cache    *cache.Cache
	log      zerolog.Logger
	lookback time.Duration
}

func NewSyncer(st Store, bank Bank, c *cache.Cache, log zerolog.Logger, lookback time.Duration) *Syncer {
	return &Syncer{store: st, bank: bank, cache: c, log: log, lookback: lookback}
}

// Run performs one sync pass. A failure aborts the pass where it happened;
// whatever already committed stays committed, and the next run re-fetches a
// full snapshot so the tables converge.
func (s *Syncer) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log := s.log.With().Str("run_id", sum.RunID).Logger()
	log.Info().Msg("sync started")

	accounts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return sum, err
	}
	if err := ReconcileAccounts(ctx, s.store, accounts); err != nil {
		return sum, err
	}
	sum.Accounts = len(accounts)

	since := time.Now().Add(-s.lookback)
	txns, err := s.bank.ListTransactions(ctx, since)
	if err != nil {
		return sum, err
	}

	fresh, existing, err := partitionTransactions(ctx, s.store, txns)
	if err != nil {
		return sum, err
	}
	if len(fresh) > 0 {
		if err := UpsertTransactions(ctx, s.store, fresh, true); err != nil {
			return sum, err
		}
	}
	if len(existing) > 0 {
		if err := UpsertTransactions(ctx, s.store, existing, false); err != nil {
			return sum, err
		}
	}
	sum.NewTransactions = len(fresh)
	sum.UpdatedTransactions = len(existing)

	if s.cache != nil {
		s.cache.Clear()
	}

	log.Info().
		Int("accounts", sum.Accounts).
		Int("new_transactions", sum.NewTransactions).
		Int("updated_transactions", sum.UpdatedTransactions).
		Msg("sync finished")
	return sum, nil
}

// Start runs sync passes on a fixed interval until the context is canceled.
// An immediate first pass runs before the ticker starts.
func (s *Syncer) Start(ctx context.Context, interval time.Duration) {
	if _, err := s.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("sync failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Run(ctx); err != nil {
				s.log.Error().Err(err).Msg("sync failed")
			}
		}
	}
}

// partitionTransactions splits a fetched batch into not-yet-stored and
// already-stored transactions. This is where the upserter's all-new or
// all-existing precondition is established.
func partitionTransactions(ctx context.Context, st Store, batch []models.Transaction) ([]models.Transaction, []models.Transaction, error) {
	if len(batch) == 0 {
		return nil, nil, nil
	}

	ids := make([]string, len(batch))
	for i, txn := range batch {
		ids[i] = txn.ID
	}
	stored, err := st.Query(ctx, `SELECT id FROM "Transactions" WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, nil, err
	}

	known := make(map[string]struct{})
	for _, id := range stored.Strings("id") {
		known[id] = struct{}{}
	}

	var fresh, existing []models.Transaction
	for _, txn := range batch {
		if _, ok := known[txn.ID]; ok {
			existing = append(existing, txn)
		} else {
			fresh = append(fresh, txn)
		}
	}
	return fresh, existing, nil
}
