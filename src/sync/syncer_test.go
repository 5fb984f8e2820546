package sync

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mammoth1930/FinanceTracker/src/models"
	"github.com/Mammoth1930/FinanceTracker/src/table"
)

type fakeBank struct {
	accounts []models.Account
	txns     []models.Transaction
	err      error
}

func (f *fakeBank) ListAccounts(context.Context) ([]models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts, nil
}

func (f *fakeBank) ListTransactions(context.Context, time.Time) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.txns, nil
}

func TestSyncerRun(t *testing.T) {
	st := newFakeStore()
	st.queryFunc = func(sql string, _ []any) (*table.Table, error) {
		// Account scan first, then the transaction partition query.
		if strings.Contains(sql, "Accounts") {
			return idTable("old"), nil
		}
		return idTable("t2"), nil
	}
	bank := &fakeBank{
		accounts: []models.Account{{ID: "a1", DisplayName: "Spending", Balance: 100}},
		txns:     []models.Transaction{{ID: "t1"}, {ID: "t2"}},
	}

	syncer := NewSyncer(st, bank, nil, zerolog.Nop(), 24*time.Hour)
	sum, err := syncer.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.RunID == "" {
		t.Error("summary has no run id")
	}
	if sum.Accounts != 1 || sum.NewTransactions != 1 || sum.UpdatedTransactions != 1 {
		t.Errorf("summary = %+v, want 1 account, 1 new, 1 updated", sum)
	}

	// a1 inserted, old soft-deleted, t2 updated; t1 went through the bulk
	// append.
	if len(st.execCalls) != 3 {
		t.Fatalf("got %d statements, want 3", len(st.execCalls))
	}
	if len(st.appends) != 1 || st.appends[0].tbl.Len() != 1 {
		t.Fatalf("bulk append = %+v, want one single-row append", st.appends)
	}
}

func TestSyncerRunBankFailure(t *testing.T) {
	st := newFakeStore()
	boom := errors.New("bank unreachable")
	syncer := NewSyncer(st, &fakeBank{err: boom}, nil, zerolog.Nop(), 24*time.Hour)

	if _, err := syncer.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(st.execCalls) != 0 || len(st.appends) != 0 {
		t.Error("a failed fetch must not touch the database")
	}
}
