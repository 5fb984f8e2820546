package sync

import (
	"context"

	"github.com/Mammoth1930/FinanceTracker/src/models"
)

// The only columns allowed to change after a transaction is first stored:
// a pending transaction settling, cashback landing, or a category edit.
const updateTransaction = `UPDATE "Transactions"
	SET status = $1,
		"cashbackDesc" = $2,
		"cashbackAmount" = $3,
		"settledAt" = $4,
		category = $5,
		"parentCategory" = $6
	WHERE id = $7`

// UpsertTransactions writes a homogeneous batch of transactions. The caller
// guarantees the batch is uniformly new or uniformly already stored; mixing
// the two is a contract violation and is not checked here. New batches go
// through a single bulk append, which fails or lands as a whole. Existing
// batches update one row at a time, so an error partway through leaves the
// earlier updates committed.
func UpsertTransactions(ctx context.Context, st Store, batch []models.Transaction, allNew bool) error {
	if allNew {
		return st.AppendRows(ctx, "Transactions", models.TransactionsTable(batch))
	}

	for _, txn := range batch {
		err := st.Execute(ctx, updateTransaction,
			txn.Status, txn.CashbackDesc, txn.CashbackAmount, txn.SettledAt, txn.Category, txn.ParentCategory,
			txn.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
