package sync

import (
	"context"

	"github.com/Mammoth1930/FinanceTracker/src/table"
)

// Store is the slice of the persistence layer the sync routines use. The
// real implementation is store.Store; tests substitute a recorder.
type Store interface {
	Query(ctx context.Context, sql string, args ...any) (*table.Table, error)
	Execute(ctx context.Context, sql string, args ...any) error
	AppendRows(ctx context.Context, name string, tbl *table.Table) error
}
