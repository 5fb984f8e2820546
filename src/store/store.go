package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mammoth1930/FinanceTracker/src/table"
)

// Store owns the database handle for the whole process. All mutating calls
// are serialized behind a single mutex so at most one write is in flight at
// a time; reads take no lock and may run concurrently with a write. Each
// mutating call commits independently, so a multi-statement operation such
// as a full account reconciliation is not atomic as a whole.
type Store struct {
	pool *pgxpool.Pool
	mu   sync.Mutex
}

func Open(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Query runs a read-only statement with positional parameters and returns
// the result as a Table. Callers must not pass mutating SQL here: no lock is
// held, so a write smuggled through Query could interleave with a real one.
func (s *Store) Query(ctx context.Context, sql string, args ...any) (*table.Table, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	tbl := table.New(cols...)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("store: query: reading row: %w", err)
		}
		if err := tbl.Append(vals...); err != nil {
			return nil, fmt.Errorf("store: query: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	return tbl, nil
}

// Execute runs a single mutating statement (DDL or DML) under the write
// lock. Values are bound as parameters, never interpolated into the
// statement text.
func (s *Store) Execute(ctx context.Context, sql string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("store: execute: %w", err)
	}
	return nil
}

// AppendRows bulk-appends a batch to the named table under the write lock.
// If the table does not exist it is created with column types inferred from
// the batch. No uniqueness or constraint checking happens here: feeding it
// rows that collide with an existing primary key fails the whole copy.
func (s *Store) AppendRows(ctx context.Context, name string, tbl *table.Table) error {
	if tbl.Len() == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.tableExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.createFromBatch(ctx, name, tbl); err != nil {
			return err
		}
	}

	_, err = s.pool.CopyFrom(ctx, pgx.Identifier{name}, tbl.Columns, pgx.CopyFromRows(tbl.Rows))
	if err != nil {
		return fmt.Errorf("store: append to %s: %w", name, err)
	}
	return nil
}

func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store: checking table %s: %w", name, err)
	}
	return exists, nil
}

func (s *Store) createFromBatch(ctx context.Context, name string, tbl *table.Table) error {
	defs := make([]string, len(tbl.Columns))
	for i, col := range tbl.Columns {
		defs[i] = pgx.Identifier{col}.Sanitize() + " " + inferColumnType(tbl, i)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{name}.Sanitize(), strings.Join(defs, ", "))
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("store: creating table %s: %w", name, err)
	}
	return nil
}

// inferColumnType picks a column type from the first non-NULL value in the
// column, defaulting to TEXT when every row is NULL.
func inferColumnType(tbl *table.Table, col int) string {
	for _, row := range tbl.Rows {
		switch v := row[col].(type) {
		case nil:
			continue
		case *string:
			if v == nil {
				continue
			}
			return "TEXT"
		case *int64:
			if v == nil {
				continue
			}
			return "BIGINT"
		case *bool:
			if v == nil {
				continue
			}
			return "BOOLEAN"
		case *float64:
			if v == nil {
				continue
			}
			return "DOUBLE PRECISION"
		case *time.Time:
			if v == nil {
				continue
			}
			return "TIMESTAMPTZ"
		case string, []byte:
			return "TEXT"
		case int, int32, int64:
			return "BIGINT"
		case bool:
			return "BOOLEAN"
		case float32, float64:
			return "DOUBLE PRECISION"
		case time.Time:
			return "TIMESTAMPTZ"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}
