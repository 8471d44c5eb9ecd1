package markerreport

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Register the pure-Go SQLite driver (no CGO required).
	_ "modernc.org/sqlite"

	"github.com/shahcoding/localstack/internal/portpool"
)

// historySchema holds one row per (run, marker) with the marker's count in
// that run. run_at is stored as RFC 3339 text so rows sort chronologically.
const historySchema = `
CREATE TABLE IF NOT EXISTS marker_runs (
	run_at  TEXT    NOT NULL,
	marker  TEXT    NOT NULL,
	count   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS marker_runs_marker ON marker_runs (marker);
`

// History is an append-only store of aggregated marker counts per test run,
// backed by a SQLite file. It lets CI track marker trends across runs
// without parsing historical report files.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	// WAL mode and a generous busy timeout so concurrent test processes
	// appending runs do not trip over each other. NORMAL synchronous is
	// fine: this is derived CI data, not a system of record.
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open marker history %s: %w", path, err)
	}

	// Single connection — short-lived sessions, not a pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			portpool.Logger().Warn("close marker history after schema failure", "error", closeErr)
		}
		return nil, fmt.Errorf("create marker history schema: %w", err)
	}
	return &History{db: db}, nil
}

// RecordRun appends one row per aggregated marker in rep, all sharing a
// single run timestamp. A report with no aggregated markers records
// nothing.
func (h *History) RecordRun(ctx context.Context, rep Report) error {
	if len(rep.Aggregated) == 0 {
		return nil
	}

	runAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin marker history transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op after Commit.
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			portpool.Logger().Warn("rollback marker history transaction", "error", rbErr)
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO marker_runs (run_at, marker, count) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare marker history insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // statement is finalized with the tx

	for marker, count := range rep.Aggregated {
		if _, err := stmt.ExecContext(ctx, runAt, marker, count); err != nil {
			return fmt.Errorf("insert marker history row %q: %w", marker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit marker history: %w", err)
	}
	return nil
}

// MarkerTotals returns the summed count per marker across all recorded
// runs.
func (h *History) MarkerTotals(ctx context.Context) (map[string]int, error) {
	rows, err := h.db.QueryContext(ctx,
		"SELECT marker, SUM(count) FROM marker_runs GROUP BY marker")
	if err != nil {
		return nil, fmt.Errorf("query marker totals: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	totals := make(map[string]int)
	for rows.Next() {
		var (
			marker string
			total  int
		)
		if err := rows.Scan(&marker, &total); err != nil {
			return nil, fmt.Errorf("scan marker total: %w", err)
		}
		totals[marker] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate marker totals: %w", err)
	}
	return totals, nil
}

// Runs returns the number of distinct recorded runs.
func (h *History) Runs(ctx context.Context) (int, error) {
	var n int
	err := h.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT run_at) FROM marker_runs").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count marker history runs: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	if err := h.db.Close(); err != nil {
		return fmt.Errorf("close marker history: %w", err)
	}
	return nil
}
