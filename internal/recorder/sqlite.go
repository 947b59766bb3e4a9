package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"PortfolioSentinel/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database: one row per
// run plus one row per trade.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (inspection while a run writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "sqlite_recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id         TEXT PRIMARY KEY,
			timestamp      INTEGER NOT NULL,
			total_value    REAL,
			total_buy      REAL,
			total_sell     REAL,
			momentum_note  TEXT,
			turnover_note  TEXT,
			turnover_scale REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS run_trades (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			bucket         TEXT,
			valuation      TEXT,
			target_weight  REAL,
			current_amount REAL,
			target_amount  REAL,
			delta          REAL,
			action         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_run ON run_trades(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run and all its trades in one transaction.
func (r *SQLiteRecorder) RecordRun(plan *model.RebalancePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs
		(run_id, timestamp, total_value, total_buy, total_sell, momentum_note, turnover_note, turnover_scale)
		VALUES (?,?,?,?,?,?,?,?)`,
		plan.RunID, plan.GeneratedAt.Unix(), plan.TotalValue, plan.TotalBuy, plan.TotalSell,
		plan.MomentumNote, plan.TurnoverNote, plan.TurnoverScale,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, t := range plan.Trades {
		if _, err := tx.Exec(`INSERT INTO run_trades
			(run_id, symbol, bucket, valuation, target_weight, current_amount, target_amount, delta, action)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			plan.RunID, t.Symbol, t.Bucket, string(t.Valuation), t.TargetWeight,
			t.CurrentAmount, t.TargetAmount, t.Delta, string(t.Action),
		); err != nil {
			return fmt.Errorf("insert trade %s: %w", t.Symbol, err)
		}
	}

	return tx.Commit()
}

// RunSummary is one line of run history for inspection.
type RunSummary struct {
	RunID         string
	Timestamp     time.Time
	TotalValue    float64
	TotalBuy      float64
	TotalSell     float64
	TurnoverScale float64
}

// RecentRuns returns the most recent runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT run_id, timestamp, total_value, total_buy, total_sell, turnover_scale
		FROM runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		var ts int64
		if err := rows.Scan(&s.RunID, &ts, &s.TotalValue, &s.TotalBuy, &s.TotalSell, &s.TurnoverScale); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		s.Timestamp = time.Unix(ts, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
