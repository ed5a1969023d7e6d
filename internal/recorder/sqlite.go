package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockChat/internal/model"
)

// SQLiteRecorder persists history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can inspect while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chat_queries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			message   TEXT,
			reply     TEXT,
			ticker    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_ts ON chat_queries(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			ticker         TEXT,
			company_name   TEXT,
			currency       TEXT,
			last_price     REAL,
			previous_close REAL,
			day_change     REAL,
			day_change_pct REAL,
			volume         INTEGER,
			data_source    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker ON snapshots(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuery(evt *QueryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO chat_queries
		(timestamp, message, reply, ticker)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Message, evt.Reply, evt.Ticker,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO snapshots
		(timestamp, ticker, company_name, currency, last_price, previous_close,
		 day_change, day_change_pct, volume, data_source)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Ticker, snap.CompanyName, snap.Currency,
		snap.LastPrice, snap.PreviousClose, snap.DayChange, snap.DayChangePct,
		snap.Volume, snap.DataSource,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
