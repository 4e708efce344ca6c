package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"NiftyPulse/internal/model"
)

// SQLiteStore keeps one row per (symbol, trading day).
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so HTTP reads are not blocked by scheduled writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite candle store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS candles (
			symbol TEXT NOT NULL,
			date   INTEGER NOT NULL,
			open   REAL NOT NULL,
			high   REAL NOT NULL,
			low    REAL NOT NULL,
			close  REAL NOT NULL,
			volume INTEGER,
			PRIMARY KEY (symbol, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_symbol_date ON candles(symbol, date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// SaveCandles upserts the given candles in one transaction.
func (s *SQLiteStore) SaveCandles(symbol string, candles []model.Candle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO candles
		(symbol, date, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range candles {
		var volume interface{}
		if c.Volume != nil {
			volume = *c.Volume
		}
		if _, err := stmt.Exec(symbol, c.Date.Unix(), c.Open, c.High, c.Low, c.Close, volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert candle %s: %w", c.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

// LoadCandles returns up to `limit` most recent candles for the symbol,
// in ascending date order.
func (s *SQLiteStore) LoadCandles(symbol string, limit int) ([]model.Candle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, open, high, low, close, volume
		FROM candles WHERE symbol = ? ORDER BY date DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query candles: %w", err)
	}
	defer rows.Close()

	var candles []model.Candle
	for rows.Next() {
		var (
			ts     int64
			c      model.Candle
			volume sql.NullInt64
		)
		if err := rows.Scan(&ts, &c.Open, &c.High, &c.Low, &c.Close, &volume); err != nil {
			return nil, fmt.Errorf("scan candle: %w", err)
		}
		c.Date = time.Unix(ts, 0).UTC()
		if volume.Valid {
			v := volume.Int64
			c.Volume = &v
		}
		candles = append(candles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candles: %w", err)
	}

	// Reverse DESC fetch back to ascending order.
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}
	return candles, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite candle store")
	return s.db.Close()
}
