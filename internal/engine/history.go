package engine

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// LookupRecord is one entry in the lookup history.
type LookupRecord struct {
	ID          int64  `json:"id"`
	Operation   string `json:"operation"`
	Input       string `json:"input"`
	ResultCount int    `json:"result_count"`
	CreatedAt   string `json:"created_at"`
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// openHistoryDB opens (or creates) the SQLite history database at the
// configured path. History is disabled entirely when no path is set.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		path := Cfg.HistoryPath
		if path == "" {
			return
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
				return
			}
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the lookups table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS lookups (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		operation    TEXT NOT NULL,
		input        TEXT NOT NULL,
		result_count INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`)
	return err
}

// RecordLookup appends one lookup to the history. A nil db (history
// disabled) and write failures are both silent; history must never affect
// the lookup itself.
func RecordLookup(_ context.Context, operation, input string, resultCount int) {
	db, err := openHistoryDB()
	if err != nil || db == nil {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, _ = db.Exec(
		`INSERT INTO lookups (operation, input, result_count, created_at) VALUES (?, ?, ?, ?)`,
		operation, input, resultCount, now,
	)
}

// RecentLookups returns the most recent history entries, newest first.
func RecentLookups(_ context.Context, limit int) ([]LookupRecord, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}
	if db == nil {
		return []LookupRecord{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := db.Query(
		`SELECT id, operation, input, result_count, created_at
		 FROM lookups ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	records := []LookupRecord{}
	for rows.Next() {
		var r LookupRecord
		if err := rows.Scan(&r.ID, &r.Operation, &r.Input, &r.ResultCount, &r.CreatedAt); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
