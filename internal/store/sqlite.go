package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/wordle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteHistory stores finished rounds in a SQLite database.
type SQLiteHistory struct {
	db *sql.DB
}

// OpenSQLiteHistory opens or creates the SQLite database and applies migrations.
func OpenSQLiteHistory(path string) (*SQLiteHistory, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	h := &SQLiteHistory{db: db}
	if err := h.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return h, nil
}

// Close closes the underlying database.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

func (h *SQLiteHistory) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			word TEXT NOT NULL,
			guesses INTEGER NOT NULL,
			result TEXT NOT NULL,
			score INTEGER NOT NULL,
			timestamp TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_user_id ON history(user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := h.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append stores a finished round.
func (h *SQLiteHistory) Append(rec model.HistoryRecord) error {
	_, err := h.db.ExecContext(context.Background(),
		`INSERT INTO history (uuid, user_id, word, guesses, result, score, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.UserID,
		rec.Word,
		rec.Guesses,
		string(rec.Result),
		rec.Score,
		rec.Timestamp,
	)
	return err
}

// List returns records in insertion order, filtered by user id when userID is non-empty.
func (h *SQLiteHistory) List(userID string) ([]model.HistoryRecord, error) {
	rows, err := h.db.QueryContext(context.Background(),
		`SELECT uuid, user_id, word, guesses, result, score, timestamp
		 FROM history
		 WHERE (? = '' OR user_id = ?)
		 ORDER BY seq ASC`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		var outcome string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Word, &rec.Guesses, &outcome, &rec.Score, &rec.Timestamp); err != nil {
			return nil, err
		}
		rec.Result = model.Outcome(outcome)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
