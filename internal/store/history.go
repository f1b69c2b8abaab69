package store

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordle/internal/model"
)

// JSONHistory keeps finished rounds in a JSON list.
type JSONHistory struct {
	path string
}

// NewJSONHistory returns a history store for history.json under dataDir.
func NewJSONHistory(dataDir string) *JSONHistory {
	return &JSONHistory{path: filepath.Join(dataDir, "history.json")}
}

// Append adds a record to the end of the history.
func (h *JSONHistory) Append(rec model.HistoryRecord) error {
	records, err := h.List("")
	if err != nil {
		return err
	}
	records = append(records, rec)
	return writeJSON(h.path, records)
}

// List returns records in insertion order, filtered by user id when userID is non-empty.
func (h *JSONHistory) List(userID string) ([]model.HistoryRecord, error) {
	var records []model.HistoryRecord
	if _, err := readJSON(h.path, &records); err != nil {
		return nil, fmt.Errorf("%w: history: %w", model.ErrNotFound, err)
	}
	if userID == "" {
		return records, nil
	}
	return lo.Filter(records, func(r model.HistoryRecord, _ int) bool {
		return r.UserID == userID
	}), nil
}

// Close implements io.Closer.
func (h *JSONHistory) Close() error { return nil }
