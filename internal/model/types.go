// Package model defines shared data structures.
package model

import "time"

// Game setting bounds and defaults.
const (
	MinLevel           = 3
	MaxLevel           = 6
	DefaultLevel       = 5
	MinAttempts        = 1
	MaxAttempts        = 20
	DefaultMaxAttempts = 6
)

// TimestampLayout is the format of HistoryRecord.Timestamp.
const TimestampLayout = "2006-01-02 15:04"

// Config defines resolved application settings.
type Config struct {
	Level          int
	MaxAttempts    int
	DataDir        string
	HistoryBackend string
	NavigationFile string
	LogPath        string
}

// GameSettings are the per-round choices made on the settings screen.
type GameSettings struct {
	Level       int
	MaxAttempts int
}

// User is a player account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Outcome is the terminal result of a round.
type Outcome string

// Outcome values, stored as-is in the history file.
const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "lose"
)

// HistoryRecord captures a finished round played by a registered user.
type HistoryRecord struct {
	ID        string  `json:"uuid"`
	UserID    string  `json:"user_id"`
	Word      string  `json:"word"`
	Guesses   int     `json:"guesses"`
	Result    Outcome `json:"result"`
	Score     int     `json:"score"`
	Timestamp string  `json:"timestamp"`
}

// PlayedAt parses Timestamp. The zero time is returned for malformed values.
func (r HistoryRecord) PlayedAt() time.Time {
	t, err := time.ParseInLocation(TimestampLayout, r.Timestamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ScoreEntry is one row of the score board.
type ScoreEntry struct {
	UserID   string
	Username string
	Highest  int
	Average  float64
	Games    int
}
