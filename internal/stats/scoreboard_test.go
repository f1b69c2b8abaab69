package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordle/internal/model"
)

var testUsers = []model.User{
	{ID: "u1", Username: "alice", Name: "Alice"},
	{ID: "u2", Username: "bob", Name: "Bob"},
}

func TestScoreboardRanksByHighest(t *testing.T) {
	records := []model.HistoryRecord{
		{UserID: "u1", Score: 65},
		{UserID: "u2", Score: 75},
		{UserID: "u1", Score: 0},
		{UserID: "u1", Score: 50},
		{UserID: "ghost", Score: 10},
	}
	entries := Scoreboard(records, testUsers)
	require.Len(t, entries, 3)

	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 75, entries[0].Highest)
	assert.Equal(t, 75.0, entries[0].Average)

	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, 65, entries[1].Highest)
	assert.Equal(t, 38.33, entries[1].Average)
	assert.Equal(t, 3, entries[1].Games)

	assert.Equal(t, "ghost", entries[2].Username)
}

func TestScoreboardTiesByUsername(t *testing.T) {
	entries := Scoreboard([]model.HistoryRecord{
		{UserID: "u2", Score: 50},
		{UserID: "u1", Score: 50},
	}, testUsers)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "bob", entries[1].Username)
}

func TestScoreboardEmpty(t *testing.T) {
	assert.Empty(t, Scoreboard(nil, testUsers))
}

func TestHistoryTable(t *testing.T) {
	rows := HistoryRows([]model.HistoryRecord{
		{UserID: "u2", Word: "CRANE", Guesses: 3, Result: model.OutcomeWin, Score: 65, Timestamp: "2024-05-01 10:00"},
	}, testUsers)
	headers, cells := HistoryTable(rows)
	assert.Equal(t, []string{"User", "Word", "Guesses", "Result", "Score", "Date"}, headers)
	assert.Equal(t, [][]string{{"bob", "CRANE", "3", "win", "65", "2024-05-01 10:00"}}, cells)
}

func TestScoreboardTableFormatsAverage(t *testing.T) {
	_, cells := ScoreboardTable([]model.ScoreEntry{{Username: "alice", Highest: 65, Average: 38.3}})
	assert.Equal(t, [][]string{{"alice", "65", "38.30"}}, cells)
}
