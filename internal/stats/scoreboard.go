package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordle/internal/model"
)

// HistoryRow is a history record resolved for display.
type HistoryRow struct {
	Username string
	Record   model.HistoryRecord
}

// Scoreboard groups records per user and ranks users by highest score, then username.
// Records whose user no longer exists are listed under the raw user id.
func Scoreboard(records []model.HistoryRecord, users []model.User) []model.ScoreEntry {
	names := usernames(users)
	groups := lo.GroupBy(records, func(r model.HistoryRecord) string { return r.UserID })

	entries := make([]model.ScoreEntry, 0, len(groups))
	for userID, recs := range groups {
		scores := lo.Map(recs, func(r model.HistoryRecord, _ int) int { return r.Score })
		entries = append(entries, model.ScoreEntry{
			UserID:   userID,
			Username: displayName(names, userID),
			Highest:  lo.Max(scores),
			Average:  roundTo(float64(lo.Sum(scores))/float64(len(scores)), 2),
			Games:    len(scores),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Highest == entries[j].Highest {
			return entries[i].Username < entries[j].Username
		}
		return entries[i].Highest > entries[j].Highest
	})
	return entries
}

// HistoryRows attaches usernames to records, keeping record order.
func HistoryRows(records []model.HistoryRecord, users []model.User) []HistoryRow {
	names := usernames(users)
	return lo.Map(records, func(r model.HistoryRecord, _ int) HistoryRow {
		return HistoryRow{Username: displayName(names, r.UserID), Record: r}
	})
}

// HistoryTable converts rows to table cells: User, Word, Guesses, Result, Score, Date.
func HistoryTable(rows []HistoryRow) (headers []string, cells [][]string) {
	headers = []string{"User", "Word", "Guesses", "Result", "Score", "Date"}
	cells = make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Username,
			row.Record.Word,
			strconv.Itoa(row.Record.Guesses),
			string(row.Record.Result),
			strconv.Itoa(row.Record.Score),
			row.Record.Timestamp,
		})
	}
	return headers, cells
}

// ScoreboardTable converts entries to table cells: User, Highest Score, Average Score.
func ScoreboardTable(entries []model.ScoreEntry) (headers []string, cells [][]string) {
	headers = []string{"User", "Highest Score", "Average Score"}
	cells = make([][]string, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, []string{
			e.Username,
			strconv.Itoa(e.Highest),
			strconv.FormatFloat(e.Average, 'f', 2, 64),
		})
	}
	return headers, cells
}

// UserTable converts users to table cells: ID, Username, Name.
func UserTable(users []model.User) (headers []string, cells [][]string) {
	headers = []string{"ID", "Username", "Name"}
	cells = make([][]string, 0, len(users))
	for _, u := range users {
		cells = append(cells, []string{u.ID, u.Username, u.Name})
	}
	return headers, cells
}

func usernames(users []model.User) map[string]string {
	return lo.Associate(users, func(u model.User) (string, string) {
		return u.ID, u.Username
	})
}

func displayName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok {
		return name
	}
	return userID
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
