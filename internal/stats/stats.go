// Package stats contains score aggregation and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordle/internal/model"
)

// barChars runs from a zero score to the best score in the series.
const barChars = "_.-=#"

// RollingScores averages each score with up to window-1 scores before it,
// rounding to whole points.
func RollingScores(scores []int, window int) []int {
	window = max(window, 1)
	out := make([]int, len(scores))
	for i := range scores {
		recent := scores[max(0, i-window+1) : i+1]
		out[i] = int(math.Round(float64(lo.Sum(recent)) / float64(len(recent))))
	}
	return out
}

// ScoreBars draws one bar per score, scaled against the best score. Zero
// scores, and series without any points, render as the lowest bar.
func ScoreBars(scores []int) string {
	best := lo.Max(scores)
	var b strings.Builder
	for _, score := range scores {
		level := 0
		if best > 0 && score > 0 {
			level = 1 + score*(len(barChars)-2)/best
		}
		b.WriteByte(barChars[min(level, len(barChars)-1)])
	}
	return b.String()
}

// ScoreTrend returns score bars of the rolling score across records.
func ScoreTrend(records []model.HistoryRecord, window int) string {
	scores := lo.Map(records, func(r model.HistoryRecord, _ int) int { return r.Score })
	return ScoreBars(RollingScores(scores, window))
}

// ResultStrip marks each record with W for a win and L for a loss.
func ResultStrip(records []model.HistoryRecord) string {
	return strings.Join(lo.Map(records, func(r model.HistoryRecord, _ int) string {
		if r.Result == model.OutcomeWin {
			return "W"
		}
		return "L"
	}), "")
}

// WinStreak counts consecutive wins at the end of records.
func WinStreak(records []model.HistoryRecord) int {
	streak := 0
	for i := len(records) - 1; i >= 0 && records[i].Result == model.OutcomeWin; i-- {
		streak++
	}
	return streak
}

// RenderScoreboard prints the score board as an aligned table.
func RenderScoreboard(w io.Writer, entries []model.ScoreEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet.")
		return err
	}
	headers, rows := ScoreboardTable(entries)
	return writeTable(w, "Score Board", headers, rows, map[int]bool{1: true, 2: true})
}

// RenderHistory prints history rows as an aligned table followed by the score
// trend and the win/loss strip.
func RenderHistory(w io.Writer, rows []HistoryRow, window int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No games played yet.")
		return err
	}
	headers, cells := HistoryTable(rows)
	if err := writeTable(w, "Game History", headers, cells, map[int]bool{2: true, 4: true}); err != nil {
		return err
	}
	records := make([]model.HistoryRecord, len(rows))
	for i, row := range rows {
		records[i] = row.Record
	}
	if _, err := fmt.Fprintf(w, "Score trend: %s\n", ScoreTrend(records, window)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Results:     %s (win streak %d)\n", ResultStrip(records), WinStreak(records))
	return err
}

// RenderUsers prints users as an aligned table.
func RenderUsers(w io.Writer, users []model.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No users yet.")
		return err
	}
	headers, rows := UserTable(users)
	return writeTable(w, "Users", headers, rows, nil)
}

func writeTable(w io.Writer, title string, headers []string, rows [][]string, rightAlign map[int]bool) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
