package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	maxTableHeight  = 15
	maxColumnWidth  = 36
	tableChromeRows = 12
	headerRows      = 3
)

func buildTable(headers []string, cells [][]string, height int) table.Model {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := runewidth.StringWidth(h)
		for _, row := range cells {
			if i < len(row) {
				width = max(width, runewidth.StringWidth(row[i]))
			}
		}
		columns[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}
	rows := make([]table.Row, 0, len(cells))
	for _, row := range cells {
		rows = append(rows, table.Row(row))
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, min(height, len(rows)+headerRows))),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return t
}

func (m *Model) tableHeight() int {
	if m.height == 0 {
		return maxTableHeight
	}
	return max(3, min(maxTableHeight, m.height-tableChromeRows))
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
