package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"User", "Highest Score", "Average Score"}
	rows := [][]string{
		{"alice", "75", "62.50"},
		{"bob", "5", "5.00"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	require.Len(t, lines, 4)
	assert.Equal(t, "User   Highest Score  Average Score", lines[0])
	assert.Equal(t, "-----  -------------  -------------", lines[1])
	assert.Equal(t, "alice             75          62.50", lines[2])
	assert.Equal(t, "bob                5           5.00", lines[3])
}

func TestFormatTableTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", maxColumnWidth+10)
	lines := formatTable([]string{"ID"}, [][]string{{long}}, nil)
	require.Len(t, lines, 3)
	assert.Len(t, []rune(lines[2]), maxColumnWidth)
	assert.True(t, strings.HasSuffix(lines[2], "…"))
}

func TestFormatTableEmpty(t *testing.T) {
	assert.Nil(t, formatTable(nil, nil, nil))
}
