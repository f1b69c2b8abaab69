package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordle/internal/model"
)

func TestUserStoreCreateFindList(t *testing.T) {
	users := NewUserStore(t.TempDir())

	list, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	alice, err := users.Create(model.User{Username: "alice", Name: "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)

	_, err = users.Create(model.User{Username: "alice", Name: "Other"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.ErrorIs(t, err, model.ErrDuplicate)

	byName, ok, err := users.Find("alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, byName)

	byID, ok, err := users.Find(alice.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, byID)

	_, ok, err = users.Find("bob")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = users.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserStoreFileLayout(t *testing.T) {
	dir := t.TempDir()
	users := NewUserStore(dir)
	_, err := users.Create(model.User{ID: "u1", Username: "alice", Name: "Alice"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1","username":"alice","name":"Alice"}]`, string(data))
}

func TestUserStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))
	_, err := NewUserStore(dir).List()
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func sampleRecords() []model.HistoryRecord {
	return []model.HistoryRecord{
		{ID: "h1", UserID: "u1", Word: "CRANE", Guesses: 3, Result: model.OutcomeWin, Score: 65, Timestamp: "2024-05-01 10:00"},
		{ID: "h2", UserID: "u2", Word: "SLATE", Guesses: 6, Result: model.OutcomeLoss, Score: 0, Timestamp: "2024-05-01 11:00"},
		{ID: "h3", UserID: "u1", Word: "CAT", Guesses: 1, Result: model.OutcomeWin, Score: 55, Timestamp: "2024-05-02 09:30"},
	}
}

func TestJSONHistoryAppendList(t *testing.T) {
	dir := t.TempDir()
	h := NewJSONHistory(dir)
	for _, rec := range sampleRecords() {
		require.NoError(t, h.Append(rec))
	}

	all, err := h.List("")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), all)

	mine, err := h.List("u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "h1", mine[0].ID)
	assert.Equal(t, "h3", mine[1].ID)

	data, err := os.ReadFile(filepath.Join(dir, "history.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"uuid": "h1"`)
	assert.Contains(t, string(data), `"result": "lose"`)
}

func TestSQLiteHistoryAppendList(t *testing.T) {
	h, err := OpenSQLiteHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = h.Close()
	})

	for _, rec := range sampleRecords() {
		require.NoError(t, h.Append(rec))
	}
	all, err := h.List("")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), all)

	mine, err := h.List("u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, model.OutcomeLoss, mine[0].Result)
}

func TestWordBankListAddMerge(t *testing.T) {
	bank := NewWordBank(t.TempDir())

	_, err := bank.List(5)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, bank.Exists(5))

	require.NoError(t, bank.Add(5, "crane"))
	err = bank.Add(5, "CRANE")
	assert.ErrorIs(t, err, ErrDuplicateWord)

	added, err := bank.Merge(5, []string{"SLATE", "CRANE", "SLATE"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	words, err := bank.List(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, words)
	assert.True(t, bank.Exists(5))
	assert.Equal(t, "5_letter_words.json", filepath.Base(bank.Path(5)))
}

func TestWordBankUppercasesStoredWords(t *testing.T) {
	dir := t.TempDir()
	bank := NewWordBank(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "word_bank"), 0o755))
	require.NoError(t, os.WriteFile(bank.Path(3), []byte(`["cat", "Dog"]`), 0o644))

	words, err := bank.List(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG"}, words)
}

func TestWordBankEmptyListIsNotMissing(t *testing.T) {
	bank := NewWordBank(t.TempDir())
	require.NoError(t, bank.Replace(4, nil))
	words, err := bank.List(4)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5, 6}, Levels())
}
