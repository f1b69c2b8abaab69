package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/store"
	"github.com/verte-zerg/wordle/internal/wordbank"
	"github.com/verte-zerg/wordle/internal/wordle"
)

type fixture struct {
	svc     *Service
	history *store.JSONHistory
	bank    *store.WordBank
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	bank := store.NewWordBank(dir)
	require.NoError(t, bank.Replace(5, []string{"CRANE"}))
	history := store.NewJSONHistory(dir)
	source := wordbank.NewSourceWithRand(bank, rand.New(rand.NewSource(7)))
	svc := NewService(NewSession(), store.NewUserStore(dir), history, bank, source, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local) }
	return fixture{svc: svc, history: history, bank: bank}
}

func playCrane(t *testing.T, svc *Service) *wordle.Round {
	t.Helper()
	round, err := svc.StartRound(model.GameSettings{Level: 5, MaxAttempts: 6})
	require.NoError(t, err)
	require.Equal(t, "CRANE", round.Target())
	for _, g := range []string{"SLATE", "CRATE", "CRANE"} {
		_, err := round.Submit(g)
		require.NoError(t, err)
	}
	return round
}

func TestGuestRoundIsNotPersisted(t *testing.T) {
	f := newFixture(t)
	round := playCrane(t, f.svc)

	rec, err := f.svc.FinishRound(round)
	require.NoError(t, err)
	assert.Empty(t, rec.ID)
	assert.Equal(t, 65, rec.Score)

	all, err := f.history.List("")
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.Equal(t, 1, f.svc.Session.GamesPlayed)
	assert.Equal(t, 1, f.svc.Session.Wins)
	assert.Equal(t, 0, f.svc.Session.Losses)
}

func TestRegisteredRoundIsPersisted(t *testing.T) {
	f := newFixture(t)
	user, err := f.svc.CreateUser(" alice ", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	active, ok := f.svc.Session.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, user, active)

	rec, err := f.svc.FinishRound(playCrane(t, f.svc))
	require.NoError(t, err)

	all, err := f.history.List(user.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, rec, all[0])
	assert.Equal(t, "2024-05-01 09:30", all[0].Timestamp)
	assert.Equal(t, model.OutcomeWin, all[0].Result)

	rows, err := f.svc.History()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)

	board, err := f.svc.Scoreboard()
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 65, board[0].Highest)
}

func TestLossCountsLoss(t *testing.T) {
	f := newFixture(t)
	round, err := f.svc.StartRound(model.GameSettings{Level: 5, MaxAttempts: 1})
	require.NoError(t, err)
	_, err = round.Submit("SLATE")
	require.NoError(t, err)

	rec, err := f.svc.FinishRound(round)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeLoss, rec.Result)
	assert.Equal(t, 0, rec.Score)
	assert.Equal(t, 1, f.svc.Session.Losses)
}

func TestFinishRoundRequiresCompletion(t *testing.T) {
	f := newFixture(t)
	round, err := f.svc.StartRound(model.GameSettings{Level: 5, MaxAttempts: 6})
	require.NoError(t, err)
	_, err = f.svc.FinishRound(round)
	assert.Error(t, err)
	assert.Equal(t, 0, f.svc.Session.GamesPlayed)
}

func TestStartRoundWithoutBankFails(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.StartRound(model.GameSettings{Level: 4, MaxAttempts: 6})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, IsRecoverable(err))

	require.NoError(t, f.bank.Replace(3, nil))
	_, err = f.svc.StartRound(model.GameSettings{Level: 3, MaxAttempts: 6})
	assert.ErrorIs(t, err, wordbank.ErrEmptyBank)
}

func TestStartRoundIgnoresWordsOfOtherLengths(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.bank.Replace(5, []string{"cat", "CRANE"}))
	for i := 0; i < 3; i++ {
		round, err := f.svc.StartRound(model.GameSettings{Level: 5, MaxAttempts: 6})
		require.NoError(t, err)
		assert.Equal(t, 5, round.Level())
		assert.Equal(t, "CRANE", round.Target())
	}

	require.NoError(t, f.bank.Replace(5, []string{"cat"}))
	_, err := f.svc.StartRound(model.GameSettings{Level: 5, MaxAttempts: 6})
	assert.ErrorIs(t, err, wordbank.ErrEmptyBank)
}

func TestStartRoundValidatesSettings(t *testing.T) {
	f := newFixture(t)
	for _, s := range []model.GameSettings{
		{Level: 2, MaxAttempts: 6},
		{Level: 7, MaxAttempts: 6},
		{Level: 5, MaxAttempts: 0},
		{Level: 5, MaxAttempts: 21},
	} {
		_, err := f.svc.StartRound(s)
		assert.ErrorIs(t, err, model.ErrValidation, "settings %+v", s)
	}
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateUser("", "Alice")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.True(t, IsRecoverable(err))
	assert.True(t, f.svc.Session.IsGuest())

	_, err = f.svc.CreateUser("alice", "Alice")
	require.NoError(t, err)
	_, err = f.svc.CreateUser("alice", "Alice Two")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
	assert.True(t, IsRecoverable(err))
}

func TestFindAndSelectUser(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.CreateUser("bob", "Bob")
	require.NoError(t, err)

	f.svc.Session = NewSession()
	_, err = f.svc.FindUser("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.True(t, IsRecoverable(err))

	found, err := f.svc.FindUser(created.ID)
	require.NoError(t, err)
	f.svc.SelectUser(found)
	active, ok := f.svc.Session.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, "bob", active.Username)
}

func TestAddWord(t *testing.T) {
	f := newFixture(t)
	word, err := f.svc.AddWord("slate")
	require.NoError(t, err)
	assert.Equal(t, "SLATE", word)

	_, err = f.svc.AddWord("SLATE")
	assert.ErrorIs(t, err, model.ErrDuplicate)

	_, err = f.svc.AddWord("ab")
	assert.ErrorIs(t, err, model.ErrValidation)

	word, err = f.svc.AddWord("owl")
	require.NoError(t, err)
	words, err := f.bank.List(3)
	require.NoError(t, err)
	assert.Equal(t, []string{word}, words)
}
