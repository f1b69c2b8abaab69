package tui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordle/internal/game"
	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/nav"
	"github.com/verte-zerg/wordle/internal/store"
	"github.com/verte-zerg/wordle/internal/wordbank"
	"github.com/verte-zerg/wordle/internal/wordle"
)

func newTestModel(t *testing.T, menus nav.Menus) (*Model, *store.WordBank) {
	t.Helper()
	dir := t.TempDir()
	bank := store.NewWordBank(dir)
	require.NoError(t, bank.Replace(5, []string{"CRANE"}))
	source := wordbank.NewSourceWithRand(bank, rand.New(rand.NewSource(1)))
	svc := game.NewService(game.NewSession(), store.NewUserStore(dir), store.NewJSONHistory(dir), bank, source, zerolog.Nop())
	if menus == nil {
		menus = nav.DefaultMenus()
	}
	defaults := model.GameSettings{Level: model.DefaultLevel, MaxAttempts: model.DefaultMaxAttempts}
	return NewModel(svc, nav.NewMachine(menus), defaults, zerolog.Nop()), bank
}

func enter(m *Model, lines ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, line := range lines {
		m.input.SetValue(line)
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestIntroLeadsToMenu(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.Contains(t, m.View(), "Welcome to wordle!")

	enter(m, "")
	assert.Equal(t, screenMenu, m.screen)
	view := m.View()
	assert.Contains(t, view, "Start")
	assert.Contains(t, view, "1. Play game")
	assert.Contains(t, view, "6. Quit")
}

func TestPlayRoundToWin(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1")
	require.Equal(t, screenSettings, m.screen)
	assert.Contains(t, m.View(), "5 (Default)")

	enter(m, "", "", "")
	require.Equal(t, screenRound, m.screen)
	assert.Equal(t, "CRANE", m.round.Target())

	enter(m, "slate", "crate")
	assert.Equal(t, screenRound, m.screen)
	enter(m, "crane")

	require.Equal(t, screenRoundOver, m.screen)
	assert.Equal(t, 65, m.record.Score)
	view := m.View()
	assert.Contains(t, view, "Congratulations! You guessed the word!")
	assert.Contains(t, view, "Games Played: 1  Wins: 1  Losses: 0")

	enter(m, "")
	assert.Equal(t, screenSettings, m.screen, "Enter plays again")
}

func TestRoundLossRevealsWord(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1", "", "1", "", "SLATE")

	require.Equal(t, screenRoundOver, m.screen)
	assert.Contains(t, m.View(), "Game over! The correct word is:")
	assert.Equal(t, 1, m.svc.Session.Losses)

	enter(m, "menu")
	assert.Equal(t, screenMenu, m.screen)
}

func TestInvalidGuessesShowTransientErrors(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1", "", "", "")

	enter(m, "AB")
	assert.Equal(t, "Invalid word length. Please enter a 5-letter word.", m.errMsg)
	enter(m, "CR4NE")
	assert.Equal(t, "Invalid letter. Please enter a word with only letters (a-z).", m.errMsg)
	enter(m, "SLATE")
	assert.Empty(t, m.errMsg)
	enter(m, "slate")
	assert.Equal(t, "Word already used. Try another word!", m.errMsg)
	assert.Equal(t, 1, m.round.AttemptsUsed())

	cmd := enter(m, "quit")
	assert.False(t, isQuit(cmd), "quit is a guess during a round")
	assert.Equal(t, screenRound, m.screen)
}

func TestRoundRestartShortcut(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1", "", "", "", "SLATE", "r")
	assert.Equal(t, screenSettings, m.screen)
	assert.Equal(t, stepFirst, m.step)
	assert.Nil(t, m.round)
	assert.Zero(t, m.svc.Session.GamesPlayed)
}

func TestSettingsValidation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1")

	enter(m, "x")
	assert.Equal(t, "Invalid input. Please enter a valid number!", m.errMsg)
	enter(m, "9")
	assert.Equal(t, "Invalid input. Please choose a value between 3 and 6!", m.errMsg)
	assert.Equal(t, stepFirst, m.step)

	enter(m, "5", "21")
	assert.Equal(t, "Invalid input. Please choose a value between 1 and 20!", m.errMsg)
	enter(m, "r")
	assert.Equal(t, stepFirst, m.step)
	enter(m, "b")
	assert.Equal(t, screenMenu, m.screen)
}

func TestMissingBankReturnsToMenu(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "1", "4", "", "")

	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.errMsg, "No 4-letter words available")
}

func TestQuitAndInterrupt(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "")
	assert.True(t, isQuit(enter(m, "q")))
	assert.Equal(t, FarewellQuit, m.Farewell())

	m, _ = newTestModel(t, nil)
	enter(m, "")
	assert.True(t, isQuit(enter(m, "6")))
	assert.Equal(t, FarewellQuit, m.Farewell())

	m, _ = newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, FarewellInterrupt, m.Farewell())
}

func TestCreateAndSelectUser(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "5")
	require.Equal(t, "user_management_menu", m.nav.Current())

	enter(m, "2", "alice", "Alice", "")
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.notice, "alice")
	user, ok := m.svc.Session.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	enter(m, "2", "alice", "Other", "")
	assert.Equal(t, screenCreateUser, m.screen)
	assert.Equal(t, `Username "alice" is already taken.`, m.errMsg)
	enter(m, "", "2", "bob", "Bob", "")
	require.Equal(t, screenMenu, m.screen)

	enter(m, "1")
	require.Equal(t, screenSelectUser, m.screen)
	assert.Len(t, m.table.Rows(), 2)
	enter(m, "carol")
	assert.Equal(t, `User "carol" not found. Please try again.`, m.errMsg)
	enter(m, "alice", "")
	assert.Equal(t, screenMenu, m.screen)
	user, _ = m.svc.Session.ActiveUser()
	assert.Equal(t, "alice", user.Username)
	assert.Contains(t, m.View(), "User: Alice (alice)")
}

func TestUserConfirmNeedsEmptyInput(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "5", "2", "b", "r", "no")
	require.Equal(t, screenCreateUser, m.screen)
	assert.Equal(t, stepConfirm, m.step)
	assert.Equal(t, "Press Enter to confirm or b to abort.", m.errMsg)
	_, ok := m.svc.Session.ActiveUser()
	assert.False(t, ok)

	enter(m, "")
	require.Equal(t, screenMenu, m.screen)
	user, ok := m.svc.Session.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, "b", user.Username)
	assert.Equal(t, "r", user.Name)

	enter(m, "2", "dave", "Dave", "")
	enter(m, "1", "b", "no")
	assert.Equal(t, screenSelectUser, m.screen)
	assert.Equal(t, "Press Enter to confirm or b to abort.", m.errMsg)
	user, _ = m.svc.Session.ActiveUser()
	assert.Equal(t, "dave", user.Username)

	enter(m, "b")
	assert.Equal(t, screenMenu, m.screen)
	user, _ = m.svc.Session.ActiveUser()
	assert.Equal(t, "dave", user.Username)
}

func TestCreateUserEmptyUsernameAborts(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "5", "2", "")
	assert.Equal(t, screenMenu, m.screen)
	assert.Empty(t, m.errMsg)
	users, err := m.svc.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestIntroShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.SetNotice("Missing word banks were created from the built-in lists.")
	assert.Contains(t, m.View(), "Missing word banks were created")
	enter(m, "")
	assert.NotContains(t, m.View(), "Missing word banks were created")
}

func TestAddWordFlow(t *testing.T) {
	m, bank := newTestModel(t, nil)
	enter(m, "", "2", "ow1")
	assert.Contains(t, m.errMsg, "Word must be between 3-6 characters long")

	enter(m, "owl")
	assert.Equal(t, stepConfirm, m.step)
	assert.Contains(t, m.View(), "Your word: OWL")
	enter(m, "")
	assert.Equal(t, screenMenu, m.screen)
	words, err := bank.List(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"OWL"}, words)

	enter(m, "2", "Owl", "")
	assert.Equal(t, "Word OWL already exists in the word bank.", m.errMsg)
	enter(m, "b")
	assert.Equal(t, screenMenu, m.screen)
}

func TestScoreboardAndHistoryScreens(t *testing.T) {
	m, _ := newTestModel(t, nil)
	enter(m, "", "5", "2", "alice", "Alice", "", "r")
	require.Equal(t, nav.Root, m.nav.Current())

	enter(m, "1", "", "", "", "SLATE", "CRATE", "CRANE", "menu")
	require.Equal(t, screenMenu, m.screen)

	enter(m, "3")
	require.Equal(t, screenScoreboard, m.screen)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "alice", m.table.Rows()[0][0])
	assert.Equal(t, "65", m.table.Rows()[0][1])

	enter(m, "", "4")
	require.Equal(t, screenHistory, m.screen)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "CRANE", m.table.Rows()[0][1])
	assert.Equal(t, "win", m.table.Rows()[0][3])
}

func TestKeyboardClassification(t *testing.T) {
	round, err := wordle.NewRound("CRANE", 6)
	require.NoError(t, err)
	_, err = round.Submit("EARNS")
	require.NoError(t, err)

	assert.Equal(t, keyStatePresent, classifyKey(round, 'E'))
	assert.Equal(t, keyStateExact, classifyKey(round, 'N'))
	assert.Equal(t, keyStateAbsent, classifyKey(round, 'S'))
	assert.Equal(t, keyStateUntried, classifyKey(round, 'Q'))

	_, err = round.Submit("CRANK")
	require.NoError(t, err)
	assert.Equal(t, keyStateExact, classifyKey(round, 'R'), "hints are never downgraded")
}

func TestEmptyMenuRecovers(t *testing.T) {
	menus := nav.Menus{
		nav.Root: {{Name: "Broken", Next: "broken"}},
		"broken": {},
	}
	m, _ := newTestModel(t, menus)
	enter(m, "", "1")
	require.Equal(t, "broken", m.nav.Current())

	enter(m, "1")
	assert.Equal(t, nav.Root, m.nav.Current())
	assert.Equal(t, nav.MsgEmptyMenu, m.errMsg)
}
