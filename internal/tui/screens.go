package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordle/internal/game"
	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/nav"
	"github.com/verte-zerg/wordle/internal/stats"
	"github.com/verte-zerg/wordle/internal/wordbank"
	"github.com/verte-zerg/wordle/internal/wordle"
)

func (m *Model) prompt() string {
	switch m.screen {
	case screenIntro:
		return "Press Enter to acknowledge the instructions... "
	case screenMenu:
		return "Select an option: "
	case screenSettings:
		switch m.step {
		case stepFirst:
			return fmt.Sprintf("Choose a level between %d and %d (default is %d) or press Enter to skip: ",
				model.MinLevel, model.MaxLevel, m.defaults.Level)
		case stepSecond:
			return fmt.Sprintf("Choose max attempts between %d and %d (default is %d) or press Enter to skip: ",
				model.MinAttempts, model.MaxAttempts, m.defaults.MaxAttempts)
		default:
			return "Press Enter to start the game... "
		}
	case screenRound:
		return "Enter a word: "
	case screenRoundOver:
		return "Press Enter to play again, q to quit, or anything else for the menu: "
	case screenAddWord:
		if m.step == stepConfirm {
			return "Press Enter to confirm or b to abort adding word... "
		}
		return "Enter a word: "
	case screenScoreboard, screenHistory:
		return "Press Enter to go back... "
	case screenSelectUser:
		if m.step == stepConfirm {
			return "Press Enter to continue or b to abort selecting user... "
		}
		return "Select user by entering the ID/username of the user (Enter to abort): "
	case screenCreateUser:
		switch m.step {
		case stepFirst:
			return "Enter a username (Enter to abort): "
		case stepSecond:
			return "Enter your name: "
		default:
			return "Press Enter to confirm or b to abort creating user... "
		}
	}
	return "> "
}

func (m *Model) handleMenu(input string) tea.Cmd {
	res := m.nav.Handle(input)
	m.errMsg = m.nav.TakeError()
	if m.errMsg == nav.MsgEmptyMenu {
		m.log.Warn().Str("menu", m.nav.Current()).Msg("menu has no options; returned to start")
	}
	switch res.Kind {
	case nav.Quit:
		m.farewell = FarewellQuit
		return tea.Quit
	case nav.Invoke:
		m.invoke(res.Action)
	}
	return nil
}

func (m *Model) invoke(action nav.Action) {
	switch action {
	case nav.ActionPlay:
		m.startSettings()
	case nav.ActionAddWord:
		m.screen = screenAddWord
		m.step = stepFirst
		m.pendingWord = ""
	case nav.ActionScoreboard:
		entries, err := m.svc.Scoreboard()
		if err != nil {
			m.storeFailure("score board", err)
			return
		}
		headers, cells := stats.ScoreboardTable(entries)
		m.table = buildTable(headers, cells, m.tableHeight())
		m.screen = screenScoreboard
	case nav.ActionHistory:
		rows, err := m.svc.History()
		if err != nil {
			m.storeFailure("history", err)
			return
		}
		headers, cells := stats.HistoryTable(rows)
		m.table = buildTable(headers, cells, m.tableHeight())
		m.screen = screenHistory
	case nav.ActionSelectUser:
		users, err := m.svc.Users()
		if err != nil {
			m.storeFailure("users", err)
			return
		}
		headers, cells := stats.UserTable(users)
		m.table = buildTable(headers, cells, m.tableHeight())
		m.screen = screenSelectUser
		m.step = stepFirst
	case nav.ActionCreateUser:
		m.screen = screenCreateUser
		m.step = stepFirst
		m.username, m.name = "", ""
	}
}

func (m *Model) storeFailure(what string, err error) {
	m.log.Error().Err(err).Str("view", what).Msg("failed to load data")
	m.errMsg = fmt.Sprintf("Could not load %s: %v", what, err)
}

// handleShortcut applies b/r on screens outside the round. It reports whether input was consumed.
func (m *Model) handleShortcut(input string) bool {
	switch strings.ToLower(input) {
	case "b", "back":
		m.toMenu()
		return true
	case "r", "restart":
		m.nav.Reset()
		m.toMenu()
		return true
	}
	return false
}

func (m *Model) startSettings() {
	m.screen = screenSettings
	m.step = stepFirst
	m.settings = settingsDraft{level: m.defaults.Level, attempts: m.defaults.MaxAttempts}
	m.round = nil
}

func (m *Model) handleSettings(input string) {
	switch strings.ToLower(input) {
	case "b", "back":
		m.toMenu()
		return
	case "r", "restart":
		m.startSettings()
		return
	}
	switch m.step {
	case stepFirst:
		v, ok := m.parseSetting(input, m.defaults.Level, model.MinLevel, model.MaxLevel)
		if !ok {
			return
		}
		m.settings.level = v
		m.settings.levelChosen = input != ""
		m.step = stepSecond
	case stepSecond:
		v, ok := m.parseSetting(input, m.defaults.MaxAttempts, model.MinAttempts, model.MaxAttempts)
		if !ok {
			return
		}
		m.settings.attempts = v
		m.settings.attemptChosen = input != ""
		m.step = stepConfirm
	default:
		m.beginRound()
	}
}

func (m *Model) parseSetting(input string, def, lo, hi int) (int, bool) {
	if input == "" {
		return def, true
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		m.errMsg = "Invalid input. Please enter a valid number!"
		return 0, false
	}
	if v < lo || v > hi {
		m.errMsg = fmt.Sprintf("Invalid input. Please choose a value between %d and %d!", lo, hi)
		return 0, false
	}
	return v, true
}

func (m *Model) beginRound() {
	settings := model.GameSettings{Level: m.settings.level, MaxAttempts: m.settings.attempts}
	round, err := m.svc.StartRound(settings)
	if err != nil {
		m.toMenu()
		if errors.Is(err, model.ErrNotFound) {
			m.errMsg = fmt.Sprintf("No %d-letter words available. Add words or run `wordle words seed`.", settings.Level)
			return
		}
		m.errMsg = err.Error()
		return
	}
	m.round = round
	m.screen = screenRound
}

func (m *Model) handleGuess(input string) {
	if strings.EqualFold(input, "r") {
		m.startSettings()
		m.notice = "Restarting game..."
		return
	}
	if _, err := m.round.Submit(wordle.Normalize(input)); err != nil {
		m.errMsg = guessError(err, m.round.Level())
		return
	}
	if !m.round.Complete() {
		return
	}
	rec, err := m.svc.FinishRound(m.round)
	m.record = rec
	if err != nil {
		m.errMsg = fmt.Sprintf("Could not save game history: %v", err)
	}
	m.screen = screenRoundOver
}

func guessError(err error, level int) string {
	switch {
	case errors.Is(err, wordle.ErrAlreadyUsed):
		return "Word already used. Try another word!"
	case errors.Is(err, wordle.ErrWrongLength):
		return fmt.Sprintf("Invalid word length. Please enter a %d-letter word.", level)
	case errors.Is(err, wordle.ErrInvalidCharacter):
		return "Invalid letter. Please enter a word with only letters (a-z)."
	}
	return err.Error()
}

func (m *Model) handleRoundOver(input string) {
	if input == "" {
		m.startSettings()
		return
	}
	m.toMenu()
}

func (m *Model) handleAddWord(input string) {
	if m.handleShortcut(input) {
		return
	}
	if m.step == stepFirst {
		word, err := wordbank.Normalize(input)
		if err != nil {
			m.errMsg = fmt.Sprintf("Word must be between %d-%d characters long and only contain letters A-Z and a-z. Please try again.",
				model.MinLevel, model.MaxLevel)
			return
		}
		m.pendingWord = word
		m.step = stepConfirm
		return
	}
	if input != "" {
		m.errMsg = "Press Enter to confirm or b to abort."
		return
	}
	word, err := m.svc.AddWord(m.pendingWord)
	if err != nil {
		m.step = stepFirst
		if errors.Is(err, model.ErrDuplicate) {
			m.errMsg = fmt.Sprintf("Word %s already exists in the word bank.", m.pendingWord)
			return
		}
		m.errMsg = err.Error()
		return
	}
	m.toMenu()
	m.notice = fmt.Sprintf("Word %s added to the %d-letter word bank.", word, len(word))
}

func (m *Model) handleTableScreen(input string) {
	if m.handleShortcut(input) {
		return
	}
	m.toMenu()
}

func (m *Model) handleSelectUser(input string) {
	if m.step == stepConfirm {
		if m.handleShortcut(input) {
			return
		}
		if input != "" {
			m.errMsg = "Press Enter to confirm or b to abort."
			return
		}
		m.svc.SelectUser(m.pendingUser)
		m.toMenu()
		m.notice = fmt.Sprintf("Playing as %s (%s).", m.pendingUser.Name, m.pendingUser.Username)
		return
	}
	if input == "" {
		m.toMenu()
		return
	}
	user, err := m.svc.FindUser(input)
	if err != nil {
		if game.IsRecoverable(err) {
			m.errMsg = fmt.Sprintf("User %q not found. Please try again.", input)
			return
		}
		m.storeFailure("users", err)
		return
	}
	m.pendingUser = user
	m.step = stepConfirm
}

// handleCreateUser reads free text at the username and name prompts, so the
// b/r shortcuts apply only on the confirm step; Enter on an empty username aborts.
func (m *Model) handleCreateUser(input string) {
	switch m.step {
	case stepFirst:
		if input == "" {
			m.toMenu()
			return
		}
		m.username = input
		m.step = stepSecond
	case stepSecond:
		if input == "" {
			m.errMsg = "Name must not be empty."
			return
		}
		m.name = input
		m.step = stepConfirm
	default:
		if m.handleShortcut(input) {
			return
		}
		if input != "" {
			m.errMsg = "Press Enter to confirm or b to abort."
			return
		}
		user, err := m.svc.CreateUser(m.username, m.name)
		if err != nil {
			m.step = stepFirst
			switch {
			case errors.Is(err, model.ErrDuplicate):
				m.errMsg = fmt.Sprintf("Username %q is already taken.", m.username)
			case game.IsRecoverable(err):
				m.errMsg = "Username and name must not be empty."
			default:
				m.errMsg = err.Error()
			}
			return
		}
		m.toMenu()
		m.notice = fmt.Sprintf("Created user %s (%s). You are now playing as %s.", user.Name, user.Username, user.Username)
	}
}
