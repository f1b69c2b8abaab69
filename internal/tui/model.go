// Package tui provides the Bubble Tea game interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordle/internal/game"
	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/nav"
	"github.com/verte-zerg/wordle/internal/wordle"
)

// Farewell messages printed after the program exits.
const (
	FarewellQuit      = "You have exited the program. Goodbye!"
	FarewellInterrupt = "Goodbye!"
)

type screen int

const (
	screenIntro screen = iota
	screenMenu
	screenSettings
	screenRound
	screenRoundOver
	screenAddWord
	screenScoreboard
	screenHistory
	screenSelectUser
	screenCreateUser
)

// step tracks the prompt within a multi-prompt screen.
type step int

const (
	stepFirst step = iota
	stepSecond
	stepConfirm
)

type settingsDraft struct {
	level         int
	attempts      int
	levelChosen   bool
	attemptChosen bool
}

// Model implements the Bubble Tea game UI. Every screen reads one line at a
// time from a single text input and handles it on Enter.
type Model struct {
	svc      *game.Service
	nav      *nav.Machine
	log      zerolog.Logger
	defaults model.GameSettings

	input textinput.Model
	table table.Model

	width  int
	height int

	screen screen
	step   step
	errMsg string
	notice string

	settings    settingsDraft
	round       *wordle.Round
	record      model.HistoryRecord
	pendingWord string
	pendingUser model.User
	username    string
	name        string

	farewell string
}

// NewModel constructs the game UI, starting at the instruction screen.
func NewModel(svc *game.Service, machine *nav.Machine, defaults model.GameSettings, log zerolog.Logger) *Model {
	input := textinput.New()
	input.CharLimit = 64
	input.Focus()
	m := &Model{
		svc:      svc,
		nav:      machine,
		log:      log,
		defaults: defaults,
		input:    input,
		screen:   screenIntro,
	}
	m.syncPrompt()
	return m
}

// SetNotice shows msg until the next line of input.
func (m *Model) SetNotice(msg string) {
	m.notice = msg
}

// Farewell returns the message to print once the program has exited.
func (m *Model) Farewell() string {
	return m.farewell
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width/2)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.farewell = FarewellInterrupt
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			cmd := m.submit(line)
			m.syncPrompt()
			return m, cmd
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			if m.showsTable() {
				var cmd tea.Cmd
				m.table, cmd = m.table.Update(msg)
				return m, cmd
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one line of input for the current screen.
func (m *Model) submit(line string) tea.Cmd {
	m.errMsg = ""
	m.notice = ""
	input := strings.TrimSpace(line)
	if m.isQuit(input) {
		m.farewell = FarewellQuit
		return tea.Quit
	}
	switch m.screen {
	case screenIntro:
		m.toMenu()
	case screenMenu:
		return m.handleMenu(input)
	case screenSettings:
		m.handleSettings(input)
	case screenRound:
		m.handleGuess(input)
	case screenRoundOver:
		m.handleRoundOver(input)
	case screenAddWord:
		m.handleAddWord(input)
	case screenScoreboard, screenHistory:
		m.handleTableScreen(input)
	case screenSelectUser:
		m.handleSelectUser(input)
	case screenCreateUser:
		m.handleCreateUser(input)
	}
	return nil
}

// isQuit reports whether input is the quit shortcut. During a round only "q"
// quits, since "QUIT" is a playable four-letter guess.
func (m *Model) isQuit(input string) bool {
	lower := strings.ToLower(input)
	if lower == "q" {
		return true
	}
	return lower == "quit" && m.screen != screenRound
}

func (m *Model) showsTable() bool {
	switch m.screen {
	case screenScoreboard, screenHistory, screenSelectUser:
		return true
	}
	return false
}

func (m *Model) toMenu() {
	m.screen = screenMenu
	m.step = stepFirst
	m.round = nil
}

func (m *Model) syncPrompt() {
	m.input.Prompt = m.prompt()
}
