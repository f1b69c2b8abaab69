package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/wordle"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

const banner = "W O R D L E"

type keyState int

const (
	keyStateUntried keyState = iota
	keyStateAbsent
	keyStatePresent
	keyStateExact
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{bannerStyle.Render(banner), m.renderBody()}
	if counters := m.renderCounters(); counters != "" {
		sections = append(sections, counters)
	}
	sections = append(sections, m.renderFooter(), m.input.View())
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderBody() string {
	switch m.screen {
	case screenIntro:
		return renderIntro()
	case screenMenu:
		return m.renderMenu()
	case screenSettings:
		return m.renderSettings()
	case screenRound, screenRoundOver:
		return m.renderRound()
	case screenAddWord:
		return m.renderAddWord()
	case screenScoreboard:
		return m.renderTable("Score Board")
	case screenHistory:
		return m.renderTable("Game History")
	case screenSelectUser:
		return m.renderSelectUser()
	case screenCreateUser:
		return m.renderCreateUser()
	}
	return ""
}

func renderIntro() string {
	lines := []string{
		titleStyle.Render("Instructions"),
		"",
		titleStyle.Render("Welcome to wordle!"),
		warnStyle.Render("You are currently playing as a guest user."),
		warnStyle.Render("You can play the game as a guest user, or you can create an account."),
		warnStyle.Render("If you are a guest user, your score will not be saved between sessions."),
		warnStyle.Render("It is advised to create an account to keep track of your score."),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderMenu() string {
	options := m.nav.Options()
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, textStyle.Render(fmt.Sprintf("%d. %s", i+1, opt.Name)))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.nav.Title()),
		menuStyle.Render(strings.Join(lines, "\n")),
	)
}

func (m *Model) renderSettings() string {
	level := fmt.Sprintf("%d (Default)", m.defaults.Level)
	if m.settings.levelChosen {
		level = fmt.Sprintf("%d", m.settings.level)
	}
	attempts := fmt.Sprintf("%d (Default)", m.defaults.MaxAttempts)
	if m.settings.attemptChosen {
		attempts = fmt.Sprintf("%d", m.settings.attempts)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Choose level and attempts"),
		"",
		textStyle.Render("Chosen level: "+level),
		textStyle.Render("Max attempts: "+attempts),
	)
}

func (m *Model) renderRound() string {
	if m.round == nil {
		return ""
	}
	parts := []string{titleStyle.Render("Wordle"), "", renderBoard(m.round), "", renderKeyboard(m.round)}
	if m.screen == screenRoundOver {
		parts = append(parts, "", m.renderOutcome())
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderOutcome() string {
	outcome, _ := m.round.Outcome()
	score := fmt.Sprintf("Score: %d", m.record.Score)
	if outcome == model.OutcomeWin {
		return lipgloss.JoinVertical(lipgloss.Center,
			noticeStyle.Render("Congratulations! You guessed the word!"),
			textStyle.Render(score),
		)
	}
	reveal := make([]string, 0, m.round.Level())
	for _, r := range m.round.Target() {
		reveal = append(reveal, tileReveal.Render(string(r)))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		errorStyle.Render("Game over! The correct word is:"),
		strings.Join(reveal, " "),
		textStyle.Render(score),
	)
}

func renderBoard(round *wordle.Round) string {
	guesses := round.Guesses()
	feedback := round.Feedback()
	rows := make([]string, 0, round.MaxAttempts())
	for i := 0; i < round.MaxAttempts(); i++ {
		tiles := make([]string, 0, round.Level())
		if i < len(guesses) {
			for j, r := range []rune(guesses[i]) {
				tiles = append(tiles, renderTile(r, feedback[i][j]))
			}
		} else {
			for j := 0; j < round.Level(); j++ {
				tiles = append(tiles, renderTile(' ', wordle.Untried))
			}
		}
		rows = append(rows, strings.Join(tiles, " "))
	}
	return strings.Join(rows, "\n")
}

func renderTile(r rune, mark wordle.Mark) string {
	switch mark {
	case wordle.Exact:
		return tileExact.Render(string(r))
	case wordle.Present:
		return tilePresent.Render(string(r))
	case wordle.Absent:
		return tileAbsent.Render(string(r))
	}
	return tileEmpty.Render("_")
}

func renderKeyboard(round *wordle.Round) string {
	rows := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			keys = append(keys, keyStyle(classifyKey(round, r)).Render(string(r)))
		}
		rows = append(rows, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func classifyKey(round *wordle.Round, r rune) keyState {
	hint, guessed := round.Hint(r)
	switch {
	case !guessed:
		return keyStateUntried
	case hint.Exact:
		return keyStateExact
	case hint.Present:
		return keyStatePresent
	}
	return keyStateAbsent
}

func keyStyle(state keyState) lipgloss.Style {
	switch state {
	case keyStateExact:
		return keyExact
	case keyStatePresent:
		return keyPresent
	case keyStateAbsent:
		return keyAbsent
	}
	return keyUntried
}

func (m *Model) renderAddWord() string {
	lines := []string{titleStyle.Render("Add Word"), ""}
	if m.step == stepConfirm {
		lines = append(lines,
			textStyle.Render("Your word: "+m.pendingWord),
			textStyle.Render(fmt.Sprintf("Word length: %d", len(m.pendingWord))),
			"",
		)
	}
	lines = append(lines,
		warnStyle.Render("Allowed characters: A-Z and a-z"),
		warnStyle.Render(fmt.Sprintf("Allowed length: %d-%d characters", model.MinLevel, model.MaxLevel)),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderTable(title string) string {
	if len(m.table.Rows()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), "", footerStyle.Render("No records yet."))
	}
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), "", m.table.View())
}

func (m *Model) renderSelectUser() string {
	if m.step == stepConfirm {
		return lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Select User"),
			"",
			textStyle.Render(fmt.Sprintf("Selected user: %s (%s)", m.pendingUser.Name, m.pendingUser.Username)),
		)
	}
	return m.renderTable("Select User")
}

func (m *Model) renderCreateUser() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Create New User"),
		"",
		textStyle.Render("Username: "+m.username),
		textStyle.Render("Name: "+m.name),
	)
}

func (m *Model) renderCounters() string {
	var lines []string
	s := m.svc.Session
	if s.GamesPlayed > 0 {
		lines = append(lines, fmt.Sprintf("Games Played: %d  Wins: %d  Losses: %d", s.GamesPlayed, s.Wins, s.Losses))
	}
	if user, ok := s.ActiveUser(); ok {
		lines = append(lines, fmt.Sprintf("User: %s (%s)", user.Name, user.Username))
	}
	if len(lines) == 0 {
		return ""
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	var help string
	switch m.screen {
	case screenIntro:
		help = "enter: continue  ctrl+c: quit"
	case screenRound:
		help = "[R] restart game  [Q] quit"
	case screenRoundOver:
		help = "enter: play again  [Q] quit"
	case screenSettings:
		help = "[B] back  [R] restart settings  [Q] quit"
	default:
		help = "[B] back  [R] go to the beginning  [Q] quit"
	}
	lines := []string{footerStyle.Render(help)}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}
