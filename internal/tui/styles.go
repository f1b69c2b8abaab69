package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7D7")).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#73C991"))
	panelStyle  = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	menuStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))

	tileBase    = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	tileExact   = tileBase.Background(lipgloss.Color("#538D4E")).Foreground(lipgloss.Color("#FFFFFF"))
	tilePresent = tileBase.Background(lipgloss.Color("#B59F3B")).Foreground(lipgloss.Color("#FFFFFF"))
	tileAbsent  = tileBase.Background(lipgloss.Color("#3A3A3C")).Foreground(lipgloss.Color("#FFFFFF"))
	tileEmpty   = tileBase.Foreground(lipgloss.Color("#4A4A4A"))
	tileReveal  = tileBase.Background(lipgloss.Color("#8E6FC2")).Foreground(lipgloss.Color("#FFFFFF"))

	keyExact   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6AAA64")).Bold(true)
	keyPresent = lipgloss.NewStyle().Foreground(lipgloss.Color("#C9B458")).Bold(true)
	keyAbsent  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	keyUntried = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
)
