// Package main provides the CLI entrypoint for wordle.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordle/internal/config"
	"github.com/verte-zerg/wordle/internal/game"
	"github.com/verte-zerg/wordle/internal/logging"
	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/nav"
	"github.com/verte-zerg/wordle/internal/stats"
	"github.com/verte-zerg/wordle/internal/store"
	"github.com/verte-zerg/wordle/internal/tui"
	"github.com/verte-zerg/wordle/internal/wordbank"
)

const (
	defaultTrendWindow  = 5
	terminalWidthBackup = 80
)

var (
	seedForce bool

	listLength int

	historyUser   string
	historyWindow int
)

// historyStore is a game.HistoryStore that owns resources.
type historyStore interface {
	game.HistoryStore
	Close() error
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Terminal word guessing game",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newUsersCmd())

	return rootCmd
}

func runGameCmd(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("wordle needs an interactive terminal")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	menus, err := nav.LoadMenus(cfg.NavigationFile)
	if err != nil {
		return err
	}

	log, logCloser, err := logging.Open(cfg.LogPath)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		log = zerolog.Nop()
	} else {
		defer func() {
			if cerr := logCloser.Close(); cerr != nil {
				// Best-effort close of the log file.
				_ = cerr
			}
		}()
	}

	bank := store.NewWordBank(cfg.DataDir)
	seeded, err := seedBanks(bank, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed word banks")
	} else if seeded > 0 {
		log.Info().Int("banks", seeded).Msg("seeded default word banks")
	}

	history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := history.Close(); cerr != nil {
			logErrf("failed to close history: %v\n", cerr)
		}
	}()

	svc := game.NewService(game.NewSession(), store.NewUserStore(cfg.DataDir), history, bank, nil, log)
	defaults := model.GameSettings{Level: cfg.Level, MaxAttempts: cfg.MaxAttempts}
	ui := tui.NewModel(svc, nav.NewMachine(menus), defaults, log)
	ui.SetNotice(seedNotice(seeded, bank))
	return runProgram(tea.NewProgram(ui, tea.WithAltScreen()), ui, os.Stdout)
}

// runProgram runs the TUI and prints the farewell. An interrupt delivered as a
// signal rather than a key press ends the program the same way Ctrl-C does.
func runProgram(program *tea.Program, ui *tui.Model, out io.Writer) error {
	_, err := program.Run()
	farewell := ui.Farewell()
	if err != nil {
		if !errors.Is(err, tea.ErrInterrupted) {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		farewell = tui.FarewellInterrupt
	}
	if farewell != "" {
		if _, err := fmt.Fprintln(out, farewell); err != nil {
			// Best-effort farewell.
			_ = err
		}
	}
	return nil
}

func openHistory(cfg model.Config) (historyStore, error) {
	switch cfg.HistoryBackend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		h, err := store.OpenSQLiteHistory(config.SQLiteHistoryPath(cfg.DataDir))
		if err != nil {
			return nil, fmt.Errorf("failed to open history db: %w", err)
		}
		return h, nil
	default:
		return store.NewJSONHistory(cfg.DataDir), nil
	}
}

// seedBanks writes the embedded word lists for every level whose bank is
// missing, or for every level when force is set.
func seedBanks(bank *store.WordBank, force bool) (int, error) {
	written := 0
	for _, length := range store.Levels() {
		if bank.Exists(length) && !force {
			continue
		}
		words, err := wordbank.Defaults(length)
		if err != nil {
			return written, err
		}
		if err := bank.Replace(length, words); err != nil {
			return written, fmt.Errorf("failed to write %d-letter bank: %w", length, err)
		}
		written++
	}
	return written, nil
}

// seedNotice describes banks written by seedBanks, or returns "" when none were.
func seedNotice(seeded int, bank *store.WordBank) string {
	if seeded == 0 {
		return ""
	}
	return fmt.Sprintf("Missing word banks were created from the built-in lists (%d written to %s).",
		seeded, filepath.Dir(bank.Path(model.MinLevel)))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage word banks",
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in word lists to the word banks",
		Args:  cobra.NoArgs,
		RunE:  runWordsSeedCmd,
	}
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite existing banks")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a one-word-per-line file into the word banks",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsImportCmd,
	}

	addCmd := &cobra.Command{
		Use:   "add WORD",
		Short: "Add a word to the bank for its length",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsAddCmd,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the words of one bank",
		Args:  cobra.NoArgs,
		RunE:  runWordsListCmd,
	}
	listCmd.Flags().IntVar(&listLength, "length", model.DefaultLevel, "word length")

	cmd.AddCommand(seedCmd, importCmd, addCmd, listCmd)
	return cmd
}

func runWordsSeedCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bank := store.NewWordBank(cfg.DataDir)
	written, err := seedBanks(bank, seedForce)
	if err != nil {
		return err
	}
	if written == 0 {
		logErrln("All word banks exist; use --force to overwrite them.")
		return nil
	}
	logErrf("Wrote %d word bank(s) to %s\n", written, filepath.Dir(bank.Path(model.MinLevel)))
	return nil
}

func runWordsImportCmd(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	words, err := wordbank.LoadWords(args[0])
	if err != nil {
		return err
	}
	buckets, skipped := wordbank.Bucket(words)
	bank := store.NewWordBank(cfg.DataDir)
	for _, length := range store.Levels() {
		if len(buckets[length]) == 0 {
			continue
		}
		added, err := bank.Merge(length, buckets[length])
		if err != nil {
			return fmt.Errorf("failed to import %d-letter words: %w", length, err)
		}
		logErrf("Added %d %d-letter word(s)\n", added, length)
	}
	if skipped > 0 {
		logErrf("Skipped %d invalid word(s)\n", skipped)
	}
	return nil
}

func runWordsAddCmd(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	word, err := wordbank.Normalize(args[0])
	if err != nil {
		return err
	}
	if err := store.NewWordBank(cfg.DataDir).Add(len(word), word); err != nil {
		return err
	}
	logErrf("Added %s to the %d-letter word bank\n", word, len(word))
	return nil
}

func runWordsListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	words, err := store.NewWordBank(cfg.DataDir).List(listLength)
	if err != nil {
		return err
	}
	return writeColumns(cmd.OutOrStdout(), words, terminalWidth())
}

// writeColumns prints words space-separated, wrapping lines at width.
func writeColumns(w io.Writer, words []string, width int) error {
	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, line.String())
		line.Reset()
		return err
	}
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			if err := flush(); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if err := flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the score board",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := history.Close(); cerr != nil {
			logErrf("failed to close history: %v\n", cerr)
		}
	}()
	svc := game.NewService(game.NewSession(), store.NewUserStore(cfg.DataDir), history, store.NewWordBank(cfg.DataDir), nil, zerolog.Nop())
	entries, err := svc.Scoreboard()
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	return stats.RenderScoreboard(cmd.OutOrStdout(), entries)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show game history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyUser, "user", "", "only show games of this user id or username")
	cmd.Flags().IntVar(&historyWindow, "window", defaultTrendWindow, "moving average window for the score trend")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyWindow <= 0 {
		return fmt.Errorf("--window must be > 0")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := history.Close(); cerr != nil {
			logErrf("failed to close history: %v\n", cerr)
		}
	}()
	svc := game.NewService(game.NewSession(), store.NewUserStore(cfg.DataDir), history, store.NewWordBank(cfg.DataDir), nil, zerolog.Nop())
	if historyUser != "" {
		user, err := svc.FindUser(historyUser)
		if err != nil {
			return err
		}
		svc.SelectUser(user)
	}
	rows, err := svc.History()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	return stats.RenderHistory(cmd.OutOrStdout(), rows, historyWindow)
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE:  runUsersListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add USERNAME NAME...",
		Short: "Create a user",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runUsersAddCmd,
	})
	return cmd
}

func runUsersListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	users, err := store.NewUserStore(cfg.DataDir).List()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	return stats.RenderUsers(cmd.OutOrStdout(), users)
}

func runUsersAddCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc := game.NewService(game.NewSession(), store.NewUserStore(cfg.DataDir), store.NewJSONHistory(cfg.DataDir), store.NewWordBank(cfg.DataDir), nil, zerolog.Nop())
	user, err := svc.CreateUser(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), user.ID); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
