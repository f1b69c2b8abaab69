package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordle/internal/model"
	"github.com/verte-zerg/wordle/internal/stats"
	"github.com/verte-zerg/wordle/internal/wordbank"
	"github.com/verte-zerg/wordle/internal/wordle"
)

// UserStore persists accounts.
type UserStore interface {
	List() ([]model.User, error)
	Find(idOrUsername string) (model.User, bool, error)
	Create(user model.User) (model.User, error)
}

// HistoryStore persists finished rounds.
type HistoryStore interface {
	Append(rec model.HistoryRecord) error
	List(userID string) ([]model.HistoryRecord, error)
}

// WordBank reads and extends per-length word banks.
type WordBank interface {
	List(length int) ([]string, error)
	Add(length int, word string) error
}

// ErrUserNotFound is returned when selecting an unknown user.
var ErrUserNotFound = fmt.Errorf("%w: user", model.ErrNotFound)

// Service implements the game flows on top of the stores.
type Service struct {
	Session *Session

	users   UserStore
	history HistoryStore
	words   WordBank
	source  *wordbank.Source
	log     zerolog.Logger
	now     func() time.Time
}

// NewService wires the stores. source may be nil, in which case one is built on words.
func NewService(session *Session, users UserStore, history HistoryStore, words WordBank, source *wordbank.Source, log zerolog.Logger) *Service {
	if source == nil {
		source = wordbank.NewSource(words)
	}
	return &Service{
		Session: session,
		users:   users,
		history: history,
		words:   words,
		source:  source,
		log:     log,
		now:     time.Now,
	}
}

// ValidateSettings checks level and attempt bounds.
func ValidateSettings(settings model.GameSettings) error {
	if settings.Level < model.MinLevel || settings.Level > model.MaxLevel {
		return fmt.Errorf("%w: level must be between %d and %d", model.ErrValidation, model.MinLevel, model.MaxLevel)
	}
	if settings.MaxAttempts < model.MinAttempts || settings.MaxAttempts > model.MaxAttempts {
		return fmt.Errorf("%w: max attempts must be between %d and %d", model.ErrValidation, model.MinAttempts, model.MaxAttempts)
	}
	return nil
}

// StartRound draws a target word and returns a fresh round.
func (s *Service) StartRound(settings model.GameSettings) (*wordle.Round, error) {
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}
	word, err := s.source.Draw(settings.Level)
	if err != nil {
		s.log.Error().Err(err).Int("level", settings.Level).Msg("cannot start round")
		return nil, fmt.Errorf("failed to select word: %w", err)
	}
	round, err := wordle.NewRound(word, settings.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}
	s.log.Info().Int("level", settings.Level).Int("max_attempts", settings.MaxAttempts).Msg("round started")
	return round, nil
}

// FinishRound updates the session counters and, for a registered user, appends the
// history record. The returned record has an empty ID for guest play.
func (s *Service) FinishRound(round *wordle.Round) (model.HistoryRecord, error) {
	outcome, ok := round.Outcome()
	if !ok {
		return model.HistoryRecord{}, fmt.Errorf("round is still in progress")
	}
	s.Session.Record(outcome)

	user, registered := s.Session.ActiveUser()
	rec, err := round.HistoryRecord(user.ID, s.now())
	if err != nil {
		return model.HistoryRecord{}, err
	}
	s.log.Info().
		Str("outcome", string(outcome)).
		Int("attempts", rec.Guesses).
		Int("score", rec.Score).
		Bool("guest", !registered).
		Msg("round finished")
	if !registered {
		rec.ID = ""
		return rec, nil
	}
	if err := s.history.Append(rec); err != nil {
		s.log.Error().Err(err).Msg("failed to save history")
		return rec, fmt.Errorf("failed to save history: %w", err)
	}
	return rec, nil
}

// CreateUser registers a new account and makes it active.
func (s *Service) CreateUser(username, name string) (model.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || name == "" {
		return model.User{}, fmt.Errorf("%w: username and name must not be empty", model.ErrValidation)
	}
	user, err := s.users.Create(model.User{Username: username, Name: name})
	if err != nil {
		return model.User{}, err
	}
	s.Session.SelectUser(user)
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// FindUser resolves an id or username.
func (s *Service) FindUser(idOrUsername string) (model.User, error) {
	user, ok, err := s.users.Find(idOrUsername)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, fmt.Errorf("%w: %q", ErrUserNotFound, strings.TrimSpace(idOrUsername))
	}
	return user, nil
}

// SelectUser makes user active.
func (s *Service) SelectUser(user model.User) {
	s.Session.SelectUser(user)
	s.log.Info().Str("user_id", user.ID).Msg("user selected")
}

// Users lists all accounts.
func (s *Service) Users() ([]model.User, error) {
	return s.users.List()
}

// AddWord validates and stores a word in the bank for its length.
func (s *Service) AddWord(raw string) (string, error) {
	word, err := wordbank.Normalize(raw)
	if err != nil {
		return "", err
	}
	if err := s.words.Add(len(word), word); err != nil {
		return "", err
	}
	s.log.Info().Str("word", word).Msg("word added")
	return word, nil
}

// History returns the active user's records, or every record for guest play.
func (s *Service) History() ([]stats.HistoryRow, error) {
	userID := ""
	if user, ok := s.Session.ActiveUser(); ok {
		userID = user.ID
	}
	records, err := s.history.List(userID)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	return stats.HistoryRows(records, users), nil
}

// Scoreboard aggregates all history per user.
func (s *Service) Scoreboard() ([]model.ScoreEntry, error) {
	records, err := s.history.List("")
	if err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	return stats.Scoreboard(records, users), nil
}

// IsRecoverable reports whether err should be shown as a transient message and re-prompted.
func IsRecoverable(err error) bool {
	return errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrDuplicate) || errors.Is(err, ErrUserNotFound)
}
