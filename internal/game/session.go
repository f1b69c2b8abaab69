// Package game connects rounds to the session counters and the persistent stores.
package game

import "github.com/verte-zerg/wordle/internal/model"

// Session holds per-process state: the active user and running counters.
//
// It is not safe for concurrent use. The program is single-session; a server
// hosting several players would need one Session per player.
type Session struct {
	activeUser  *model.User
	GamesPlayed int
	Wins        int
	Losses      int
}

// NewSession returns a guest session with zeroed counters.
func NewSession() *Session {
	return &Session{}
}

// ActiveUser returns the selected user, or ok=false for guest play.
func (s *Session) ActiveUser() (user model.User, ok bool) {
	if s.activeUser == nil {
		return model.User{}, false
	}
	return *s.activeUser, true
}

// IsGuest reports whether no user is selected.
func (s *Session) IsGuest() bool { return s.activeUser == nil }

// SelectUser makes user the active user.
func (s *Session) SelectUser(user model.User) {
	u := user
	s.activeUser = &u
}

// Record counts a finished round.
func (s *Session) Record(outcome model.Outcome) {
	s.GamesPlayed++
	if outcome == model.OutcomeWin {
		s.Wins++
	} else {
		s.Losses++
	}
}
