package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordle/internal/model"
)

// ErrDuplicateUsername is returned when creating a user whose username is taken.
var ErrDuplicateUsername = fmt.Errorf("%w: username", model.ErrDuplicate)

// UserStore keeps users in a JSON list.
type UserStore struct {
	path string
}

// NewUserStore returns a store for users.json under dataDir.
func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json")}
}

// Path returns the backing file.
func (s *UserStore) Path() string { return s.path }

// List returns all users in file order.
func (s *UserStore) List() ([]model.User, error) {
	var users []model.User
	if _, err := readJSON(s.path, &users); err != nil {
		return nil, fmt.Errorf("%w: users: %w", model.ErrNotFound, err)
	}
	return users, nil
}

// Find looks a user up by id or username. ok is false when nothing matches.
func (s *UserStore) Find(idOrUsername string) (user model.User, ok bool, err error) {
	key := strings.TrimSpace(idOrUsername)
	if key == "" {
		return model.User{}, false, nil
	}
	users, err := s.List()
	if err != nil {
		return model.User{}, false, err
	}
	for _, u := range users {
		if u.ID == key || u.Username == key {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

// Create appends user, assigning an id when empty. Usernames are unique.
func (s *UserStore) Create(user model.User) (model.User, error) {
	users, err := s.List()
	if err != nil {
		return model.User{}, err
	}
	for _, existing := range users {
		if existing.Username == user.Username {
			return model.User{}, fmt.Errorf("%w: %q", ErrDuplicateUsername, user.Username)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	users = append(users, user)
	if err := writeJSON(s.path, users); err != nil {
		return model.User{}, err
	}
	return user, nil
}
