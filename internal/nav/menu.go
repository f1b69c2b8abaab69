// Package nav implements the stack-based menu state machine.
package nav

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/verte-zerg/wordle/internal/model"
)

// Root is the name of the initial menu.
const Root = "start"

// Action names a leaf operation handled outside the state machine.
type Action string

// Known actions.
const (
	ActionPlay       Action = "play"
	ActionAddWord    Action = "add_word"
	ActionScoreboard Action = "scoreboard"
	ActionHistory    Action = "history"
	ActionSelectUser Action = "select_user"
	ActionCreateUser Action = "create_user"
	ActionQuit       Action = "quit"
)

var knownActions = map[Action]bool{
	ActionPlay:       true,
	ActionAddWord:    true,
	ActionScoreboard: true,
	ActionHistory:    true,
	ActionSelectUser: true,
	ActionCreateUser: true,
	ActionQuit:       true,
}

// Option is one selectable menu entry. Exactly one of Next and Action is set.
type Option struct {
	Name   string `json:"name"`
	Next   string `json:"next,omitempty"`
	Action Action `json:"action,omitempty"`
}

// Menus maps menu names to their ordered options.
type Menus map[string][]Option

//go:embed navigation.json
var defaultNavigation []byte

// DefaultMenus returns the built-in menu configuration.
func DefaultMenus() Menus {
	menus, err := Parse(defaultNavigation)
	if err != nil {
		panic(fmt.Sprintf("embedded navigation is invalid: %v", err))
	}
	return menus
}

// LoadMenus reads a navigation file. An empty path selects the built-in menus.
func LoadMenus(path string) (Menus, error) {
	if path == "" {
		return DefaultMenus(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates navigation JSON.
func Parse(data []byte) (Menus, error) {
	var menus Menus
	if err := json.Unmarshal(data, &menus); err != nil {
		return nil, fmt.Errorf("%w: navigation: %v", model.ErrConfiguration, err)
	}
	if err := menus.Validate(); err != nil {
		return nil, err
	}
	return menus, nil
}

// Validate checks that the root exists, every transition targets a declared menu,
// and every action is known. Menus with no options are allowed; the machine
// recovers from them at runtime.
func (m Menus) Validate() error {
	if _, ok := m[Root]; !ok {
		return fmt.Errorf("%w: navigation has no %q menu", model.ErrConfiguration, Root)
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for i, opt := range m[name] {
			switch {
			case opt.Name == "":
				return fmt.Errorf("%w: %s option %d has no name", model.ErrConfiguration, name, i+1)
			case opt.Next != "" && opt.Action != "":
				return fmt.Errorf("%w: %s option %q has both next and action", model.ErrConfiguration, name, opt.Name)
			case opt.Next != "":
				if _, ok := m[opt.Next]; !ok {
					return fmt.Errorf("%w: %s option %q targets unknown menu %q", model.ErrConfiguration, name, opt.Name, opt.Next)
				}
			case opt.Action != "":
				if !knownActions[opt.Action] {
					return fmt.Errorf("%w: %s option %q has unknown action %q", model.ErrConfiguration, name, opt.Name, opt.Action)
				}
			default:
				return fmt.Errorf("%w: %s option %q has neither next nor action", model.ErrConfiguration, name, opt.Name)
			}
		}
	}
	return nil
}
