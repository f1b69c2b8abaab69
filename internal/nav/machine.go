package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind describes what the driver loop should do after Handle.
type Kind int

// Result kinds.
const (
	// Stay means the state did not change (invalid input or recovery).
	Stay Kind = iota
	// Moved means the current menu changed.
	Moved
	// Invoke means the driver should run Result.Action; the menu is unchanged.
	Invoke
	// Quit means the process should exit.
	Quit
)

// Result is the outcome of handling one line of input.
type Result struct {
	Kind   Kind
	Action Action
}

// Invalid input messages.
const (
	MsgInvalidInput  = "Invalid input. Please try again."
	MsgInvalidOption = "Invalid option. Choose a number from the menu."
	MsgEmptyMenu     = "Invalid menu configuration. Returned to start."
)

// Machine is a LIFO menu state machine. The stack is empty exactly when the
// current menu is Root.
type Machine struct {
	menus   Menus
	current string
	stack   []string
	errMsg  string
}

// NewMachine starts at Root.
func NewMachine(menus Menus) *Machine {
	return &Machine{menus: menus, current: Root}
}

// Current returns the current menu name.
func (m *Machine) Current() string { return m.current }

// Depth returns the number of menus on the back stack.
func (m *Machine) Depth() int { return len(m.stack) }

// Options returns the options of the current menu.
func (m *Machine) Options() []Option { return m.menus[m.current] }

// Title formats the current menu name for display.
func (m *Machine) Title() string {
	words := strings.Split(m.current, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SetError sets the transient message shown on the next render.
func (m *Machine) SetError(msg string) { m.errMsg = msg }

// TakeError returns and clears the transient message.
func (m *Machine) TakeError() string {
	msg := m.errMsg
	m.errMsg = ""
	return msg
}

// Push moves to next, remembering the current menu. Entering Root clears the stack.
func (m *Machine) Push(next string) {
	if next == Root {
		m.Reset()
		return
	}
	m.stack = append(m.stack, m.current)
	m.current = next
}

// Back returns to the previous menu, or stays at Root when the stack is empty.
func (m *Machine) Back() {
	if len(m.stack) == 0 {
		m.Reset()
		return
	}
	m.current = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
}

// Reset clears the stack and returns to Root.
func (m *Machine) Reset() {
	m.stack = nil
	m.current = Root
}

// Handle interprets one line of input: a shortcut or a 1-based option number.
func (m *Machine) Handle(input string) Result {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "q", "quit":
		return Result{Kind: Quit}
	case "b", "back":
		m.Back()
		return Result{Kind: Moved}
	case "r", "restart":
		m.Reset()
		return Result{Kind: Moved}
	}

	options := m.Options()
	if len(options) == 0 {
		m.Reset()
		m.SetError(MsgEmptyMenu)
		return Result{Kind: Stay}
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		m.SetError(MsgInvalidInput)
		return Result{Kind: Stay}
	}
	if n < 1 || n > len(options) {
		m.SetError(fmt.Sprintf("%s (1-%d)", MsgInvalidOption, len(options)))
		return Result{Kind: Stay}
	}
	opt := options[n-1]
	if opt.Next != "" {
		m.Push(opt.Next)
		return Result{Kind: Moved}
	}
	if opt.Action == ActionQuit {
		return Result{Kind: Quit}
	}
	return Result{Kind: Invoke, Action: opt.Action}
}
