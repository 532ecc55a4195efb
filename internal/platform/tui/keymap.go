package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

// HoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases, so holding is inferred.
const HoldWindow = 150 * time.Millisecond

// KeyState turns terminal key presses into per-frame input. Movement and
// fire stay held until their window lapses; confirm and backspace fire once.
type KeyState struct {
	hold  time.Duration
	held  map[core.Action]time.Time // Action -> expiry
	edges []core.Action
	text  strings.Builder
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = HoldWindow
	}
	return &KeyState{
		hold: hold,
		held: make(map[core.Action]time.Time),
	}
}

// Press records an action at time now.
func (k *KeyState) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(k.held, core.ActionRight)
	case core.ActionRight:
		delete(k.held, core.ActionLeft)
	case core.ActionConfirm, core.ActionBackspace:
		k.edges = append(k.edges, a)
		return
	case core.ActionNone, core.ActionQuit:
		return
	}
	k.held[a] = now.Add(k.hold)
}

// Type queues text for name entry.
func (k *KeyState) Type(s string) {
	k.text.WriteString(s)
}

// Held reports whether an action is still held at time now.
func (k *KeyState) Held(a core.Action, now time.Time) bool {
	exp, ok := k.held[a]
	return ok && now.Before(exp)
}

// Frame builds the input for one tick at time now. Edge actions and typed
// text are handed out once.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, exp := range k.held {
		if now.Before(exp) {
			in.Set(a)
		} else {
			delete(k.held, a)
		}
	}
	for _, a := range k.edges {
		in.Set(a)
	}
	k.edges = k.edges[:0]
	in.Type(k.text.String())
	k.text.Reset()
	return in
}

// Reset forgets every held key and pending edge.
func (k *KeyState) Reset() {
	clear(k.held)
	k.edges = k.edges[:0]
	k.text.Reset()
}

// HandleKey maps a key message onto the state. While text is wanted,
// printable keys type instead of steering. It reports whether the key asks
// to quit.
func (k *KeyState) HandleKey(msg tea.KeyMsg, now time.Time, wantsText bool) (quit bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		return true
	case "enter":
		k.Press(core.ActionConfirm, now)
		return false
	case "backspace":
		k.Press(core.ActionBackspace, now)
		return false
	case " ":
		k.Press(core.ActionFire, now)
		if wantsText {
			k.Type(" ")
		}
		return false
	case "left", "right":
		k.Press(arrow(key), now)
		return false
	}

	if msg.Type != tea.KeyRunes {
		return false
	}
	if wantsText {
		k.Type(string(msg.Runes))
		return false
	}
	switch key {
	case "q":
		return true
	case "a", "h":
		k.Press(core.ActionLeft, now)
	case "d", "l":
		k.Press(core.ActionRight, now)
	}
	return false
}

func arrow(key string) core.Action {
	if key == "left" {
		return core.ActionLeft
	}
	return core.ActionRight
}
