package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/seqcmp/internal/core/config"
)

// actionHelp is the help text shown for each action.
var actionHelp = map[string]string{
	config.ActionSubmit:     "compare",
	config.ActionClear:      "clear",
	config.ActionToggleMode: "file/text",
	config.ActionNextField:  "next field",
	config.ActionExport:     "export",
	config.ActionLoadSample: "sample",
	config.ActionDismiss:    "dismiss",
	config.ActionHistory:    "notifications",
	config.ActionScrollUp:   "scroll up",
	config.ActionScrollDown: "scroll down",
	config.ActionQuit:       "quit",
}

// KeyMap resolves key presses to configured actions.
type KeyMap struct {
	bindings map[string]key.Binding
}

// NewKeyMap builds key bindings from the action -> keys configuration.
// Actions missing from the configuration are left unbound.
func NewKeyMap(keybindings map[string][]string) KeyMap {
	km := KeyMap{bindings: make(map[string]key.Binding, len(config.Actions))}
	for _, action := range config.Actions {
		keys := keybindings[action]
		if len(keys) == 0 {
			continue
		}
		km.bindings[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), actionHelp[action]),
		)
	}
	return km
}

// Resolve returns the action bound to msg. Actions are checked in
// config.Actions order, so the first match wins.
func (km KeyMap) Resolve(msg tea.KeyMsg) (string, bool) {
	for _, action := range config.Actions {
		b, ok := km.bindings[action]
		if ok && key.Matches(msg, b) {
			return action, true
		}
	}
	return "", false
}

// ShortHelp returns the bindings shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	shown := []string{
		config.ActionSubmit,
		config.ActionToggleMode,
		config.ActionNextField,
		config.ActionLoadSample,
		config.ActionExport,
		config.ActionClear,
		config.ActionQuit,
	}

	out := make([]key.Binding, 0, len(shown))
	for _, action := range shown {
		if b, ok := km.bindings[action]; ok {
			out = append(out, b)
		}
	}
	return out
}
