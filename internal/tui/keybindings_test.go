package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/pkg/tuitest"
)

func defaultKeyMap(t *testing.T) KeyMap {
	t.Helper()
	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)
	return NewKeyMap(cfg.Keybindings)
}

func TestKeyMap_Resolve_Defaults(t *testing.T) {
	km := defaultKeyMap(t)

	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{"ctrl+enter submits", tuitest.KeyCtrlEnter(), config.ActionSubmit},
		{"ctrl+s submits", tuitest.KeyCtrl('s'), config.ActionSubmit},
		{"escape clears", tuitest.KeyEsc(), config.ActionClear},
		{"tab moves focus", tuitest.KeyTab(), config.ActionNextField},
		{"ctrl+t toggles mode", tuitest.KeyCtrl('t'), config.ActionToggleMode},
		{"ctrl+e exports", tuitest.KeyCtrl('e'), config.ActionExport},
		{"ctrl+c quits", tuitest.KeyCtrl('c'), config.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := km.Resolve(tt.msg.(tea.KeyMsg))
			require.True(t, ok)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestKeyMap_Resolve_UnboundKey(t *testing.T) {
	km := defaultKeyMap(t)

	_, ok := km.Resolve(tuitest.KeyPress('a').(tea.KeyMsg))
	assert.False(t, ok)

	_, ok = km.Resolve(tuitest.KeyEnter().(tea.KeyMsg))
	assert.False(t, ok, "plain enter must reach the focused input")
}

func TestKeyMap_Resolve_UserOverride(t *testing.T) {
	km := NewKeyMap(map[string][]string{
		config.ActionSubmit: {"ctrl+r"},
	})

	action, ok := km.Resolve(tuitest.KeyCtrl('r').(tea.KeyMsg))
	require.True(t, ok)
	assert.Equal(t, config.ActionSubmit, action)

	_, ok = km.Resolve(tuitest.KeyCtrlEnter().(tea.KeyMsg))
	assert.False(t, ok)

	_, ok = km.Resolve(tuitest.KeyEsc().(tea.KeyMsg))
	assert.False(t, ok, "actions without keys stay unbound")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := defaultKeyMap(t)

	help := km.ShortHelp()
	require.NotEmpty(t, help)
	assert.Equal(t, "ctrl+enter/ctrl+s", help[0].Help().Key)
	assert.Equal(t, "compare", help[0].Help().Desc)
}
