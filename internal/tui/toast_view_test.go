package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/seqcmp/internal/core/notify"
	"github.com/colonyops/seqcmp/internal/core/styles"
	"github.com/colonyops/seqcmp/pkg/tuitest"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(notify.NewCenter(0))

	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelSuccess, styles.IconNotifySuccess},
		{notify.LevelInfo, styles.IconNotifyInfo},
		{notify.LevelError, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := notify.NewCenter(0)
			v := NewToastView(c)

			c.Push(notify.Notification{Level: tt.level, Message: "test msg"})

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_stacks_multiple(t *testing.T) {
	c := notify.NewCenter(0)
	v := NewToastView(c)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "second"})

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	// Oldest (first) should appear before newest (second) in the output.
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_Overlay(t *testing.T) {
	c := notify.NewCenter(0)
	v := NewToastView(c)
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)

	assert.Equal(t, bg, v.Overlay(bg, 80, 24), "no toasts leaves the background untouched")

	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "done"})
	out := tuitest.StripANSI(v.Overlay(bg, 80, 24))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 24)
	assert.NotContains(t, lines[0], "done")
	assert.Contains(t, strings.Join(lines[20:], "\n"), "done", "toast sits at the bottom")
}
