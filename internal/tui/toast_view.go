package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/seqcmp/internal/core/notify"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

const (
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders active notifications and composites them as an overlay.
type ToastView struct {
	center *notify.Center
}

func NewToastView(center *notify.Center) *ToastView {
	return &ToastView{center: center}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	entries := v.center.Active()
	if len(entries) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(entries))
	for _, e := range entries {
		rendered = append(rendered, renderToast(e.Notification))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(n notify.Notification) string {
	icon := styles.IconNotifyInfo
	style := styles.ToastInfoStyle
	if n.Level.Style() == notify.LevelSuccess {
		icon = styles.IconNotifySuccess
		style = styles.ToastSuccessStyle
	}

	content := icon + " " + n.Message
	return style.Width(toastWidth).Render(content)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
