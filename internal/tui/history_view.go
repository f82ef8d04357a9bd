package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/seqcmp/internal/core/notify"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

const emptyHistoryText = "No notifications yet."

// renderHistory renders past notifications, newest first, for the results
// viewport.
func renderHistory(history []notify.Notification, width int) string {
	title := styles.SectionStyle.Render("Notifications")
	if len(history) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, styles.WelcomeStyle.Width(max(width, 20)).Render(emptyHistoryText))
	}

	lines := make([]string, 0, len(history))
	for _, n := range history {
		icon, style := styles.IconNotifyInfo, styles.PrinterInfoStyle
		if n.Level.Style() == notify.LevelSuccess {
			icon, style = styles.IconNotifySuccess, styles.PrinterSuccessStyle
		}
		lines = append(lines, styles.HelpStyle.Render(n.CreatedAt.Format("15:04:05"))+" "+style.Render(icon)+" "+n.Message)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}
