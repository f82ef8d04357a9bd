package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

const loadingMessage = "Comparing sequences..."

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderTop(), m.results.View(), m.renderFooter())

	// Apply toast overlay on top of everything
	if m.center.HasActive() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// layout sizes the results viewport to the space left by the chrome and
// refreshes its content when the presentation or width changed.
func (m *Model) layout() {
	if m.height > 0 {
		chrome := lipgloss.Height(m.renderTop()) + lipgloss.Height(m.renderFooter())
		m.results.SetHeight(max(m.height-chrome, 3))
	}

	if m.showHistory {
		m.results.SetContent(renderHistory(m.notifyBus.History(), m.width))
		m.renderedFor = nil
		return
	}

	p := m.ctrl.State().Presentation
	if p == m.renderedFor && m.width == m.renderedWidth && p != nil {
		return
	}
	m.results.SetContent(renderResults(p, m.width))
	m.renderedFor = p
	m.renderedWidth = m.width
}

// renderTop renders everything above the results: header, mode tabs, the
// active input region and the status line.
func (m Model) renderTop() string {
	state := m.ctrl.State()

	parts := []string{m.renderHeader(), m.renderModeTabs(state.Mode)}
	if state.FileRegionVisible {
		parts = append(parts, m.renderFileRegion())
	}
	if state.TextRegionVisible {
		parts = append(parts, m.renderTextRegion())
	}

	if state.Banner != "" {
		parts = append(parts, styles.BannerStyle.Render(state.Banner))
	}
	if m.loading.visible {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " ", styles.LoadingStyle.Render(loadingMessage)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	width := m.width
	if width < 1 {
		width = defaultWidth // default width before WindowSizeMsg
	}

	title := styles.TitleStyle.Render(styles.IconDNA + " Sequence Compare")
	if m.version != "" {
		version := styles.HelpStyle.Render(m.version)
		spacer := strings.Repeat(" ", max(width-lipgloss.Width(title)-lipgloss.Width(version), 1))
		title = lipgloss.JoinHorizontal(lipgloss.Left, title, spacer, version)
	}
	divider := styles.DividerStyle.Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Left, title, divider)
}

func (m Model) renderModeTabs(mode compare.InputMode) string {
	renderTab := func(label string, tab compare.InputMode) string {
		if mode == tab {
			return styles.ModeActiveStyle.Render(label)
		}
		return styles.ModeInactiveStyle.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		renderTab(styles.IconFile+" Files", compare.ModeFile),
		" ",
		renderTab(styles.IconText+" Text", compare.ModeText),
	)
}

func (m Model) renderFileRegion() string {
	fields := make([]string, 0, len(m.fileInputs))
	for i := range m.fileInputs {
		slot := controller.Slot(i)
		fields = append(fields, m.renderField(slot, m.fileInputs[i].View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, fields...)
}

func (m Model) renderTextRegion() string {
	fields := make([]string, 0, len(m.textInputs))
	for i := range m.textInputs {
		slot := controller.Slot(i)
		fields = append(fields, m.renderField(slot, m.textInputs[i].View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, fields...)
}

func (m Model) renderField(slot controller.Slot, body string) string {
	label := styles.FieldLabelStyle.Render(fieldLabel(slot))
	style := styles.FieldStyle
	if slot == m.focus {
		style = styles.FieldFocusedStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, label, body))
}

func fieldLabel(slot controller.Slot) string {
	if slot == controller.Seq1 {
		return "Sequence 1"
	}
	return "Sequence 2"
}

// renderFooter renders the help line.
func (m Model) renderFooter() string {
	bindings := m.keys.ShortHelp()
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, styles.HelpKeyStyle.Render(b.Help().Key)+" "+styles.HelpStyle.Render(b.Help().Desc))
	}
	return styles.HelpStyle.Render(strings.Join(items, " • "))
}
