package tui

import (
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/internal/core/controller"
)

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.applySize(msg.Width, msg.Height)

	// Publish startup warnings on the first WindowSizeMsg
	if len(m.startupWarnings) > 0 {
		for _, w := range m.startupWarnings {
			m.notifyBus.Infof("%s", w)
		}
		m.startupWarnings = nil
	}

	return m, m.ensureToastTick()
}

func (m *Model) applySize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := max(width-6, 10)
	for i := range m.fileInputs {
		m.fileInputs[i].SetWidth(inputWidth)
		m.textInputs[i].SetWidth(inputWidth)
	}
	m.results.SetWidth(width)
}

// --- Async results ---

func (m Model) handleCompareDone(msg compareDoneMsg) (Model, tea.Cmd) {
	// Settle reports the error through the banner and notifications.
	_ = m.ctrl.Settle(msg.ticket, msg.result, msg.err)
	m.showHistory = false
	m.results.GotoTop()
	return m, m.ensureToastTick()
}

func (m Model) handleSampleLoaded(msg sampleLoadedMsg) (Model, tea.Cmd) {
	m.ctrl.ApplySample(msg.slot, msg.text, msg.err)
	m.syncInputsFromState()
	return m, tea.Batch(m.focusCmd(), m.ensureToastTick())
}

// --- Ticks ---

func (m Model) handleToastTick(_ toastTickMsg) (Model, tea.Cmd) {
	m.center.Tick(toastTickInterval)
	if m.center.HasActive() {
		return m, scheduleToastTick()
	}
	m.center.SetTicking(false)
	return m, nil
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// --- Input ---

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action, ok := m.keys.Resolve(msg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch action {
	case config.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case config.ActionSubmit:
		return m.submit()
	case config.ActionClear:
		return m.clear()
	case config.ActionToggleMode:
		m.commitFiles()
		m.ctrl.ToggleMode()
		return m, tea.Batch(m.focusCmd(), m.ensureToastTick())
	case config.ActionNextField:
		m.commitFiles()
		m.focus = 1 - m.focus
		return m, tea.Batch(m.focusCmd(), m.ensureToastTick())
	case config.ActionExport:
		_, _ = m.ctrl.Export()
		return m, m.ensureToastTick()
	case config.ActionLoadSample:
		return m, m.loadSample(m.focus)
	case config.ActionDismiss:
		m.center.DismissNewest()
		return m, nil
	case config.ActionHistory:
		m.showHistory = !m.showHistory
		m.renderedFor = nil
		m.results.GotoTop()
		return m, nil
	case config.ActionScrollUp:
		m.results.ScrollUp(max(m.results.Height()-1, 1))
		return m, nil
	case config.ActionScrollDown:
		m.results.ScrollDown(max(m.results.Height()-1, 1))
		return m, nil
	}

	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	m.commitFiles()
	m.syncTexts()

	ticket, err := m.ctrl.Begin()
	if err != nil {
		if !errors.Is(err, controller.ErrBusy) && !compare.IsKind(err, compare.KindValidation) {
			m.log.Error().Err(err).Msg("unexpected submit failure")
		}
		return m, m.ensureToastTick()
	}

	ctx, ctrl := m.ctx, m.ctrl
	run := func() tea.Msg {
		res, err := ctrl.Execute(ctx, ticket)
		return compareDoneMsg{ticket: ticket, result: res, err: err}
	}
	return m, tea.Batch(run, m.spinner.Tick, m.ensureToastTick())
}

func (m Model) clear() (Model, tea.Cmd) {
	m.ctrl.Clear()
	m.syncInputsFromState()
	m.focus = controller.Seq1
	m.showHistory = false
	m.results.GotoTop()
	return m, m.focusCmd()
}

func (m Model) loadSample(slot controller.Slot) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		text, err := ctrl.FetchSample(ctx, slot)
		return sampleLoadedMsg{slot: slot, text: text, err: err}
	}
}

// updateFocusedInput forwards msg to the focused input of the active mode and
// mirrors text changes into the controller.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.ctrl.Mode() == compare.ModeText {
		m.textInputs[m.focus], cmd = m.textInputs[m.focus].Update(msg)
		m.ctrl.SetText(m.focus, m.textInputs[m.focus].Value())
		return m, cmd
	}

	m.fileInputs[m.focus], cmd = m.fileInputs[m.focus].Update(msg)
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		m.commitFiles()
		cmd = tea.Batch(cmd, m.ensureToastTick())
	}
	return m, cmd
}

// commitFiles hands edited file paths to the controller. Unchanged paths are
// skipped so the file pattern hint is not repeated.
func (m *Model) commitFiles() {
	state := m.ctrl.State()
	for i := range m.fileInputs {
		slot := controller.Slot(i)
		if path := m.fileInputs[i].Value(); path != state.Files[slot] {
			m.ctrl.SelectFile(slot, path)
		}
	}
}

func (m *Model) syncTexts() {
	for i := range m.textInputs {
		m.ctrl.SetText(controller.Slot(i), m.textInputs[i].Value())
	}
}

// syncInputsFromState copies controller inputs back into the widgets after
// the controller changed them (sample load, clear).
func (m *Model) syncInputsFromState() {
	state := m.ctrl.State()
	for i := range m.fileInputs {
		if m.fileInputs[i].Value() != state.Files[i] {
			m.fileInputs[i].SetValue(state.Files[i])
		}
		if m.textInputs[i].Value() != state.Texts[i] {
			m.textInputs[i].SetValue(state.Texts[i])
		}
	}
}

// focusCmd focuses the input for the active mode and slot and blurs the rest.
func (m *Model) focusCmd() tea.Cmd {
	mode := m.ctrl.Mode()
	var cmds []tea.Cmd
	for i := range m.fileInputs {
		m.fileInputs[i].Blur()
		m.textInputs[i].Blur()
	}

	if mode == compare.ModeText {
		cmds = append(cmds, m.textInputs[m.focus].Focus())
	} else {
		cmds = append(cmds, m.fileInputs[m.focus].Focus())
	}
	return tea.Batch(cmds...)
}
