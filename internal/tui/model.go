// Package tui implements the Bubble Tea TUI for seqcmp.
package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/core/notify"
	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/internal/core/result"
	"github.com/colonyops/seqcmp/internal/core/styles"
	tuinotify "github.com/colonyops/seqcmp/internal/tui/notify"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	textAreaRows  = 4
)

// Options configures the TUI.
type Options struct {
	Comparer controller.Comparer
	Samples  compare.SampleSource
	Exporter controller.Exporter
	Store    *result.Store
	Logger   zerolog.Logger
	Version  string
	Warnings []string // Startup warnings to display as toasts
}

// compareDoneMsg carries the outcome of a comparison back into the Update loop.
type compareDoneMsg struct {
	ticket controller.Ticket
	result *compare.Result
	err    error
}

// sampleLoadedMsg carries fetched sample data back into the Update loop.
type sampleLoadedMsg struct {
	slot controller.Slot
	text string
	err  error
}

// loadingIndicator tracks the loading indicator toggled by the controller.
// It is shared by pointer so the controller hook and the value-typed Model
// see the same state.
type loadingIndicator struct {
	visible bool
	hides   int
}

func (l *loadingIndicator) set(v bool) {
	l.visible = v
	if !v {
		l.hides++
	}
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx  context.Context
	cfg  *config.Config
	ctrl *controller.Controller
	log  zerolog.Logger

	keys      KeyMap
	notifyBus *tuinotify.Bus
	center    *notify.Center
	toastView *ToastView
	loading   *loadingIndicator

	spinner    spinner.Model
	fileInputs [2]textinput.Model
	textInputs [2]textarea.Model
	focus      controller.Slot
	results    viewport.Model

	// renderedFor is the presentation currently in the results viewport.
	renderedFor   *present.Presentation
	renderedWidth int
	showHistory   bool

	width           int
	height          int
	quitting        bool
	version         string
	startupWarnings []string
}

// New creates the TUI model and the controller it drives.
func New(ctx context.Context, cfg *config.Config, opts Options) Model {
	logger := opts.Logger.With().Str("component", "tui").Logger()

	notifyBus := tuinotify.NewBus(0)
	center := notify.NewCenter(cfg.Notifications.TTL)
	toastView := NewToastView(center)

	// Wire bus -> notification center
	notifyBus.Subscribe(func(n notify.Notification) {
		center.Push(n)
	})

	indicator := &loadingIndicator{}
	ctrl := controller.New(controller.Deps{
		Comparer:     opts.Comparer,
		Samples:      opts.Samples,
		Notifier:     notifyBus,
		Store:        opts.Store,
		Exporter:     opts.Exporter,
		Logger:       opts.Logger,
		FilePatterns: cfg.Files.Patterns,
		SampleNames:  [2]string{cfg.Samples.Seq1, cfg.Samples.Seq2},
		Hooks:        controller.Hooks{OnLoading: indicator.set},
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.LoadingStyle

	var fileInputs [2]textinput.Model
	var textInputs [2]textarea.Model
	for i, name := range []string{"sequence 1", "sequence 2"} {
		fi := textinput.New()
		fi.Prompt = styles.IconFile + " "
		fi.Placeholder = "path to " + name + " file (.fasta, .fa, .txt)"
		fi.CharLimit = 0
		fileInputs[i] = fi

		ta := textarea.New()
		ta.Placeholder = "paste " + name + " here"
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.SetHeight(textAreaRows)
		textInputs[i] = ta
	}

	m := Model{
		ctx:             ctx,
		cfg:             cfg,
		ctrl:            ctrl,
		log:             logger,
		keys:            NewKeyMap(cfg.Keybindings),
		notifyBus:       notifyBus,
		center:          center,
		toastView:       toastView,
		loading:         indicator,
		spinner:         s,
		fileInputs:      fileInputs,
		textInputs:      textInputs,
		focus:           controller.Seq1,
		results:         viewport.New(viewport.WithWidth(defaultWidth), viewport.WithHeight(defaultHeight/2)),
		version:         opts.Version,
		startupWarnings: opts.Warnings,
	}
	m.applySize(defaultWidth, defaultHeight)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.focusCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.layout()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Async results
	case compareDoneMsg:
		return m.handleCompareDone(msg)
	case sampleLoadedMsg:
		return m.handleSampleLoaded(msg)

	// Ticks
	case toastTickMsg:
		return m.handleToastTick(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	// Input
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

// ensureToastTick returns a tick command when there are active notifications
// and no tick chain is running.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.center.HasActive() && !m.center.Ticking() {
		m.center.SetTicking(true)
		return scheduleToastTick()
	}
	return nil
}
