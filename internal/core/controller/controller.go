// Package controller owns the comparison workflow: input mode, request
// lifecycle, the current result and the notifications each step produces.
// It is driven by explicit method calls or Dispatch and never renders.
package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/internal/core/result"
)

// ErrBusy is returned when a submit is attempted while a comparison is in
// flight.
var ErrBusy = errors.New("a comparison is already in progress")

// Slot identifies one of the two sequence inputs.
type Slot int

const (
	Seq1 Slot = iota
	Seq2
)

func (s Slot) String() string {
	if s == Seq2 {
		return "seq2"
	}
	return "seq1"
}

// Phase is the request lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
)

func (p Phase) String() string {
	if p == PhaseLoading {
		return "loading"
	}
	return "idle"
}

// Comparer runs a comparison against the remote service.
type Comparer interface {
	Compare(ctx context.Context, req compare.Request) (*compare.Result, error)
}

// Notifier publishes transient notifications.
type Notifier interface {
	Successf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Exporter writes the current result somewhere and returns its location.
type Exporter interface {
	Export() (string, error)
}

// Hooks are optional callbacks for UI side effects.
type Hooks struct {
	// OnLoading is called with true when a submit starts and with false
	// exactly once when it settles or is abandoned.
	OnLoading func(visible bool)
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Comparer Comparer
	Samples  compare.SampleSource
	Notifier Notifier
	Store    *result.Store
	Exporter Exporter
	Logger   zerolog.Logger

	// FilePatterns are the doublestar patterns a selected file is expected to
	// match. Empty disables the hint.
	FilePatterns []string
	// SampleNames are the sample file names requested for each slot.
	SampleNames [2]string

	Hooks Hooks
}

// Controller is the single owner of the comparison workflow state. It is not
// safe for concurrent use; callers serialize access (the TUI does so through
// its update loop).
type Controller struct {
	deps Deps
	log  zerolog.Logger

	mode  compare.InputMode
	files [2]string
	texts [2]string

	phase  Phase
	gen    uint64
	banner string

	presentation *present.Presentation
}

// New returns an idle Controller in file mode.
func New(deps Deps) *Controller {
	if deps.Store == nil {
		deps.Store = result.NewStore()
	}
	return &Controller{
		deps: deps,
		log:  deps.Logger.With().Str("component", "controller").Logger(),
		mode: compare.ModeFile,
	}
}

// State is a snapshot of everything a view needs.
type State struct {
	Mode              compare.InputMode
	Phase             Phase
	Banner            string
	Files             [2]string
	Texts             [2]string
	FileRegionVisible bool
	TextRegionVisible bool
	// Presentation is nil until a comparison succeeds.
	Presentation *present.Presentation
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Mode:              c.mode,
		Phase:             c.phase,
		Banner:            c.banner,
		Files:             c.files,
		Texts:             c.texts,
		FileRegionVisible: c.mode == compare.ModeFile,
		TextRegionVisible: c.mode == compare.ModeText,
		Presentation:      c.presentation,
	}
}

func (c *Controller) setLoading(v bool) {
	if c.deps.Hooks.OnLoading != nil {
		c.deps.Hooks.OnLoading(v)
	}
}

func (c *Controller) notifier() Notifier {
	if c.deps.Notifier == nil {
		return nopNotifier{}
	}
	return c.deps.Notifier
}

type nopNotifier struct{}

func (nopNotifier) Successf(string, ...any) {}
func (nopNotifier) Infof(string, ...any)    {}
func (nopNotifier) Errorf(string, ...any)   {}
