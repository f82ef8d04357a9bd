package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/logging"
	"github.com/colonyops/seqcmp/internal/core/present"
)

const (
	msgNeedFiles = "please select two sequence files"
	msgNeedTexts = "please enter two sequences"
)

// Ticket identifies one submit attempt. A ticket invalidated by Clear is
// ignored when it settles.
type Ticket struct {
	gen     uint64
	ID      string
	Request compare.Request
}

// Submit validates the inputs, runs the comparison and settles the outcome.
func (c *Controller) Submit(ctx context.Context) error {
	t, err := c.Begin()
	if err != nil {
		return err
	}

	res, err := c.Execute(ctx, t)
	return c.Settle(t, res, err)
}

// Execute sends the ticket's request to the comparison service. It reads no
// controller state, so it may run off the caller's goroutine between Begin
// and Settle.
func (c *Controller) Execute(ctx context.Context, t Ticket) (*compare.Result, error) {
	return c.deps.Comparer.Compare(logging.WithRequestID(ctx, t.ID), t.Request)
}

// Begin enters the loading phase and builds the request for the active mode.
// On a validation failure the error is placed on the banner and the phase
// returns to idle before Begin returns.
func (c *Controller) Begin() (Ticket, error) {
	if c.phase == PhaseLoading {
		c.notifier().Infof("%s", ErrBusy.Error())
		return Ticket{}, ErrBusy
	}

	c.phase = PhaseLoading
	c.gen++
	c.setLoading(true)
	c.banner = ""

	req, err := c.buildRequest()
	if err != nil {
		c.banner = err.Error()
		c.finish()
		return Ticket{}, err
	}

	t := Ticket{gen: c.gen, ID: uuid.NewString(), Request: req}
	c.log.Debug().
		Str("request_id", t.ID).
		Str("mode", req.Mode.String()).
		Msg("comparison started")

	return t, nil
}

// Settle applies the outcome of the attempt identified by t. The returned
// error is err, or nil when the ticket was abandoned.
func (c *Controller) Settle(t Ticket, res *compare.Result, err error) error {
	if c.phase != PhaseLoading || t.gen != c.gen {
		c.log.Debug().Str("request_id", t.ID).Msg("discarding stale comparison outcome")
		return nil
	}
	defer c.finish()

	if err == nil && res == nil {
		err = compare.NewError(compare.KindTransport, "empty response from server", nil)
	}
	if err != nil {
		c.log.Error().Err(err).Str("request_id", t.ID).Msg("comparison failed")
		c.banner = err.Error()
		c.notifier().Errorf("%s", err.Error())
		return err
	}

	if !res.Consistent() {
		c.log.Warn().
			Str("request_id", t.ID).
			Int("total_positions", res.TotalPositions).
			Int("matches", res.Matches).
			Int("differences", res.Differences).
			Msg("result counts do not add up")
	}

	c.deps.Store.Set(*res)
	p := present.Present(*res)
	c.presentation = &p

	c.log.Info().
		Str("request_id", t.ID).
		Float64("similarity", res.Similarity).
		Int("differences", res.Differences).
		Msg("comparison complete")
	c.notifier().Successf("comparison complete")
	return nil
}

// finish returns to idle and hides the loading indicator.
func (c *Controller) finish() {
	c.phase = PhaseIdle
	c.setLoading(false)
}

func (c *Controller) buildRequest() (compare.Request, error) {
	switch c.mode {
	case compare.ModeText:
		s1 := strings.TrimSpace(c.texts[Seq1])
		s2 := strings.TrimSpace(c.texts[Seq2])
		if s1 == "" || s2 == "" {
			return compare.Request{}, compare.NewError(compare.KindValidation, msgNeedTexts, nil)
		}
		return compare.Request{
			Mode: compare.ModeText,
			Seq1: compare.Source{Text: s1},
			Seq2: compare.Source{Text: s2},
		}, nil
	default:
		if c.files[Seq1] == "" || c.files[Seq2] == "" {
			return compare.Request{}, compare.NewError(compare.KindValidation, msgNeedFiles, nil)
		}
		return compare.Request{
			Mode: compare.ModeFile,
			Seq1: compare.Source{Path: c.files[Seq1]},
			Seq2: compare.Source{Path: c.files[Seq2]},
		}, nil
	}
}
