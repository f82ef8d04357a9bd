package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook adds the request_id carried by an event's context.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if id := RequestID(ctx); id != "" {
		e.Str("request_id", id)
	}
}
