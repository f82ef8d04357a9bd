package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestContextHook_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(ContextHook{})

	ctx := WithRequestID(context.Background(), "req-2")
	logger.Info().Ctx(ctx).Msg("hello")

	assert.Equal(t, "req-2", decode(t, &buf)["request_id"])
}

func TestContextHook_NoContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(ContextHook{})

	logger.Info().Msg("hello")

	_, ok := decode(t, &buf)["request_id"]
	assert.False(t, ok)
}
