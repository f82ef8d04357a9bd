package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/seqcmp/internal/core/notify"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus(0)

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.Errorf("test error: %d", 42)
	bus.Infof("info msg")
	bus.Successf("done")

	require.Len(t, received, 3)
	assert.Equal(t, notify.LevelError, received[0].Level)
	assert.Equal(t, "test error: 42", received[0].Message)
	assert.Equal(t, notify.LevelInfo, received[1].Level)
	assert.Equal(t, notify.LevelSuccess, received[2].Level)
}

func TestBus_Publish_assigns_id_and_created_at(t *testing.T) {
	bus := NewBus(0)

	var received notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = n
	})

	bus.Infof("timestamp check")
	assert.NotEmpty(t, received.ID)
	assert.False(t, received.CreatedAt.IsZero())
}

func TestBus_Publish_keeps_caller_id(t *testing.T) {
	bus := NewBus(0)

	var received notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = n
	})

	bus.Publish(notify.Notification{ID: "fixed", Level: notify.LevelInfo, Message: "x"})
	assert.Equal(t, "fixed", received.ID)
}

func TestBus_History_returns_newest_first(t *testing.T) {
	bus := NewBus(0)

	bus.Infof("first")
	bus.Infof("second")
	bus.Infof("third")

	history := bus.History()
	require.Len(t, history, 3)
	assert.Equal(t, "third", history[0].Message)
	assert.Equal(t, "first", history[2].Message)
}

func TestBus_History_is_bounded(t *testing.T) {
	bus := NewBus(2)

	bus.Infof("first")
	bus.Infof("second")
	bus.Infof("third")

	history := bus.History()
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].Message)
	assert.Equal(t, "second", history[1].Message)
}
