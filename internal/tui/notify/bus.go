package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/seqcmp/internal/core/notify"
)

// DefaultHistorySize is the number of notifications kept for the history view.
const DefaultHistorySize = 100

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It dispatches notifications
// to subscribers inline and keeps a bounded in-memory history. The Bus is safe
// for use from the Bubble Tea Update loop (single-threaded).
type Bus struct {
	limit       int
	history     []notify.Notification
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus that remembers up to limit notifications.
// A non-positive limit uses DefaultHistorySize.
func NewBus(limit int) *Bus {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &Bus{limit: limit}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers and records it in the
// history.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	log.Debug().
		Str("id", n.ID).
		Str("level", string(n.Level)).
		Str("message", n.Message).
		Msg("notification published")

	b.mu.Lock()
	b.history = append(b.history, n)
	if over := len(b.history) - b.limit; over > 0 {
		b.history = slices.Delete(b.history, 0, over)
	}
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Successf publishes a success-level notification.
func (b *Bus) Successf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelSuccess,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelError,
		Message: fmt.Sprintf(format, args...),
	})
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns the recorded notifications, newest first.
func (b *Bus) History() []notify.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := slices.Clone(b.history)
	slices.Reverse(out)
	return out
}
