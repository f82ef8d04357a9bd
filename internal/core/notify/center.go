package notify

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Entry is an active notification and its remaining lifetime.
type Entry struct {
	Notification Notification
	Remaining    time.Duration
}

// Center manages the lifecycle of active notifications. Time only advances
// through Tick, so expiry is deterministic. Entries are independent: each has
// its own TTL and the newest can be dismissed early.
type Center struct {
	ttl     time.Duration
	entries []Entry
	ticking bool
}

// NewCenter returns a Center whose notifications live for ttl. A non-positive
// ttl uses DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Push adds a notification and returns it with its ID assigned.
func (c *Center) Push(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	c.entries = append(c.entries, Entry{Notification: n, Remaining: c.ttl})
	return n
}

// Tick decrements the remaining lifetime of every entry by d and removes the
// ones that have expired.
func (c *Center) Tick(d time.Duration) {
	alive := c.entries[:0]
	for _, e := range c.entries {
		e.Remaining -= d
		if e.Remaining > 0 {
			alive = append(alive, e)
		}
	}
	c.entries = alive
}

// DismissNewest removes the most recently pushed notification.
func (c *Center) DismissNewest() {
	if len(c.entries) > 0 {
		c.entries = c.entries[:len(c.entries)-1]
	}
}

// HasActive returns true if there are any active notifications.
func (c *Center) HasActive() bool {
	return len(c.entries) > 0
}

// Active returns the active entries, oldest first.
func (c *Center) Active() []Entry {
	return c.entries
}

// Ticking returns whether the tick timer is currently running.
func (c *Center) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *Center) SetTicking(v bool) {
	c.ticking = v
}
