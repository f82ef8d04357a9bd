// Package notify defines transient user-facing notifications.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Style returns the level a notification is displayed as. Errors share the
// info styling.
func (l Level) Style() Level {
	if l == LevelSuccess {
		return LevelSuccess
	}
	return LevelInfo
}
