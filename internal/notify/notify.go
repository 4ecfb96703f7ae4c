// Package notify implements the transient banner channel the client renders
// after persistence operations. Notifications carry a message, a severity,
// and an auto-dismiss duration; the client may dismiss them early.
package notify

import (
	"sync"
	"time"

	"pocketledger/internal/logger"
	"pocketledger/internal/uuid"
)

// Severity classifies a notification for the client banner.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultDuration is how long a banner stays up unless dismissed early.
const DefaultDuration = 3 * time.Second

// Notification is a single banner message.
type Notification struct {
	ID              string    `json:"id"`
	Message         string    `json:"message"`
	Severity        Severity  `json:"severity"`
	DurationSeconds float64   `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// Notifier is the channel the core and handlers publish banners through.
type Notifier interface {
	Notify(message string, severity Severity, duration time.Duration)
}

// Feed is a bounded, in-memory notification feed. New notifications evict
// the oldest once capacity is reached. Safe for concurrent use.
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
}

// NewFeed creates a feed holding at most capacity notifications.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 100
	}
	return &Feed{capacity: capacity}
}

// Notify appends a notification to the feed and mirrors it to the log.
// A non-positive duration falls back to DefaultDuration.
func (f *Feed) Notify(message string, severity Severity, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	n := Notification{
		ID:              uuid.New(),
		Message:         message,
		Severity:        severity,
		DurationSeconds: duration.Seconds(),
		CreatedAt:       time.Now(),
	}

	f.mu.Lock()
	f.items = append(f.items, n)
	if len(f.items) > f.capacity {
		f.items = f.items[len(f.items)-f.capacity:]
	}
	f.mu.Unlock()

	log := logger.Get()
	switch severity {
	case SeverityError:
		log.Errorw("notification", "message", message)
	case SeverityWarning:
		log.Warnw("notification", "message", message)
	default:
		log.Infow("notification", "message", message, "severity", severity)
	}
}

// Success publishes a success banner with the default duration.
func (f *Feed) Success(message string) {
	f.Notify(message, SeveritySuccess, DefaultDuration)
}

// Error publishes an error banner with the default duration.
func (f *Feed) Error(message string) {
	f.Notify(message, SeverityError, DefaultDuration)
}

// Recent returns up to limit notifications, newest first. A non-positive
// limit returns the whole feed.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.items)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, f.items[i])
	}
	return out
}

// Dismiss removes a notification before its duration elapses. It reports
// whether the notification was present.
func (f *Feed) Dismiss(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}
