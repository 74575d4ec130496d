package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Notifier receives user-facing notifications. Calls are fire-and-forget.
type Notifier interface {
	Success(message, detail string)
	Error(message, detail string)
}

// Level distinguishes success toasts from error toasts.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 4 * time.Second

// maxToasts caps the queue; the oldest toasts are dropped first.
const maxToasts = 5

// Toast is one notification with its lifetime.
type Toast struct {
	ID      uint64
	Level   Level
	Message string
	Detail  string
	Created time.Time
	Expires time.Time
}

// Center is a thread-safe queue of toasts. The zero value is not usable; use
// NewCenter.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	nextID uint64
	ttl    time.Duration
	now    func() time.Time
}

var _ Notifier = (*Center)(nil)

// NewCenter returns a Center whose toasts live for ttl (DefaultTTL when
// non-positive).
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// Success queues a success toast.
func (c *Center) Success(message, detail string) {
	c.push(LevelSuccess, message, detail)
}

// Error queues an error toast.
func (c *Center) Error(message, detail string) {
	c.push(LevelError, message, detail)
}

func (c *Center) push(level Level, message, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.nextID++
	c.toasts = append(c.toasts, Toast{
		ID:      c.nextID,
		Level:   level,
		Message: message,
		Detail:  detail,
		Created: now,
		Expires: now.Add(c.ttl),
	})
	if over := len(c.toasts) - maxToasts; over > 0 {
		c.toasts = append([]Toast(nil), c.toasts[over:]...)
	}
}

// Active returns the toasts that have not expired at now, oldest first.
func (c *Center) Active(now time.Time) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, 0, len(c.toasts))
	for _, t := range c.toasts {
		if now.Before(t.Expires) {
			out = append(out, t)
		}
	}
	return out
}

// Prune drops expired toasts and reports how many remain.
func (c *Center) Prune(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.Expires) {
			kept = append(kept, t)
		}
	}
	clear(c.toasts[len(kept):])
	c.toasts = kept
	return len(kept)
}

// Dismiss removes every toast.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = nil
}

// LogNotifier writes notifications to a structured logger. It serves
// non-interactive commands where there is no toast surface.
type LogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = LogNotifier{}

// Success logs at info level.
func (n LogNotifier) Success(message, detail string) {
	n.logger().Info(message, "detail", detail)
}

// Error logs at error level.
func (n LogNotifier) Error(message, detail string) {
	n.logger().Error(message, "detail", detail)
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

// Multi fans notifications out to several notifiers.
type Multi []Notifier

var _ Notifier = Multi(nil)

// Success forwards to every notifier.
func (m Multi) Success(message, detail string) {
	for _, n := range m {
		if n != nil {
			n.Success(message, detail)
		}
	}
}

// Error forwards to every notifier.
func (m Multi) Error(message, detail string) {
	for _, n := range m {
		if n != nil {
			n.Error(message, detail)
		}
	}
}
