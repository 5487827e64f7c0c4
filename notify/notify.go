package notify

import (
	"sync"
	"time"
)

// Notification types.
const (
	TypeSuccess = "success"
	TypeError   = "error"
)

// Notification is one toast: a type, an optional title and a message.
type Notification struct {
	Type    string
	Title   string
	Message string
}

// Center holds at most one active notification. A new notification
// replaces the current one; the active notification auto-dismisses after
// the configured duration or on an explicit Close.
type Center struct {
	mu        sync.Mutex
	active    *Notification
	seq       int
	duration  time.Duration
	timer     *time.Timer
	listeners []func(Notification)
}

// NewCenter creates a center. A non-positive duration disables
// auto-dismiss, which keeps tests deterministic.
func NewCenter(duration time.Duration) *Center {
	return &Center{duration: duration}
}

// Subscribe registers a listener invoked on every emission.
func (c *Center) Subscribe(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Success emits a success notification.
func (c *Center) Success(message string) {
	c.Notify(Notification{Type: TypeSuccess, Message: message})
}

// Error emits an error notification.
func (c *Center) Error(message string) {
	c.Notify(Notification{Type: TypeError, Message: message})
}

// Notify replaces the active notification and restarts the dismiss timer.
func (c *Center) Notify(n Notification) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
	seq := c.seq
	copied := n
	c.active = &copied
	if c.duration > 0 {
		c.timer = time.AfterFunc(c.duration, func() { c.expire(seq) })
	}
	listeners := make([]func(Notification), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
}

// Active returns the currently displayed notification, if any.
func (c *Center) Active() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	copied := *c.active
	return &copied
}

// Close dismisses the active notification.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.active = nil
}

// expire clears the notification only if it is still the one the timer
// was armed for.
func (c *Center) expire(seq int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq == seq {
		c.active = nil
		c.timer = nil
	}
}
