// Package notify shows transient user-facing messages.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/misterclayt0n/dugout/internal/schedule"
)

// DismissAfter is how long a notification stays visible.
const DismissAfter = 3000 * time.Millisecond

type Notification struct {
	Message string
	IsError bool
	ShownAt time.Time
}

// Display puts notifications in front of the user.
type Display interface {
	Show(n Notification)
	Hide()
}

// Center shows one notification at a time. A new notification replaces the
// visible one and restarts the dismissal timer.
type Center struct {
	display Display
	sched   *schedule.Scheduler

	mu      sync.Mutex
	current *Notification
	dismiss *schedule.Task
}

func NewCenter(display Display, sched *schedule.Scheduler) *Center {
	return &Center{display: display, sched: sched}
}

func (c *Center) Notify(message string, isError bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dismiss != nil {
		c.dismiss.Cancel()
	}

	n := Notification{Message: message, IsError: isError, ShownAt: c.sched.Clock().Now()}
	c.current = &n
	c.display.Show(n)

	var task *schedule.Task
	task = c.sched.After(DismissAfter, func(ctx context.Context) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.dismiss != task {
			return
		}
		c.current = nil
		c.dismiss = nil
		c.display.Hide()
	})
	c.dismiss = task
}

func (c *Center) Error(message string) {
	c.Notify(message, true)
}

func (c *Center) Success(message string) {
	c.Notify(message, false)
}

// Current returns the visible notification, if any.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}
