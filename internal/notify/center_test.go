package notify

import (
	"testing"
	"time"

	"github.com/misterclayt0n/dugout/internal/schedule"
)

type recordingDisplay struct {
	visible *Notification
	shown   []Notification
	hides   int
}

func (d *recordingDisplay) Show(n Notification) {
	d.visible = &n
	d.shown = append(d.shown, n)
}

func (d *recordingDisplay) Hide() {
	d.visible = nil
	d.hides++
}

func newTestCenter() (*Center, *recordingDisplay, *schedule.ManualClock) {
	clock := schedule.NewManualClock()
	display := &recordingDisplay{}
	return NewCenter(display, schedule.New(clock)), display, clock
}

func TestNotify_DismissesAfterWindow(t *testing.T) {
	c, display, clock := newTestCenter()

	c.Notify("Login successful!", false)

	n, ok := c.Current()
	if !ok || n.Message != "Login successful!" || n.IsError {
		t.Fatalf("Current = %+v, %v", n, ok)
	}

	clock.Advance(DismissAfter - time.Millisecond)
	if _, ok := c.Current(); !ok {
		t.Fatal("dismissed before 3000ms")
	}

	clock.Advance(time.Millisecond)
	if _, ok := c.Current(); ok {
		t.Fatal("still visible at 3000ms")
	}
	if display.hides != 1 || display.visible != nil {
		t.Errorf("display hides = %d, visible = %v", display.hides, display.visible)
	}
}

func TestNotify_LastWriteWinsAndRestartsTimer(t *testing.T) {
	c, display, clock := newTestCenter()

	c.Notify("first", false)
	clock.Advance(2 * time.Second)
	c.Notify("second", true)

	n, _ := c.Current()
	if n.Message != "second" || !n.IsError {
		t.Fatalf("expected second notification visible, got %+v", n)
	}

	// The first timer would have fired at 3s; it must not dismiss "second".
	clock.Advance(1500 * time.Millisecond)
	if _, ok := c.Current(); !ok {
		t.Fatal("first notification's timer dismissed the replacement")
	}
	if display.hides != 0 {
		t.Errorf("hides = %d, want 0", display.hides)
	}

	clock.Advance(1500 * time.Millisecond)
	if _, ok := c.Current(); ok {
		t.Fatal("second notification should be gone 3000ms after it was shown")
	}
	if display.hides != 1 {
		t.Errorf("hides = %d, want exactly 1", display.hides)
	}
	if len(display.shown) != 2 {
		t.Errorf("shown = %d, want 2", len(display.shown))
	}
}

func TestNotify_DismissalNeverBeforeWindow(t *testing.T) {
	c, _, clock := newTestCenter()

	steps := []time.Duration{0, 500 * time.Millisecond, 2999 * time.Millisecond, 100 * time.Millisecond}
	for _, step := range steps {
		clock.Advance(step)
		c.Notify("again", false)
	}

	last, _ := c.Current()
	clock.Advance(DismissAfter - time.Millisecond)
	if _, ok := c.Current(); !ok {
		t.Fatal("dismissed early")
	}
	clock.Advance(time.Millisecond)
	if _, ok := c.Current(); ok {
		t.Fatal("not dismissed")
	}
	if got := clock.Now().Sub(last.ShownAt); got < DismissAfter {
		t.Errorf("dismissed %v after last notify, want >= %v", got, DismissAfter)
	}
}
