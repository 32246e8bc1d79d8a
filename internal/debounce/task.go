// Package debounce provides a cancellable single-shot deferred task that
// coalesces bursts of triggers into one run.
package debounce

import (
	"sync"
	"time"
)

type State int

const (
	// Idle: nothing scheduled and nothing running.
	Idle State = iota
	// Pending: the timer is armed.
	Pending
	// Running: fn is executing.
	Running
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	default:
		return "idle"
	}
}

// Task runs fn once delay has elapsed since the most recent Schedule. A
// Schedule while fn is running re-arms the timer, so the changes it announced
// are picked up by a later run; runs never overlap.
type Task struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	running bool
	idle    *sync.Cond
}

func New(delay time.Duration, fn func()) *Task {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	t := &Task{delay: delay, fn: fn}
	t.idle = sync.NewCond(&t.mu)
	return t
}

func (t *Task) Delay() time.Duration { return t.delay }

// Schedule (re)starts the countdown, cancelling any earlier one.
func (t *Task) Schedule() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.onTimer)
		return
	}
	t.timer.Stop()
	t.timer.Reset(t.delay)
}

// Cancel disarms a pending run. It reports whether one was pending. A run that
// is already executing is not interrupted.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.pending
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
	}
	return was
}

func (t *Task) State() State {
	if t == nil {
		return Idle
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.running:
		return Running
	case t.pending:
		return Pending
	default:
		return Idle
	}
}

// Flush runs a pending task immediately on the calling goroutine, after waiting
// for any in-flight run. It reports whether fn ran.
func (t *Task) Flush() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	for t.running {
		t.idle.Wait()
	}
	if !t.pending {
		t.mu.Unlock()
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.pending = false
	t.running = true
	t.mu.Unlock()

	t.run()
	return true
}

func (t *Task) onTimer() {
	t.mu.Lock()
	if t.running {
		// Another run is in flight; try again once it had time to finish.
		if t.pending && t.timer != nil {
			t.timer.Reset(t.delay)
		}
		t.mu.Unlock()
		return
	}
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.running = true
	t.mu.Unlock()

	t.run()
}

func (t *Task) run() {
	defer func() {
		t.mu.Lock()
		t.running = false
		// A Schedule during the run armed the timer already; make sure it has
		// the full delay from now.
		if t.pending && t.timer != nil {
			t.timer.Reset(t.delay)
		}
		t.idle.Broadcast()
		t.mu.Unlock()
	}()
	t.fn()
}
