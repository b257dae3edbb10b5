// Package timer implements the meditation countdown. The core is
// tick-driven: the caller (TUI loop or test) advances it one second at a
// time, so the countdown itself is deterministic.
package timer

import "fmt"

// State is a snapshot of the countdown.
type State struct {
	DurationMin int // configured duration in minutes
	Remaining   int // seconds left
	Running     bool
	Paused      bool
}

// Timer counts a meditation session down to zero.
type Timer struct {
	state State
}

// New returns a stopped timer set to the given duration.
func New(minutes int) *Timer {
	return &Timer{
		state: State{
			DurationMin: minutes,
			Remaining:   minutes * 60,
		},
	}
}

// SetDuration changes the configured duration. The remaining time only
// resets when the timer is not mid-session.
func (t *Timer) SetDuration(minutes int) {
	t.state.DurationMin = minutes
	if !t.state.Running {
		t.state.Remaining = minutes * 60
	}
}

// Start begins a session, or restarts the countdown when called on a
// stopped timer. Starting a paused timer resumes it.
func (t *Timer) Start() {
	if t.state.Running && !t.state.Paused {
		return
	}

	if !t.state.Paused {
		t.state.Remaining = t.state.DurationMin * 60
	}

	t.state.Running = true
	t.state.Paused = false
}

// Pause suspends the countdown.
func (t *Timer) Pause() {
	if !t.state.Running {
		return
	}
	t.state.Paused = true
}

// Resume continues a paused countdown.
func (t *Timer) Resume() {
	if !t.state.Paused {
		return
	}
	t.Start()
}

// Reset stops the session and restores the full duration.
func (t *Timer) Reset() {
	t.state.Remaining = t.state.DurationMin * 60
	t.state.Running = false
	t.state.Paused = false
}

// Tick advances the countdown by one second. Returns true when the session
// completes on this tick. Ticks on a stopped or paused timer do nothing.
func (t *Timer) Tick() bool {
	if !t.state.Running || t.state.Paused {
		return false
	}

	if t.state.Remaining > 0 {
		t.state.Remaining--
	}
	if t.state.Remaining == 0 {
		t.state.Running = false
		return true
	}
	return false
}

// State returns a snapshot of the countdown.
func (t *Timer) State() State {
	return t.state
}

// FormatTime renders seconds as M:SS.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
