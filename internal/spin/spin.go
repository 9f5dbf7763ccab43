package spin

import (
	"time"

	"cube-viewer/internal/loop"
)

// State is the spin machine state.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// Scheduler runs frame callbacks and one-shot timers. *loop.Loop implements it.
type Scheduler interface {
	RequestFrame(fn func()) *loop.Handle
	AfterFunc(d time.Duration, fn func()) *loop.Handle
}

// Machine drives a timed spin: while Spinning it calls tick once per frame, and it returns
// to Idle when the duration elapses or Stop is called. Both the pending frame and the timer
// are canceled on every transition to Idle, so nothing fires after Stop returns.
type Machine struct {
	sched    Scheduler
	duration time.Duration
	tick     func()

	state State
	frame *loop.Handle
	timer *loop.Handle

	// OnChange, if set, is called after every state transition.
	OnChange func(State)
}

// New returns an idle machine. tick runs once immediately on Start and then once per frame.
func New(sched Scheduler, duration time.Duration, tick func()) *Machine {
	return &Machine{sched: sched, duration: duration, tick: tick}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Start begins a spin. It is a no-op returning false while already spinning: the running
// spin keeps its speed and its original deadline.
func (m *Machine) Start() bool {
	if m.state == Spinning {
		return false
	}
	m.state = Spinning
	m.timer = m.sched.AfterFunc(m.duration, m.expire)
	m.notify()
	m.step()
	return true
}

// Stop ends a spin early and cancels the in-flight frame and timer. Returns false when idle.
func (m *Machine) Stop() bool {
	if m.state == Idle {
		return false
	}
	m.state = Idle
	m.frame.Cancel()
	m.timer.Cancel()
	m.frame, m.timer = nil, nil
	m.notify()
	return true
}

func (m *Machine) expire() {
	m.timer = nil
	m.Stop()
}

func (m *Machine) step() {
	m.frame = nil
	if m.state != Spinning {
		return
	}
	m.tick()
	if m.state == Spinning {
		m.frame = m.sched.RequestFrame(m.step)
	}
}

func (m *Machine) notify() {
	if m.OnChange != nil {
		m.OnChange(m.state)
	}
}
