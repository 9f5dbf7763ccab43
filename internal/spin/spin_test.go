package spin

import (
	"testing"
	"time"

	"cube-viewer/internal/loop"
)

const frame = 16 * time.Millisecond

func TestMachine_SpinsForDuration(t *testing.T) {
	l := loop.New()
	ticks := 0
	m := New(l, 2*time.Second, func() { ticks++ })

	if !m.Start() {
		t.Fatal("Start() = false from idle")
	}
	if m.State() != Spinning {
		t.Fatalf("State() = %v, want spinning", m.State())
	}
	if ticks != 1 {
		t.Fatalf("ticks after Start = %d, want 1", ticks)
	}

	now := time.Duration(0)
	for now+frame < 2*time.Second {
		now += frame
		l.Step(now)
		if m.State() != Spinning {
			t.Fatalf("stopped early at %v", now)
		}
	}
	want := 1 + int(now/frame)
	if ticks != want {
		t.Errorf("ticks = %d, want %d", ticks, want)
	}

	l.Step(2 * time.Second)
	if m.State() != Idle {
		t.Fatalf("State() = %v at deadline, want idle", m.State())
	}
	if ticks != want {
		t.Errorf("tick ran on the deadline step: ticks = %d, want %d", ticks, want)
	}

	l.Step(3 * time.Second)
	if ticks != want {
		t.Errorf("ticks after idle = %d, want %d", ticks, want)
	}
	if f, tm := l.Pending(); f != 0 || tm != 0 {
		t.Errorf("Pending() = (%d, %d), want (0, 0)", f, tm)
	}
}

func TestMachine_StartWhileSpinningIsNoop(t *testing.T) {
	l := loop.New()
	ticks := 0
	m := New(l, 2*time.Second, func() { ticks++ })

	m.Start()
	l.Step(time.Second)
	if m.Start() {
		t.Error("second Start() = true, want false")
	}
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2 (no extra tick from re-trigger)", ticks)
	}

	l.Step(2*time.Second + frame)
	if m.State() != Idle {
		t.Errorf("deadline moved: State() = %v at 2s, want idle", m.State())
	}
	if _, tm := l.Pending(); tm != 0 {
		t.Errorf("pending timers = %d, want 0", tm)
	}
}

func TestMachine_StopCancelsEverything(t *testing.T) {
	l := loop.New()
	ticks := 0
	var changes []State
	m := New(l, 2*time.Second, func() { ticks++ })
	m.OnChange = func(s State) { changes = append(changes, s) }

	m.Start()
	if !m.Stop() {
		t.Fatal("Stop() = false while spinning")
	}
	if m.Stop() {
		t.Error("Stop() = true while idle")
	}
	if f, tm := l.Pending(); f != 0 || tm != 0 {
		t.Errorf("Pending() = (%d, %d), want (0, 0)", f, tm)
	}

	l.Step(time.Second)
	l.Step(3 * time.Second)
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	if len(changes) != 2 || changes[0] != Spinning || changes[1] != Idle {
		t.Errorf("changes = %v, want [spinning idle]", changes)
	}
}

func TestMachine_Restart(t *testing.T) {
	l := loop.New()
	m := New(l, 100*time.Millisecond, func() {})
	m.Start()
	l.Step(100 * time.Millisecond)
	if m.State() != Idle {
		t.Fatalf("State() = %v, want idle", m.State())
	}
	if !m.Start() {
		t.Fatal("Start() after expiry = false")
	}
	l.Step(150 * time.Millisecond)
	if m.State() != Spinning {
		t.Errorf("new spin ended early: State() = %v", m.State())
	}
	l.Step(200 * time.Millisecond)
	if m.State() != Idle {
		t.Errorf("State() = %v, want idle", m.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Spinning, "spinning"},
		{State(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
