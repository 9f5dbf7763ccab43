package loop

import (
	"sort"
	"time"
)

// Handle refers to a scheduled frame callback or timer. Cancel it to drop the callback before it runs.
type Handle struct {
	fn       func()
	due      time.Duration
	seq      uint64
	canceled bool
	done     bool
}

// Cancel prevents the callback from running. Returns false if it already ran or was already canceled.
// A nil Handle is safe to cancel.
func (h *Handle) Cancel() bool {
	if h == nil || h.canceled || h.done {
		return false
	}
	h.canceled = true
	return true
}

// Pending reports whether the callback is still waiting to run.
func (h *Handle) Pending() bool {
	return h != nil && !h.canceled && !h.done
}

// Loop is a cooperative scheduler driven by the host's frame loop. It runs timers and
// per-frame callbacks on whichever goroutine calls Step; it does no locking, so all
// scheduling and stepping must happen on that one goroutine (e.g. the raylib main loop).
type Loop struct {
	now    time.Duration
	seq    uint64
	frames []*Handle
	timers []*Handle
}

// New returns a loop whose clock starts at zero.
func New() *Loop {
	return &Loop{}
}

// Now returns the latest time passed to Step or Advance.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Advance moves the clock forward to now without running anything. Hosts call it before
// handling input so timers scheduled by that input are measured from the real trigger time.
// A clock that moves backwards is ignored.
func (l *Loop) Advance(now time.Duration) {
	if now > l.now {
		l.now = now
	}
}

// RequestFrame schedules fn for the next Step. Callbacks requested while a Step is
// running are deferred to the following one, like requestAnimationFrame.
func (l *Loop) RequestFrame(fn func()) *Handle {
	l.seq++
	h := &Handle{fn: fn, seq: l.seq}
	l.frames = append(l.frames, h)
	return h
}

// AfterFunc schedules fn to run on the first Step at or after Now()+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Handle {
	l.seq++
	h := &Handle{fn: fn, due: l.now + d, seq: l.seq}
	l.timers = append(l.timers, h)
	return h
}

// Step advances the clock to now, runs every due timer (earliest first), then runs the frame
// callbacks that were requested before this call. A clock that moves backwards is ignored.
func (l *Loop) Step(now time.Duration) {
	l.Advance(now)

	for _, h := range l.takeDue() {
		if h.canceled {
			continue
		}
		h.done = true
		h.fn()
	}

	batch := l.frames
	l.frames = nil
	for _, h := range batch {
		if h.canceled {
			continue
		}
		h.done = true
		h.fn()
	}
}

// takeDue removes due and canceled timers from the queue and returns the due ones in order.
func (l *Loop) takeDue() []*Handle {
	var due []*Handle
	kept := l.timers[:0]
	for _, h := range l.timers {
		switch {
		case h.canceled:
		case h.due <= l.now:
			due = append(due, h)
		default:
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Pending returns the number of frame callbacks and timers that are still scheduled.
func (l *Loop) Pending() (frames, timers int) {
	for _, h := range l.frames {
		if h.Pending() {
			frames++
		}
	}
	for _, h := range l.timers {
		if h.Pending() {
			timers++
		}
	}
	return frames, timers
}
