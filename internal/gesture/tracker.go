package gesture

import "github.com/1broseidon/sidepan/internal/platform"

// Tracker remembers the virtual (possibly off-screen) position of windows
// that are currently clamped against a screen edge. An entry exists if and
// only if the window's most recent computed position fell outside the clamp
// bounds; entries persist across events and gestures until invalidated.
type Tracker struct {
	virtual map[platform.WindowID]platform.Point
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		virtual: make(map[platform.WindowID]platform.Point),
	}
}

// Resolve returns the logical origin for a window: the cached virtual
// position when one exists and is still trustworthy, otherwise the window's
// real top-left. A cached entry is trusted only while its y matches the
// real y; a mismatch means the window was moved externally, so the
// remembered off-screen x is stale and the real position wins.
func (t *Tracker) Resolve(id platform.WindowID, real platform.Point) platform.Point {
	if cached, ok := t.virtual[id]; ok && cached.Y == real.Y {
		return cached
	}
	return real
}

// Update records the outcome of one movement computation. When the computed
// position was clamped, the pre-clamp logical position is stored; otherwise
// any remembered entry is dropped (the window is fully on screen again).
func (t *Tracker) Update(id platform.WindowID, computed platform.Point, clamped bool) {
	if clamped {
		t.virtual[id] = computed
		return
	}
	delete(t.virtual, id)
}

// Cached returns the stored virtual position for a window, if any.
func (t *Tracker) Cached(id platform.WindowID) (platform.Point, bool) {
	p, ok := t.virtual[id]
	return p, ok
}

// Len returns the number of tracked windows.
func (t *Tracker) Len() int {
	return len(t.virtual)
}

// Reset drops all entries.
func (t *Tracker) Reset() {
	t.virtual = make(map[platform.WindowID]platform.Point)
}
