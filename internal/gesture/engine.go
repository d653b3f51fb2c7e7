package gesture

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/sidepan/internal/platform"
)

// DefaultSessionTimeout bounds the gap between two events of one gesture.
// Scroll events stop arriving once the activation modifier is released, so
// a session older than this is considered ended.
const DefaultSessionTimeout = 500 * time.Millisecond

// Engine ties the recognizer, session, tracker and mover together. It owns
// the current gesture session (at most one at a time) and decides, per
// scroll event, whether the event is consumed or passed through to the
// focused client.
type Engine struct {
	backend platform.Backend
	tracker *Tracker
	mover   *Mover

	// Timeout is the maximum idle gap within a gesture; zero disables it.
	Timeout time.Duration

	session   *Session
	lastEvent time.Time
	now       func() time.Time
}

// NewEngine creates an engine over the given backend.
func NewEngine(backend platform.Backend, cursorFollow bool) *Engine {
	tracker := NewTracker()
	mover := NewMover(backend, backend, tracker)
	mover.CursorFollow = cursorFollow
	return &Engine{
		backend: backend,
		tracker: tracker,
		mover:   mover,
		Timeout: DefaultSessionTimeout,
		now:     time.Now,
	}
}

// Active reports whether a gesture session is in progress.
func (e *Engine) Active() bool {
	return e.session != nil
}

// Tracker exposes the engine's position cache.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// HandleScroll processes one scroll event and returns the recognizer's
// decision. The caller consumes the underlying input event when
// Decision.Consumed() is true and replays it otherwise.
func (e *Engine) HandleScroll(ev ScrollEvent, mods Modifiers) Decision {
	if e.session != nil && e.Timeout > 0 && e.now().Sub(e.lastEvent) > e.Timeout {
		slog.Debug("gesture expired")
		e.session = nil
	}
	e.lastEvent = e.now()

	decision := Transition(e.Active(), ev, mods)

	switch decision {
	case DecisionBegin:
		s, err := e.beginSession(mods)
		if err != nil {
			slog.Warn("cannot begin pan gesture", "error", err)
			return DecisionPass
		}
		e.session = s
		slog.Debug("gesture begin",
			"display", s.DisplayID,
			"windows", len(s.WorkingSet),
			"exclusive", s.ExclusiveID,
			"columnLock", s.HasLock)
		e.mover.Apply(e.session, ev.Dx)

	case DecisionContinue:
		e.mover.Apply(e.session, ev.Dx)

	case DecisionEnd:
		slog.Debug("gesture end")
		e.session = nil
	}

	return decision
}

// Reset ends any active session and clears the position cache. Used when
// panning is paused or the daemon reloads its configuration.
func (e *Engine) Reset() {
	e.session = nil
	e.tracker.Reset()
}

// beginSession snapshots everything a gesture needs at its first event:
// the screen under the pointer, the stacked working set on that screen,
// and the roles derived from the modifier state. The snapshot stays fixed
// for the life of the gesture.
func (e *Engine) beginSession(mods Modifiers) (*Session, error) {
	display, err := e.backend.ActiveDisplay()
	if err != nil {
		return nil, fmt.Errorf("resolving active display: %w", err)
	}
	pointer, err := e.backend.Position()
	if err != nil {
		return nil, fmt.Errorf("querying pointer: %w", err)
	}
	windows, err := e.backend.StackedWindows(display.ID)
	if err != nil {
		return nil, fmt.Errorf("listing windows: %w", err)
	}

	s := &Session{
		DisplayID: display.ID,
		Bounds: ScreenBounds{
			XMin: display.Bounds.X,
			XMax: display.Bounds.X + display.Bounds.Width,
		},
		WorkingSet: windows,
	}

	// The window under the pointer, if any, is the target of the exempt
	// and exclusive roles. Windows are top-most first, so the first hit
	// is the visible one.
	var under platform.WindowID
	for _, w := range windows {
		if w.Bounds.Contains(pointer.X, pointer.Y) {
			under = w.ID
			break
		}
	}

	if mods.Exempt && under != 0 {
		s.ExemptID = under
	}
	if mods.Exclusive && under != 0 && under != s.ExemptID {
		s.ExclusiveID = under
		if err := e.backend.Focus(under); err != nil {
			slog.Debug("focusing exclusive window failed", "window", under, "error", err)
		}
	}
	if mods.ColumnLock {
		s.LockX = pointer.X
		s.HasLock = true
	}

	return s, nil
}
