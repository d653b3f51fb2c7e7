package gesture

import (
	"log/slog"

	"github.com/1broseidon/sidepan/internal/platform"
)

// Mover applies one scroll delta to every eligible window of a session. It
// works purely in root coordinates; clamping keeps at least one pixel of
// each window on the session's screen.
type Mover struct {
	windows platform.WindowPort
	pointer platform.PointerPort
	tracker *Tracker

	// CursorFollow moves the pointer with the exclusive window so the
	// pointer keeps its position relative to the window's content.
	CursorFollow bool
}

// NewMover creates a mover over the given ports sharing the given tracker.
func NewMover(windows platform.WindowPort, pointer platform.PointerPort, tracker *Tracker) *Mover {
	return &Mover{
		windows: windows,
		pointer: pointer,
		tracker: tracker,
	}
}

// Apply moves the session's working set by dx pixels. Windows the port can
// no longer resolve are skipped silently; a failed move on one window does
// not stop the others.
func (m *Mover) Apply(s *Session, dx int) {
	for _, w := range s.WorkingSet {
		if w.ID == s.ExemptID {
			continue
		}
		if s.ExclusiveID != 0 && w.ID != s.ExclusiveID {
			continue
		}
		m.moveOne(s, w, dx)
	}
}

func (m *Mover) moveOne(s *Session, w platform.Window, dx int) {
	real, err := m.windows.TopLeft(w.ID)
	if err != nil {
		slog.Debug("skipping unresolvable window", "window", w.ID, "error", err)
		return
	}

	origin := m.tracker.Resolve(w.ID, real)
	proposedX := origin.X + dx

	if s.HasLock {
		// Only windows strictly right of the lock column move; a window
		// sitting exactly on the column may only move further right.
		if origin.X < s.LockX || (origin.X == s.LockX && dx <= 0) {
			return
		}
		if proposedX <= s.LockX {
			proposedX = s.LockX + 1
		}
	}

	minX := s.Bounds.XMin - w.Bounds.Width + 1
	maxX := s.Bounds.XMax - 1
	clampedX := proposedX
	if clampedX < minX {
		clampedX = minX
	}
	if clampedX > maxX {
		clampedX = maxX
	}

	m.tracker.Update(w.ID, platform.Point{X: proposedX, Y: origin.Y}, clampedX != proposedX)

	if s.ExclusiveID == w.ID && m.CursorFollow {
		if pos, err := m.pointer.Position(); err == nil {
			shift := clampedX - real.X
			if shift != 0 {
				if err := m.pointer.SetPosition(platform.Point{X: pos.X + shift, Y: pos.Y}); err != nil {
					slog.Debug("pointer warp failed", "error", err)
				}
			}
		}
	}

	if err := m.windows.SetTopLeft(w.ID, platform.Point{X: clampedX, Y: origin.Y}); err != nil {
		slog.Debug("window move failed", "window", w.ID, "error", err)
	}
}
