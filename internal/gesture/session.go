package gesture

import "github.com/1broseidon/sidepan/internal/platform"

// ScrollEvent carries the signed pixel deltas of one scroll tick.
// Positive Dx points in the screen's positive-x direction (rightward).
type ScrollEvent struct {
	Dx int
	Dy int
}

// Modifiers is the decoded modifier-key state accompanying a scroll event.
// The capture layer maps raw X11 state masks to these role flags; the
// engine never sees keycodes.
type Modifiers struct {
	Activation bool
	Exempt     bool
	Exclusive  bool
	ColumnLock bool
}

// ScreenBounds is the horizontal extent of the gesture's screen, captured
// once at gesture begin. XMax is exclusive (screen.X + screen.Width).
type ScreenBounds struct {
	XMin int
	XMax int
}

// Session holds everything a pan gesture decides at its first event.
// All fields are fixed at gesture begin and never re-derived mid-gesture:
// changing held modifiers, window z-order, or screen membership after the
// first tick has no effect until the next gesture.
type Session struct {
	DisplayID int
	Bounds    ScreenBounds

	// ExemptID is never moved during this gesture; zero means none.
	ExemptID platform.WindowID
	// ExclusiveID, when set, is the only window moved and the pointer is
	// dragged along with it; zero means none.
	ExclusiveID platform.WindowID

	// LockX is the column-lock boundary in root coordinates. Valid only
	// when HasLock is true (zero is a legitimate x position).
	LockX   int
	HasLock bool

	// WorkingSet is the frozen, ordered list of windows this gesture moves,
	// top-most first.
	WorkingSet []platform.Window
}
