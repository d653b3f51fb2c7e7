package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Point is a position in screen coordinates.
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Display describes a physical display.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// Window contains identity and geometry for a top-level window.
type Window struct {
	ID     WindowID
	Bounds Rect
}

// WindowPort abstracts window enumeration and repositioning.
// StackedWindows returns the normal windows whose centers are inside the
// display's bounds, top-most first.
type WindowPort interface {
	StackedWindows(displayID int) ([]Window, error)
	TopLeft(id WindowID) (Point, error)
	SetTopLeft(id WindowID, p Point) error
	Focus(id WindowID) error
}

// PointerPort abstracts pointer queries and warping. Position and
// SetPosition use absolute root coordinates.
type PointerPort interface {
	ActiveDisplay() (Display, error)
	Position() (Point, error)
	SetPosition(p Point) error
}

// Backend is the full window-system surface a platform binding provides.
type Backend interface {
	WindowPort
	PointerPort
	Displays() ([]Display, error)
}
