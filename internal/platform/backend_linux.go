//go:build linux

package platform

import (
	"fmt"
	"sort"

	"github.com/1broseidon/sidepan/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// Displays returns all active displays.
func (b *LinuxBackend) Displays() ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, displayFromMonitor(m))
	}

	sort.Slice(displays, func(i, j int) bool {
		return displays[i].ID < displays[j].ID
	})

	return displays, nil
}

// ActiveDisplay returns the display currently under the pointer.
func (b *LinuxBackend) ActiveDisplay() (Display, error) {
	conn, err := b.connection()
	if err != nil {
		return Display{}, err
	}

	mon, err := conn.GetMonitorForPointer()
	if err != nil {
		return Display{}, err
	}

	return displayFromMonitor(*mon), nil
}

// StackedWindows lists normal windows whose centers are inside the display
// bounds, top-most first.
func (b *LinuxBackend) StackedWindows(displayID int) ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	displays, err := b.Displays()
	if err != nil {
		return nil, err
	}

	var target *Display
	for i := range displays {
		if displays[i].ID == displayID {
			target = &displays[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("display with id %d not found", displayID)
	}

	clients, err := conn.StackingList()
	if err != nil {
		return nil, err
	}

	// _NET_CLIENT_LIST_STACKING is bottom-to-top; walk it in reverse.
	windows := make([]Window, 0, len(clients))
	for i := len(clients) - 1; i >= 0; i-- {
		windowID := clients[i]
		if !conn.IsNormalWindow(windowID) || conn.IsHiddenOrFullscreen(windowID) {
			continue
		}

		x, y, w, h, err := conn.WindowRect(windowID)
		if err != nil {
			continue
		}

		rect := Rect{X: x, Y: y, Width: w, Height: h}
		if !target.Bounds.Contains(rect.X+rect.Width/2, rect.Y+rect.Height/2) {
			continue
		}

		windows = append(windows, Window{
			ID:     WindowID(windowID),
			Bounds: rect,
		})
	}

	return windows, nil
}

// TopLeft returns a window's current top-left corner in root coordinates.
func (b *LinuxBackend) TopLeft(id WindowID) (Point, error) {
	conn, err := b.connection()
	if err != nil {
		return Point{}, err
	}

	x, y, _, _, err := conn.WindowRect(xproto.Window(id))
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// SetTopLeft moves a window so its top-left corner lands at p.
func (b *LinuxBackend) SetTopLeft(id WindowID, p Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveWindow(xproto.Window(id), p.X, p.Y)
}

// Focus activates and raises a window.
func (b *LinuxBackend) Focus(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.FocusWindow(xproto.Window(id))
}

// Position returns the pointer's absolute position.
func (b *LinuxBackend) Position() (Point, error) {
	conn, err := b.connection()
	if err != nil {
		return Point{}, err
	}

	x, y, err := conn.PointerPosition()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// SetPosition warps the pointer to an absolute position.
func (b *LinuxBackend) SetPosition(p Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.WarpPointer(p.X, p.Y)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func displayFromMonitor(m x11.Monitor) Display {
	return Display{
		ID:   m.ID,
		Name: m.Name,
		Bounds: Rect{
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		},
	}
}
