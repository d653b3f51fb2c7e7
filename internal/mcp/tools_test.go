package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/sidepan/internal/platform"
)

type fakeBackend struct {
	display platform.Display
	windows []platform.Window
	pos     map[platform.WindowID]platform.Point
}

func (f *fakeBackend) StackedWindows(displayID int) ([]platform.Window, error) {
	return f.windows, nil
}

func (f *fakeBackend) TopLeft(id platform.WindowID) (platform.Point, error) {
	p, ok := f.pos[id]
	if !ok {
		return platform.Point{}, errors.New("no such window")
	}
	return p, nil
}

func (f *fakeBackend) SetTopLeft(id platform.WindowID, p platform.Point) error {
	f.pos[id] = p
	return nil
}

func (f *fakeBackend) Focus(id platform.WindowID) error { return nil }

func (f *fakeBackend) ActiveDisplay() (platform.Display, error) { return f.display, nil }

func (f *fakeBackend) Position() (platform.Point, error) { return platform.Point{}, nil }

func (f *fakeBackend) SetPosition(p platform.Point) error { return nil }

func (f *fakeBackend) Displays() ([]platform.Display, error) {
	return []platform.Display{f.display}, nil
}

func newTestServer(backend platform.Backend) *Server {
	s := NewServer()
	s.newBackend = func() (platform.Backend, error) { return backend, nil }
	return s
}

func TestPanStatusWithoutDaemon(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	_, out, err := NewServer().handlePanStatus(context.Background(), nil, PanStatusInput{})
	if err != nil {
		t.Fatalf("pan_status: %v", err)
	}
	if out.DaemonRunning {
		t.Error("daemon reported running with no socket present")
	}
}

func TestListWindows(t *testing.T) {
	backend := &fakeBackend{
		display: platform.Display{ID: 1, Bounds: platform.Rect{Width: 1400, Height: 900}},
		windows: []platform.Window{
			{ID: 7, Bounds: platform.Rect{X: 100, Y: 50, Width: 400, Height: 300}},
		},
	}

	_, out, err := newTestServer(backend).handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if out.Display != 1 {
		t.Errorf("display = %d, want 1 (active display)", out.Display)
	}
	if len(out.Windows) != 1 || out.Windows[0].ID != 7 || out.Windows[0].Width != 400 {
		t.Errorf("unexpected windows: %+v", out.Windows)
	}
}

func TestNudgeWindow(t *testing.T) {
	backend := &fakeBackend{
		pos: map[platform.WindowID]platform.Point{7: {X: 100, Y: 50}},
	}
	s := newTestServer(backend)

	_, out, err := s.handleNudgeWindow(context.Background(), nil, NudgeWindowInput{Window: 7, Dx: -30})
	if err != nil {
		t.Fatalf("nudge_window: %v", err)
	}
	if out.X != 70 || out.Y != 50 {
		t.Errorf("nudge result = %+v, want x=70 y=50", out)
	}
	if got := backend.pos[7]; got.X != 70 {
		t.Errorf("window not moved: %+v", got)
	}

	if _, _, err := s.handleNudgeWindow(context.Background(), nil, NudgeWindowInput{Window: 0, Dx: 10}); err == nil {
		t.Error("expected error for missing window id")
	}
}
