package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sidepan/internal/platform"
)

func (s *Server) handlePanStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ PanStatusInput) (*mcpsdk.CallToolResult, PanStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		// A daemon that is not running is a status, not a tool failure.
		return nil, PanStatusOutput{DaemonRunning: false}, nil
	}
	return nil, PanStatusOutput{
		DaemonRunning:      status.DaemonRunning,
		Paused:             status.Paused,
		GestureActive:      status.GestureActive,
		TrackedWindows:     status.TrackedWindows,
		ActivationModifier: status.ActivationMod,
		UptimeSeconds:      status.UptimeSeconds,
	}, nil
}

func (s *Server) handlePausePanning(_ context.Context, _ *mcpsdk.CallToolRequest, _ PausePanningInput) (*mcpsdk.CallToolResult, PanningStateOutput, error) {
	if err := s.client.Pause(); err != nil {
		return nil, PanningStateOutput{}, err
	}
	return nil, PanningStateOutput{Paused: true}, nil
}

func (s *Server) handleResumePanning(_ context.Context, _ *mcpsdk.CallToolRequest, _ ResumePanningInput) (*mcpsdk.CallToolResult, PanningStateOutput, error) {
	if err := s.client.Resume(); err != nil {
		return nil, PanningStateOutput{}, err
	}
	return nil, PanningStateOutput{Paused: false}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	backend, err := s.getBackend()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	displayID := 0
	if args.Display != nil {
		displayID = *args.Display
	} else {
		display, err := backend.ActiveDisplay()
		if err != nil {
			return nil, ListWindowsOutput{}, fmt.Errorf("resolving active display: %w", err)
		}
		displayID = display.ID
	}

	windows, err := backend.StackedWindows(displayID)
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("listing windows: %w", err)
	}

	out := ListWindowsOutput{Display: displayID, Windows: make([]WindowInfo, len(windows))}
	for i, w := range windows {
		out.Windows[i] = WindowInfo{
			ID:     uint32(w.ID),
			X:      w.Bounds.X,
			Y:      w.Bounds.Y,
			Width:  w.Bounds.Width,
			Height: w.Bounds.Height,
		}
	}
	return nil, out, nil
}

func (s *Server) handleNudgeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args NudgeWindowInput) (*mcpsdk.CallToolResult, NudgeWindowOutput, error) {
	if args.Window == 0 {
		return nil, NudgeWindowOutput{}, fmt.Errorf("window is required")
	}

	backend, err := s.getBackend()
	if err != nil {
		return nil, NudgeWindowOutput{}, err
	}

	id := platform.WindowID(args.Window)
	pos, err := backend.TopLeft(id)
	if err != nil {
		return nil, NudgeWindowOutput{}, fmt.Errorf("resolving window %d: %w", args.Window, err)
	}

	target := platform.Point{X: pos.X + args.Dx, Y: pos.Y}
	if err := backend.SetTopLeft(id, target); err != nil {
		return nil, NudgeWindowOutput{}, fmt.Errorf("moving window %d: %w", args.Window, err)
	}
	return nil, NudgeWindowOutput{X: target.X, Y: target.Y}, nil
}
