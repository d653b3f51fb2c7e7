// Package mcp exposes the daemon's pan controls and window inventory as MCP
// tools over stdio, so agent clients can inspect and steer the desktop.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sidepan/internal/ipc"
	"github.com/1broseidon/sidepan/internal/platform"
)

const (
	ServerName    = "sidepan"
	ServerVersion = "0.1.0"
)

// backendFactory lets tests substitute the X connection.
type backendFactory func() (platform.Backend, error)

// Server is the MCP server for pan control.
type Server struct {
	mcpServer  *mcpsdk.Server
	client     *ipc.Client
	newBackend backendFactory

	mu      sync.Mutex
	backend platform.Backend
}

// NewServer creates an MCP server. The X connection is opened lazily on the
// first tool call that needs it, so pan_status works without a display.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
		newBackend: func() (platform.Backend, error) {
			return platform.NewLinuxBackendFromDisplay()
		},
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "pan_status",
		Description: "Report the pan daemon's state: whether it is running, paused, mid-gesture, and how many windows currently sit at a virtual off-screen position.",
	}, s.handlePanStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "pause_panning",
		Description: "Pause the pan daemon's scroll capture. Scroll events reach applications untouched until resume_panning.",
	}, s.handlePausePanning)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resume_panning",
		Description: "Re-enable the pan daemon's scroll capture after pause_panning.",
	}, s.handleResumePanning)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the pannable (normal, visible) windows on a display with their geometry, top-most first. Defaults to the display under the pointer.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "nudge_window",
		Description: "Move a single window horizontally by dx pixels, independent of any gesture. Returns the window's new top-left position.",
	}, s.handleNudgeWindow)
}

func (s *Server) getBackend() (platform.Backend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend != nil {
		return s.backend, nil
	}
	backend, err := s.newBackend()
	if err != nil {
		return nil, fmt.Errorf("connecting to display: %w", err)
	}
	s.backend = backend
	return backend, nil
}
