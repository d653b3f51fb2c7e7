package mcp

// PanStatusInput is the input for the pan_status tool.
type PanStatusInput struct{}

// PanStatusOutput is the output for the pan_status tool.
type PanStatusOutput struct {
	DaemonRunning      bool   `json:"daemon_running"`
	Paused             bool   `json:"paused"`
	GestureActive      bool   `json:"gesture_active"`
	TrackedWindows     int    `json:"tracked_windows"`
	ActivationModifier string `json:"activation_modifier,omitempty"`
	UptimeSeconds      int64  `json:"uptime_seconds,omitempty"`
}

// PausePanningInput is the input for the pause_panning tool.
type PausePanningInput struct{}

// ResumePanningInput is the input for the resume_panning tool.
type ResumePanningInput struct{}

// PanningStateOutput reports the capture state after pause/resume.
type PanningStateOutput struct {
	Paused bool `json:"paused"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Display *int `json:"display,omitempty" jsonschema:"Display ID to list windows for (default: the display under the pointer)"`
}

// WindowInfo describes one pannable window.
type WindowInfo struct {
	ID     uint32 `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Display int          `json:"display"`
	Windows []WindowInfo `json:"windows"`
}

// NudgeWindowInput is the input for the nudge_window tool.
type NudgeWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,Window ID as returned by list_windows"`
	Dx     int    `json:"dx" jsonschema:"required,Horizontal distance in pixels (negative moves left)"`
}

// NudgeWindowOutput is the output for the nudge_window tool.
type NudgeWindowOutput struct {
	X int `json:"x"`
	Y int `json:"y"`
}
