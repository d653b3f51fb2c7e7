// Package tui is an interactive settings editor for the pan daemon. It
// shows the effective configuration, lets the user edit it in a form, and
// pushes saved changes to a running daemon over IPC.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/sidepan/internal/config"
	"github.com/1broseidon/sidepan/internal/ipc"
)

// Run starts the TUI main loop.
func Run(configPath string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(configPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// model is the root bubbletea model for the TUI.
type model struct {
	configPath string
	cfg        *config.Config
	loadErr    string

	ipcClient       *ipc.Client
	daemonConnected bool
	daemonPaused    bool

	editing bool
	form    *huh.Form
	notice  string

	// Form-bound values (strings for huh, converted on submit)
	fActivation string
	fExempt     string
	fExclusive  string
	fColumnLock string
	fScrollStep string
	fTimeout    string
	fLogLevel   string
	fInvert     bool
	fFollow     bool

	width  int
	height int
}

func newModel(configPath string) model {
	m := model{configPath: configPath}
	m.loadConfig()

	m.ipcClient = ipc.NewClient()
	m.refreshDaemonStatus()
	return m
}

func (m *model) loadConfig() {
	var cfg *config.Config
	var err error
	if m.configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(m.configPath)
	}
	if err != nil {
		m.loadErr = err.Error()
		if m.cfg == nil {
			m.cfg = config.DefaultConfig()
		}
		return
	}
	m.loadErr = ""
	m.cfg = cfg
}

func (m *model) refreshDaemonStatus() {
	status, err := m.ipcClient.GetStatus()
	if err != nil {
		m.daemonConnected = false
		m.daemonPaused = false
		return
	}
	m.daemonConnected = true
	m.daemonPaused = status.Paused
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateDisplay(msg)
}

func (m model) updateDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "e":
			m.startEditing()
			return m, m.form.Init()
		case "s":
			m.save()
			return m, nil
		case "r":
			m.refreshDaemonStatus()
			m.notice = ""
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.editing = false
			m.form = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.applyForm()
		m.editing = false
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// save writes the config and asks a running daemon to pick it up.
func (m *model) save() {
	if err := m.cfg.Validate(); err != nil {
		m.notice = "not saved: " + err.Error()
		return
	}

	var err error
	if m.configPath == "" {
		err = m.cfg.Save()
	} else {
		err = m.cfg.SaveTo(m.configPath)
	}
	if err != nil {
		m.notice = "save failed: " + err.Error()
		return
	}

	m.notice = "saved"
	if m.daemonConnected {
		if err := m.ipcClient.Reload(); err == nil {
			m.notice = "saved, daemon reloaded"
		}
	}
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.editing && m.form != nil {
		return m.viewEditing()
	}
	return m.viewDisplay()
}

func (m model) viewDisplay() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Width(24).
		Align(lipgloss.Right).
		PaddingRight(2)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("203"))

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	daemonLine := "not running"
	if m.daemonConnected {
		daemonLine = "running"
		if m.daemonPaused {
			daemonLine = "running (paused)"
		}
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true).Render("sidepan settings"),
		"",
		row("Daemon", daemonLine),
		"",
		row("Activation Modifier", m.cfg.ActivationModifier),
		row("Exempt Modifier", displayOrDefault(m.cfg.ExemptModifier, "(disabled)")),
		row("Exclusive Modifier", displayOrDefault(m.cfg.ExclusiveModifier, "(disabled)")),
		row("Column Lock Modifier", displayOrDefault(m.cfg.ColumnLockModifier, "(disabled)")),
		"",
		row("Scroll Step", strconv.Itoa(m.cfg.ScrollStep)+"px"),
		row("Invert Scroll", strconv.FormatBool(m.cfg.InvertScroll)),
		row("Cursor Follow", strconv.FormatBool(m.cfg.CursorFollow)),
		row("Gesture Timeout", strconv.Itoa(m.cfg.GestureTimeoutMs)+"ms"),
		row("Log Level", m.cfg.LogLevel),
	}
	if m.loadErr != "" {
		lines = append(lines, "", errStyle.Render("config error: "+m.loadErr))
	}
	if m.notice != "" {
		lines = append(lines, "", dimStyle.Render(m.notice))
	}
	lines = append(lines, "",
		dimStyle.Render("  e edit   s save   r refresh   q quit"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m model) viewEditing() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		Render("Editing Settings") +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("  (esc to cancel)")

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(header + "\n\n" + m.form.View())
}

func displayOrDefault(s, def string) string {
	if s == "" || s == "none" {
		return def
	}
	return s
}
