package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

var modifierOptions = []huh.Option[string]{
	huh.NewOption("mod4 (super)", "mod4"),
	huh.NewOption("mod1 (alt)", "mod1"),
	huh.NewOption("control", "control"),
	huh.NewOption("shift", "shift"),
	huh.NewOption("mod2", "mod2"),
	huh.NewOption("mod3", "mod3"),
	huh.NewOption("mod5", "mod5"),
}

var roleModifierOptions = append([]huh.Option[string]{
	huh.NewOption("none", "none"),
}, modifierOptions...)

var logLevelOptions = []huh.Option[string]{
	huh.NewOption("debug", "debug"),
	huh.NewOption("info", "info"),
	huh.NewOption("warn", "warn"),
	huh.NewOption("error", "error"),
}

func (m *model) startEditing() {
	cfg := m.cfg

	m.fActivation = cfg.ActivationModifier
	m.fExempt = displayOrDefault(cfg.ExemptModifier, "none")
	m.fExclusive = displayOrDefault(cfg.ExclusiveModifier, "none")
	m.fColumnLock = displayOrDefault(cfg.ColumnLockModifier, "none")
	m.fScrollStep = strconv.Itoa(cfg.ScrollStep)
	m.fTimeout = strconv.Itoa(cfg.GestureTimeoutMs)
	m.fLogLevel = cfg.LogLevel
	m.fInvert = cfg.InvertScroll
	m.fFollow = cfg.CursorFollow

	w := m.width - 4
	if w < 40 {
		w = 40
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("activation_modifier").
				Title("Activation Modifier").
				Description("Hold this while scrolling to pan windows").
				Options(modifierOptions...).
				Value(&m.fActivation),

			huh.NewSelect[string]().
				Key("exempt_modifier").
				Title("Exempt Modifier").
				Description("Also hold this to keep the window under the pointer in place").
				Options(roleModifierOptions...).
				Value(&m.fExempt),

			huh.NewSelect[string]().
				Key("exclusive_modifier").
				Title("Exclusive Modifier").
				Description("Also hold this to pan only the window under the pointer").
				Options(roleModifierOptions...).
				Value(&m.fExclusive),

			huh.NewSelect[string]().
				Key("column_lock_modifier").
				Title("Column Lock Modifier").
				Description("Also hold this to freeze windows left of the pointer").
				Options(roleModifierOptions...).
				Value(&m.fColumnLock),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("scroll_step").
				Title("Scroll Step").
				Description("Pixels per scroll detent").
				Validate(positiveInt).
				Value(&m.fScrollStep),

			huh.NewInput().
				Key("gesture_timeout_ms").
				Title("Gesture Timeout (ms)").
				Description("Idle gap that ends a gesture; 0 disables").
				Validate(nonNegativeInt).
				Value(&m.fTimeout),

			huh.NewConfirm().
				Key("invert_scroll").
				Title("Invert Scroll").
				Value(&m.fInvert),

			huh.NewConfirm().
				Key("cursor_follow").
				Title("Cursor Follow").
				Description("Move the pointer with an exclusively panned window").
				Value(&m.fFollow),

			huh.NewSelect[string]().
				Key("log_level").
				Title("Log Level").
				Options(logLevelOptions...).
				Value(&m.fLogLevel),
		),
	).WithWidth(w).WithShowHelp(true).WithShowErrors(true)

	m.editing = true
}

func (m *model) applyForm() {
	m.cfg.ActivationModifier = m.fActivation
	m.cfg.ExemptModifier = m.fExempt
	m.cfg.ExclusiveModifier = m.fExclusive
	m.cfg.ColumnLockModifier = m.fColumnLock
	if v, err := strconv.Atoi(m.fScrollStep); err == nil && v >= 1 {
		m.cfg.ScrollStep = v
	}
	if v, err := strconv.Atoi(m.fTimeout); err == nil && v >= 0 {
		m.cfg.GestureTimeoutMs = v
	}
	m.cfg.InvertScroll = m.fInvert
	m.cfg.CursorFollow = m.fFollow
	if m.fLogLevel != "" {
		m.cfg.LogLevel = m.fLogLevel
	}

	if err := m.cfg.Validate(); err != nil {
		m.notice = "invalid settings: " + err.Error()
		return
	}
	m.notice = "edited (press 's' to save)"
}

func positiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func nonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("must be zero or a positive number")
	}
	return nil
}
