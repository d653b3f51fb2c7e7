// Package daemon wires the backend, gesture engine, scroll capture and IPC
// surface into one long-running process.
package daemon

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/sidepan/internal/capture"
	"github.com/1broseidon/sidepan/internal/config"
	"github.com/1broseidon/sidepan/internal/gesture"
	"github.com/1broseidon/sidepan/internal/ipc"
	"github.com/1broseidon/sidepan/internal/platform"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Daemon owns the gesture engine and its scroll grabs.
type Daemon struct {
	backend platform.Backend
	xu      *xgbutil.XUtil
	root    xproto.Window

	mu        sync.Mutex
	cfg       *config.Config
	engine    *gesture.Engine
	grabber   *capture.Grabber
	paused    bool
	startTime time.Time
}

// New builds a daemon from the config and a connected backend.
func New(cfg *config.Config, backend platform.Backend) (*Daemon, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok {
		return nil, fmt.Errorf("backend does not expose an X11 connection")
	}

	d := &Daemon{
		backend:   backend,
		xu:        accessor.XUtil(),
		root:      accessor.RootWindow(),
		startTime: time.Now(),
	}
	if err := d.configure(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// configure rebuilds the engine and grabber from cfg. Caller must not hold
// the lock around Start/Stop of the old grabber; this is only called with
// the grabs released.
func (d *Daemon) configure(cfg *config.Config) error {
	masks, err := captureMasks(cfg)
	if err != nil {
		return err
	}

	engine := gesture.NewEngine(d.backend, cfg.CursorFollow)
	engine.Timeout = time.Duration(cfg.GestureTimeoutMs) * time.Millisecond

	d.cfg = cfg
	d.engine = engine
	d.grabber = capture.NewGrabber(d.xu, d.root, engine, capture.Options{
		Masks:        masks,
		ScrollStep:   cfg.ScrollStep,
		InvertScroll: cfg.InvertScroll,
	})
	return nil
}

func captureMasks(cfg *config.Config) (capture.Masks, error) {
	var masks capture.Masks
	var err error
	if masks.Activation, err = config.ModifierMask(cfg.ActivationModifier); err != nil {
		return masks, err
	}
	if masks.Exempt, err = config.ModifierMask(cfg.ExemptModifier); err != nil {
		return masks, err
	}
	if masks.Exclusive, err = config.ModifierMask(cfg.ExclusiveModifier); err != nil {
		return masks, err
	}
	if masks.ColumnLock, err = config.ModifierMask(cfg.ColumnLockModifier); err != nil {
		return masks, err
	}
	return masks, nil
}

// Start installs the scroll grabs.
func (d *Daemon) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.paused {
		return nil
	}
	return d.grabber.Start()
}

// Stop releases the grabs.
func (d *Daemon) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grabber.Stop()
}

// Reload swaps in a new configuration, re-grabbing with the new modifiers.
func (d *Daemon) Reload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.grabber.Stop()
	if err := d.configure(cfg); err != nil {
		return err
	}
	if !d.paused {
		if err := d.grabber.Start(); err != nil {
			return err
		}
	}
	slog.Info("configuration reloaded",
		"activation", cfg.ActivationModifier,
		"scrollStep", cfg.ScrollStep)
	return nil
}

// Status implements ipc.Controller.
func (d *Daemon) Status() ipc.StatusData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ipc.StatusData{
		DaemonRunning:  true,
		Paused:         d.paused,
		GestureActive:  d.engine.Active(),
		TrackedWindows: d.engine.Tracker().Len(),
		ActivationMod:  d.cfg.ActivationModifier,
		UptimeSeconds:  int64(time.Since(d.startTime).Seconds()),
	}
}

// Pause implements ipc.Controller. Scroll events reach clients untouched
// until Resume.
func (d *Daemon) Pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.paused {
		return nil
	}
	d.grabber.Stop()
	d.paused = true
	slog.Info("panning paused")
	return nil
}

// Resume implements ipc.Controller.
func (d *Daemon) Resume() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.paused {
		return nil
	}
	if err := d.grabber.Start(); err != nil {
		return err
	}
	d.paused = false
	slog.Info("panning resumed")
	return nil
}
