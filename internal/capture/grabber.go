// Package capture installs passive pointer grabs for scroll buttons and
// feeds the decoded events to the gesture engine. X11 reports scrolling as
// button presses: 4/5 for vertical, 6/7 for horizontal.
package capture

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/sidepan/internal/gesture"
)

const (
	buttonScrollUp    = 4
	buttonScrollDown  = 5
	buttonScrollLeft  = 6
	buttonScrollRight = 7
)

var scrollButtons = []xproto.Button{
	buttonScrollUp, buttonScrollDown, buttonScrollLeft, buttonScrollRight,
}

// Masks holds the X modifier masks assigned to each gesture role.
type Masks struct {
	Activation uint16
	Exempt     uint16
	Exclusive  uint16
	ColumnLock uint16
}

// Options configures event decoding.
type Options struct {
	Masks        Masks
	ScrollStep   int
	InvertScroll bool
}

// Grabber owns the scroll-button grabs on the root window. Grabs use a
// synchronous pointer mode so each event can be consumed or replayed to the
// client underneath after the engine has decided.
type Grabber struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	engine  *gesture.Engine
	opts    Options
	masks   []uint16
	handler *xevent.ButtonPressFun

	mu     sync.Mutex
	active bool
}

// NewGrabber creates a grabber bound to the given connection and engine.
func NewGrabber(xu *xgbutil.XUtil, root xproto.Window, engine *gesture.Engine, opts Options) *Grabber {
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 1
	}
	return &Grabber{
		xu:     xu,
		root:   root,
		engine: engine,
		opts:   opts,
		masks:  grabMaskVariants(xu, opts.Masks),
	}
}

// Start installs the grabs and the event handler. Calling Start on an
// already started grabber is a no-op.
func (g *Grabber) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return nil
	}

	for _, button := range scrollButtons {
		for _, mask := range g.masks {
			err := xproto.GrabButtonChecked(
				g.xu.Conn(),
				false,   // owner_events
				g.root,  // grab_window
				uint16(xproto.EventMaskButtonPress),
				xproto.GrabModeSync,  // pointer_mode: freeze until AllowEvents
				xproto.GrabModeAsync, // keyboard_mode
				xproto.WindowNone,    // confine_to
				xproto.CursorNone,
				byte(button),
				mask,
			).Check()
			if err != nil {
				g.ungrabLocked()
				return fmt.Errorf("grabbing button %d with mask %#x: %w", button, mask, err)
			}
		}
	}

	if g.handler == nil {
		fn := xevent.ButtonPressFun(g.onButtonPress)
		fn.Connect(g.xu, g.root)
		g.handler = &fn
	}

	g.active = true
	slog.Debug("scroll grabs installed", "variants", len(g.masks))
	return nil
}

// Stop releases the grabs and ends any gesture in progress. Events flow to
// clients untouched until Start is called again.
func (g *Grabber) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return
	}
	g.ungrabLocked()
	g.engine.Reset()
	g.active = false
	slog.Debug("scroll grabs released")
}

// Active reports whether the grabs are currently installed.
func (g *Grabber) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

func (g *Grabber) ungrabLocked() {
	for _, button := range scrollButtons {
		for _, mask := range g.masks {
			xproto.UngrabButton(g.xu.Conn(), byte(button), g.root, mask)
		}
	}
}

func (g *Grabber) onButtonPress(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
	button := ev.Detail
	if button < buttonScrollUp || button > buttonScrollRight {
		g.allow(xproto.AllowReplayPointer, ev.Time)
		return
	}

	scroll := g.decodeScroll(button)
	mods := g.decodeModifiers(ev.State)
	decision := g.engine.HandleScroll(scroll, mods)

	// Consumed events vanish; everything else is replayed so the client
	// under the pointer still sees its scroll.
	if decision.Consumed() {
		g.allow(xproto.AllowAsyncPointer, ev.Time)
	} else {
		g.allow(xproto.AllowReplayPointer, ev.Time)
	}
}

func (g *Grabber) allow(mode byte, time xproto.Timestamp) {
	if err := xproto.AllowEventsChecked(g.xu.Conn(), mode, time).Check(); err != nil {
		slog.Warn("releasing frozen pointer failed", "error", err)
	}
}

func (g *Grabber) decodeScroll(button xproto.Button) gesture.ScrollEvent {
	step := g.opts.ScrollStep
	var ev gesture.ScrollEvent
	switch button {
	case buttonScrollUp:
		ev.Dy = -step
	case buttonScrollDown:
		ev.Dy = step
	case buttonScrollLeft:
		ev.Dx = -step
	case buttonScrollRight:
		ev.Dx = step
	}
	if g.opts.InvertScroll {
		ev.Dx = -ev.Dx
	}
	return ev
}

func (g *Grabber) decodeModifiers(state uint16) gesture.Modifiers {
	has := func(mask uint16) bool {
		return mask != 0 && state&mask == mask
	}
	return gesture.Modifiers{
		Activation: has(g.opts.Masks.Activation),
		Exempt:     has(g.opts.Masks.Exempt),
		Exclusive:  has(g.opts.Masks.Exclusive),
		ColumnLock: has(g.opts.Masks.ColumnLock),
	}
}

// grabMaskVariants enumerates every modifier state the grabs must match:
// the activation mask combined with each subset of the role modifiers and
// the lock modifiers (CapsLock, NumLock, ScrollLock). Passive grabs match
// the modifier state exactly, so a held role or lock key would otherwise
// defeat the grab.
func grabMaskVariants(xu *xgbutil.XUtil, masks Masks) []uint16 {
	extra := []uint16{uint16(xproto.ModMaskLock)}
	addUnique := func(m uint16) {
		if m == 0 {
			return
		}
		for _, have := range extra {
			if have == m {
				return
			}
		}
		extra = append(extra, m)
	}
	addUnique(modMaskForKeysym(xu, "Num_Lock"))
	addUnique(modMaskForKeysym(xu, "Scroll_Lock"))
	addUnique(masks.Exempt)
	addUnique(masks.Exclusive)
	addUnique(masks.ColumnLock)

	unique := map[uint16]struct{}{masks.Activation: {}}
	for subset := 1; subset < (1 << len(extra)); subset++ {
		var mask uint16
		for bit := range extra {
			if subset&(1<<bit) != 0 {
				mask |= extra[bit]
			}
		}
		unique[masks.Activation|mask] = struct{}{}
	}

	out := make([]uint16, 0, len(unique))
	for mask := range unique {
		out = append(out, mask)
	}
	return out
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
