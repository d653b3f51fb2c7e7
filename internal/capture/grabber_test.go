package capture

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestDecodeScroll(t *testing.T) {
	g := &Grabber{opts: Options{ScrollStep: 50}}

	tests := []struct {
		button xproto.Button
		dx, dy int
	}{
		{buttonScrollUp, 0, -50},
		{buttonScrollDown, 0, 50},
		{buttonScrollLeft, -50, 0},
		{buttonScrollRight, 50, 0},
	}
	for _, tt := range tests {
		ev := g.decodeScroll(tt.button)
		if ev.Dx != tt.dx || ev.Dy != tt.dy {
			t.Errorf("decodeScroll(%d) = %+v, want dx=%d dy=%d", tt.button, ev, tt.dx, tt.dy)
		}
	}
}

func TestDecodeScrollInverted(t *testing.T) {
	g := &Grabber{opts: Options{ScrollStep: 50, InvertScroll: true}}
	if ev := g.decodeScroll(buttonScrollLeft); ev.Dx != 50 {
		t.Errorf("inverted left scroll dx = %d, want 50", ev.Dx)
	}
	if ev := g.decodeScroll(buttonScrollRight); ev.Dx != -50 {
		t.Errorf("inverted right scroll dx = %d, want -50", ev.Dx)
	}
	if ev := g.decodeScroll(buttonScrollUp); ev.Dy != -50 {
		t.Errorf("inverted up scroll dy = %d, want -50 (vertical untouched)", ev.Dy)
	}
}

func TestDecodeModifiers(t *testing.T) {
	g := &Grabber{opts: Options{Masks: Masks{
		Activation: 0x40, // mod4
		Exempt:     0x01, // shift
		Exclusive:  0x04, // control
		ColumnLock: 0x08, // mod1
	}}}

	mods := g.decodeModifiers(0x40 | 0x01)
	if !mods.Activation || !mods.Exempt || mods.Exclusive || mods.ColumnLock {
		t.Errorf("decodeModifiers(mod4+shift) = %+v", mods)
	}

	mods = g.decodeModifiers(0x04)
	if mods.Activation || !mods.Exclusive {
		t.Errorf("decodeModifiers(control) = %+v", mods)
	}

	// An unassigned role never reads as held.
	g.opts.Masks.ColumnLock = 0
	mods = g.decodeModifiers(0xff)
	if mods.ColumnLock {
		t.Error("unassigned column-lock modifier decoded as held")
	}
}
