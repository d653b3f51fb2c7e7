package daemon

import (
	"testing"

	"github.com/1broseidon/sidepan/internal/config"
)

func TestCaptureMasks(t *testing.T) {
	cfg := config.DefaultConfig()

	masks, err := captureMasks(cfg)
	if err != nil {
		t.Fatalf("captureMasks: %v", err)
	}
	if masks.Activation != 0x40 {
		t.Errorf("activation mask = %#x, want mod4 (0x40)", masks.Activation)
	}
	if masks.Exempt != 0x01 || masks.Exclusive != 0x04 || masks.ColumnLock != 0x08 {
		t.Errorf("role masks = %+v", masks)
	}
}

func TestCaptureMasksDisabledRoles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExemptModifier = "none"
	cfg.ColumnLockModifier = ""

	masks, err := captureMasks(cfg)
	if err != nil {
		t.Fatalf("captureMasks: %v", err)
	}
	if masks.Exempt != 0 || masks.ColumnLock != 0 {
		t.Errorf("disabled roles produced masks: %+v", masks)
	}
}
