package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

var modifierMasks = map[string]uint16{
	"shift":   xproto.ModMaskShift,
	"lock":    xproto.ModMaskLock,
	"control": xproto.ModMaskControl,
	"ctrl":    xproto.ModMaskControl,
	"mod1":    xproto.ModMask1,
	"alt":     xproto.ModMask1,
	"mod2":    xproto.ModMask2,
	"mod3":    xproto.ModMask3,
	"mod4":    xproto.ModMask4,
	"super":   xproto.ModMask4,
	"mod5":    xproto.ModMask5,
}

// ModifierMask maps a modifier name to its X modifier mask. The empty
// string and "none" map to zero, which disables the role.
func ModifierMask(name string) (uint16, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "none" {
		return 0, nil
	}
	if mask, ok := modifierMasks[key]; ok {
		return mask, nil
	}
	return 0, fmt.Errorf("unknown modifier %q (valid: %s)", name, strings.Join(modifierNames(), ", "))
}

func modifierNames() []string {
	names := make([]string, 0, len(modifierMasks)+1)
	for name := range modifierMasks {
		names = append(names, name)
	}
	names = append(names, "none")
	sort.Strings(names)
	return names
}
