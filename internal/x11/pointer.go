package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// PointerPosition returns the pointer's absolute position in root coordinates.
func (c *Connection) PointerPosition() (x, y int, err error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// WarpPointer moves the pointer to an absolute position in root coordinates.
func (c *Connection) WarpPointer(x, y int) error {
	return xproto.WarpPointerChecked(
		c.XUtil.Conn(),
		xproto.WindowNone, // src
		c.Root,            // dst
		0, 0, 0, 0,        // src rect (ignored with WindowNone)
		int16(x), int16(y),
	).Check()
}
