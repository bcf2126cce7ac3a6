package sdl

import "github.com/shish/gosdl/internal/platform"

// MouseState is a snapshot of the pointer position and button state.
type MouseState struct {
	X, Y   int32
	Left   bool
	Right  bool
	Middle bool
	Extra1 bool
	Extra2 bool
}

// GetMouseState snapshots the current pointer position and decodes the
// button bitmask into independent flags.
func GetMouseState() MouseState {
	x, y, buttons := drv.MouseState()
	return MouseState{
		X:      x,
		Y:      y,
		Left:   buttons&platform.ButtonLeftMask != 0,
		Middle: buttons&platform.ButtonMiddleMask != 0,
		Right:  buttons&platform.ButtonRightMask != 0,
		Extra1: buttons&platform.ButtonX1Mask != 0,
		Extra2: buttons&platform.ButtonX2Mask != 0,
	}
}

// KeyboardState is a borrowed view over the native per-scancode pressed
// array. The underlying buffer is owned and reused by the native
// library: the view is valid only until the next event pump, and must
// be re-fetched (or copied) rather than retained across frames.
type KeyboardState struct {
	keys []byte
}

// GetKeyboardState returns the current keyboard snapshot view.
func GetKeyboardState() KeyboardState {
	return KeyboardState{keys: drv.KeyboardState()}
}

// IsPressed reports whether the key with the given scancode is down.
func (k KeyboardState) IsPressed(code Scancode) bool {
	if int(code) >= len(k.keys) {
		return false
	}
	return k.keys[code] != 0
}
