package sdl

import "github.com/shish/gosdl/internal/platform"

// Window position sentinels for WindowConfig.X / .Y.
const (
	WindowPosUndefined int32 = platform.WindowPosUndefined
	WindowPosCentered  int32 = platform.WindowPosCentered
)

// WindowConfig describes a window to create. X and Y may be absolute
// coordinates or one of the position sentinels.
type WindowConfig struct {
	Title  string
	X, Y   int32
	Width  int32
	Height int32
	Flags  WindowFlags
}

// Window owns one native window handle. It must outlive every renderer
// created on it and be destroyed exactly once.
type Window struct {
	handle uintptr
}

// NewWindow creates a window. On native failure no handle escapes.
func NewWindow(conf WindowConfig) (*Window, error) {
	h := drv.CreateWindow(conf.Title, conf.X, conf.Y, conf.Width, conf.Height, conf.Flags.Mask())
	if h == 0 {
		return nil, newError("create window")
	}
	return &Window{handle: h}, nil
}

// Destroy releases the native window. Renderers created on the window
// must already be destroyed. Safe to call once; later calls are no-ops.
func (w *Window) Destroy() {
	if w.handle == 0 {
		return
	}
	drv.DestroyWindow(w.handle)
	w.handle = 0
}

// Size reports the window's current client size.
func (w *Window) Size() Size {
	width, height := drv.GetWindowSize(w.handle)
	return Size{W: width, H: height}
}
