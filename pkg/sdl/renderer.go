package sdl

import "github.com/shish/gosdl/internal/platform"

// AnyRenderDriver lets the native library pick the first render driver
// that supports the requested flags.
const AnyRenderDriver = -1

// BlendMode selects how draw operations combine with the target.
type BlendMode uint32

const (
	BlendModeNone  BlendMode = platform.BlendModeNone
	BlendModeBlend BlendMode = platform.BlendModeBlend
	BlendModeAdd   BlendMode = platform.BlendModeAdd
	BlendModeMod   BlendMode = platform.BlendModeMod
)

// Renderer owns one native renderer handle bound to a window. The
// window must outlive the renderer; textures created on the renderer
// must be destroyed before it.
type Renderer struct {
	handle uintptr
}

// NewRenderer creates a renderer on win using the given driver index
// (AnyRenderDriver to auto-select) and capability flags.
func NewRenderer(win *Window, index int, flags RendererFlags) (*Renderer, error) {
	h := drv.CreateRenderer(win.handle, int32(index), flags.Mask())
	if h == 0 {
		return nil, newError("create renderer")
	}
	return &Renderer{handle: h}, nil
}

// NewRendererWithFallback creates a renderer, stepping down through
// accelerated+vsync+target-texture, accelerated+vsync, accelerated and
// finally software until one works.
func NewRendererWithFallback(win *Window) (*Renderer, error) {
	attempts := []RendererFlags{
		{Accelerated: true, PresentVSync: true, TargetTexture: true},
		{Accelerated: true, PresentVSync: true},
		{Accelerated: true},
		{Software: true},
	}
	for _, flags := range attempts {
		ren, err := NewRenderer(win, AnyRenderDriver, flags)
		if err == nil {
			logger().Info("renderer created",
				"accelerated", flags.Accelerated,
				"vsync", flags.PresentVSync,
				"targetTexture", flags.TargetTexture,
				"software", flags.Software)
			return ren, nil
		}
		logger().Warn("renderer flags rejected", "err", err)
	}
	return nil, newError("create renderer")
}

// Destroy releases the native renderer. Textures created on it must
// already be destroyed. Safe to call once; later calls are no-ops.
func (r *Renderer) Destroy() {
	if r.handle == 0 {
		return
	}
	drv.DestroyRenderer(r.handle)
	r.handle = 0
}

// Clear fills the whole target with the current draw color.
func (r *Renderer) Clear() error {
	if rc := drv.RenderClear(r.handle); rc != 0 {
		return newError("clear")
	}
	return nil
}

// Present flips the backbuffer to the screen.
func (r *Renderer) Present() {
	drv.RenderPresent(r.handle)
}

// Copy blits tex onto the target. A nil src selects the whole texture,
// a nil dst the whole target.
func (r *Renderer) Copy(tex *Texture, src, dst *Rect) error {
	if rc := drv.RenderCopy(r.handle, tex.handle, src.native(), dst.native()); rc != 0 {
		return newError("copy")
	}
	return nil
}

// DrawLine draws a line between two points in the current draw color.
func (r *Renderer) DrawLine(x1, y1, x2, y2 int32) error {
	if rc := drv.RenderDrawLine(r.handle, x1, y1, x2, y2); rc != 0 {
		return newError("draw line")
	}
	return nil
}

// FillRect fills rect with the current draw color; nil fills the whole
// target.
func (r *Renderer) FillRect(rect *Rect) error {
	if rc := drv.RenderFillRect(r.handle, rect.native()); rc != 0 {
		return newError("fill rect")
	}
	return nil
}

// DrawRect outlines rect in the current draw color; nil outlines the
// whole target.
func (r *Renderer) DrawRect(rect *Rect) error {
	if rc := drv.RenderDrawRect(r.handle, rect.native()); rc != 0 {
		return newError("draw rect")
	}
	return nil
}

// SetColor sets the draw color used by Clear and the draw calls.
func (r *Renderer) SetColor(c Color) error {
	return r.SetColorRGBA(c.R, c.G, c.B, c.A)
}

// SetColorRGB sets an opaque draw color.
func (r *Renderer) SetColorRGB(red, green, blue uint8) error {
	return r.SetColorRGBA(red, green, blue, 255)
}

// SetColorRGBA sets the draw color with explicit alpha.
func (r *Renderer) SetColorRGBA(red, green, blue, alpha uint8) error {
	if rc := drv.SetRenderDrawColor(r.handle, red, green, blue, alpha); rc != 0 {
		return newError("set color")
	}
	return nil
}

// SetBlendMode sets the blend mode used by the draw calls.
func (r *Renderer) SetBlendMode(mode BlendMode) error {
	if rc := drv.SetRenderDrawBlendMode(r.handle, uint32(mode)); rc != 0 {
		return newError("set blend mode")
	}
	return nil
}
