package sdl

import "github.com/shish/gosdl/internal/platform"

// TextureAccess selects how a texture's pixels may change.
type TextureAccess int32

const (
	// AccessStatic textures change rarely and are not lockable.
	AccessStatic TextureAccess = platform.TextureAccessStatic
	// AccessStreaming textures are updated frequently from CPU memory.
	AccessStreaming TextureAccess = platform.TextureAccessStreaming
	// AccessTarget textures can be used as a render target.
	AccessTarget TextureAccess = platform.TextureAccessTarget
)

// PixelFormat identifies a native pixel layout.
type PixelFormat uint32

const (
	FormatRGBA8888 PixelFormat = platform.PixelFormatRGBA8888
	FormatARGB8888 PixelFormat = platform.PixelFormatARGB8888
	FormatABGR8888 PixelFormat = platform.PixelFormatABGR8888
	FormatBGRA8888 PixelFormat = platform.PixelFormatBGRA8888
	FormatRGB888   PixelFormat = platform.PixelFormatRGB888
	FormatRGB24    PixelFormat = platform.PixelFormatRGB24
)

// TextureInfo is the metadata reported by Texture.Query.
type TextureInfo struct {
	Format PixelFormat
	Access TextureAccess
	W, H   int32
}

// Texture owns one native texture handle bound to a renderer. The
// renderer must outlive the texture.
type Texture struct {
	handle uintptr
}

// CreateTexture creates a texture on the renderer with the given pixel
// format, access mode and dimensions.
func (r *Renderer) CreateTexture(format PixelFormat, access TextureAccess, w, h int32) (*Texture, error) {
	hdl := drv.CreateTexture(r.handle, uint32(format), int32(access), w, h)
	if hdl == 0 {
		return nil, newError("create texture")
	}
	return &Texture{handle: hdl}, nil
}

// Destroy releases the native texture. Safe to call once; later calls
// are no-ops.
func (t *Texture) Destroy() {
	if t.handle == 0 {
		return
	}
	drv.DestroyTexture(t.handle)
	t.handle = 0
}

// Update replaces the pixels in rect (nil for the whole texture) with
// the supplied buffer. Pitch is the byte length of one row in pixels,
// independent of the texture's own storage layout.
func (t *Texture) Update(rect *Rect, pixels []byte, pitch int) error {
	if rc := drv.UpdateTexture(t.handle, rect.native(), pixels, int32(pitch)); rc != 0 {
		return newError("update texture")
	}
	return nil
}

// Query reports the texture's format, access mode and dimensions.
func (t *Texture) Query() (TextureInfo, error) {
	format, access, w, h, rc := drv.QueryTexture(t.handle)
	if rc != 0 {
		return TextureInfo{}, newError("query texture")
	}
	return TextureInfo{
		Format: PixelFormat(format),
		Access: TextureAccess(access),
		W:      w,
		H:      h,
	}, nil
}

// SetColorMod sets the tint multiplied into the texture on Copy,
// including its alpha channel.
func (t *Texture) SetColorMod(c Color) error {
	return t.SetColorModRGBA(c.R, c.G, c.B, c.A)
}

// SetColorModRGB sets the tint without touching alpha modulation.
func (t *Texture) SetColorModRGB(r, g, b uint8) error {
	if rc := drv.SetTextureColorMod(t.handle, r, g, b); rc != 0 {
		return newError("set color mod")
	}
	return nil
}

// SetColorModRGBA sets both the color and alpha modulation.
func (t *Texture) SetColorModRGBA(r, g, b, a uint8) error {
	if err := t.SetColorModRGB(r, g, b); err != nil {
		return err
	}
	if rc := drv.SetTextureAlphaMod(t.handle, a); rc != 0 {
		return newError("set alpha mod")
	}
	return nil
}

// ResetColorMod restores the no-tint default, opaque white.
func (t *Texture) ResetColorMod() error {
	return t.SetColorModRGBA(255, 255, 255, 255)
}
