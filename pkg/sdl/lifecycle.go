package sdl

// Scoped-acquisition helpers. Resource release stays explicit and
// single-shot, but these guarantee it on every exit path, in reverse
// dependency order.

// Run initializes the requested subsystems, runs fn, and quits. Quit
// runs even if fn fails, so fn must destroy its own handles first.
func Run(flags InitFlags, fn func() error) error {
	if err := Init(flags); err != nil {
		return err
	}
	defer Quit()
	return fn()
}

// WithWindow creates a window, runs fn with it and destroys it.
func WithWindow(conf WindowConfig, fn func(*Window) error) error {
	win, err := NewWindow(conf)
	if err != nil {
		return err
	}
	defer win.Destroy()
	return fn(win)
}

// WithRenderer creates a renderer on w, runs fn with it and destroys
// it before the window can go away.
func (w *Window) WithRenderer(index int, flags RendererFlags, fn func(*Renderer) error) error {
	ren, err := NewRenderer(w, index, flags)
	if err != nil {
		return err
	}
	defer ren.Destroy()
	return fn(ren)
}

// WithTexture creates a texture on r, runs fn with it and destroys it
// before the renderer can go away.
func (r *Renderer) WithTexture(format PixelFormat, access TextureAccess, w, h int32, fn func(*Texture) error) error {
	tex, err := r.CreateTexture(format, access, w, h)
	if err != nil {
		return err
	}
	defer tex.Destroy()
	return fn(tex)
}
