package sdl

import (
	"errors"
	"testing"
)

func TestInitFailure(t *testing.T) {
	f := newFakeDriver()
	f.fail["init"] = true
	f.errMsg = "no video device"
	f.install(t)

	err := Init(InitFlags{Video: true})
	var sdlErr *Error
	if !errors.As(err, &sdlErr) {
		t.Fatalf("Init error = %v, want *Error", err)
	}
	if sdlErr.Msg != "no video device" {
		t.Errorf("Msg = %q", sdlErr.Msg)
	}
}

// The diagnostic is captured when the call fails; a later native call
// overwriting the global slot must not change it.
func TestErrorMessageFetchedEagerly(t *testing.T) {
	f := newFakeDriver()
	f.fail["createWindow"] = true
	f.errMsg = "out of memory"
	f.install(t)

	_, err := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	f.errMsg = "stale"
	var sdlErr *Error
	if !errors.As(err, &sdlErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if sdlErr.Msg != "out of memory" {
		t.Errorf("Msg = %q, want the message at failure time", sdlErr.Msg)
	}
}

func TestWindowCreateFailure(t *testing.T) {
	f := newFakeDriver()
	f.fail["createWindow"] = true
	f.install(t)

	win, err := NewWindow(WindowConfig{Title: "t", Width: 100, Height: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	if win != nil {
		t.Fatal("failed creation leaked a handle")
	}
}

func TestWindowLifecycle(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	win, err := NewWindow(WindowConfig{Title: "t", X: WindowPosCentered, Y: WindowPosCentered, Width: 640, Height: 480})
	if err != nil {
		t.Fatal(err)
	}
	if got := win.Size(); got != (Size{W: 640, H: 480}) {
		t.Errorf("Size = %+v", got)
	}

	win.Destroy()
	win.Destroy() // second call must be a no-op
	destroys := 0
	for _, op := range f.ops {
		if op == "destroyWindow" {
			destroys++
		}
	}
	if destroys != 1 {
		t.Errorf("native destroy called %d times", destroys)
	}
}

func TestRendererCreateFailure(t *testing.T) {
	f := newFakeDriver()
	f.fail["createRenderer"] = true
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	ren, err := NewRenderer(win, AnyRenderDriver, RendererFlags{Accelerated: true})
	if err == nil || ren != nil {
		t.Fatalf("ren=%v err=%v, want nil+error", ren, err)
	}
}

func TestRendererFallbackStepsDown(t *testing.T) {
	f := newFakeDriver()
	f.rendererRejects = 3 // only the final software attempt succeeds
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	ren, err := NewRendererWithFallback(win)
	if err != nil || ren == nil {
		t.Fatalf("fallback failed: %v", err)
	}
	attempts := 0
	for _, op := range f.ops {
		if op == "createRenderer" {
			attempts++
		}
	}
	if attempts != 4 {
		t.Errorf("native create called %d times, want 4", attempts)
	}
}

func TestRendererFallbackExhausted(t *testing.T) {
	f := newFakeDriver()
	f.fail["createRenderer"] = true
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	if ren, err := NewRendererWithFallback(win); err == nil || ren != nil {
		t.Fatalf("ren=%v err=%v, want nil+error", ren, err)
	}
}

func TestRendererDrawCalls(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	ren, _ := NewRenderer(win, AnyRenderDriver, RendererFlags{Software: true})

	if err := ren.SetColor(Color{10, 20, 30, 40}); err != nil {
		t.Fatal(err)
	}
	if f.drawColor != [4]uint8{10, 20, 30, 40} {
		t.Errorf("draw color = %v", f.drawColor)
	}
	if err := ren.SetColorRGB(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if f.drawColor != [4]uint8{1, 2, 3, 255} {
		t.Errorf("RGB draw color = %v, want opaque", f.drawColor)
	}

	if err := ren.SetBlendMode(BlendModeBlend); err != nil {
		t.Fatal(err)
	}
	if f.blendMode != 1 {
		t.Errorf("blend mode = %d", f.blendMode)
	}

	if err := ren.FillRect(&Rect{X: 1, Y: 2, W: 3, H: 4}); err != nil {
		t.Fatal(err)
	}
	if f.lastRect == nil || f.lastRect.W != 3 {
		t.Errorf("fill rect = %+v", f.lastRect)
	}
	if err := ren.FillRect(nil); err != nil {
		t.Fatal(err)
	}
	if f.lastRect != nil {
		t.Error("nil rect did not reach the driver as nil")
	}

	if err := ren.DrawRect(&Rect{X: 5, Y: 5, W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	if f.lastRect == nil || f.lastRect.X != 5 {
		t.Errorf("draw rect = %+v", f.lastRect)
	}

	if err := ren.Clear(); err != nil {
		t.Fatal(err)
	}
	ren.Present()

	f.fail["drawLine"] = true
	if err := ren.DrawLine(0, 0, 9, 9); err == nil {
		t.Error("failed draw call surfaced no error")
	}
}

func TestTextureLifecycle(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	ren, _ := NewRenderer(win, AnyRenderDriver, RendererFlags{Software: true})
	tex, err := ren.CreateTexture(FormatRGBA8888, AccessStreaming, 64, 32)
	if err != nil {
		t.Fatal(err)
	}

	info, err := tex.Query()
	if err != nil {
		t.Fatal(err)
	}
	want := TextureInfo{Format: FormatRGBA8888, Access: AccessStreaming, W: 64, H: 32}
	if info != want {
		t.Errorf("Query = %+v, want %+v", info, want)
	}

	pixels := make([]byte, 64*32*4)
	if err := tex.Update(nil, pixels, 64*4); err != nil {
		t.Fatal(err)
	}
	if f.lastPitch != 64*4 || len(f.lastPixels) != len(pixels) {
		t.Errorf("update pitch=%d len=%d", f.lastPitch, len(f.lastPixels))
	}
	if err := tex.Update(&Rect{X: 0, Y: 0, W: 8, H: 8}, pixels[:8*8*4], 8*4); err != nil {
		t.Fatal(err)
	}
	if f.lastRect == nil || f.lastRect.W != 8 {
		t.Errorf("partial update rect = %+v", f.lastRect)
	}

	if err := tex.SetColorMod(Color{100, 110, 120, 130}); err != nil {
		t.Fatal(err)
	}
	if f.colorMod != [4]uint8{100, 110, 120, 130} {
		t.Errorf("color mod = %v", f.colorMod)
	}
	if err := tex.ResetColorMod(); err != nil {
		t.Fatal(err)
	}
	if f.colorMod != [4]uint8{255, 255, 255, 255} {
		t.Errorf("reset color mod = %v, want opaque white", f.colorMod)
	}

	if err := ren.Copy(tex, nil, &Rect{X: 0, Y: 0, W: 64, H: 32}); err != nil {
		t.Fatal(err)
	}

	tex.Destroy()
	tex.Destroy()
	destroys := 0
	for _, op := range f.ops {
		if op == "destroyTexture" {
			destroys++
		}
	}
	if destroys != 1 {
		t.Errorf("native texture destroy called %d times", destroys)
	}
}

func TestTextureCreateFailure(t *testing.T) {
	f := newFakeDriver()
	f.fail["createTexture"] = true
	f.install(t)

	win, _ := NewWindow(WindowConfig{Title: "t", Width: 1, Height: 1})
	ren, _ := NewRenderer(win, AnyRenderDriver, RendererFlags{Software: true})
	tex, err := ren.CreateTexture(FormatRGBA8888, AccessStatic, 8, 8)
	if err == nil || tex != nil {
		t.Fatalf("tex=%v err=%v, want nil+error", tex, err)
	}
}

func TestTicksAndDelay(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	Delay(16)
	if GetTicks() != 16 {
		t.Errorf("ticks = %d", GetTicks())
	}
}
