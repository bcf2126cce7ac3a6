package sdl

import (
	"testing"

	"github.com/shish/gosdl/internal/platform"
)

// fakeDriver scripts the native boundary for tests. Fallible calls
// succeed unless fail["op"] is set; every call is appended to ops.
type fakeDriver struct {
	ops     []string
	fail    map[string]bool
	errMsg  string
	next    uintptr
	events  []platform.RawEvent
	mouseX  int32
	mouseY  int32
	buttons uint32
	keys    []byte
	ticks   uint32

	rendererRejects int

	lastPixels []byte
	lastPitch  int32
	lastRect   *platform.Rect
	colorMod   [4]uint8
	drawColor  [4]uint8
	blendMode  uint32
	texW, texH int32
	texFormat  uint32
	texAccess  int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{fail: map[string]bool{}, errMsg: "fake failure", next: 1}
}

// install swaps the fake in for the package driver until test cleanup.
func (f *fakeDriver) install(t *testing.T) {
	t.Helper()
	old := drv
	drv = f
	t.Cleanup(func() { drv = old })
}

func (f *fakeDriver) op(name string) { f.ops = append(f.ops, name) }

func (f *fakeDriver) handle() uintptr {
	h := f.next
	f.next++
	return h
}

func (f *fakeDriver) rc(name string) int {
	f.op(name)
	if f.fail[name] {
		return -1
	}
	return 0
}

func (f *fakeDriver) Init(mask uint32) int { return f.rc("init") }
func (f *fakeDriver) Quit()                { f.op("quit") }
func (f *fakeDriver) GetError() string     { return f.errMsg }

func (f *fakeDriver) CreateWindow(string, int32, int32, int32, int32, uint32) uintptr {
	f.op("createWindow")
	if f.fail["createWindow"] {
		return 0
	}
	return f.handle()
}
func (f *fakeDriver) DestroyWindow(uintptr) { f.op("destroyWindow") }
func (f *fakeDriver) GetWindowSize(uintptr) (int32, int32) {
	f.op("getWindowSize")
	return 640, 480
}

func (f *fakeDriver) CreateRenderer(uintptr, int32, uint32) uintptr {
	f.op("createRenderer")
	if f.fail["createRenderer"] {
		return 0
	}
	if f.rendererRejects > 0 {
		f.rendererRejects--
		return 0
	}
	return f.handle()
}
func (f *fakeDriver) DestroyRenderer(uintptr) { f.op("destroyRenderer") }
func (f *fakeDriver) RenderClear(uintptr) int { return f.rc("clear") }
func (f *fakeDriver) RenderPresent(uintptr)   { f.op("present") }
func (f *fakeDriver) RenderCopy(_, _ uintptr, src, dst *platform.Rect) int {
	f.lastRect = dst
	return f.rc("copy")
}
func (f *fakeDriver) RenderDrawLine(uintptr, int32, int32, int32, int32) int {
	return f.rc("drawLine")
}
func (f *fakeDriver) RenderFillRect(_ uintptr, rect *platform.Rect) int {
	f.lastRect = rect
	return f.rc("fillRect")
}
func (f *fakeDriver) RenderDrawRect(_ uintptr, rect *platform.Rect) int {
	f.lastRect = rect
	return f.rc("drawRect")
}
func (f *fakeDriver) SetRenderDrawColor(_ uintptr, r, g, b, a uint8) int {
	f.drawColor = [4]uint8{r, g, b, a}
	return f.rc("setDrawColor")
}
func (f *fakeDriver) SetRenderDrawBlendMode(_ uintptr, mode uint32) int {
	f.blendMode = mode
	return f.rc("setBlendMode")
}

func (f *fakeDriver) CreateTexture(_ uintptr, format uint32, access, w, h int32) uintptr {
	f.op("createTexture")
	if f.fail["createTexture"] {
		return 0
	}
	f.texFormat, f.texAccess, f.texW, f.texH = format, access, w, h
	return f.handle()
}
func (f *fakeDriver) DestroyTexture(uintptr) { f.op("destroyTexture") }
func (f *fakeDriver) UpdateTexture(_ uintptr, rect *platform.Rect, pixels []byte, pitch int32) int {
	f.lastRect, f.lastPixels, f.lastPitch = rect, pixels, pitch
	return f.rc("updateTexture")
}
func (f *fakeDriver) QueryTexture(uintptr) (uint32, int32, int32, int32, int) {
	f.op("queryTexture")
	if f.fail["queryTexture"] {
		return 0, 0, 0, 0, -1
	}
	return f.texFormat, f.texAccess, f.texW, f.texH, 0
}
func (f *fakeDriver) SetTextureColorMod(_ uintptr, r, g, b uint8) int {
	f.colorMod[0], f.colorMod[1], f.colorMod[2] = r, g, b
	return f.rc("setColorMod")
}
func (f *fakeDriver) SetTextureAlphaMod(_ uintptr, a uint8) int {
	f.colorMod[3] = a
	return f.rc("setAlphaMod")
}

func (f *fakeDriver) PollEvent() (platform.RawEvent, bool) {
	if len(f.events) == 0 {
		return platform.RawEvent{}, false
	}
	raw := f.events[0]
	f.events = f.events[1:]
	return raw, true
}
func (f *fakeDriver) MouseState() (int32, int32, uint32) { return f.mouseX, f.mouseY, f.buttons }
func (f *fakeDriver) KeyboardState() []byte              { return f.keys }
func (f *fakeDriver) GetTicks() uint32                   { return f.ticks }
func (f *fakeDriver) Delay(ms uint32)                    { f.ticks += ms }
