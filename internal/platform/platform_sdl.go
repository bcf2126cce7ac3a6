//go:build cgo

package platform

/*
#cgo pkg-config: sdl2
#include <stdlib.h>
#include <SDL2/SDL.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Default returns the cgo-backed SDL2 driver.
func Default() Driver { return &sdlDriver{} }

type sdlDriver struct{}

func (d *sdlDriver) Init(mask uint32) int {
	// The native event pump is thread-affine; pin before SDL_Init and
	// release in Quit.
	runtime.LockOSThread()
	return int(C.SDL_Init(C.Uint32(mask)))
}

func (d *sdlDriver) Quit() {
	C.SDL_Quit()
	runtime.UnlockOSThread()
}

func (d *sdlDriver) GetError() string {
	return C.GoString(C.SDL_GetError())
}

func (d *sdlDriver) CreateWindow(title string, x, y, w, h int32, flags uint32) uintptr {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))
	win := C.SDL_CreateWindow(cTitle, C.int(x), C.int(y), C.int(w), C.int(h), C.Uint32(flags))
	return uintptr(unsafe.Pointer(win))
}

func (d *sdlDriver) DestroyWindow(win uintptr) {
	C.SDL_DestroyWindow((*C.SDL_Window)(unsafe.Pointer(win)))
}

func (d *sdlDriver) GetWindowSize(win uintptr) (int32, int32) {
	var w, h C.int
	C.SDL_GetWindowSize((*C.SDL_Window)(unsafe.Pointer(win)), &w, &h)
	return int32(w), int32(h)
}

func (d *sdlDriver) CreateRenderer(win uintptr, index int32, flags uint32) uintptr {
	ren := C.SDL_CreateRenderer((*C.SDL_Window)(unsafe.Pointer(win)), C.int(index), C.Uint32(flags))
	return uintptr(unsafe.Pointer(ren))
}

func (d *sdlDriver) DestroyRenderer(ren uintptr) {
	C.SDL_DestroyRenderer((*C.SDL_Renderer)(unsafe.Pointer(ren)))
}

func (d *sdlDriver) RenderClear(ren uintptr) int {
	return int(C.SDL_RenderClear((*C.SDL_Renderer)(unsafe.Pointer(ren))))
}

func (d *sdlDriver) RenderPresent(ren uintptr) {
	C.SDL_RenderPresent((*C.SDL_Renderer)(unsafe.Pointer(ren)))
}

func cRect(r *Rect) *C.SDL_Rect {
	if r == nil {
		return nil
	}
	return &C.SDL_Rect{x: C.int(r.X), y: C.int(r.Y), w: C.int(r.W), h: C.int(r.H)}
}

func (d *sdlDriver) RenderCopy(ren, tex uintptr, src, dst *Rect) int {
	return int(C.SDL_RenderCopy(
		(*C.SDL_Renderer)(unsafe.Pointer(ren)),
		(*C.SDL_Texture)(unsafe.Pointer(tex)),
		cRect(src), cRect(dst)))
}

func (d *sdlDriver) RenderDrawLine(ren uintptr, x1, y1, x2, y2 int32) int {
	return int(C.SDL_RenderDrawLine((*C.SDL_Renderer)(unsafe.Pointer(ren)),
		C.int(x1), C.int(y1), C.int(x2), C.int(y2)))
}

func (d *sdlDriver) RenderFillRect(ren uintptr, rect *Rect) int {
	return int(C.SDL_RenderFillRect((*C.SDL_Renderer)(unsafe.Pointer(ren)), cRect(rect)))
}

func (d *sdlDriver) RenderDrawRect(ren uintptr, rect *Rect) int {
	return int(C.SDL_RenderDrawRect((*C.SDL_Renderer)(unsafe.Pointer(ren)), cRect(rect)))
}

func (d *sdlDriver) SetRenderDrawColor(ren uintptr, r, g, b, a uint8) int {
	return int(C.SDL_SetRenderDrawColor((*C.SDL_Renderer)(unsafe.Pointer(ren)),
		C.Uint8(r), C.Uint8(g), C.Uint8(b), C.Uint8(a)))
}

func (d *sdlDriver) SetRenderDrawBlendMode(ren uintptr, mode uint32) int {
	return int(C.SDL_SetRenderDrawBlendMode((*C.SDL_Renderer)(unsafe.Pointer(ren)),
		C.SDL_BlendMode(mode)))
}

func (d *sdlDriver) CreateTexture(ren uintptr, format uint32, access, w, h int32) uintptr {
	tex := C.SDL_CreateTexture((*C.SDL_Renderer)(unsafe.Pointer(ren)),
		C.Uint32(format), C.int(access), C.int(w), C.int(h))
	return uintptr(unsafe.Pointer(tex))
}

func (d *sdlDriver) DestroyTexture(tex uintptr) {
	C.SDL_DestroyTexture((*C.SDL_Texture)(unsafe.Pointer(tex)))
}

func (d *sdlDriver) UpdateTexture(tex uintptr, rect *Rect, pixels []byte, pitch int32) int {
	if len(pixels) == 0 {
		return 0
	}
	rc := C.SDL_UpdateTexture((*C.SDL_Texture)(unsafe.Pointer(tex)), cRect(rect),
		unsafe.Pointer(&pixels[0]), C.int(pitch))
	runtime.KeepAlive(pixels)
	return int(rc)
}

func (d *sdlDriver) QueryTexture(tex uintptr) (uint32, int32, int32, int32, int) {
	var format C.Uint32
	var access, w, h C.int
	rc := C.SDL_QueryTexture((*C.SDL_Texture)(unsafe.Pointer(tex)), &format, &access, &w, &h)
	return uint32(format), int32(access), int32(w), int32(h), int(rc)
}

func (d *sdlDriver) SetTextureColorMod(tex uintptr, r, g, b uint8) int {
	return int(C.SDL_SetTextureColorMod((*C.SDL_Texture)(unsafe.Pointer(tex)),
		C.Uint8(r), C.Uint8(g), C.Uint8(b)))
}

func (d *sdlDriver) SetTextureAlphaMod(tex uintptr, a uint8) int {
	return int(C.SDL_SetTextureAlphaMod((*C.SDL_Texture)(unsafe.Pointer(tex)), C.Uint8(a)))
}

func (d *sdlDriver) PollEvent() (RawEvent, bool) {
	var e C.SDL_Event
	if C.SDL_PollEvent(&e) == 0 {
		return RawEvent{}, false
	}
	var raw RawEvent
	copy(raw.Data[:], (*[56]byte)(unsafe.Pointer(&e))[:])

	// Drop events carry an allocated char* that is the poller's to free.
	switch tag := *(*C.Uint32)(unsafe.Pointer(&e)); tag {
	case C.SDL_DROPFILE, C.SDL_DROPTEXT:
		de := (*C.SDL_DropEvent)(unsafe.Pointer(&e))
		if de.file != nil {
			raw.Drop = C.GoString(de.file)
			C.SDL_free(unsafe.Pointer(de.file))
		}
	}
	return raw, true
}

func (d *sdlDriver) MouseState() (int32, int32, uint32) {
	var x, y C.int
	buttons := C.SDL_GetMouseState(&x, &y)
	return int32(x), int32(y), uint32(buttons)
}

func (d *sdlDriver) KeyboardState() []byte {
	var n C.int
	p := C.SDL_GetKeyboardState(&n)
	if p == nil || n <= 0 {
		return nil
	}
	// Borrowed view over the native array; SDL owns and reuses it.
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

func (d *sdlDriver) GetTicks() uint32 {
	return uint32(C.SDL_GetTicks())
}

func (d *sdlDriver) Delay(ms uint32) {
	C.SDL_Delay(C.Uint32(ms))
}
