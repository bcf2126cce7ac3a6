package platform

// Rect mirrors SDL_Rect. The typed layer converts its own geometry into
// this shape at the boundary.
type Rect struct {
	X, Y, W, H int32
}

// RawEvent is one dequeued native event record: the 56-byte SDL_Event
// union, plus the resolved payload of drop events. The union stores only
// a char* for dropped files/text; the driver reads and frees it at poll
// time so the record stays self-contained.
type RawEvent struct {
	Data [56]byte
	Drop string
}

// Driver is the narrow boundary to the native library. Fallible calls
// keep SDL's sentinel convention (negative return, zero handle) so the
// typed layer decides when to fetch the error string; GetError must
// therefore be called immediately after the failing operation.
type Driver interface {
	Init(mask uint32) int
	Quit()
	GetError() string

	CreateWindow(title string, x, y, w, h int32, flags uint32) uintptr
	DestroyWindow(win uintptr)
	GetWindowSize(win uintptr) (w, h int32)

	CreateRenderer(win uintptr, index int32, flags uint32) uintptr
	DestroyRenderer(ren uintptr)
	RenderClear(ren uintptr) int
	RenderPresent(ren uintptr)
	RenderCopy(ren, tex uintptr, src, dst *Rect) int
	RenderDrawLine(ren uintptr, x1, y1, x2, y2 int32) int
	RenderFillRect(ren uintptr, rect *Rect) int
	RenderDrawRect(ren uintptr, rect *Rect) int
	SetRenderDrawColor(ren uintptr, r, g, b, a uint8) int
	SetRenderDrawBlendMode(ren uintptr, mode uint32) int

	CreateTexture(ren uintptr, format uint32, access, w, h int32) uintptr
	DestroyTexture(tex uintptr)
	UpdateTexture(tex uintptr, rect *Rect, pixels []byte, pitch int32) int
	QueryTexture(tex uintptr) (format uint32, access, w, h int32, rc int)
	SetTextureColorMod(tex uintptr, r, g, b uint8) int
	SetTextureAlphaMod(tex uintptr, a uint8) int

	PollEvent() (RawEvent, bool)
	MouseState() (x, y int32, buttons uint32)
	KeyboardState() []byte
	GetTicks() uint32
	Delay(ms uint32)
}
