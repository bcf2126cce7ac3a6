//go:build !cgo

package platform

// Default returns a driver that refuses to start. The SDL2 backend needs
// cgo; builds without it can still compile and test the typed layer.
func Default() Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Init(uint32) int { panic("platform: SDL2 driver requires cgo") }
func (stubDriver) Quit()           {}
func (stubDriver) GetError() string {
	return "SDL2 driver requires cgo"
}

func (stubDriver) CreateWindow(string, int32, int32, int32, int32, uint32) uintptr { return 0 }
func (stubDriver) DestroyWindow(uintptr)                                           {}
func (stubDriver) GetWindowSize(uintptr) (int32, int32)                            { return 0, 0 }

func (stubDriver) CreateRenderer(uintptr, int32, uint32) uintptr          { return 0 }
func (stubDriver) DestroyRenderer(uintptr)                                {}
func (stubDriver) RenderClear(uintptr) int                                { return -1 }
func (stubDriver) RenderPresent(uintptr)                                  {}
func (stubDriver) RenderCopy(uintptr, uintptr, *Rect, *Rect) int          { return -1 }
func (stubDriver) RenderDrawLine(uintptr, int32, int32, int32, int32) int { return -1 }
func (stubDriver) RenderFillRect(uintptr, *Rect) int                      { return -1 }
func (stubDriver) RenderDrawRect(uintptr, *Rect) int                      { return -1 }
func (stubDriver) SetRenderDrawColor(uintptr, uint8, uint8, uint8, uint8) int {
	return -1
}
func (stubDriver) SetRenderDrawBlendMode(uintptr, uint32) int { return -1 }

func (stubDriver) CreateTexture(uintptr, uint32, int32, int32, int32) uintptr { return 0 }
func (stubDriver) DestroyTexture(uintptr)                                     {}
func (stubDriver) UpdateTexture(uintptr, *Rect, []byte, int32) int            { return -1 }
func (stubDriver) QueryTexture(uintptr) (uint32, int32, int32, int32, int) {
	return 0, 0, 0, 0, -1
}
func (stubDriver) SetTextureColorMod(uintptr, uint8, uint8, uint8) int { return -1 }
func (stubDriver) SetTextureAlphaMod(uintptr, uint8) int               { return -1 }

func (stubDriver) PollEvent() (RawEvent, bool)      { return RawEvent{}, false }
func (stubDriver) MouseState() (int32, int32, uint32) { return 0, 0, 0 }
func (stubDriver) KeyboardState() []byte            { return nil }
func (stubDriver) GetTicks() uint32                 { return 0 }
func (stubDriver) Delay(uint32)                     {}
