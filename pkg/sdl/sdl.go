package sdl

import "github.com/shish/gosdl/internal/platform"

// drv is the active native driver. Tests swap in a fake.
var drv platform.Driver = platform.Default()

// Init starts the requested native subsystems. It must be called once
// before any window, renderer or texture is created, and balanced by a
// single Quit after all handles have been destroyed.
func Init(flags InitFlags) error {
	if rc := drv.Init(flags.Mask()); rc != 0 {
		return newError("init")
	}
	return nil
}

// Quit tears down every initialized subsystem. Call it after all
// resource handles have been destroyed.
func Quit() {
	drv.Quit()
}

// GetTicks reports milliseconds elapsed since Init.
func GetTicks() uint32 {
	return drv.GetTicks()
}

// Delay blocks the calling goroutine for ms milliseconds. Together with
// GetTicks it is the intended frame-pacing primitive; PollEvent never
// blocks on its own.
func Delay(ms uint32) {
	drv.Delay(ms)
}
