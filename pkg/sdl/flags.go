package sdl

import "github.com/shish/gosdl/internal/platform"

// InitFlags selects the native subsystems to start. Each field maps to
// one bit; composition is a plain OR, so order never matters and the
// zero value yields an empty mask.
type InitFlags struct {
	Timer          bool
	Audio          bool
	Video          bool
	Joystick       bool
	Haptic         bool
	GameController bool
	Events         bool
	Sensor         bool
}

// Mask composes the flag set into the native bitmask.
func (f InitFlags) Mask() uint32 {
	var m uint32
	if f.Timer {
		m |= platform.InitTimer
	}
	if f.Audio {
		m |= platform.InitAudio
	}
	if f.Video {
		m |= platform.InitVideo
	}
	if f.Joystick {
		m |= platform.InitJoystick
	}
	if f.Haptic {
		m |= platform.InitHaptic
	}
	if f.GameController {
		m |= platform.InitGameController
	}
	if f.Events {
		m |= platform.InitEvents
	}
	if f.Sensor {
		m |= platform.InitSensor
	}
	return m
}

// WindowFlags selects window capabilities at creation time.
type WindowFlags struct {
	Fullscreen   bool
	OpenGL       bool
	Shown        bool
	Hidden       bool
	Borderless   bool
	Resizable    bool
	Minimized    bool
	Maximized    bool
	InputGrabbed bool
	AllowHighDPI bool
}

// Mask composes the flag set into the native bitmask.
func (f WindowFlags) Mask() uint32 {
	var m uint32
	if f.Fullscreen {
		m |= platform.WindowFullscreen
	}
	if f.OpenGL {
		m |= platform.WindowOpenGL
	}
	if f.Shown {
		m |= platform.WindowShown
	}
	if f.Hidden {
		m |= platform.WindowHidden
	}
	if f.Borderless {
		m |= platform.WindowBorderless
	}
	if f.Resizable {
		m |= platform.WindowResizable
	}
	if f.Minimized {
		m |= platform.WindowMinimized
	}
	if f.Maximized {
		m |= platform.WindowMaximized
	}
	if f.InputGrabbed {
		m |= platform.WindowInputGrabbed
	}
	if f.AllowHighDPI {
		m |= platform.WindowAllowHighDPI
	}
	return m
}

// RendererFlags selects renderer capabilities at creation time.
type RendererFlags struct {
	Software      bool
	Accelerated   bool
	PresentVSync  bool
	TargetTexture bool
}

// Mask composes the flag set into the native bitmask.
func (f RendererFlags) Mask() uint32 {
	var m uint32
	if f.Software {
		m |= platform.RendererSoftware
	}
	if f.Accelerated {
		m |= platform.RendererAccelerated
	}
	if f.PresentVSync {
		m |= platform.RendererPresentVSync
	}
	if f.TargetTexture {
		m |= platform.RendererTargetTexture
	}
	return m
}
