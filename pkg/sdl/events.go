package sdl

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/shish/gosdl/internal/platform"
)

// Event is the closed set of decoded native events. Every variant in
// this file implements it; nothing outside the package can.
type Event interface {
	implementsEvent()
}

// JoystickID identifies an opened joystick instance.
type JoystickID int32

// Scancode is a layout-independent physical key identifier.
type Scancode uint32

// Keycode is a layout-dependent virtual key identifier.
type Keycode int32

// WindowEventID discriminates WindowEvent payloads.
type WindowEventID uint8

const (
	WindowNone WindowEventID = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
)

// QuitEvent is the request to terminate the application.
type QuitEvent struct {
	Timestamp uint32
}

// Application lifecycle notifications, mostly relevant on mobile.
type (
	AppTerminatingEvent         struct{ Timestamp uint32 }
	AppLowMemoryEvent           struct{ Timestamp uint32 }
	AppWillEnterBackgroundEvent struct{ Timestamp uint32 }
	AppDidEnterBackgroundEvent  struct{ Timestamp uint32 }
	AppWillEnterForegroundEvent struct{ Timestamp uint32 }
	AppDidEnterForegroundEvent  struct{ Timestamp uint32 }
)

// DisplayEvent reports a display being connected, disconnected or
// reoriented.
type DisplayEvent struct {
	Timestamp uint32
	Display   uint32
	Event     uint8
	Data1     int32
}

// WindowEvent reports a window state change; Event selects which one
// and Data1/Data2 carry its arguments (e.g. the new size).
type WindowEvent struct {
	Timestamp uint32
	WindowID  uint32
	Event     WindowEventID
	Data1     int32
	Data2     int32
}

// SysWMEvent is a platform-specific window-manager message. The native
// payload is a pointer into library-owned memory and is not exposed.
type SysWMEvent struct {
	Timestamp uint32
}

// KeyboardEvent is the shared payload of KeyDownEvent and KeyUpEvent.
type KeyboardEvent struct {
	Timestamp uint32
	WindowID  uint32
	Repeat    bool
	Scancode  Scancode
	Keycode   Keycode
	Mod       uint16
}

type KeyDownEvent struct{ KeyboardEvent }

type KeyUpEvent struct{ KeyboardEvent }

// TextEditingEvent reports in-progress IME composition.
type TextEditingEvent struct {
	Timestamp uint32
	WindowID  uint32
	Text      string
	Start     int32
	Length    int32
}

// TextInputEvent delivers committed text input.
type TextInputEvent struct {
	Timestamp uint32
	WindowID  uint32
	Text      string
}

// MouseMotionEvent reports pointer movement. State is the button
// bitmask held during the motion.
type MouseMotionEvent struct {
	Timestamp uint32
	WindowID  uint32
	Which     uint32
	State     uint32
	X, Y      int32
	XRel      int32
	YRel      int32
}

// MouseButtonEvent is the shared payload of the button press/release
// variants.
type MouseButtonEvent struct {
	Timestamp uint32
	WindowID  uint32
	Which     uint32
	Button    uint8
	Clicks    uint8
	X, Y      int32
}

type MouseButtonDownEvent struct{ MouseButtonEvent }

type MouseButtonUpEvent struct{ MouseButtonEvent }

// MouseWheelEvent reports scroll motion. X and Y are the scroll
// amounts; Direction is the native flip indicator, passed through
// undecoded so the mapping from record to variant stays bytewise.
type MouseWheelEvent struct {
	Timestamp uint32
	WindowID  uint32
	Which     uint32
	X, Y      int32
	Direction uint32
}

type JoyAxisEvent struct {
	Timestamp uint32
	Which     JoystickID
	Axis      uint8
	Value     int16
}

type JoyBallEvent struct {
	Timestamp  uint32
	Which      JoystickID
	Ball       uint8
	XRel, YRel int16
}

type JoyHatEvent struct {
	Timestamp uint32
	Which     JoystickID
	Hat       uint8
	Value     uint8
}

// JoyButtonEvent is the shared payload of the joystick button
// press/release variants.
type JoyButtonEvent struct {
	Timestamp uint32
	Which     JoystickID
	Button    uint8
}

type JoyButtonDownEvent struct{ JoyButtonEvent }

type JoyButtonUpEvent struct{ JoyButtonEvent }

// JoyDeviceEvent is the shared hotplug payload. For added events Which
// is a device index; for removed events it is an instance id.
type JoyDeviceEvent struct {
	Timestamp uint32
	Which     int32
}

type JoyDeviceAddedEvent struct{ JoyDeviceEvent }

type JoyDeviceRemovedEvent struct{ JoyDeviceEvent }

type ControllerAxisEvent struct {
	Timestamp uint32
	Which     JoystickID
	Axis      uint8
	Value     int16
}

// ControllerButtonEvent is the shared payload of the controller button
// press/release variants.
type ControllerButtonEvent struct {
	Timestamp uint32
	Which     JoystickID
	Button    uint8
}

type ControllerButtonDownEvent struct{ ControllerButtonEvent }

type ControllerButtonUpEvent struct{ ControllerButtonEvent }

// ControllerDeviceEvent is the shared hotplug/remap payload.
type ControllerDeviceEvent struct {
	Timestamp uint32
	Which     int32
}

type ControllerDeviceAddedEvent struct{ ControllerDeviceEvent }

type ControllerDeviceRemovedEvent struct{ ControllerDeviceEvent }

type ControllerDeviceRemappedEvent struct{ ControllerDeviceEvent }

// AudioDeviceEvent is the shared audio hotplug payload.
type AudioDeviceEvent struct {
	Timestamp uint32
	Which     uint32
	IsCapture bool
}

type AudioDeviceAddedEvent struct{ AudioDeviceEvent }

type AudioDeviceRemovedEvent struct{ AudioDeviceEvent }

// SensorEvent delivers up to six axes of sensor data.
type SensorEvent struct {
	Timestamp uint32
	Which     int32
	Data      [6]float32
}

// TouchFingerEvent is the shared payload of the finger variants.
// Coordinates are normalized to [0, 1].
type TouchFingerEvent struct {
	Timestamp uint32
	TouchID   int64
	FingerID  int64
	X, Y      float32
	DX, DY    float32
	Pressure  float32
}

type FingerDownEvent struct{ TouchFingerEvent }

type FingerUpEvent struct{ TouchFingerEvent }

type FingerMotionEvent struct{ TouchFingerEvent }

// MultiGestureEvent reports pinch/rotate gestures.
type MultiGestureEvent struct {
	Timestamp  uint32
	TouchID    int64
	DTheta     float32
	DDist      float32
	X, Y       float32
	NumFingers uint16
}

// DollarGestureEvent is the shared payload of the $1-gesture
// recognize/record variants.
type DollarGestureEvent struct {
	Timestamp  uint32
	TouchID    int64
	GestureID  int64
	NumFingers uint32
	Error      float32
	X, Y       float32
}

type DollarRecordEvent struct{ DollarGestureEvent }

// ClipboardUpdateEvent signals that the clipboard contents changed.
type ClipboardUpdateEvent struct {
	Timestamp uint32
}

// DropEvent is the shared payload of the drag-and-drop variants. Path
// holds the dropped file path or text; it is empty for begin/complete.
type DropEvent struct {
	Timestamp uint32
	WindowID  uint32
	Path      string
}

type DropFileEvent struct{ DropEvent }

type DropTextEvent struct{ DropEvent }

type DropBeginEvent struct{ DropEvent }

type DropCompleteEvent struct{ DropEvent }

// RenderTargetsResetEvent signals that render targets lost their
// contents and must be redrawn.
type RenderTargetsResetEvent struct {
	Timestamp uint32
}

// RenderDeviceResetEvent signals that the device was reset and all
// textures must be recreated.
type RenderDeviceResetEvent struct {
	Timestamp uint32
}

// UserEvent is a caller-registered event (tags at or above the user
// range). These are outside the fixed native set, so they decode to a
// generic record instead of panicking.
type UserEvent struct {
	Timestamp uint32
	Type      uint32
	WindowID  uint32
	Code      int32
}

func (QuitEvent) implementsEvent()                   {}
func (AppTerminatingEvent) implementsEvent()         {}
func (AppLowMemoryEvent) implementsEvent()           {}
func (AppWillEnterBackgroundEvent) implementsEvent() {}
func (AppDidEnterBackgroundEvent) implementsEvent()  {}
func (AppWillEnterForegroundEvent) implementsEvent() {}
func (AppDidEnterForegroundEvent) implementsEvent()  {}
func (DisplayEvent) implementsEvent()                {}
func (WindowEvent) implementsEvent()                 {}
func (SysWMEvent) implementsEvent()                  {}
func (KeyboardEvent) implementsEvent()               {}
func (TextEditingEvent) implementsEvent()            {}
func (TextInputEvent) implementsEvent()              {}
func (MouseMotionEvent) implementsEvent()            {}
func (MouseButtonEvent) implementsEvent()            {}
func (MouseWheelEvent) implementsEvent()             {}
func (JoyAxisEvent) implementsEvent()                {}
func (JoyBallEvent) implementsEvent()                {}
func (JoyHatEvent) implementsEvent()                 {}
func (JoyButtonEvent) implementsEvent()              {}
func (JoyDeviceEvent) implementsEvent()              {}
func (ControllerAxisEvent) implementsEvent()         {}
func (ControllerButtonEvent) implementsEvent()       {}
func (ControllerDeviceEvent) implementsEvent()       {}
func (AudioDeviceEvent) implementsEvent()            {}
func (SensorEvent) implementsEvent()                 {}
func (TouchFingerEvent) implementsEvent()            {}
func (MultiGestureEvent) implementsEvent()           {}
func (DollarGestureEvent) implementsEvent()          {}
func (ClipboardUpdateEvent) implementsEvent()        {}
func (DropEvent) implementsEvent()                   {}
func (RenderTargetsResetEvent) implementsEvent()     {}
func (RenderDeviceResetEvent) implementsEvent()      {}
func (UserEvent) implementsEvent()                   {}

// PollEvent dequeues and decodes one pending event, or returns nil
// immediately when the queue is empty. It never blocks.
func PollEvent() Event {
	raw, ok := drv.PollEvent()
	if !ok {
		return nil
	}
	return decodeEvent(raw)
}

// decodeEvent maps a raw native record to its typed variant. It is a
// pure function of the record: the tag selects the variant and which
// union fields are live. A tag outside the known set (and below the
// user range) means the wrapper and the native library disagree about
// the event table, which is unrecoverable.
func decodeEvent(raw platform.RawEvent) Event {
	d := raw.Data[:]
	tag := u32(d, 0)
	ts := u32(d, 4)

	switch tag {
	case platform.EventQuit:
		return QuitEvent{Timestamp: ts}
	case platform.EventAppTerminating:
		return AppTerminatingEvent{Timestamp: ts}
	case platform.EventAppLowMemory:
		return AppLowMemoryEvent{Timestamp: ts}
	case platform.EventAppWillEnterBackground:
		return AppWillEnterBackgroundEvent{Timestamp: ts}
	case platform.EventAppDidEnterBackground:
		return AppDidEnterBackgroundEvent{Timestamp: ts}
	case platform.EventAppWillEnterForeground:
		return AppWillEnterForegroundEvent{Timestamp: ts}
	case platform.EventAppDidEnterForeground:
		return AppDidEnterForegroundEvent{Timestamp: ts}

	case platform.EventDisplay:
		return DisplayEvent{
			Timestamp: ts,
			Display:   u32(d, 8),
			Event:     d[12],
			Data1:     i32(d, 16),
		}

	case platform.EventWindow:
		return WindowEvent{
			Timestamp: ts,
			WindowID:  u32(d, 8),
			Event:     WindowEventID(d[12]),
			Data1:     i32(d, 16),
			Data2:     i32(d, 20),
		}
	case platform.EventSysWM:
		return SysWMEvent{Timestamp: ts}

	case platform.EventKeyDown:
		return KeyDownEvent{decodeKey(d, ts)}
	case platform.EventKeyUp:
		return KeyUpEvent{decodeKey(d, ts)}
	case platform.EventTextEditing:
		return TextEditingEvent{
			Timestamp: ts,
			WindowID:  u32(d, 8),
			Text:      cstr(d[12:44]),
			Start:     i32(d, 44),
			Length:    i32(d, 48),
		}
	case platform.EventTextInput:
		return TextInputEvent{
			Timestamp: ts,
			WindowID:  u32(d, 8),
			Text:      cstr(d[12:44]),
		}

	case platform.EventMouseMotion:
		return MouseMotionEvent{
			Timestamp: ts,
			WindowID:  u32(d, 8),
			Which:     u32(d, 12),
			State:     u32(d, 16),
			X:         i32(d, 20),
			Y:         i32(d, 24),
			XRel:      i32(d, 28),
			YRel:      i32(d, 32),
		}
	case platform.EventMouseButtonDown:
		return MouseButtonDownEvent{decodeMouseButton(d, ts)}
	case platform.EventMouseButtonUp:
		return MouseButtonUpEvent{decodeMouseButton(d, ts)}
	case platform.EventMouseWheel:
		return MouseWheelEvent{
			Timestamp: ts,
			WindowID:  u32(d, 8),
			Which:     u32(d, 12),
			X:         i32(d, 16),
			Y:         i32(d, 20),
			Direction: u32(d, 24),
		}

	case platform.EventJoyAxisMotion:
		return JoyAxisEvent{
			Timestamp: ts,
			Which:     JoystickID(i32(d, 8)),
			Axis:      d[12],
			Value:     i16(d, 16),
		}
	case platform.EventJoyBallMotion:
		return JoyBallEvent{
			Timestamp: ts,
			Which:     JoystickID(i32(d, 8)),
			Ball:      d[12],
			XRel:      i16(d, 16),
			YRel:      i16(d, 18),
		}
	case platform.EventJoyHatMotion:
		return JoyHatEvent{
			Timestamp: ts,
			Which:     JoystickID(i32(d, 8)),
			Hat:       d[12],
			Value:     d[13],
		}
	case platform.EventJoyButtonDown:
		return JoyButtonDownEvent{decodeJoyButton(d, ts)}
	case platform.EventJoyButtonUp:
		return JoyButtonUpEvent{decodeJoyButton(d, ts)}
	case platform.EventJoyDeviceAdded:
		return JoyDeviceAddedEvent{JoyDeviceEvent{Timestamp: ts, Which: i32(d, 8)}}
	case platform.EventJoyDeviceRemoved:
		return JoyDeviceRemovedEvent{JoyDeviceEvent{Timestamp: ts, Which: i32(d, 8)}}

	case platform.EventControllerAxisMotion:
		return ControllerAxisEvent{
			Timestamp: ts,
			Which:     JoystickID(i32(d, 8)),
			Axis:      d[12],
			Value:     i16(d, 16),
		}
	case platform.EventControllerButtonDown:
		return ControllerButtonDownEvent{decodeControllerButton(d, ts)}
	case platform.EventControllerButtonUp:
		return ControllerButtonUpEvent{decodeControllerButton(d, ts)}
	case platform.EventControllerDeviceAdded:
		return ControllerDeviceAddedEvent{ControllerDeviceEvent{Timestamp: ts, Which: i32(d, 8)}}
	case platform.EventControllerDeviceRemoved:
		return ControllerDeviceRemovedEvent{ControllerDeviceEvent{Timestamp: ts, Which: i32(d, 8)}}
	case platform.EventControllerDeviceRemapped:
		return ControllerDeviceRemappedEvent{ControllerDeviceEvent{Timestamp: ts, Which: i32(d, 8)}}

	case platform.EventFingerDown:
		return FingerDownEvent{decodeTouchFinger(d, ts)}
	case platform.EventFingerUp:
		return FingerUpEvent{decodeTouchFinger(d, ts)}
	case platform.EventFingerMotion:
		return FingerMotionEvent{decodeTouchFinger(d, ts)}

	case platform.EventDollarGesture:
		return decodeDollarGesture(d, ts)
	case platform.EventDollarRecord:
		return DollarRecordEvent{decodeDollarGesture(d, ts)}
	case platform.EventMultiGesture:
		return MultiGestureEvent{
			Timestamp:  ts,
			TouchID:    i64(d, 8),
			DTheta:     f32(d, 16),
			DDist:      f32(d, 20),
			X:          f32(d, 24),
			Y:          f32(d, 28),
			NumFingers: u16(d, 32),
		}

	case platform.EventClipboardUpdate:
		return ClipboardUpdateEvent{Timestamp: ts}

	case platform.EventDropFile:
		return DropFileEvent{decodeDrop(d, ts, raw.Drop)}
	case platform.EventDropText:
		return DropTextEvent{decodeDrop(d, ts, raw.Drop)}
	case platform.EventDropBegin:
		return DropBeginEvent{decodeDrop(d, ts, "")}
	case platform.EventDropComplete:
		return DropCompleteEvent{decodeDrop(d, ts, "")}

	case platform.EventAudioDeviceAdded:
		return AudioDeviceAddedEvent{decodeAudioDevice(d, ts)}
	case platform.EventAudioDeviceRemoved:
		return AudioDeviceRemovedEvent{decodeAudioDevice(d, ts)}

	case platform.EventSensorUpdate:
		e := SensorEvent{Timestamp: ts, Which: i32(d, 8)}
		for i := range e.Data {
			e.Data[i] = f32(d, 12+4*i)
		}
		return e

	case platform.EventRenderTargetsReset:
		return RenderTargetsResetEvent{Timestamp: ts}
	case platform.EventRenderDeviceReset:
		return RenderDeviceResetEvent{Timestamp: ts}
	}

	if tag >= platform.EventUser && tag < platform.EventLast {
		return UserEvent{
			Timestamp: ts,
			Type:      tag,
			WindowID:  u32(d, 8),
			Code:      i32(d, 12),
		}
	}

	// A tag we have no constructor for: the native event table and this
	// decoder are out of sync. Not a recoverable condition.
	panic(fmt.Sprintf("sdl: unknown event type 0x%x", tag))
}

func decodeKey(d []byte, ts uint32) KeyboardEvent {
	return KeyboardEvent{
		Timestamp: ts,
		WindowID:  u32(d, 8),
		Repeat:    d[13] != 0,
		Scancode:  Scancode(u32(d, 16)),
		Keycode:   Keycode(i32(d, 20)),
		Mod:       u16(d, 24),
	}
}

func decodeMouseButton(d []byte, ts uint32) MouseButtonEvent {
	return MouseButtonEvent{
		Timestamp: ts,
		WindowID:  u32(d, 8),
		Which:     u32(d, 12),
		Button:    d[16],
		Clicks:    d[18],
		X:         i32(d, 20),
		Y:         i32(d, 24),
	}
}

func decodeJoyButton(d []byte, ts uint32) JoyButtonEvent {
	return JoyButtonEvent{
		Timestamp: ts,
		Which:     JoystickID(i32(d, 8)),
		Button:    d[12],
	}
}

func decodeControllerButton(d []byte, ts uint32) ControllerButtonEvent {
	return ControllerButtonEvent{
		Timestamp: ts,
		Which:     JoystickID(i32(d, 8)),
		Button:    d[12],
	}
}

func decodeTouchFinger(d []byte, ts uint32) TouchFingerEvent {
	return TouchFingerEvent{
		Timestamp: ts,
		TouchID:   i64(d, 8),
		FingerID:  i64(d, 16),
		X:         f32(d, 24),
		Y:         f32(d, 28),
		DX:        f32(d, 32),
		DY:        f32(d, 36),
		Pressure:  f32(d, 40),
	}
}

func decodeDollarGesture(d []byte, ts uint32) DollarGestureEvent {
	return DollarGestureEvent{
		Timestamp:  ts,
		TouchID:    i64(d, 8),
		GestureID:  i64(d, 16),
		NumFingers: u32(d, 24),
		Error:      f32(d, 28),
		X:          f32(d, 32),
		Y:          f32(d, 36),
	}
}

func decodeDrop(d []byte, ts uint32, path string) DropEvent {
	return DropEvent{
		Timestamp: ts,
		WindowID:  u32(d, 16),
		Path:      path,
	}
}

func decodeAudioDevice(d []byte, ts uint32) AudioDeviceEvent {
	return AudioDeviceEvent{
		Timestamp: ts,
		Which:     u32(d, 8),
		IsCapture: d[12] != 0,
	}
}

// Little-endian accessors over the raw record, matching the native ABI.
func u16(d []byte, off int) uint16 { return binary.LittleEndian.Uint16(d[off:]) }
func u32(d []byte, off int) uint32 { return binary.LittleEndian.Uint32(d[off:]) }
func i16(d []byte, off int) int16  { return int16(binary.LittleEndian.Uint16(d[off:])) }
func i32(d []byte, off int) int32  { return int32(binary.LittleEndian.Uint32(d[off:])) }
func i64(d []byte, off int) int64  { return int64(binary.LittleEndian.Uint64(d[off:])) }

func f32(d []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(d[off:]))
}

// cstr extracts the NUL-terminated prefix of a fixed-size text field.
func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
