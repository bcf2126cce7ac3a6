package platform

// Numeric vocabulary shared between the driver and the typed layer,
// mirroring the SDL2 headers.

// Subsystem init flags (SDL_INIT_*).
const (
	InitTimer          = 0x00000001
	InitAudio          = 0x00000010
	InitVideo          = 0x00000020
	InitJoystick       = 0x00000200
	InitHaptic         = 0x00001000
	InitGameController = 0x00002000
	InitEvents         = 0x00004000
	InitSensor         = 0x00008000
)

// Window flags (SDL_WINDOW_*). Single-bit flags only.
const (
	WindowFullscreen   = 0x00000001
	WindowOpenGL       = 0x00000002
	WindowShown        = 0x00000004
	WindowHidden       = 0x00000008
	WindowBorderless   = 0x00000010
	WindowResizable    = 0x00000020
	WindowMinimized    = 0x00000040
	WindowMaximized    = 0x00000080
	WindowInputGrabbed = 0x00000100
	WindowAllowHighDPI = 0x00002000
)

// Window position sentinels (SDL_WINDOWPOS_*).
const (
	WindowPosUndefined = 0x1FFF0000
	WindowPosCentered  = 0x2FFF0000
)

// Renderer flags (SDL_RENDERER_*).
const (
	RendererSoftware      = 0x00000001
	RendererAccelerated   = 0x00000002
	RendererPresentVSync  = 0x00000004
	RendererTargetTexture = 0x00000008
)

// Texture access modes (SDL_TEXTUREACCESS_*).
const (
	TextureAccessStatic = iota
	TextureAccessStreaming
	TextureAccessTarget
)

// Blend modes (SDL_BLENDMODE_*).
const (
	BlendModeNone  = 0x00000000
	BlendModeBlend = 0x00000001
	BlendModeAdd   = 0x00000002
	BlendModeMod   = 0x00000004
)

// Pixel formats (SDL_PIXELFORMAT_*), the handful a 2D renderer needs.
const (
	PixelFormatRGBA8888 = 0x16462004
	PixelFormatARGB8888 = 0x16362004
	PixelFormatABGR8888 = 0x16762004
	PixelFormatBGRA8888 = 0x16562004
	PixelFormatRGB888   = 0x16161804
	PixelFormatRGB24    = 0x17101803
)

// Event type tags (SDL_EventType).
const (
	EventFirst = 0

	// Application events.
	EventQuit                   = 0x100
	EventAppTerminating         = 0x101
	EventAppLowMemory           = 0x102
	EventAppWillEnterBackground = 0x103
	EventAppDidEnterBackground  = 0x104
	EventAppWillEnterForeground = 0x105
	EventAppDidEnterForeground  = 0x106

	// Display events.
	EventDisplay = 0x150

	// Window events.
	EventWindow = 0x200
	EventSysWM  = 0x201

	// Keyboard events.
	EventKeyDown     = 0x300
	EventKeyUp       = 0x301
	EventTextEditing = 0x302
	EventTextInput   = 0x303

	// Mouse events.
	EventMouseMotion     = 0x400
	EventMouseButtonDown = 0x401
	EventMouseButtonUp   = 0x402
	EventMouseWheel      = 0x403

	// Joystick events.
	EventJoyAxisMotion    = 0x600
	EventJoyBallMotion    = 0x601
	EventJoyHatMotion     = 0x602
	EventJoyButtonDown    = 0x603
	EventJoyButtonUp      = 0x604
	EventJoyDeviceAdded   = 0x605
	EventJoyDeviceRemoved = 0x606

	// Game controller events.
	EventControllerAxisMotion     = 0x650
	EventControllerButtonDown     = 0x651
	EventControllerButtonUp       = 0x652
	EventControllerDeviceAdded    = 0x653
	EventControllerDeviceRemoved  = 0x654
	EventControllerDeviceRemapped = 0x655

	// Touch events.
	EventFingerDown   = 0x700
	EventFingerUp     = 0x701
	EventFingerMotion = 0x702

	// Gesture events.
	EventDollarGesture = 0x800
	EventDollarRecord  = 0x801
	EventMultiGesture  = 0x802

	// Clipboard.
	EventClipboardUpdate = 0x900

	// Drag and drop.
	EventDropFile     = 0x1000
	EventDropText     = 0x1001
	EventDropBegin    = 0x1002
	EventDropComplete = 0x1003

	// Audio hotplug.
	EventAudioDeviceAdded   = 0x1100
	EventAudioDeviceRemoved = 0x1101

	// Sensors.
	EventSensorUpdate = 0x1200

	// Render events.
	EventRenderTargetsReset = 0x2000
	EventRenderDeviceReset  = 0x2001

	// Caller-registered range.
	EventUser = 0x8000
	EventLast = 0xFFFF
)

// Window event IDs (SDL_WindowEventID), carried in the window payload.
const (
	WindowEventNone = iota
	WindowEventShown
	WindowEventHidden
	WindowEventExposed
	WindowEventMoved
	WindowEventResized
	WindowEventSizeChanged
	WindowEventMinimized
	WindowEventMaximized
	WindowEventRestored
	WindowEventEnter
	WindowEventLeave
	WindowEventFocusGained
	WindowEventFocusLost
	WindowEventClose
	WindowEventTakeFocus
	WindowEventHitTest
)

// Mouse button bitmask bits (SDL_BUTTON_*MASK).
const (
	ButtonLeftMask   = 1 << 0
	ButtonMiddleMask = 1 << 1
	ButtonRightMask  = 1 << 2
	ButtonX1Mask     = 1 << 3
	ButtonX2Mask     = 1 << 4
)

// NumScancodes is the length of the native keyboard state array.
const NumScancodes = 512
