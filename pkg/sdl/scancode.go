package sdl

// Common scancodes (SDL_SCANCODE_*). The full native table runs to 512
// entries; KeyboardState.IsPressed accepts any of them.
const (
	ScancodeA Scancode = 4 + iota
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ
	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0
	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
)

const (
	ScancodeRight Scancode = 79 + iota
	ScancodeLeft
	ScancodeDown
	ScancodeUp
)

const (
	ScancodeLCtrl Scancode = 224 + iota
	ScancodeLShift
	ScancodeLAlt
	ScancodeLGui
	ScancodeRCtrl
	ScancodeRShift
	ScancodeRAlt
	ScancodeRGui
)
