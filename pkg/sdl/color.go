package sdl

import (
	"errors"
	"strconv"
)

// Color is an 8-bit-per-channel RGBA color. Fully opaque colors carry
// A = 255.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Color parse failures. Distinct from Error: parsing never touches the
// native library.
var (
	ErrUnknownFormat    = errors.New("sdl: unknown color format")
	ErrInvalidCharacter = errors.New("sdl: invalid character in color")
	ErrOverflow         = errors.New("sdl: color channel overflow")
)

// ParseColor parses a hex color string. Accepted forms, dispatched on
// length alone: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each optionally
// prefixed with '#'. Short forms expand each nibble by duplication
// ("f" -> 0xff); three-channel forms default alpha to 255.
func ParseColor(s string) (Color, error) {
	return parseColor(s, false)
}

// parseColor dispatches on length. A leading '#' is stripped at most
// once: after the strip the recursion re-enters with stripped set, so a
// second '#' falls through to digit parsing and fails there.
func parseColor(s string, stripped bool) (Color, error) {
	switch len(s) {
	case 3:
		r, err := nibble(s[0:1])
		if err != nil {
			return Color{}, err
		}
		g, err := nibble(s[1:2])
		if err != nil {
			return Color{}, err
		}
		b, err := nibble(s[2:3])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b, A: 255}, nil
	case 4:
		if !stripped && s[0] == '#' {
			return parseColor(s[1:], true)
		}
		r, err := nibble(s[0:1])
		if err != nil {
			return Color{}, err
		}
		g, err := nibble(s[1:2])
		if err != nil {
			return Color{}, err
		}
		b, err := nibble(s[2:3])
		if err != nil {
			return Color{}, err
		}
		a, err := nibble(s[3:4])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	case 5:
		if s[0] != '#' {
			return Color{}, ErrUnknownFormat
		}
		return parseColor(s[1:], true)
	case 6:
		r, err := channel(s[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := channel(s[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := channel(s[4:6])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b, A: 255}, nil
	case 7:
		if s[0] != '#' {
			return Color{}, ErrUnknownFormat
		}
		return parseColor(s[1:], true)
	case 8:
		r, err := channel(s[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := channel(s[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := channel(s[4:6])
		if err != nil {
			return Color{}, err
		}
		a, err := channel(s[6:8])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	case 9:
		if s[0] != '#' {
			return Color{}, ErrUnknownFormat
		}
		return parseColor(s[1:], true)
	default:
		return Color{}, ErrUnknownFormat
	}
}

// nibble parses one hex digit and expands it to a full channel by
// duplication.
func nibble(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, convErr(err)
	}
	return uint8(v | v<<4), nil
}

// channel parses a two-digit hex channel.
func channel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, convErr(err)
	}
	return uint8(v), nil
}

func convErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOverflow
	}
	return ErrInvalidCharacter
}
