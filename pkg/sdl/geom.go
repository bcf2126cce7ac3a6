package sdl

import "github.com/shish/gosdl/internal/platform"

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H int32
}

// Point is a position in window coordinates.
type Point struct {
	X, Y int32
}

// Size is a width/height pair.
type Size struct {
	W, H int32
}

// native converts for the boundary; nil stays nil ("whole surface").
func (r *Rect) native() *platform.Rect {
	if r == nil {
		return nil
	}
	return &platform.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
