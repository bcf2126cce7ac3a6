// Bouncing rectangles: windows, renderer draw calls and the frame loop.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kjkrol/gokg/geom"

	"github.com/shish/gosdl/pkg/gfx"
	"github.com/shish/gosdl/pkg/sdl"
)

const (
	winWidth  = 800
	winHeight = 600
	boxSize   = 48
)

type box struct {
	pos   geom.Vec[int32]
	vel   geom.Vec[int32]
	color sdl.Color
}

func (b *box) step() {
	b.pos = b.pos.Add(b.vel)
	if b.pos.X < 0 || b.pos.X+boxSize > winWidth {
		b.vel.X = -b.vel.X
		b.pos = b.pos.Add(b.vel)
	}
	if b.pos.Y < 0 || b.pos.Y+boxSize > winHeight {
		b.vel.Y = -b.vel.Y
		b.pos = b.pos.Add(b.vel)
	}
}

func main() {
	sdl.SetLogger(slog.Default())
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	boxes := []*box{
		{pos: geom.NewVec[int32](60, 40), vel: geom.NewVec[int32](3, 2), color: sdl.RGB(220, 60, 60)},
		{pos: geom.NewVec[int32](300, 200), vel: geom.NewVec[int32](-2, 3), color: sdl.RGB(60, 220, 60)},
		{pos: geom.NewVec[int32](500, 400), vel: geom.NewVec[int32](2, -4), color: sdl.RGB(60, 60, 220)},
	}

	return sdl.Run(sdl.InitFlags{Video: true}, func() error {
		conf := sdl.WindowConfig{
			Title: "gosdl demo",
			X:     sdl.WindowPosCentered,
			Y:     sdl.WindowPosCentered,
			Width: winWidth, Height: winHeight,
			Flags: sdl.WindowFlags{Shown: true},
		}
		return sdl.WithWindow(conf, func(win *sdl.Window) error {
			ren, err := sdl.NewRendererWithFallback(win)
			if err != nil {
				return err
			}
			defer ren.Destroy()

			loop := gfx.NewLoop(60, gfx.DrainAll())
			return loop.Run(
				func(e sdl.Event) {
					switch e := e.(type) {
					case sdl.QuitEvent:
						loop.Stop()
					case sdl.KeyDownEvent:
						if e.Scancode == sdl.ScancodeEscape {
							loop.Stop()
						}
					}
				},
				func() error {
					if err := ren.SetColorRGB(20, 20, 30); err != nil {
						return err
					}
					if err := ren.Clear(); err != nil {
						return err
					}
					for _, b := range boxes {
						b.step()
						if err := ren.SetColor(b.color); err != nil {
							return err
						}
						rect := sdl.Rect{X: b.pos.X, Y: b.pos.Y, W: boxSize, H: boxSize}
						if err := ren.FillRect(&rect); err != nil {
							return err
						}
					}
					ren.Present()
					return nil
				},
			)
		})
	})
}
