// Streaming texture updates: text is rasterized into an RGBA image,
// scaled up, and uploaded into a streaming texture every frame.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/shish/gosdl/pkg/gfx"
	"github.com/shish/gosdl/pkg/sdl"
)

const (
	winWidth  = 640
	winHeight = 240
	texWidth  = 160
	texHeight = 60
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// renderText draws s into a small RGBA image and scales it to the
// texture size.
func renderText(s string) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, texWidth/2, texHeight/2))
	d := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 18),
	}
	d.DrawString(s)

	big := image.NewRGBA(image.Rect(0, 0, texWidth, texHeight))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
	return big
}

func run() error {
	return sdl.Run(sdl.InitFlags{Video: true}, func() error {
		conf := sdl.WindowConfig{
			Title: "gosdl pixels",
			X:     sdl.WindowPosCentered,
			Y:     sdl.WindowPosCentered,
			Width: winWidth, Height: winHeight,
			Flags: sdl.WindowFlags{Shown: true},
		}
		return sdl.WithWindow(conf, func(win *sdl.Window) error {
			return win.WithRenderer(sdl.AnyRenderDriver, sdl.RendererFlags{Accelerated: true}, func(ren *sdl.Renderer) error {
				return ren.WithTexture(sdl.FormatABGR8888, sdl.AccessStreaming, texWidth, texHeight, func(tex *sdl.Texture) error {
					loop := gfx.NewLoop(30, gfx.DrainAll())
					frame := 0
					return loop.Run(
						func(e sdl.Event) {
							if _, ok := e.(sdl.QuitEvent); ok {
								loop.Stop()
							}
						},
						func() error {
							frame++
							img := renderText(fmt.Sprintf("tick %d", frame))
							if err := tex.Update(nil, img.Pix, img.Stride); err != nil {
								return err
							}

							// Pulse the tint to show color modulation.
							tint := uint8(128 + 127*((frame/30)%2))
							if err := tex.SetColorModRGB(tint, 255, tint); err != nil {
								return err
							}

							if err := ren.SetColorRGB(0, 0, 0); err != nil {
								return err
							}
							if err := ren.Clear(); err != nil {
								return err
							}
							dst := sdl.Rect{X: 40, Y: 30, W: winWidth - 80, H: winHeight - 60}
							if err := ren.Copy(tex, nil, &dst); err != nil {
								return err
							}
							ren.Present()
							return nil
						},
					)
				})
			})
		})
	})
}
