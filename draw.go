package main

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/minikomi/guitarfret/internal/render"
)

const fontSize = 15

type label struct {
	text  string
	bold  bool
	color render.Color
}

// canvas draws render primitives with SDL. Rendered labels are cached
// because the board redraws the same handful of note names every frame.
type canvas struct {
	renderer *sdl.Renderer
	regular  *ttf.Font
	bold     *ttf.Font
	labels   map[label]*sdl.Texture
}

func openFont(data []byte) (*ttf.Font, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return ttf.OpenFontRW(rw, 1, fontSize)
}

func newCanvas(renderer *sdl.Renderer) (*canvas, error) {
	regular, err := openFont(goregular.TTF)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("open regular font", "Could not load the label font."))
	}
	bold, err := openFont(gobold.TTF)
	if err != nil {
		regular.Close()
		return nil, fault.Wrap(err, fmsg.WithDesc("open bold font", "Could not load the label font."))
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		regular.Close()
		bold.Close()
		return nil, fault.Wrap(err, fmsg.With("set blend mode"))
	}
	return &canvas{
		renderer: renderer,
		regular:  regular,
		bold:     bold,
		labels:   map[label]*sdl.Texture{},
	}, nil
}

func sdlColor(c render.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Draw clears the window and draws prims in order.
func (cv *canvas) Draw(prims []render.Primitive) error {
	bg := render.Background
	cv.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	cv.renderer.Clear()

	for _, p := range prims {
		if err := cv.draw(p); err != nil {
			return err
		}
	}
	cv.renderer.Present()
	return nil
}

func (cv *canvas) draw(p render.Primitive) error {
	r := cv.renderer
	c := sdlColor(p.Color)
	x1, y1, x2, y2 := int32(p.X1), int32(p.Y1), int32(p.X2), int32(p.Y2)
	width := int32(p.Width)
	if width < 1 {
		width = 1
	}

	switch p.Kind {
	case render.Line:
		if width == 1 {
			gfx.LineColor(r, x1, y1, x2, y2, c)
		} else {
			gfx.ThickLineColor(r, x1, y1, x2, y2, width, c)
		}
	case render.Rect:
		for i := int32(0); i < width; i++ {
			gfx.RectangleColor(r, x1+i, y1+i, x2-i, y2-i, c)
		}
	case render.FilledRect:
		gfx.BoxColor(r, x1, y1, x2, y2, c)
	case render.FilledCircle:
		gfx.FilledCircleColor(r, x1, y1, int32(p.Radius), c)
		gfx.AACircleColor(r, x1, y1, int32(p.Radius), c)
	case render.Circle:
		for i := int32(0); i < width; i++ {
			gfx.AACircleColor(r, x1, y1, int32(p.Radius)-i, c)
		}
	case render.Text:
		return cv.text(p)
	}
	return nil
}

func (cv *canvas) text(p render.Primitive) error {
	if p.Text == "" {
		return nil
	}
	key := label{text: p.Text, bold: p.Bold, color: p.Color}
	tex, ok := cv.labels[key]
	if !ok {
		font := cv.regular
		if p.Bold {
			font = cv.bold
		}
		c := sdlColor(p.Color)
		c.A = 255
		solid, err := font.RenderUTF8Blended(p.Text, c)
		if err != nil {
			return fault.Wrap(err, fmsg.With("render label"))
		}
		tex, err = cv.renderer.CreateTextureFromSurface(solid)
		solid.Free()
		if err != nil {
			return fault.Wrap(err, fmsg.With("label texture"))
		}
		tex.SetAlphaMod(p.Color.A)
		cv.labels[key] = tex
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		return fault.Wrap(err, fmsg.With("query label texture"))
	}
	dst := sdl.Rect{X: int32(p.X1) - w/2, Y: int32(p.Y1) - h/2, W: w, H: h}
	return cv.renderer.Copy(tex, nil, &dst)
}

func (cv *canvas) Close() {
	for k, tex := range cv.labels {
		tex.Destroy()
		delete(cv.labels, k)
	}
	cv.regular.Close()
	cv.bold.Close()
}
