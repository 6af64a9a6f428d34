package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/view"
)

var keyToCommand = map[sdl.Keycode]view.Command{
	sdl.K_c: view.Reset,
	sdl.K_q: view.Replay,
}

// input routes SDL events to the fretboard.
type input struct {
	board         *view.Fretboard
	window        *sdl.Window
	width, height int32
	log           *zap.Logger
	quit          bool
}

func (in *input) handle(event sdl.Event) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		in.quit = true
	case *sdl.KeyboardEvent:
		in.handleKey(ev)
	case *sdl.MouseButtonEvent:
		in.handleMouse(ev)
	case *sdl.WindowEvent:
		in.handleWindow(ev)
	}
}

func (in *input) handleKey(ev *sdl.KeyboardEvent) {
	// first keydown: State == PRESSED, Repeat == 0
	if ev.State != sdl.PRESSED || ev.Repeat != 0 {
		return
	}
	cmd, ok := keyToCommand[ev.Keysym.Sym]
	if !ok {
		in.log.Debug("unbound key", zap.String("key", sdl.GetKeyName(ev.Keysym.Sym)))
		return
	}
	in.log.Debug("command", zap.Stringer("command", cmd))
	in.board.Do(cmd)
}

func (in *input) handleMouse(ev *sdl.MouseButtonEvent) {
	if ev.State != sdl.PRESSED {
		return
	}
	x, y := int(ev.X), int(ev.Y)
	switch ev.Button {
	case sdl.BUTTON_LEFT:
		in.board.PrimaryClick(x, y)
	case sdl.BUTTON_RIGHT:
		in.board.SecondaryClick(x, y)
	}
}

func (in *input) handleWindow(ev *sdl.WindowEvent) {
	switch ev.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
		if ev.Data1 != in.width || ev.Data2 != in.height {
			in.window.SetSize(in.width, in.height)
		}
		in.board.Invalidate()
	case sdl.WINDOWEVENT_EXPOSED, sdl.WINDOWEVENT_RESTORED:
		in.board.Invalidate()
	}
}
