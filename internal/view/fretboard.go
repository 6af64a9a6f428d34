// Package view holds the fretboard component: the selection state, the
// board configuration, and the mapping from input to state changes.
package view

import (
	"errors"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/fretboard"
	"github.com/minikomi/guitarfret/internal/note"
	"github.com/minikomi/guitarfret/internal/render"
)

// Command is a board-wide action bound to a key and a toolbar button.
type Command int

const (
	Reset Command = iota
	Replay
)

func (c Command) String() string {
	switch c {
	case Reset:
		return "reset"
	case Replay:
		return "replay"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

var buttonCommands = map[render.ButtonID]Command{
	render.ButtonClear: Reset,
	render.ButtonPlay:  Replay,
}

var ErrTuningMismatch = errors.New("tuning does not match the string count")

// Player sounds a position. The view hands over the resolved pitch so the
// player never reads the selection.
type Player interface {
	Play(pos fretboard.Position, pitch note.Pitch)
}

// Fretboard is the interactive board. It is driven from one goroutine.
type Fretboard struct {
	geom    fretboard.Config
	tuning  note.Tuning
	sel     *fretboard.Selection
	toolbar render.Toolbar
	player  Player
	log     *zap.Logger
	dirty   bool
}

func New(g fretboard.Config, t note.Tuning, player Player, log *zap.Logger) (*Fretboard, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if t.Strings() != g.Strings {
		return nil, fault.Wrap(fmt.Errorf("%w: %s has %d strings, board has %d", ErrTuningMismatch, t.Name, t.Strings(), g.Strings),
			ftag.With(ftag.InvalidArgument),
			fmsg.WithDesc("build fretboard", "The tuning does not fit the board."))
	}
	w, h := g.MinSize()
	return &Fretboard{
		geom:    g,
		tuning:  t,
		sel:     fretboard.NewSelection(),
		toolbar: render.NewToolbar(w, h),
		player:  player,
		log:     log,
		dirty:   true,
	}, nil
}

// Size is the fixed canvas size: the board plus the toolbar.
func (f *Fretboard) Size() (w, h int) {
	w, h = f.geom.MinSize()
	return w, h + render.ToolbarHeight
}

func (f *Fretboard) Geometry() fretboard.Config { return f.geom }
func (f *Fretboard) Tuning() note.Tuning        { return f.tuning }

// Selected lists the selected positions in (fret, string) order.
func (f *Fretboard) Selected() []fretboard.Position { return f.sel.Positions() }

func (f *Fretboard) Roots() []fretboard.Position { return f.sel.Roots() }

// PrimaryClick toggles the position under (x, y), or runs the toolbar
// button there. A newly selected position is played.
func (f *Fretboard) PrimaryClick(x, y int) {
	if b, ok := f.toolbar.ButtonAt(x, y); ok {
		f.Do(buttonCommands[b.ID])
		return
	}
	p, ok := f.geom.HitTest(x, y)
	if !ok {
		return
	}
	added := f.sel.Toggle(p)
	f.dirty = true
	f.log.Debug("toggle", zap.Object("pos", p), zap.Bool("selected", added))
	if added {
		f.play(p)
	}
}

// SecondaryClick toggles the root mark on a selected position.
func (f *Fretboard) SecondaryClick(x, y int) {
	p, ok := f.geom.HitTest(x, y)
	if !ok {
		return
	}
	if f.sel.ToggleRoot(p) {
		f.dirty = true
		f.log.Debug("toggle root", zap.Object("pos", p), zap.Bool("root", f.sel.Root(p)))
	}
}

func (f *Fretboard) Do(cmd Command) {
	f.log.Debug("command", zap.Stringer("cmd", cmd))
	switch cmd {
	case Reset:
		f.Reset()
	case Replay:
		f.Replay()
	}
}

// Reset clears the selection and every root mark.
func (f *Fretboard) Reset() {
	f.sel.Reset()
	f.dirty = true
}

// Replay plays every selected position, lowest fret first.
func (f *Fretboard) Replay() {
	for _, p := range f.sel.Positions() {
		f.play(p)
	}
}

func (f *Fretboard) play(p fretboard.Position) {
	f.player.Play(p, f.tuning.AbsolutePitch(p.String, p.Fret))
}

func (f *Fretboard) Invalidate() { f.dirty = true }

func (f *Fretboard) NeedsRedraw() bool { return f.dirty }

// Frame returns the primitives for the current state and marks the board
// clean. Root marks without a selection are dropped first.
func (f *Fretboard) Frame() []render.Primitive {
	if n := f.sel.Prune(); n > 0 {
		f.log.Debug("pruned stale roots", zap.Int("count", n))
	}
	f.dirty = false
	prims := render.Board(f.geom, f.tuning, f.sel)
	return append(prims, f.toolbar.Primitives()...)
}
