package render

import (
	"strconv"

	"github.com/minikomi/guitarfret/internal/fretboard"
	"github.com/minikomi/guitarfret/internal/note"
)

const (
	fretWidth      = 2
	stringWidth    = 4
	borderWidth    = 2
	rootWidth      = 2
	markerRadius   = 7
	selectedRadius = 15
	rootRadius     = 20
	fretNumberLift = 15
)

// Selection is the read side of fretboard.Selection.
type Selection interface {
	Selected(p fretboard.Position) bool
	Root(p fretboard.Position) bool
}

// Board draws the fretboard. Roots that are not selected are skipped, so
// a stale root mark never shows.
func Board(g fretboard.Config, t note.Tuning, sel Selection) []Primitive {
	var out []Primitive
	out = appendFrets(out, g)
	out = appendMarkers(out, g)
	out = appendStrings(out, g)
	out = appendFretNumbers(out, g)
	out = appendNotes(out, g, t, sel)
	out = appendRoots(out, g, sel)
	return appendBorder(out, g)
}

func appendFrets(out []Primitive, g fretboard.Config) []Primitive {
	top, bottom := g.StringY(0), g.StringY(g.Strings-1)
	for i := 1; i <= g.Frets; i++ {
		c := fretColor
		if i == 1 {
			c = Black // the nut
		}
		x := g.FretX(i)
		out = append(out, Primitive{Kind: Line, Layer: LayerFrets, X1: x, Y1: top, X2: x, Y2: bottom, Width: fretWidth, Color: c})
	}
	return out
}

func appendMarkers(out []Primitive, g fretboard.Config) []Primitive {
	for _, m := range g.Markers() {
		out = append(out, Primitive{Kind: FilledCircle, Layer: LayerMarkers, X1: m.X, Y1: m.Y, Radius: markerRadius, Color: markerColor})
	}
	return out
}

func appendStrings(out []Primitive, g fretboard.Config) []Primitive {
	left, right := g.FretX(1), g.FretX(g.Frets)
	for s := 0; s < g.Strings; s++ {
		y := g.StringY(s)
		out = append(out, Primitive{Kind: Line, Layer: LayerStrings, X1: left, Y1: y, X2: right, Y2: y, Width: stringWidth, Color: stringColor})
	}
	return out
}

func appendFretNumbers(out []Primitive, g fretboard.Config) []Primitive {
	_, h := g.MinSize()
	for i := 1; i < g.Frets; i++ {
		x, _ := g.NoteCenter(fretboard.Position{Fret: i})
		out = append(out, Primitive{Kind: Text, Layer: LayerFretNumbers, X1: x, Y1: h - fretNumberLift, Text: strconv.Itoa(i), Color: Black})
	}
	return out
}

func appendNotes(out []Primitive, g fretboard.Config, t note.Tuning, sel Selection) []Primitive {
	for s := 0; s < g.Strings; s++ {
		for f := 0; f <= g.Frets; f++ {
			p := fretboard.Position{Fret: f, String: s}
			x, y := g.NoteCenter(p)
			name := t.Resolve(s, f).String()
			if sel.Selected(p) {
				out = append(out,
					Primitive{Kind: FilledCircle, Layer: LayerNotes, X1: x, Y1: y, Radius: selectedRadius, Color: selectedColor},
					Primitive{Kind: Text, Layer: LayerNotes, X1: x, Y1: y, Text: name, Bold: true, Color: White})
				continue
			}
			out = append(out, Primitive{Kind: Text, Layer: LayerNotes, X1: x, Y1: y, Text: name, Color: plainNoteColor})
		}
	}
	return out
}

func appendRoots(out []Primitive, g fretboard.Config, sel Selection) []Primitive {
	for s := 0; s < g.Strings; s++ {
		for f := 0; f <= g.Frets; f++ {
			p := fretboard.Position{Fret: f, String: s}
			if !sel.Root(p) || !sel.Selected(p) {
				continue
			}
			x, y := g.NoteCenter(p)
			out = append(out, Primitive{Kind: Circle, Layer: LayerRoots, X1: x, Y1: y, Radius: rootRadius, Width: rootWidth, Color: Black})
		}
	}
	return out
}

func appendBorder(out []Primitive, g fretboard.Config) []Primitive {
	w, h := g.MinSize()
	return append(out, Primitive{Kind: Rect, Layer: LayerBorder, X1: 0, Y1: 0, X2: w - 1, Y2: h - 1, Width: borderWidth, Color: borderColor})
}
