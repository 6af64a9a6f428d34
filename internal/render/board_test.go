package render

import (
	"testing"

	"github.com/minikomi/guitarfret/internal/fretboard"
	"github.com/minikomi/guitarfret/internal/note"
)

type fakeSelection struct {
	selected map[fretboard.Position]bool
	roots    map[fretboard.Position]bool
}

func (s fakeSelection) Selected(p fretboard.Position) bool { return s.selected[p] }
func (s fakeSelection) Root(p fretboard.Position) bool     { return s.roots[p] }

func countKind(prims []Primitive, layer Layer, kind Kind) int {
	n := 0
	for _, p := range prims {
		if p.Layer == layer && p.Kind == kind {
			n++
		}
	}
	return n
}

func TestBoardLayerOrder(t *testing.T) {
	sel := fretboard.NewSelection()
	p := fretboard.Position{Fret: 3, String: 2}
	sel.Toggle(p)
	sel.ToggleRoot(p)

	prims := Board(fretboard.DefaultConfig(), note.Standard(), sel)
	for i := 1; i < len(prims); i++ {
		if prims[i].Layer < prims[i-1].Layer {
			t.Fatalf("primitive %d (%s, layer %d) drawn after layer %d", i, prims[i].Kind, prims[i].Layer, prims[i-1].Layer)
		}
	}
	last := prims[len(prims)-1]
	if last.Layer != LayerBorder || last.Kind != Rect {
		t.Errorf("last primitive = %s on layer %d, want the border", last.Kind, last.Layer)
	}
}

func TestBoardCounts(t *testing.T) {
	g := fretboard.DefaultConfig()
	prims := Board(g, note.Standard(), fretboard.NewSelection())

	if got := countKind(prims, LayerFrets, Line); got != g.Frets {
		t.Errorf("fret lines = %d, want %d", got, g.Frets)
	}
	if got := countKind(prims, LayerMarkers, FilledCircle); got != len(g.Markers()) {
		t.Errorf("markers = %d, want %d", got, len(g.Markers()))
	}
	if got := countKind(prims, LayerStrings, Line); got != g.Strings {
		t.Errorf("strings = %d, want %d", got, g.Strings)
	}
	if got := countKind(prims, LayerFretNumbers, Text); got != g.Frets-1 {
		t.Errorf("fret numbers = %d, want %d", got, g.Frets-1)
	}
	if got, want := countKind(prims, LayerNotes, Text), g.Strings*(g.Frets+1); got != want {
		t.Errorf("note labels = %d, want %d", got, want)
	}
	if got := countKind(prims, LayerNotes, FilledCircle); got != 0 {
		t.Errorf("highlight circles with nothing selected = %d", got)
	}
}

func TestBoardNutIsOpaque(t *testing.T) {
	prims := Board(fretboard.DefaultConfig(), note.Standard(), fretboard.NewSelection())
	for _, p := range prims {
		if p.Layer != LayerFrets {
			continue
		}
		if p.X1 == 60 && p.Color != Black {
			t.Errorf("nut color = %+v, want black", p.Color)
		}
		if p.X1 != 60 && p.Color.A == 255 {
			t.Errorf("fret at x=%d is opaque", p.X1)
		}
	}
}

func TestBoardSelectedNote(t *testing.T) {
	g := fretboard.DefaultConfig()
	sel := fretboard.NewSelection()
	p := fretboard.Position{Fret: 3, String: 0}
	sel.Toggle(p)
	x, y := g.NoteCenter(p)

	var circle, label *Primitive
	prims := Board(g, note.Standard(), sel)
	for i := range prims {
		q := &prims[i]
		if q.Layer != LayerNotes || q.X1 != x || q.Y1 != y {
			continue
		}
		switch q.Kind {
		case FilledCircle:
			circle = q
		case Text:
			label = q
		}
	}
	if circle == nil || label == nil {
		t.Fatal("selected note has no circle or label")
	}
	if label.Text != "G" || !label.Bold || label.Color != White {
		t.Errorf("label = %+v, want bold white G", *label)
	}
	if circle.Radius != selectedRadius {
		t.Errorf("circle radius = %d, want %d", circle.Radius, selectedRadius)
	}
}

func TestBoardPlainLabel(t *testing.T) {
	g := fretboard.DefaultConfig()
	x, y := g.NoteCenter(fretboard.Position{Fret: 0, String: 0})
	for _, q := range Board(g, note.Standard(), fretboard.NewSelection()) {
		if q.Layer == LayerNotes && q.X1 == x && q.Y1 == y {
			if q.Text != "E" || q.Bold || q.Color.A == 255 {
				t.Errorf("open low E label = %+v", q)
			}
			return
		}
	}
	t.Fatal("no label for the open low E")
}

func TestBoardRoots(t *testing.T) {
	g := fretboard.DefaultConfig()
	root := fretboard.Position{Fret: 5, String: 1}
	stale := fretboard.Position{Fret: 7, String: 3}
	sel := fakeSelection{
		selected: map[fretboard.Position]bool{root: true},
		roots:    map[fretboard.Position]bool{root: true, stale: true},
	}
	prims := Board(g, note.Standard(), sel)
	if got := countKind(prims, LayerRoots, Circle); got != 1 {
		t.Fatalf("root outlines = %d, want 1", got)
	}
	x, y := g.NoteCenter(root)
	for _, q := range prims {
		if q.Layer == LayerRoots && (q.X1 != x || q.Y1 != y || q.Radius != rootRadius) {
			t.Errorf("root outline = %+v, want centered on (%d, %d)", q, x, y)
		}
	}
}

func TestBoardReversedTuning(t *testing.T) {
	g := fretboard.DefaultConfig()
	x, y := g.NoteCenter(fretboard.Position{Fret: 0, String: 1})
	for _, q := range Board(g, note.Standard().Reversed(), fretboard.NewSelection()) {
		if q.Layer == LayerNotes && q.X1 == x && q.Y1 == y {
			if q.Text != "B" {
				t.Errorf("second string from the top = %q, want B", q.Text)
			}
			return
		}
	}
	t.Fatal("no label for string 1")
}
