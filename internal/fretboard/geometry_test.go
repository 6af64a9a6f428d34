package fretboard

import (
	"errors"
	"testing"

	"github.com/Southclaws/fault/ftag"
)

func TestMinSize(t *testing.T) {
	w, h := DefaultConfig().MinSize()
	if w != 1260 || h != 315 {
		t.Errorf("MinSize() = %dx%d, want 1260x315", w, h)
	}
}

func TestForwardMapping(t *testing.T) {
	c := DefaultConfig()
	if got := c.FretX(3); got != 180 {
		t.Errorf("FretX(3) = %d, want 180", got)
	}
	if got := c.StringY(0); got != 45 {
		t.Errorf("StringY(0) = %d, want 45", got)
	}
	if got := c.StringY(5); got != 270 {
		t.Errorf("StringY(5) = %d, want 270", got)
	}
	x, y := c.NoteCenter(Position{Fret: 1, String: 0})
	if x != 90 || y != 45 {
		t.Errorf("NoteCenter(1, 0) = (%d, %d), want (90, 45)", x, y)
	}
}

func TestHitTestScenario(t *testing.T) {
	c := DefaultConfig()
	p, ok := c.HitTest(90, 45)
	if !ok {
		t.Fatal("HitTest(90, 45) missed")
	}
	if p != (Position{Fret: 1, String: 0}) {
		t.Errorf("HitTest(90, 45) = %+v, want fret 1 string 0", p)
	}
}

func TestHitTestRoundTrip(t *testing.T) {
	c := DefaultConfig()
	for f := 0; f <= c.Frets; f++ {
		for s := 0; s < c.Strings; s++ {
			x := c.FretX(f) + c.FretSpacing/2
			y := c.StringY(s) + 1
			p, ok := c.HitTest(x, y)
			if !ok || p != (Position{Fret: f, String: s}) {
				t.Errorf("HitTest(%d, %d) = %+v, %v; want fret %d string %d", x, y, p, ok, f, s)
			}
		}
	}
}

func TestHitTestOutside(t *testing.T) {
	c := DefaultConfig()
	tests := []struct {
		name string
		x, y int
	}{
		{"above first string", 90, 10},
		{"below last string", 90, 300},
		{"left of open string", -40, 45},
		{"past last fret", 1300, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p, ok := c.HitTest(tt.x, tt.y); ok {
				t.Errorf("HitTest(%d, %d) = %+v, want miss", tt.x, tt.y, p)
			}
		})
	}
}

func TestHitTestRounding(t *testing.T) {
	c := DefaultConfig()
	// (x - 30) / 60 == 1.5 rounds away from zero.
	p, ok := c.HitTest(120, 45)
	if !ok || p.Fret != 2 {
		t.Errorf("HitTest(120, 45) = %+v, %v; want fret 2", p, ok)
	}
	p, ok = c.HitTest(119, 45)
	if !ok || p.Fret != 1 {
		t.Errorf("HitTest(119, 45) = %+v, %v; want fret 1", p, ok)
	}
	// A click just above the midpoint between strings 0 and 1 still
	// belongs to string 0.
	p, ok = c.HitTest(90, 67)
	if !ok || p.String != 0 {
		t.Errorf("HitTest(90, 67) = %+v, %v; want string 0", p, ok)
	}
	p, ok = c.HitTest(90, 68)
	if !ok || p.String != 1 {
		t.Errorf("HitTest(90, 68) = %+v, %v; want string 1", p, ok)
	}
}

func TestMarkers(t *testing.T) {
	c := DefaultConfig()
	ms := c.Markers()
	if len(ms) != len(MarkerFrets)+1 {
		t.Fatalf("len(Markers()) = %d, want %d", len(ms), len(MarkerFrets)+1)
	}
	center := (c.StringY(0) + c.StringY(5)) / 2
	var twelve []Marker
	for _, m := range ms {
		if m.Fret == DoubleMarkerFret {
			twelve = append(twelve, m)
			continue
		}
		if m.Y != center {
			t.Errorf("marker at fret %d: y = %d, want %d", m.Fret, m.Y, center)
		}
		if want := m.Fret*60 + 30; m.X != want {
			t.Errorf("marker at fret %d: x = %d, want %d", m.Fret, m.X, want)
		}
	}
	if len(twelve) != 2 {
		t.Fatalf("fret 12 markers = %d, want 2", len(twelve))
	}
	if twelve[0].Y != c.StringY(1) || twelve[1].Y != c.StringY(4) {
		t.Errorf("fret 12 markers at y = %d, %d", twelve[0].Y, twelve[1].Y)
	}
	if twelve[0].Y >= center || twelve[1].Y <= center {
		t.Error("fret 12 markers do not straddle the center")
	}
}

func TestMarkersShortBoard(t *testing.T) {
	c := DefaultConfig()
	c.Frets = 8
	for _, m := range c.Markers() {
		if m.Fret > 8 {
			t.Errorf("marker at fret %d on an 8-fret board", m.Fret)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	c := DefaultConfig()
	c.StringSpacing = 0
	err := c.Validate()
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("Validate() = %v, want ErrInvalidGeometry", err)
	}
	if ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("ftag.Get() = %v, want InvalidArgument", ftag.Get(err))
	}
}
