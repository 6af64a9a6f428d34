package fretboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// MarkerFrets are the frets that carry an inlay dot.
var MarkerFrets = []int{3, 5, 7, 9, 12, 15, 17, 19}

// DoubleMarkerFret is drawn as two dots instead of one.
const DoubleMarkerFret = 12

var ErrInvalidGeometry = errors.New("invalid fretboard geometry")

// Config holds the board dimensions. All values are in frets, strings or
// pixels and must be positive.
type Config struct {
	Frets         int
	Strings       int
	FretSpacing   int
	StringSpacing int
}

func DefaultConfig() Config {
	return Config{
		Frets:         20,
		Strings:       6,
		FretSpacing:   60,
		StringSpacing: 45,
	}
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"frets", c.Frets},
		{"strings", c.Strings},
		{"fret spacing", c.FretSpacing},
		{"string spacing", c.StringSpacing},
	} {
		if f.v <= 0 {
			return fault.Wrap(fmt.Errorf("%w: %s = %d", ErrInvalidGeometry, f.name, f.v),
				ftag.With(ftag.InvalidArgument),
				fmsg.WithDesc("validate geometry", fmt.Sprintf("The number of %s must be positive.", f.name)))
		}
	}
	return nil
}

// MinSize is the smallest canvas that holds every fret and string.
func (c Config) MinSize() (w, h int) {
	return c.FretSpacing * (c.Frets + 1), c.StringSpacing * (c.Strings + 1)
}

func (c Config) FretX(fret int) int {
	return fret * c.FretSpacing
}

func (c Config) StringY(s int) int {
	return (s + 1) * c.StringSpacing
}

// NoteCenter is where the label of p is drawn: halfway into the fret cell,
// on the string.
func (c Config) NoteCenter(p Position) (x, y int) {
	return c.FretX(p.Fret) + c.FretSpacing/2, c.StringY(p.String)
}

func (c Config) Contains(p Position) bool {
	return p.Fret >= 0 && p.Fret <= c.Frets && p.String >= 0 && p.String < c.Strings
}

// HitTest maps a pixel to the nearest position. Clicks that land outside
// the board report false.
func (c Config) HitTest(x, y int) (Position, bool) {
	fs, ss := float64(c.FretSpacing), float64(c.StringSpacing)
	fret := math.Round((float64(x) - fs/2) / fs)
	str := math.Floor((float64(y) - ss/2) / ss)
	p := Position{Fret: int(fret), String: int(str)}
	if !c.Contains(p) {
		return Position{}, false
	}
	return p, true
}

// Marker is an inlay dot center.
type Marker struct {
	Fret int
	X, Y int
}

// Markers lists inlay dots on this board, skipping frets beyond the last.
func (c Config) Markers() []Marker {
	centerY := (c.StringY(0) + c.StringY(c.Strings-1)) / 2
	var out []Marker
	for _, fret := range MarkerFrets {
		if fret > c.Frets {
			continue
		}
		x, _ := c.NoteCenter(Position{Fret: fret})
		if fret == DoubleMarkerFret && c.Strings >= 4 {
			out = append(out,
				Marker{Fret: fret, X: x, Y: c.StringY(1)},
				Marker{Fret: fret, X: x, Y: c.StringY(c.Strings - 2)})
			continue
		}
		out = append(out, Marker{Fret: fret, X: x, Y: centerY})
	}
	return out
}
