package note

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Tuning is the ordered set of open-string pitches. String 0 is Open[0].
type Tuning struct {
	Name string
	open []Pitch
}

var ErrUnknownTuning = errors.New("unknown tuning")

// tunings is the fixed set the application ships with, lowest string first.
var tunings = map[string]Tuning{
	"standard": mustTuning("standard", "E2 A2 D3 G3 B3 E4"),
	"drop-d":   mustTuning("drop-d", "D2 A2 D3 G3 B3 E4"),
	"open-g":   mustTuning("open-g", "D2 G2 D3 G3 B3 D4"),
	"dadgad":   mustTuning("dadgad", "D2 A2 D3 G3 A3 D4"),
}

func mustTuning(name, pitches string) Tuning {
	fields := strings.Fields(pitches)
	open := make([]Pitch, len(fields))
	for i, f := range fields {
		open[i] = MustParsePitch(f)
	}
	return Tuning{Name: name, open: open}
}

// Standard is E A D G B E, low to high.
func Standard() Tuning {
	return tunings["standard"]
}

func LookupTuning(name string) (Tuning, error) {
	t, ok := tunings[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownTuning, name, strings.Join(TuningNames(), ", "))
	}
	return t, nil
}

func TuningNames() []string {
	out := make([]string, 0, len(tunings))
	for name := range tunings {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t Tuning) Strings() int {
	return len(t.open)
}

// Open returns the open pitch of string s.
func (t Tuning) Open(s int) Pitch {
	return t.open[s]
}

// Reversed returns the tuning with the highest string first, the way
// tablature is drawn.
func (t Tuning) Reversed() Tuning {
	open := make([]Pitch, len(t.open))
	for i, p := range t.open {
		open[len(open)-1-i] = p
	}
	return Tuning{Name: t.Name, open: open}
}

// Resolve maps a string and fret to its pitch class. Callers range-check
// both indices.
func (t Tuning) Resolve(s, fret int) PitchClass {
	return PitchClass((int(t.open[s].Class()) + fret) % 12)
}

// AbsolutePitch is the sounding pitch of string s stopped at fret.
func (t Tuning) AbsolutePitch(s, fret int) Pitch {
	return t.open[s] + Pitch(fret)
}

func (t Tuning) String() string {
	parts := make([]string, len(t.open))
	for i, p := range t.open {
		parts[i] = p.String()
	}
	return t.Name + " (" + strings.Join(parts, " ") + ")"
}
