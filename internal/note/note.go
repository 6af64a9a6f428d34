package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PitchClass is one of the twelve chromatic note names, C = 0.
type PitchClass uint8

const (
	C = PitchClass(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (c PitchClass) String() string {
	return names[c%12]
}

// Pitch is an absolute MIDI note number. 60 is C4.
type Pitch int

func (p Pitch) Class() PitchClass {
	return PitchClass(((int(p) % 12) + 12) % 12)
}

func (p Pitch) Octave() int {
	if p < 0 {
		return (int(p)-11)/12 - 1
	}
	return int(p)/12 - 1
}

func (p Pitch) String() string {
	return p.Class().String() + strconv.Itoa(p.Octave())
}

var ErrInvalidPitch = errors.New("invalid pitch name")

var letters = map[byte]PitchClass{'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B}

// ParsePitch reads scientific pitch notation such as "E2", "F#3" or "Bb4".
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	class, ok := letters[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	rest := s[1:]
	offset := 0
	switch rest[0] {
	case '#':
		offset = 1
		rest = rest[1:]
	case 'b':
		offset = -1
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	return Pitch((octave+1)*12 + int(class) + offset), nil
}

func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}
