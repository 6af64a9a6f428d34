// Package audio turns resolved pitches into sound. An Engine starts and
// stops notes; a Trigger adds the fixed note length on top of it.
package audio

import (
	"errors"

	"github.com/minikomi/guitarfret/internal/note"
)

// Engine plays notes by pitch. Stop on a pitch that is not sounding is a
// no-op.
type Engine interface {
	Play(p note.Pitch) error
	Stop(p note.Pitch) error
	Close() error
}

var (
	ErrEmptyBank     = errors.New("sample bank holds no audio")
	ErrNoMIDIPort    = errors.New("midi output port not available")
	ErrPitchRange    = errors.New("pitch outside the midi range")
	ErrUnknownEngine = errors.New("unknown audio engine")
)

const (
	EngineSampler = "sampler"
	EngineMIDI    = "midi"
)
