// Package config holds the command-line configuration and derives the
// board, tuning and audio settings from it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/spf13/pflag"

	"github.com/minikomi/guitarfret/internal/audio"
	"github.com/minikomi/guitarfret/internal/fretboard"
	"github.com/minikomi/guitarfret/internal/note"
)

type Config struct {
	Engine     string
	BankPath   string
	BankPitch  string
	MIDIPort   int
	NoteLength time.Duration

	Tuning   string
	TabOrder bool

	Frets         int
	FretSpacing   int
	StringSpacing int

	Debug bool
}

func Default() Config {
	g := fretboard.DefaultConfig()
	return Config{
		Engine:        audio.EngineSampler,
		BankPath:      "resources/nylon.wav",
		BankPitch:     "E3",
		MIDIPort:      0,
		NoteLength:    audio.DefaultNoteLength,
		Tuning:        "standard",
		Frets:         g.Frets,
		FretSpacing:   g.FretSpacing,
		StringSpacing: g.StringSpacing,
	}
}

// BindFlags registers every option on fs with c's current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "audio engine: sampler or midi")
	fs.StringVar(&c.BankPath, "bank", c.BankPath, "WAV sample bank, relative paths are looked up next to the binary first")
	fs.StringVar(&c.BankPitch, "bank-pitch", c.BankPitch, "pitch the sample bank was recorded at")
	fs.IntVar(&c.MIDIPort, "midi-port", c.MIDIPort, "MIDI output port number for the midi engine (see list)")
	fs.DurationVar(&c.NoteLength, "note-duration", c.NoteLength, "how long a triggered note sounds")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "tuning: "+strings.Join(note.TuningNames(), ", "))
	fs.BoolVar(&c.TabOrder, "tab-order", c.TabOrder, "draw the highest string on top")
	fs.IntVar(&c.Frets, "frets", c.Frets, "number of frets")
	fs.IntVar(&c.FretSpacing, "fret-spacing", c.FretSpacing, "fret spacing in pixels")
	fs.IntVar(&c.StringSpacing, "string-spacing", c.StringSpacing, "string spacing in pixels")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

func invalid(err error, desc string) error {
	return fault.Wrap(err, ftag.With(ftag.InvalidArgument), fmsg.WithDesc("validate config", desc))
}

func (c Config) Validate() error {
	switch c.Engine {
	case audio.EngineSampler, audio.EngineMIDI:
	default:
		return invalid(fmt.Errorf("%w: %q", audio.ErrUnknownEngine, c.Engine),
			fmt.Sprintf("Unknown audio engine %q.", c.Engine))
	}
	if c.NoteLength <= 0 {
		return invalid(fmt.Errorf("note length must be positive, got %s", c.NoteLength),
			"The note length must be positive.")
	}
	if c.Engine == audio.EngineSampler {
		if c.BankPath == "" {
			return invalid(fmt.Errorf("empty sample bank path"), "No sample bank configured.")
		}
		if _, err := note.ParsePitch(c.BankPitch); err != nil {
			return invalid(err, fmt.Sprintf("Bad sample bank pitch %q.", c.BankPitch))
		}
	}
	if c.Engine == audio.EngineMIDI && c.MIDIPort < 0 {
		return invalid(fmt.Errorf("%w: %d", audio.ErrNoMIDIPort, c.MIDIPort), "The MIDI port number must not be negative.")
	}
	t, err := c.TuningTable()
	if err != nil {
		return err
	}
	return c.Geometry(t).Validate()
}

// TuningTable looks up the configured tuning, reversed for tab order.
func (c Config) TuningTable() (note.Tuning, error) {
	t, err := note.LookupTuning(c.Tuning)
	if err != nil {
		return note.Tuning{}, invalid(err, fmt.Sprintf("Unknown tuning %q.", c.Tuning))
	}
	if c.TabOrder {
		t = t.Reversed()
	}
	return t, nil
}

// Geometry sizes the board for t.
func (c Config) Geometry(t note.Tuning) fretboard.Config {
	return fretboard.Config{
		Frets:         c.Frets,
		Strings:       t.Strings(),
		FretSpacing:   c.FretSpacing,
		StringSpacing: c.StringSpacing,
	}
}

func (c Config) BankRoot() note.Pitch {
	return note.MustParsePitch(c.BankPitch)
}
