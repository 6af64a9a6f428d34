package fretboard

import "go.uber.org/zap/zapcore"

// Position is a spot on the board. Fret 0 is the open string.
type Position struct {
	Fret   int
	String int
}

func (p Position) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("fret", p.Fret)
	enc.AddInt("string", p.String)
	return nil
}

// Less orders positions by fret, then string.
func (p Position) Less(o Position) bool {
	if p.Fret != o.Fret {
		return p.Fret < o.Fret
	}
	return p.String < o.String
}
