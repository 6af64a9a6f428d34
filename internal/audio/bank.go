package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/minikomi/guitarfret/internal/note"
)

// resampleQuality is passed to beep.ResampleRatio.
const resampleQuality = 4

var executable = os.Executable

// ResolveBankPath finds a relative bank path next to the running binary
// first, then in the working directory. Absolute paths are returned as is.
func ResolveBankPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if exe, err := executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Bank is a single instrument sample held in memory, recorded at Root.
// Other pitches are produced by resampling it.
type Bank struct {
	Path string
	Root note.Pitch
	buf  *beep.Buffer
}

func LoadBank(path string, root note.Pitch) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := ftag.Internal
		if errors.Is(err, os.ErrNotExist) {
			kind = ftag.NotFound
		}
		return nil, fault.Wrap(err,
			ftag.With(kind),
			fmsg.WithDesc("open sample bank", fmt.Sprintf("The sample bank %q could not be opened.", path)))
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fault.Wrap(err,
			ftag.With(ftag.InvalidArgument),
			fmsg.WithDesc("decode sample bank", fmt.Sprintf("The sample bank %q is not a readable WAV file.", path)))
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fault.Wrap(err,
			ftag.With(ftag.InvalidArgument),
			fmsg.WithDesc("read sample bank", fmt.Sprintf("The sample bank %q is truncated or corrupt.", path)))
	}
	if buf.Len() == 0 {
		return nil, fault.Wrap(fmt.Errorf("%w: %s", ErrEmptyBank, path),
			ftag.With(ftag.InvalidArgument),
			fmsg.WithDesc("load sample bank", fmt.Sprintf("The sample bank %q is empty.", path)))
	}
	return &Bank{Path: path, Root: root, buf: buf}, nil
}

func (b *Bank) Format() beep.Format {
	return b.buf.Format()
}

// Len is the sample length in frames.
func (b *Bank) Len() int {
	return b.buf.Len()
}

// Voice returns a fresh streamer playing the sample shifted to p.
func (b *Bank) Voice(p note.Pitch) beep.Streamer {
	ratio := math.Pow(2, float64(p-b.Root)/12)
	return beep.ResampleRatio(resampleQuality, ratio, b.buf.Streamer(0, b.buf.Len()))
}
