package audio

import (
	"fmt"
	"io"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gomidi/connect"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	driver "github.com/minikomi/rtmididrv"
	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/note"
)

const DefaultVelocity = 127

// midiWriter refuses to start a note that is running or stop one that is
// not, so the port never sees unbalanced note messages.
type midiWriter struct {
	wr        midi.Writer
	ch        channel.Channel
	chNum     uint8
	noteState [16][128]bool
}

func newMIDIWriter(dest io.Writer, options ...midiwriter.Option) *midiWriter {
	options = append(
		[]midiwriter.Option{
			midiwriter.NoRunningStatus(),
		}, options...)

	return &midiWriter{wr: midiwriter.New(dest, options...), ch: channel.Channel0}
}

func (w *midiWriter) NoteOn(key, velocity uint8) error {
	return w.Write(w.ch.NoteOn(key, velocity))
}

func (w *midiWriter) NoteOff(key uint8) error {
	return w.Write(w.ch.NoteOff(key))
}

func (w *midiWriter) Running(key uint8) bool {
	return w.noteState[w.chNum][key]
}

func (w *midiWriter) Write(msg midi.Message) error {
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

// MIDI sends notes to an external synthesizer on channel 1.
type MIDI struct {
	w        *midiWriter
	velocity uint8
	out      connect.Out
	drv      connect.Driver
	log      *zap.Logger
}

// OpenMIDI opens output port number port through rtmidi.
func OpenMIDI(port int, log *zap.Logger) (*MIDI, error) {
	drv, err := driver.New()
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("open midi driver", "The MIDI system could not be opened."))
	}
	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fault.Wrap(err, fmsg.WithDesc("list midi outputs", "The MIDI outputs could not be listed."))
	}
	if port < 0 || port >= len(outs) {
		drv.Close()
		return nil, fault.Wrap(fmt.Errorf("%w: %d of %d", ErrNoMIDIPort, port, len(outs)),
			ftag.With(ftag.NotFound),
			fmsg.WithDesc("select midi output", fmt.Sprintf("MIDI output %d does not exist.", port)))
	}
	out := outs[port]
	if err := out.Open(); err != nil {
		drv.Close()
		return nil, fault.Wrap(err, fmsg.WithDesc("open midi output", fmt.Sprintf("MIDI output %q could not be opened.", out.String())))
	}
	log.Info("midi output ready", zap.Int("port", out.Number()), zap.String("name", out.String()))

	m := newMIDI(&outWriter{out}, DefaultVelocity, log)
	m.out = out
	m.drv = drv
	return m, nil
}

func newMIDI(dest io.Writer, velocity uint8, log *zap.Logger) *MIDI {
	return &MIDI{w: newMIDIWriter(dest), velocity: velocity, log: log}
}

func midiKey(p note.Pitch) (uint8, error) {
	if p < 0 || p > 127 {
		return 0, fmt.Errorf("%w: %d", ErrPitchRange, p)
	}
	return uint8(p), nil
}

// Play starts p, restarting it if it is already running.
func (m *MIDI) Play(p note.Pitch) error {
	key, err := midiKey(p)
	if err != nil {
		return err
	}
	if m.w.Running(key) {
		if err := m.w.NoteOff(key); err != nil {
			return err
		}
	}
	return m.w.NoteOn(key, m.velocity)
}

func (m *MIDI) Stop(p note.Pitch) error {
	key, err := midiKey(p)
	if err != nil {
		return err
	}
	if !m.w.Running(key) {
		return nil
	}
	return m.w.NoteOff(key)
}

// Close releases every running note, then the port and driver.
func (m *MIDI) Close() error {
	for key := 0; key < 128; key++ {
		if m.w.Running(uint8(key)) {
			if err := m.w.NoteOff(uint8(key)); err != nil {
				m.log.Warn("note off on close failed", zap.Int("key", key), zap.Error(err))
			}
		}
	}
	if m.out != nil {
		if err := m.out.Close(); err != nil {
			m.log.Warn("closing midi output failed", zap.Error(err))
		}
	}
	if m.drv != nil {
		return m.drv.Close()
	}
	return nil
}

// ListMIDIPorts prints every MIDI in and out port.
func ListMIDIPorts(w io.Writer) error {
	drv, err := driver.New()
	if err != nil {
		return fault.Wrap(err, fmsg.With("open midi driver"))
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return fault.Wrap(err, fmsg.With("list midi inputs"))
	}
	outs, err := drv.Outs()
	if err != nil {
		return fault.Wrap(err, fmsg.With("list midi outputs"))
	}

	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ins {
		printPort(w, port)
	}
	fmt.Fprintf(w, "\nMIDI OUT Ports\n")
	for _, port := range outs {
		printPort(w, port)
	}
	return nil
}

func printPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}
