package audio

import (
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/note"
)

// speakerLatency is the speaker buffer length.
const speakerLatency = time.Second / 20

// Sampler plays notes from a Bank through the beep speaker. Each pitch has
// at most one voice; playing a sounding pitch restarts it.
type Sampler struct {
	bank   *Bank
	voices map[note.Pitch]*beep.Ctrl
	log    *zap.Logger

	play   func(...beep.Streamer)
	lock   func()
	unlock func()
	close  func()
}

// NewSampler opens the default audio device at the bank's sample rate.
func NewSampler(bank *Bank, log *zap.Logger) (*Sampler, error) {
	sr := bank.Format().SampleRate
	if err := speaker.Init(sr, sr.N(speakerLatency)); err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("init speaker", "The audio device could not be opened."))
	}
	log.Info("sampler ready",
		zap.String("bank", bank.Path),
		zap.Stringer("root", bank.Root),
		zap.Int("rate", int(sr)),
		zap.Int("frames", bank.Len()))
	return newSampler(bank, log, speaker.Play, speaker.Lock, speaker.Unlock, speaker.Close), nil
}

func newSampler(bank *Bank, log *zap.Logger, play func(...beep.Streamer), lock, unlock, closeFn func()) *Sampler {
	return &Sampler{
		bank:   bank,
		voices: map[note.Pitch]*beep.Ctrl{},
		log:    log,
		play:   play,
		lock:   lock,
		unlock: unlock,
		close:  closeFn,
	}
}

func (s *Sampler) Play(p note.Pitch) error {
	ctrl := &beep.Ctrl{Streamer: s.bank.Voice(p)}
	s.lock()
	if old, ok := s.voices[p]; ok {
		old.Streamer = nil
	}
	s.voices[p] = ctrl
	s.unlock()
	s.play(ctrl)
	return nil
}

// Stop silences the voice for p. A nil streamer makes the mixer drop it.
func (s *Sampler) Stop(p note.Pitch) error {
	s.lock()
	defer s.unlock()
	if ctrl, ok := s.voices[p]; ok {
		ctrl.Streamer = nil
		delete(s.voices, p)
	}
	return nil
}

func (s *Sampler) Close() error {
	s.lock()
	for p, ctrl := range s.voices {
		ctrl.Streamer = nil
		delete(s.voices, p)
	}
	s.unlock()
	s.close()
	return nil
}
