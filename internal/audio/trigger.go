package audio

import (
	"time"

	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/fretboard"
	"github.com/minikomi/guitarfret/internal/note"
	"github.com/minikomi/guitarfret/internal/schedule"
)

// DefaultNoteLength is how long a triggered note sounds before it is
// stopped.
const DefaultNoteLength = time.Second

// Trigger plays a note for a board position and stops it after a fixed
// length. Stops are queued and run by Tick, so the engine is only touched
// from the goroutine that calls Play and Tick.
type Trigger struct {
	engine  Engine
	length  time.Duration
	pending *schedule.Queue[fretboard.Position]
	owner   map[note.Pitch]fretboard.Position
	now     func() time.Time
	log     *zap.Logger
}

func NewTrigger(engine Engine, length time.Duration, log *zap.Logger) *Trigger {
	return &Trigger{
		engine:  engine,
		length:  length,
		pending: schedule.NewQueue[fretboard.Position](),
		owner:   map[note.Pitch]fretboard.Position{},
		now:     time.Now,
		log:     log,
	}
}

// Play sounds pitch for pos. If pos is still sounding from an earlier
// trigger its pending stop is cancelled and the note restarts.
func (t *Trigger) Play(pos fretboard.Position, pitch note.Pitch) {
	if t.pending.Cancel(pos) {
		t.log.Debug("retrigger", zap.Object("pos", pos), zap.Stringer("pitch", pitch))
		t.stop(pos, pitch)
	}
	if err := t.engine.Play(pitch); err != nil {
		t.log.Warn("note on failed", zap.Stringer("pitch", pitch), zap.Error(err))
		return
	}
	t.owner[pitch] = pos
	t.pending.Schedule(pos, t.now().Add(t.length), func() { t.stop(pos, pitch) })
	t.log.Debug("note on", zap.Object("pos", pos), zap.Stringer("pitch", pitch))
}

// stop silences pitch unless another position has taken it over since pos
// started it.
func (t *Trigger) stop(pos fretboard.Position, pitch note.Pitch) {
	if owner, ok := t.owner[pitch]; !ok || owner != pos {
		return
	}
	delete(t.owner, pitch)
	if err := t.engine.Stop(pitch); err != nil {
		t.log.Warn("note off failed", zap.Stringer("pitch", pitch), zap.Error(err))
		return
	}
	t.log.Debug("note off", zap.Object("pos", pos), zap.Stringer("pitch", pitch))
}

// Tick runs the stops that are due and returns how many ran.
func (t *Trigger) Tick() int {
	return t.pending.Flush(t.now())
}

// Sounding reports whether pos has a stop pending.
func (t *Trigger) Sounding(pos fretboard.Position) bool {
	return t.pending.Pending(pos)
}

// NextStop is when Tick next has work to do.
func (t *Trigger) NextStop() (time.Time, bool) {
	return t.pending.Next()
}

// Close stops every sounding note and closes the engine.
func (t *Trigger) Close() error {
	t.pending.Drain()
	return t.engine.Close()
}
