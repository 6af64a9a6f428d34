package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/zap"

	"github.com/minikomi/guitarfret/internal/audio"
	"github.com/minikomi/guitarfret/internal/config"
	"github.com/minikomi/guitarfret/internal/logger"
	"github.com/minikomi/guitarfret/internal/view"
)

const winTitle = "Guitar Fretboard"

// idleWait bounds how long the loop sleeps when no note-off is pending.
const idleWait = 250 * time.Millisecond

func init() {
	// SDL wants every call on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	root := &cobra.Command{
		Use:           "guitarfret",
		Short:         "Interactive guitar fretboard",
		Long:          "Click fret positions to hear and highlight them. Right click marks a root. C clears, Q plays the selection.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cfg.BindFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List MIDI ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := audio.ListMIDIPorts(cmd.OutOrStdout()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	})
	return root
}

// fatal logs err and shows its user-facing message in a blocking dialog.
func fatal(log *zap.Logger, err error) error {
	log.Error("startup failed", zap.Error(err))
	msg := fmsg.GetIssue(err)
	if msg == "" {
		msg = err.Error()
	}
	if boxErr := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, winTitle, msg, nil); boxErr != nil {
		fmt.Fprintln(os.Stderr, msg)
	}
	return err
}

func newEngine(cfg config.Config, log *zap.Logger) (audio.Engine, error) {
	switch cfg.Engine {
	case audio.EngineMIDI:
		return audio.OpenMIDI(cfg.MIDIPort, log)
	default:
		path := audio.ResolveBankPath(cfg.BankPath)
		bank, err := audio.LoadBank(path, cfg.BankRoot())
		if err != nil {
			return nil, err
		}
		log.Info("sample bank loaded",
			zap.String("path", path),
			zap.Stringer("root", bank.Root),
			zap.Int("frames", bank.Len()))
		return audio.NewSampler(bank, log)
	}
}

func run(cfg config.Config) error {
	log, err := logger.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		return fatal(log, err)
	}
	tuning, err := cfg.TuningTable()
	if err != nil {
		return fatal(log, err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fatal(log, fault.Wrap(err, fmsg.WithDesc("init sdl", "Could not start the video system.")))
	}
	defer sdl.Quit()
	if err := ttf.Init(); err != nil {
		return fatal(log, fault.Wrap(err, fmsg.WithDesc("init ttf", "Could not start the font renderer.")))
	}
	defer ttf.Quit()

	engine, err := newEngine(cfg, log)
	if err != nil {
		return fatal(log, err)
	}
	trigger := audio.NewTrigger(engine, cfg.NoteLength, log)
	defer func() {
		if err := trigger.Close(); err != nil {
			log.Warn("closing audio engine failed", zap.Error(err))
		}
	}()

	board, err := view.New(cfg.Geometry(tuning), tuning, trigger, log)
	if err != nil {
		return fatal(log, err)
	}

	w, h := board.Size()
	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return fatal(log, fault.Wrap(err, fmsg.WithDesc("create window", "Could not open the window.")))
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fatal(log, fault.Wrap(err, fmsg.WithDesc("create renderer", "Could not create the renderer.")))
	}
	defer renderer.Destroy()

	cv, err := newCanvas(renderer)
	if err != nil {
		return fatal(log, err)
	}
	defer cv.Close()

	log.Info("fretboard ready",
		zap.String("engine", cfg.Engine),
		zap.Stringer("tuning", tuning),
		zap.Int("frets", cfg.Frets),
		zap.Int("width", w),
		zap.Int("height", h))

	in := &input{board: board, window: window, width: int32(w), height: int32(h), log: log}
	for !in.quit {
		if board.NeedsRedraw() {
			if err := cv.Draw(board.Frame()); err != nil {
				log.Warn("draw failed", zap.Error(err))
			}
		}

		if event := sdl.WaitEventTimeout(waitMillis(trigger)); event != nil {
			in.handle(event)
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				in.handle(event)
			}
		}
		trigger.Tick()
	}
	log.Info("quit")
	return nil
}

// waitMillis is how long the loop may block before the next note-off is due.
func waitMillis(t *audio.Trigger) int {
	wait := idleWait
	if at, ok := t.NextStop(); ok {
		wait = time.Until(at)
	}
	if wait < time.Millisecond {
		return 1
	}
	if wait > idleWait {
		wait = idleWait
	}
	return int(wait / time.Millisecond)
}
