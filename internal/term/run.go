// Package term runs the game inside a terminal through tcell.
package term

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"shooter/internal/game"
	"shooter/internal/logging"
)

// DefaultFrameInterval is ~60 FPS.
const DefaultFrameInterval = 16 * time.Millisecond

type Options struct {
	Game          game.Config
	Sound         game.SoundPlayer // nil for silence
	Logger        *log.Logger
	FrameInterval time.Duration
}

// Run plays on an initialized screen until the player quits or ctx is
// cancelled. Events are pumped on one goroutine; the session is only ever
// touched by the frame loop.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	logger := logging.OrDefault(opts.Logger)

	bus := game.NewEventBus()
	session := game.NewGameSession(opts.Game, bus)
	game.AttachLog(bus, session, logger)
	if opts.Sound != nil {
		game.AttachSound(bus, opts.Sound)
	}
	logger.Printf("session=%s started", session.ID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		screen.ChannelEvents(events, ctx.Done())
		return nil
	})

	g.Go(func() error {
		defer cancel()
		return loop(ctx, screen, session, events, opts.FrameInterval, logger)
	})

	err := g.Wait()
	logger.Printf("session=%s closed state=%s score=%d", session.ID, session.State, session.Score)
	return err
}

func loop(ctx context.Context, screen tcell.Screen, session *game.GameSession, events <-chan tcell.Event, interval time.Duration, logger *log.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	step := game.FixedStep{Rate: session.Cfg.TickRate}
	last := time.Now()
	Draw(screen, session)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handleEvent(screen, session, ev, logger) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			for n := step.Advance(dt); n > 0; n-- {
				if err := session.Tick(); err != nil {
					if errors.Is(err, game.ErrPlayerHit) {
						logger.Printf("session=%s ended: %v", session.ID, err)
					}
					break
				}
			}
			Draw(screen, session)
		}
	}
}

// handleEvent applies one terminal event. It returns false when the player
// asked to quit.
func handleEvent(screen tcell.Screen, session *game.GameSession, ev tcell.Event, logger *log.Logger) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ActionFor(ev) {
		case ActionQuit:
			session.Quit()
			return false
		case ActionLeft:
			session.NudgePlayer(-1)
		case ActionRight:
			session.NudgePlayer(1)
		case ActionFire:
			if session.State == game.StatePlaying {
				session.Fire()
			} else {
				session.Restart()
				logger.Printf("session=%s started", session.ID)
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
