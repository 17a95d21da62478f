// Package desktop runs the game in a GLFW window with an OpenGL renderer
// and oto audio.
package desktop

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/audio"
	"shooter/internal/audio/otoplayer"
	"shooter/internal/game"
	"shooter/internal/logging"
)

type Options struct {
	Game   game.Config
	Audio  audio.Config
	Logger *log.Logger
}

// Run opens the window and plays until it is closed or Escape is pressed.
func Run(opts Options) error {
	runtime.LockOSThread()
	logger := logging.OrDefault(opts.Logger)

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Printf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := game.NewEventBus()
	session := game.NewGameSession(opts.Game, bus)
	game.AttachLog(bus, session, logger)

	if opts.Audio.Enabled {
		if p, err := otoplayer.New(opts.Audio); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			defer p.Close()
			game.AttachSound(bus, p)
		}
	}

	logger.Printf("session=%s started", session.ID)
	input := NewInput()
	step := game.FixedStep{Rate: opts.Game.TickRate}
	shownTitle := ""

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			session.Quit()
			window.SetShouldClose(true)
			continue
		}

		switch session.State {
		case game.StatePlaying:
			if input.JustPressed(window, glfw.KeySpace) {
				session.Fire()
			}
			dir := HeldDirection(window)
			for n := step.Advance(dt); n > 0; n-- {
				session.MovePlayer(dir)
				if err := session.Tick(); err != nil {
					if errors.Is(err, game.ErrPlayerHit) {
						logger.Printf("session=%s ended: %v", session.ID, err)
					}
					break
				}
			}

		case game.StateWon, game.StateLost:
			step.Advance(dt)
			if input.JustPressed(window, glfw.KeySpace) {
				session.Restart()
				logger.Printf("session=%s started", session.ID)
			}
		}

		if t := title(session); t != shownTitle {
			window.SetTitle(t)
			shownTitle = t
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.DrawSession(session, fbW, fbH)
		window.SwapBuffers()
	}

	logger.Printf("session=%s closed state=%s score=%d", session.ID, session.State, session.Score)
	return nil
}
