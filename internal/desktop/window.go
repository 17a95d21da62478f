package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/game"
)

const windowTitle = "Shooter"

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(game.WindowWidth, game.WindowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// title renders the HUD line shown in the window title bar.
func title(s *game.GameSession) string {
	switch s.State {
	case game.StateWon:
		return fmt.Sprintf("%s | Score: %d | Wave cleared! SPACE to play again", windowTitle, s.Score)
	case game.StateLost:
		return fmt.Sprintf("%s | Score: %d | You were hit. SPACE to play again", windowTitle, s.Score)
	}
	return fmt.Sprintf("%s | Score: %d | Enemies: %d", windowTitle, s.Score, len(s.Enemies))
}
