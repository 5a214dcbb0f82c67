package engine

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"flappy/pkg/game"
)

// fakeKeys is a KeySource driven by the test
type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if f[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestInputHandlerEdgeDetection(t *testing.T) {
	keys := fakeKeys{}
	ih := NewInputHandler(keys, nil)

	keys[glfw.KeySpace] = true
	ih.Update()
	assert.True(t, ih.IsKeyPressed(glfw.KeySpace))
	assert.True(t, ih.IsKeyDown(glfw.KeySpace))
	assert.Equal(t, []game.Command{game.CommandFlap}, ih.Commands())

	// held keys do not repeat
	ih.Update()
	assert.False(t, ih.IsKeyPressed(glfw.KeySpace))
	assert.Empty(t, ih.Commands())

	keys[glfw.KeySpace] = false
	ih.Update()
	assert.True(t, ih.IsKeyReleased(glfw.KeySpace))
	assert.False(t, ih.IsKeyDown(glfw.KeySpace))
}

func TestInputHandlerCommandsInStableOrder(t *testing.T) {
	keys := fakeKeys{
		glfw.KeyEscape: true,
		glfw.KeyEnter:  true,
		glfw.KeyUp:     true,
		glfw.KeySpace:  true,
		glfw.KeyLeft:   true,
	}
	ih := NewInputHandler(keys, nil)
	ih.Update()

	assert.Equal(t, []game.Command{
		game.CommandFlap,
		game.CommandLeft,
		game.CommandConfirm,
		game.CommandQuit,
	}, ih.Commands())
}

func TestInputHandlerCustomBindings(t *testing.T) {
	keys := fakeKeys{glfw.KeyW: true, glfw.KeySpace: true}
	ih := NewInputHandler(keys, map[glfw.Key]game.Command{glfw.KeyW: game.CommandFlap})
	ih.Update()

	assert.Equal(t, []game.Command{game.CommandFlap}, ih.Commands())
	assert.False(t, ih.IsKeyDown(glfw.KeySpace), "unbound keys are not sampled")
}
