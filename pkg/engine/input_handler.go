package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"flappy/pkg/game"
)

// KeySource reports the current state of a key; *glfw.Window satisfies it
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// DefaultKeyBindings maps keys to game commands
var DefaultKeyBindings = map[glfw.Key]game.Command{
	glfw.KeySpace:   game.CommandFlap,
	glfw.KeyUp:      game.CommandFlap,
	glfw.KeyLeft:    game.CommandLeft,
	glfw.KeyRight:   game.CommandRight,
	glfw.KeyEnter:   game.CommandConfirm,
	glfw.KeyKPEnter: game.CommandConfirm,
	glfw.KeyEscape:  game.CommandQuit,
}

// InputHandler polls bound keys once per frame and turns fresh presses into
// commands. Holding a key produces a single command.
type InputHandler struct {
	source       KeySource
	bindings     map[glfw.Key]game.Command
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(source KeySource, bindings map[glfw.Key]game.Command) *InputHandler {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &InputHandler{
		source:       source,
		bindings:     bindings,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
	}
}

// Update samples every bound key
func (ih *InputHandler) Update() {
	ih.previousKeys, ih.currentKeys = ih.currentKeys, ih.previousKeys
	for key := range ih.bindings {
		ih.currentKeys[key] = ih.source.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// IsKeyReleased reports whether the key went up this frame
func (ih *InputHandler) IsKeyReleased(key glfw.Key) bool {
	return !ih.currentKeys[key] && ih.previousKeys[key]
}

// Commands returns the commands for keys pressed this frame, in a stable
// order
func (ih *InputHandler) Commands() []game.Command {
	var pressed [game.CommandQuit + 1]bool
	for key, cmd := range ih.bindings {
		if ih.IsKeyPressed(key) {
			pressed[cmd] = true
		}
	}

	var commands []game.Command
	for cmd, ok := range pressed {
		if ok {
			commands = append(commands, game.Command(cmd))
		}
	}
	return commands
}
