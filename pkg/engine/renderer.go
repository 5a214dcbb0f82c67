package engine

import (
	"flappy/pkg/scene"
)

// Renderer defines the interface for all renderers
type Renderer interface {
	// Render draws one frame of the scene
	Render(sd *scene.SceneData) error

	// UpdateResolution updates the rendering resolution
	UpdateResolution(width, height int)

	// Close releases resources
	Close()
}

var (
	_ Renderer = (*OpenGLRenderer)(nil)
	_ Renderer = (*scene.ASCIIRenderer)(nil)
)
