package game

import (
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents the screen shown for one game mode
// (main menu, recipe selection, cooking, result).
type Scene interface {
	// HandleEvent receives one pointer event while the scene's mode is active.
	HandleEvent(ev utils.PointerEvent)

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
