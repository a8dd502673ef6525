package game

import (
	"log"

	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager routes input, updates and drawing to the scene registered
// for the current GameState mode. Only one scene is active at any time.
type SceneManager struct {
	state  *GameState
	scenes map[Mode]Scene
}

// NewSceneManager creates a scene manager bound to the given game state.
// Scenes are attached with Register; modes without a scene are ignored.
func NewSceneManager(state *GameState) *SceneManager {
	return &SceneManager{
		state:  state,
		scenes: make(map[Mode]Scene),
	}
}

// Register sets the scene shown while the game is in mode.
func (sm *SceneManager) Register(mode Mode, scene Scene) {
	sm.scenes[mode] = scene
	log.Printf("[SceneManager] Registered scene for mode %s", mode)
}

// GetCurrentScene 返回当前模式对应的场景
//
// 返回：
//   - Scene: 当前场景，如果当前模式没有注册场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.scenes[sm.state.Mode()]
}

// HandleEvents dispatches events in order.
// The target scene is looked up per event, so an event that changes the mode
// sends the following events to the new scene.
func (sm *SceneManager) HandleEvents(events []utils.PointerEvent) {
	for _, ev := range events {
		if scene := sm.GetCurrentScene(); scene != nil {
			scene.HandleEvent(ev)
		}
	}
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Draw(screen)
	}
}
