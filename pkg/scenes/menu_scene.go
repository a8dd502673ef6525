package scenes

import (
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene 主菜单：标题和开始按钮
type MenuScene struct {
	env *Env
}

// NewMenuScene creates a new main menu scene.
//
// Parameters:
//   - env: Shared scene dependencies (state, resources, fonts).
//
// Returns:
//   - A pointer to the newly created MenuScene.
func NewMenuScene(env *Env) *MenuScene {
	log.Printf("[MenuScene] Created")
	return &MenuScene{env: env}
}

// HandleEvent 点击开始按钮进入菜谱选择
func (s *MenuScene) HandleEvent(ev utils.PointerEvent) {
	if isClick(ev, config.StartButtonRect) {
		log.Printf("[MenuScene] Start clicked")
		s.env.State.Set(game.ModeRecipeSelection)
	}
}

// Update 主菜单没有逐帧逻辑
func (s *MenuScene) Update(deltaTime float64) {}

// Draw renders the menu.
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.env.Backgrounds.Draw(screen, BackgroundKitchen)

	utils.DrawTextCenteredX(screen, config.WindowTitle, s.env.Fonts.Title,
		config.ScreenWidth/2, config.MenuTitleY, config.ColorBlack)
	drawButton(screen, config.StartButtonRect, "Start", s.env.Fonts.Title, config.ColorOrange, config.ColorBlack)
}
