package scenes

import (
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RecipeSelectionScene 菜谱选择：每个菜谱一个按钮
type RecipeSelectionScene struct {
	env *Env
}

// NewRecipeSelectionScene 创建菜谱选择场景
func NewRecipeSelectionScene(env *Env) *RecipeSelectionScene {
	log.Printf("[RecipeSelectionScene] Created with %d recipes", len(env.Recipes))
	return &RecipeSelectionScene{env: env}
}

// recipeAt 返回点击位置对应的菜谱下标，未命中返回 -1
func (s *RecipeSelectionScene) recipeAt(ev utils.PointerEvent) int {
	for i := range s.env.Recipes {
		if isClick(ev, config.RecipeButtonRect(i)) {
			return i
		}
	}
	return -1
}

// HandleEvent 点击菜谱按钮开始烹饪
func (s *RecipeSelectionScene) HandleEvent(ev utils.PointerEvent) {
	if i := s.recipeAt(ev); i >= 0 {
		s.env.Controller.Start(s.env.Recipes[i])
	}
}

// Update 菜谱选择没有逐帧逻辑
func (s *RecipeSelectionScene) Update(deltaTime float64) {}

// Draw 绘制标题、菜谱按钮和分数
func (s *RecipeSelectionScene) Draw(screen *ebiten.Image) {
	s.env.Backgrounds.Draw(screen, BackgroundKitchen)

	utils.DrawTextCenteredX(screen, "వంటకం ఎంచుకోండి - Select Recipe", s.env.Fonts.Title,
		config.ScreenWidth/2, config.SelectionTitleY, config.ColorBlack)

	for i, recipe := range s.env.Recipes {
		drawButton(screen, config.RecipeButtonRect(i), recipe.Name, s.env.Fonts.Title, config.ColorOrange, config.ColorBlack)
	}

	drawScore(screen, s.env.Fonts.Title, s.env.State.Score())
}
