// Package scenes 实现四种游戏模式对应的场景以及帮助面板
//
// 场景只负责绘制和输入分发，流程状态全部由 cooking.Controller 和
// game.GameState 持有，场景之间不互相引用。
package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene = (*MenuScene)(nil)
	_ Scene = (*RecipeSelectionScene)(nil)
	_ Scene = (*CookingScene)(nil)
	_ Scene = (*ResultScene)(nil)
)

// FontTelugu 泰卢固文字体的资源ID（data/resources.yaml）
const FontTelugu = "FONT_TELUGU"

// Fonts 场景共用的字体
type Fonts struct {
	Title text.Face // 标题、按钮
	Small text.Face // 说明文字、食材名称、帮助文本
}

// LoadFonts 加载泰卢固文字体，缺失时使用内置字体
func LoadFonts(rm *game.ResourceManager) Fonts {
	return Fonts{
		Title: rm.LoadFontOrDefault(FontTelugu, config.TitleFontSize),
		Small: rm.LoadFontOrDefault(FontTelugu, config.SmallFontSize),
	}
}

// Env 场景共享的依赖，由 app 包组装
type Env struct {
	State       *game.GameState
	Resources   *game.ResourceManager
	Book        *config.RecipeBook
	Recipes     []cooking.Recipe
	Controller  *cooking.Controller
	Backgrounds *Backgrounds
	Fonts       Fonts
}

// isClick 判断事件是否为落在 r 内的按下事件
func isClick(ev utils.PointerEvent, r image.Rectangle) bool {
	return ev.Type == utils.PointerDown && ev.Pos().In(r)
}

// drawButton 绘制纯色按钮，文字居中
func drawButton(screen *ebiten.Image, r image.Rectangle, label string, face text.Face, fill, textColor color.Color) {
	utils.FillRect(screen, r, fill)
	utils.DrawCenteredText(screen, label, face, r, textColor)
}

// drawScore 在右上角绘制分数
func drawScore(screen *ebiten.Image, face text.Face, score int) {
	utils.DrawTextRightAligned(screen, fmt.Sprintf("స్కోరు - Score: %d", score), face,
		float64(config.ScreenWidth-config.ScoreMarginRight), config.ScoreY, config.ColorBlack)
}
