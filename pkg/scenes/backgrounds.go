package scenes

import (
	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 背景ID
const (
	BackgroundKitchen     = "kitchen"
	BackgroundTraditional = "traditional_kitchen"
	BackgroundModern      = "modern_kitchen"
)

// StageBackgroundID 返回某阶段使用的背景
// 切菜固定在普通厨房，搅拌固定在传统厨房，其余阶段使用菜谱自己的背景
func StageBackgroundID(stage cooking.Stage, recipeBackground string) string {
	switch stage {
	case cooking.StageChop:
		return BackgroundKitchen
	case cooking.StageMix:
		return BackgroundTraditional
	}
	if recipeBackground == "" {
		return BackgroundKitchen
	}
	return recipeBackground
}

// Backgrounds 按背景ID提供全屏背景图
// 图片缺失时使用配置中的占位色，结果由 ResourceManager 缓存
type Backgrounds struct {
	resources *game.ResourceManager
	book      *config.RecipeBook
}

// NewBackgrounds 创建背景提供者
func NewBackgrounds(rm *game.ResourceManager, book *config.RecipeBook) *Backgrounds {
	return &Backgrounds{resources: rm, book: book}
}

// Image 返回指定背景的全屏图片，未知ID使用默认厨房占位色
func (b *Backgrounds) Image(id string) *ebiten.Image {
	bg, ok := b.book.FindBackground(id)
	if !ok {
		return b.resources.LoadImageOrPlaceholder("", config.ScreenWidth, config.ScreenHeight, config.ColorDefaultBackground)
	}
	return b.resources.LoadImageOrPlaceholder(bg.Image, config.ScreenWidth, config.ScreenHeight, bg.PlaceholderColor())
}

// Draw 将背景铺满屏幕
func (b *Backgrounds) Draw(screen *ebiten.Image, id string) {
	screen.DrawImage(b.Image(id), nil)
}
