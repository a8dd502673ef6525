package config

import "image"

// 布局配置常量
// 本文件定义了所有场景的布局参数，坐标均为 800x700 逻辑画布上的屏幕坐标

// Screen Configuration (画布配置)
const (
	// ScreenWidth 逻辑画布宽度
	ScreenWidth = 800

	// ScreenHeight 逻辑画布高度
	ScreenHeight = 700

	// TicksPerSecond 固定逻辑帧率
	// 所有计时器都按帧计数，而不是按墙钟时间
	TicksPerSecond = 60

	// WindowTitle 窗口标题
	WindowTitle = "తెలుగు వంటకాలు - Telugu Cooking Game"
)

// Menu & Navigation (菜单与导航按钮)
var (
	// StartButtonRect 主菜单开始按钮
	StartButtonRect = image.Rect(300, 400, 500, 450)

	// NextButtonRect 烹饪阶段的"下一步"按钮
	NextButtonRect = image.Rect(600, 500, 750, 550)

	// HelpButtonRect 帮助按钮（所有模式下都可见）
	HelpButtonRect = image.Rect(700, 550, 780, 580)

	// CloseHelpRect 帮助面板右上角的关闭按钮
	CloseHelpRect = image.Rect(ScreenWidth-30, 20, ScreenWidth-10, 40)

	// HelpPanelRect 帮助面板
	HelpPanelRect = image.Rect(100, 100, ScreenWidth-100, ScreenHeight-100)
)

// Recipe Selection (菜谱选择列表)
const (
	RecipeButtonX       = 200
	RecipeButtonStartY  = 150
	RecipeButtonWidth   = 400
	RecipeButtonHeight  = 80
	RecipeButtonSpacing = 100
)

// RecipeButtonRect 返回第 index 个菜谱按钮的矩形
func RecipeButtonRect(index int) image.Rectangle {
	y := RecipeButtonStartY + index*RecipeButtonSpacing
	return image.Rect(RecipeButtonX, y, RecipeButtonX+RecipeButtonWidth, y+RecipeButtonHeight)
}

// Ingredient Grid (食材网格)
const (
	IngredientGridStartX  = 100
	IngredientGridStartY  = 150
	IngredientGridColumns = 5
	IngredientCellSpacing = 100
	IngredientIconSize    = 64
	IngredientLabelOffset = 70 // 名称标签相对图标顶部的偏移
)

// IngredientIconRect 返回第 index 个食材图标的矩形
// 每行 5 个，行距与列距均为 100 像素
func IngredientIconRect(index int) image.Rectangle {
	x := IngredientGridStartX + (index%IngredientGridColumns)*IngredientCellSpacing
	y := IngredientGridStartY + (index/IngredientGridColumns)*IngredientCellSpacing
	return image.Rect(x, y, x+IngredientIconSize, y+IngredientIconSize)
}

// Cooking Header (烹饪界面顶部)
const (
	HeaderX            = 20
	RecipeTitleY       = 20
	InstructionsY      = 60
	InstructionsWidth  = ScreenWidth - 40
	StageTitleY        = 100
	ScoreMarginRight   = 20
	ScoreY             = 20
	MenuTitleY         = 100
	SelectionTitleY    = 50
	ResultMessageY     = 250
	ResultScoreY       = 320
	ResultHintY        = 420
	HelpLineSpacing    = 30
	HelpTitleOffsetY   = 20
	HelpLinesOffsetY   = 60
	HelpLinesOffsetX   = 20
	MiniGameHintY      = 620
	DebugOverlayMargin = 4
)
