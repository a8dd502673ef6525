package config

import "image/color"

// UI 颜色与字号配置

// 通用颜色
var (
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorOrange = color.RGBA{255, 165, 0, 255}
	ColorBlue   = color.RGBA{100, 100, 200, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorGreen  = color.RGBA{0, 255, 0, 255}

	// ColorScreenClear 每帧先铺的底色（背景图缺失时可见）
	ColorScreenClear = color.RGBA{150, 150, 150, 255}

	// ColorDefaultBackground 默认厨房背景的占位色
	ColorDefaultBackground = color.RGBA{220, 220, 200, 255}

	// ColorHelpButton 帮助按钮底色
	ColorHelpButton = color.RGBA{200, 200, 200, 255}

	// ColorPlaceholderIngredient 未配置颜色的食材占位色
	ColorPlaceholderIngredient = color.RGBA{200, 200, 200, 255}
)

// 字号（像素）
const (
	TitleFontSize = 24.0
	SmallFontSize = 18.0
)

// 占位图标边框宽度
const SelectedOutlineWidth = 3
