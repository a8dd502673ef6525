// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/embedded"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/scenes"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// AssetsDir 图片、字体、音效所在目录，为空时使用资源配置中的 base_path
	AssetsDir string
	// RecipesPath 菜谱书路径，为空时使用内置菜谱书（config.DefaultRecipesPath）
	RecipesPath string
	// SettingsPath 设置文件路径，为空时使用内置默认设置
	SettingsPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	state        *game.GameState
	controller   *cooking.Controller
	sceneManager *game.SceneManager
	help         *scenes.HelpOverlay
	settings     *game.SettingsManager
	poller       *utils.PointerPoller
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
// 菜谱书无效时返回错误；图片、字体、音效缺失不会导致失败。
func NewApp(cfg Config) (*App, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("嵌入数据不可用: %w", embedded.ErrNotInitialized)
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext, cfg.AssetsDir)
	if err := resourceManager.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("init"); err != nil {
		log.Printf("[App] Warning: init resources incomplete: %v", err)
	}

	// 设置文件缺失时使用默认设置
	settingsManager, err := game.NewSettingsManager(cfg.SettingsPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using default settings)", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{game.SoundSuccess, game.SoundError})
	log.Printf("[App] AudioManager initialized")

	book, err := config.LoadRecipeBook(cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("菜谱加载失败: %w", err)
	}
	recipes := cooking.RecipesFromBook(book)
	log.Printf("[App] Loaded %d recipes, %d ingredients", len(recipes), len(book.Ingredients))

	state := game.NewGameState()
	controller := cooking.NewController(state, nil, cooking.WithCueHandler(func(c cooking.Cue) {
		switch c {
		case cooking.CueSuccess:
			audioManager.PlaySound(game.SoundSuccess)
		case cooking.CueError:
			audioManager.PlaySound(game.SoundError)
		}
	}))

	env := &scenes.Env{
		State:       state,
		Resources:   resourceManager,
		Book:        book,
		Recipes:     recipes,
		Controller:  controller,
		Backgrounds: scenes.NewBackgrounds(resourceManager, book),
		Fonts:       scenes.LoadFonts(resourceManager),
	}

	// 创建场景管理器，每种模式一个场景
	sceneManager := game.NewSceneManager(state)
	sceneManager.Register(game.ModeMenu, scenes.NewMenuScene(env))
	sceneManager.Register(game.ModeRecipeSelection, scenes.NewRecipeSelectionScene(env))
	sceneManager.Register(game.ModeCooking, scenes.NewCookingScene(env))
	sceneManager.Register(game.ModeResult, scenes.NewResultScene(env))

	return &App{
		state:        state,
		controller:   controller,
		sceneManager: sceneManager,
		help:         scenes.NewHelpOverlay(env),
		settings:     settingsManager,
		poller:       utils.NewPointerPoller(),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if utils.IsQuitRequested() {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && utils.IsFullscreenToggleRequested() {
		a.toggleFullscreen()
	}

	for _, ev := range a.poller.Poll() {
		if a.help.HandleEvent(ev) {
			continue
		}
		a.sceneManager.HandleEvents([]utils.PointerEvent{ev})
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置（仅内存）
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorScreenClear)
	a.sceneManager.Draw(screen)
	a.help.Draw(screen)

	if a.verbose {
		a.drawDebugInfo(screen)
	}
}

// drawDebugInfo 左下角显示 TPS、模式和阶段
func (a *App) drawDebugInfo(screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS: %.1f  mode: %s", ebiten.ActualTPS(), a.state.Mode())
	if a.state.Mode() == game.ModeCooking {
		msg += fmt.Sprintf("  stage: %s", a.controller.Stage())
	}
	ebitenutil.DebugPrintAt(screen, msg, config.DebugOverlayMargin, config.ScreenHeight-20)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Settings 返回当前设置（用于 main 设置初始全屏状态）
func (a *App) Settings() *game.GameSettings {
	return a.settings.GetSettings()
}
