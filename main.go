package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/vantalu/pkg/app"
	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose      = flag.Bool("verbose", false, "显示详细日志和调试信息")
	assetsDir    = flag.String("assets", "assets", "图片、字体、音效所在目录")
	recipesPath  = flag.String("recipes", "", "外部菜谱书 YAML 文件（默认使用内置菜谱）")
	settingsPath = flag.String("settings", "", "外部设置 YAML 文件（默认使用内置设置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		AssetsDir:    *assetsDir,
		RecipesPath:  *recipesPath,
		SettingsPath: *settingsPath,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，错误直接输出到 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(gameApp.Settings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
