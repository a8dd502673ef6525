package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	timeoutMessage = "సమయం ముగిసింది - Time's up!"
	resultHint     = "Click anywhere to continue"
)

// ResultScene 结果页：显示装盘超时信息和当前分数，点击任意位置返回菜谱选择
type ResultScene struct {
	env *Env
}

// NewResultScene 创建结果场景
func NewResultScene(env *Env) *ResultScene {
	log.Printf("[ResultScene] Created")
	return &ResultScene{env: env}
}

// HandleEvent 任意点击返回菜谱选择
func (s *ResultScene) HandleEvent(ev utils.PointerEvent) {
	if ev.Type != utils.PointerDown {
		return
	}
	s.env.State.Set(game.ModeRecipeSelection)
}

// Update 结果页没有逐帧逻辑
func (s *ResultScene) Update(deltaTime float64) {}

// Draw 绘制结果信息
func (s *ResultScene) Draw(screen *ebiten.Image) {
	bg := BackgroundKitchen
	if recipe := s.env.Controller.Recipe(); recipe != nil {
		bg = StageBackgroundID(cooking.StageServe, recipe.Background)
	}
	s.env.Backgrounds.Draw(screen, bg)

	centerX := float64(config.ScreenWidth / 2)
	fonts := s.env.Fonts
	utils.DrawTextCenteredX(screen, s.message(), fonts.Title, centerX, config.ResultMessageY, config.ColorRed)
	utils.DrawTextCenteredX(screen, fmt.Sprintf("స్కోరు - Score: %d", s.env.State.Score()), fonts.Title,
		centerX, config.ResultScoreY, config.ColorBlack)
	utils.DrawTextCenteredX(screen, resultHint, fonts.Small, centerX, config.ResultHintY, config.ColorBlack)
}

// message 根据最近一次装盘结果生成提示
func (s *ResultScene) message() string {
	recipe := s.env.Controller.Recipe()
	if s.env.Controller.Outcome() != cooking.OutcomeTimeout || recipe == nil {
		return timeoutMessage
	}
	return fmt.Sprintf("%s: %s", recipe.Name, timeoutMessage)
}
