package minigame

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// ServeTimeLimit 装盘时限（帧），60 TPS 下为 10 秒
	ServeTimeLimit = 10 * config.TicksPerSecond

	// ServeWarningSeconds 剩余秒数不超过该值时时间显示为警告色
	ServeWarningSeconds = 3
)

var (
	// PlateRect 盘子
	PlateRect = image.Rect(300, 400, 500, 450)
	// PotRect 锅
	PotRect = image.Rect(300, 150, 500, 250)
	// FoodStartRect 食物的初始位置（锅里）
	FoodStartRect = image.Rect(350, 175, 450, 225)

	potColor          = color.RGBA{100, 100, 100, 255}
	plateFillColor    = color.RGBA{255, 255, 255, 255}
	plateOutlineColor = color.RGBA{200, 200, 200, 255}
	foodColor         = color.RGBA{255, 200, 0, 255}
	timeOverlayColor  = color.RGBA{255, 255, 255, 200}
	timeOverlayRect   = image.Rect(650, 100, 800, 140)
)

// ServingGame 装盘小游戏
// 在时限内把食物从锅里拖到盘子上，食物必须完全落在盘子内
type ServingGame struct {
	food      image.Rectangle
	dragging  bool
	served    bool
	timer     int
	timeLimit int
	completed bool
}

// NewServingGame 创建装盘小游戏
func NewServingGame() *ServingGame {
	return &ServingGame{
		food:      FoodStartRect,
		timeLimit: ServeTimeLimit,
	}
}

// HandleEvent 处理拖放
func (g *ServingGame) HandleEvent(ev utils.PointerEvent) Result {
	if g.completed {
		return ResultNone
	}

	switch ev.Type {
	case utils.PointerDown:
		if ev.Pos().In(g.food) {
			g.dragging = true
		}

	case utils.PointerMove:
		if g.dragging {
			g.centerFoodOn(ev.Pos())
		}

	case utils.PointerUp:
		g.dragging = false
		if g.food.In(PlateRect) {
			g.served = true
			g.completed = true
			log.Printf("[ServingGame] Food served at %v after %d ticks", g.food.Min, g.timer)
			return ResultCompleted
		}
	}

	return ResultNone
}

// centerFoodOn 将食物矩形的中心移动到 p（中心取整方式：x + w/2）
func (g *ServingGame) centerFoodOn(p image.Point) {
	size := g.food.Size()
	topLeft := p.Sub(image.Pt(size.X/2, size.Y/2))
	g.food = image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// Update 推进计时器，到达时限仍未完成则超时
func (g *ServingGame) Update() Result {
	if g.completed {
		return ResultNone
	}

	g.timer++
	if g.timer >= g.timeLimit {
		g.completed = true
		g.dragging = false
		log.Printf("[ServingGame] Time is up (%d ticks)", g.timer)
		return ResultTimeout
	}
	return ResultNone
}

// SecondsLeft 剩余整秒数（不小于 0）
func (g *ServingGame) SecondsLeft() int {
	left := (g.timeLimit - g.timer) / config.TicksPerSecond
	if left < 0 {
		return 0
	}
	return left
}

// Draw 绘制锅、盘子、剩余时间与食物
func (g *ServingGame) Draw(screen *ebiten.Image, face text.Face) {
	utils.FillRect(screen, timeOverlayRect, timeOverlayColor)

	left := g.SecondsLeft()
	timeColor := config.ColorBlack
	if left <= ServeWarningSeconds {
		timeColor = config.ColorRed
	}
	utils.DrawText(screen, fmt.Sprintf("Time: %ds", left), face,
		float64(timeOverlayRect.Min.X), float64(timeOverlayRect.Min.Y), timeColor)

	utils.FillRect(screen, PotRect, potColor)

	utils.FillEllipse(screen, PlateRect, plateFillColor)
	utils.StrokeEllipse(screen, PlateRect, 3, plateOutlineColor)

	if !g.served {
		utils.FillEllipse(screen, g.food, foodColor)
	}
}

// IsCompleted 是否已结束（成功装盘或超时）
func (g *ServingGame) IsCompleted() bool {
	return g.completed
}

// Served 是否成功装盘
func (g *ServingGame) Served() bool {
	return g.served
}

// TimedOut 是否因超时结束
func (g *ServingGame) TimedOut() bool {
	return g.completed && !g.served
}

// Dragging 是否正在拖动
func (g *ServingGame) Dragging() bool {
	return g.dragging
}

// FoodRect 食物当前位置
func (g *ServingGame) FoodRect() image.Rectangle {
	return g.food
}

// Timer 已经过的帧数
func (g *ServingGame) Timer() int {
	return g.timer
}
