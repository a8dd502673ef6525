package minigame

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// RequiredMixes 完成搅拌需要的有效动作次数
	RequiredMixes = 15

	// MixAngleThreshold 两次采样之间角度变化超过该值（度）才算一次搅拌动作
	MixAngleThreshold = 10.0
)

var (
	// BowlRect 碗的外接矩形
	BowlRect = image.Rect(300, 200, 500, 400)
	// BowlCenter 碗心，角度以此为原点计算
	BowlCenter = image.Pt(400, 300)

	bowlFillColor    = color.RGBA{200, 200, 200, 255}
	bowlOutlineColor = color.RGBA{150, 150, 150, 255}
	mixLabelPos      = image.Pt(350, 450)
)

// MixDirection 搅拌方向
type MixDirection int

const (
	// Clockwise 顺时针（屏幕坐标系下视觉上的顺时针）
	Clockwise MixDirection = iota
	// CounterClockwise 逆时针
	CounterClockwise
)

// String 返回方向名称
func (d MixDirection) String() string {
	if d == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// MixingOption 搅拌游戏的可选配置
type MixingOption func(*MixingGame)

// WithDirection 设置要求的搅拌方向
func WithDirection(d MixDirection) MixingOption {
	return func(g *MixingGame) {
		g.direction = d
	}
}

// WithWrapNormalization 开启角度差回绕归一化
// 默认关闭：直接比较原始角度值，跨越 ±180° 边界的动作可能被判为反方向
func WithWrapNormalization() MixingOption {
	return func(g *MixingGame) {
		g.normalizeWrap = true
	}
}

// MixingGame 搅拌小游戏
// 按住主按键在碗内画圈，每次足够大的同向角度变化计为一次搅拌
type MixingGame struct {
	mixCount      int
	requiredMixes int
	direction     MixDirection
	normalizeWrap bool
	lastPos       *image.Point // nil 表示没有基准点（刚开始或刚松开）
	completed     bool
}

// NewMixingGame 创建搅拌小游戏，默认顺时针
func NewMixingGame(opts ...MixingOption) *MixingGame {
	g := &MixingGame{
		requiredMixes: RequiredMixes,
		direction:     Clockwise,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// pointerAngle 计算碗心到 p 的向量相对 (1, 0) 的角度（度）
// 取值范围 [-180, 180)，屏幕坐标 y 轴向下，因此顺时针运动时角度减小
func pointerAngle(p image.Point) float64 {
	dx := float64(p.X - BowlCenter.X)
	dy := float64(p.Y - BowlCenter.Y)
	return -math.Atan2(dy, dx) * 180 / math.Pi
}

// angleDelta 计算两次采样之间的角度变化
func (g *MixingGame) angleDelta(from, to image.Point) float64 {
	delta := pointerAngle(to) - pointerAngle(from)
	if g.normalizeWrap {
		delta = math.Mod(delta+540, 360) - 180
		if delta == -180 {
			delta = 180
		}
	}
	return delta
}

// HandleEvent 处理指针事件
func (g *MixingGame) HandleEvent(ev utils.PointerEvent) Result {
	switch ev.Type {
	case utils.PointerUp:
		g.lastPos = nil
		return ResultNone
	case utils.PointerMove:
		if !ev.Pressed || g.completed {
			return ResultNone
		}
	default:
		return ResultNone
	}

	pos := ev.Pos()
	if !pos.In(BowlRect) {
		return ResultNone
	}

	result := ResultNone
	if g.lastPos != nil {
		delta := g.angleDelta(*g.lastPos, pos)
		if math.Abs(delta) > MixAngleThreshold {
			if (g.direction == Clockwise && delta < 0) || (g.direction == CounterClockwise && delta > 0) {
				g.mixCount++
			}

			if g.mixCount >= g.requiredMixes {
				g.completed = true
				log.Printf("[MixingGame] Mixing completed (%d/%d)", g.mixCount, g.requiredMixes)
				result = ResultCompleted
			}
		}
	}

	g.lastPos = &pos
	return result
}

// Update 搅拌游戏没有按帧推进的状态
func (g *MixingGame) Update() Result {
	return ResultNone
}

// Draw 绘制碗和进度
func (g *MixingGame) Draw(screen *ebiten.Image, face text.Face) {
	utils.FillEllipse(screen, BowlRect, bowlFillColor)
	utils.StrokeEllipse(screen, BowlRect, 5, bowlOutlineColor)

	progress := fmt.Sprintf("%d/%d", g.mixCount, g.requiredMixes)
	utils.DrawText(screen, progress, face, float64(mixLabelPos.X), float64(mixLabelPos.Y), config.ColorBlack)
}

// IsCompleted 是否已完成
func (g *MixingGame) IsCompleted() bool {
	return g.completed
}

// MixCount 当前有效搅拌次数
func (g *MixingGame) MixCount() int {
	return g.mixCount
}

// Required 完成所需搅拌次数
func (g *MixingGame) Required() int {
	return g.requiredMixes
}

// HasBaseline 是否已有基准点
func (g *MixingGame) HasBaseline() bool {
	return g.lastPos != nil
}
