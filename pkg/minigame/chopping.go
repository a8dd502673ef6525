package minigame

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// RequiredChops 完成切菜需要的命中次数
	RequiredChops = 10

	// ChopRelocateTicks 目标区域定时换位的间隔（帧）
	ChopRelocateTicks = 60
)

// ChopAreas 三个固定的切菜区域
var ChopAreas = [3]image.Rectangle{
	image.Rect(200, 200, 300, 300),
	image.Rect(350, 200, 450, 300),
	image.Rect(500, 200, 600, 300),
}

var (
	chopActiveColor   = color.RGBA{255, 0, 0, 255}
	chopInactiveColor = color.RGBA{200, 200, 200, 255}
	chopLabelPos      = image.Pt(350, 350)
)

// ChoppingGame 切菜小游戏
// 在三个固定区域中随机高亮一个，点中高亮区域计为一次切菜
type ChoppingGame struct {
	chopCount     int
	requiredChops int
	activeIndex   int
	timer         int
	completed     bool
	rng           *rand.Rand
}

// NewChoppingGame 创建切菜小游戏
//
// 参数：
//   - rng: 随机源，为 nil 时使用全局随机源（测试中可注入固定种子）
func NewChoppingGame(rng *rand.Rand) *ChoppingGame {
	g := &ChoppingGame{
		requiredChops: RequiredChops,
		rng:           rng,
	}
	g.activeIndex = g.pickArea()
	return g
}

// pickArea 在三个区域中均匀随机选择一个（可以与当前区域相同）
func (g *ChoppingGame) pickArea() int {
	if g.rng != nil {
		return g.rng.IntN(len(ChopAreas))
	}
	return rand.IntN(len(ChopAreas))
}

// HandleEvent 处理指针按下事件
func (g *ChoppingGame) HandleEvent(ev utils.PointerEvent) Result {
	if ev.Type != utils.PointerDown || g.completed {
		return ResultNone
	}

	if !ev.Pos().In(g.ActiveArea()) {
		return ResultMiss
	}

	g.chopCount++
	g.activeIndex = g.pickArea()

	if g.chopCount >= g.requiredChops {
		g.completed = true
		log.Printf("[ChoppingGame] Chopping completed (%d/%d)", g.chopCount, g.requiredChops)
		return ResultCompleted
	}
	return ResultNone
}

// Update 每 60 帧强制换一次目标区域，与是否命中无关
func (g *ChoppingGame) Update() Result {
	g.timer++
	if g.timer >= ChopRelocateTicks {
		g.activeIndex = g.pickArea()
		g.timer = 0
	}
	return ResultNone
}

// Draw 绘制三个区域（高亮当前目标）和进度
func (g *ChoppingGame) Draw(screen *ebiten.Image, face text.Face) {
	for i, area := range ChopAreas {
		clr := chopInactiveColor
		if i == g.activeIndex {
			clr = chopActiveColor
		}
		utils.FillRect(screen, area, clr)
	}

	progress := fmt.Sprintf("%d/%d", g.chopCount, g.requiredChops)
	utils.DrawText(screen, progress, face, float64(chopLabelPos.X), float64(chopLabelPos.Y), config.ColorBlack)
}

// IsCompleted 是否已完成
func (g *ChoppingGame) IsCompleted() bool {
	return g.completed
}

// Timer 距上次定时换区经过的帧数
func (g *ChoppingGame) Timer() int {
	return g.timer
}

// ChopCount 当前命中次数
func (g *ChoppingGame) ChopCount() int {
	return g.chopCount
}

// Required 完成所需命中次数
func (g *ChoppingGame) Required() int {
	return g.requiredChops
}

// ActiveArea 当前高亮的目标区域
func (g *ChoppingGame) ActiveArea() image.Rectangle {
	return ChopAreas[g.activeIndex]
}
