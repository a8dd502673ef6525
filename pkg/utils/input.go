// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerMove 指针移动（按下或未按下）
	PointerMove PointerEventType = iota
	// PointerDown 主按键按下 / 触摸开始
	PointerDown
	// PointerUp 主按键释放 / 触摸结束
	PointerUp
)

// String 返回事件类型名称，用于日志
func (t PointerEventType) String() string {
	switch t {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent 一帧内产生的一个指针事件
// 鼠标左键和第一个触摸点统一抽象为"主指针"
type PointerEvent struct {
	Type    PointerEventType
	X, Y    int
	Pressed bool // 事件发生时主按键是否处于按下状态
}

// Pos 返回事件位置
func (e PointerEvent) Pos() image.Point {
	return image.Pt(e.X, e.Y)
}

// PointerSample 某一帧的指针采样
type PointerSample struct {
	X, Y    int
	Pressed bool
}

// DiffPointer 比较两帧采样，生成本帧的事件序列
//
// 顺序规则：
//   - 位置变化先产生 move 事件（携带上一帧的按下状态）
//   - 然后才是 down / up 事件
//
// 这样松开前的最后一次移动仍被视为"按住拖动"，与桌面事件队列的顺序一致。
func DiffPointer(prev, cur PointerSample) []PointerEvent {
	var events []PointerEvent

	if prev.X != cur.X || prev.Y != cur.Y {
		events = append(events, PointerEvent{Type: PointerMove, X: cur.X, Y: cur.Y, Pressed: prev.Pressed})
	}

	switch {
	case !prev.Pressed && cur.Pressed:
		events = append(events, PointerEvent{Type: PointerDown, X: cur.X, Y: cur.Y, Pressed: true})
	case prev.Pressed && !cur.Pressed:
		events = append(events, PointerEvent{Type: PointerUp, X: cur.X, Y: cur.Y, Pressed: false})
	}

	return events
}

// PointerPoller 每帧轮询一次鼠标/触摸状态，输出指针事件
// 同时支持鼠标点击和触摸输入，优先检测触摸
type PointerPoller struct {
	last       PointerSample
	lastTouchX int
	lastTouchY int
}

// NewPointerPoller 创建指针轮询器
func NewPointerPoller() *PointerPoller {
	return &PointerPoller{}
}

// Poll 读取当前帧的输入状态并返回事件
// 必须在 ebiten 的 Update 中每帧调用一次
func (p *PointerPoller) Poll() []PointerEvent {
	cur := p.sample()
	events := DiffPointer(p.last, cur)
	p.last = cur
	return events
}

// sample 采样当前指针状态
func (p *PointerPoller) sample() PointerSample {
	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		p.lastTouchX, p.lastTouchY = x, y
		return PointerSample{X: x, Y: y, Pressed: true}
	}

	// 触摸刚结束时 TouchPosition 已不可用，使用最后一次触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerSample{X: p.lastTouchX, Y: p.lastTouchY, Pressed: false}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{X: x, Y: y, Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
}

// IsQuitRequested 检查是否按下了退出键（Escape）
func IsQuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsFullscreenToggleRequested 检查是否按下了全屏切换键（F11）
func IsFullscreenToggleRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}
