// Package minigame 实现烹饪流程中的三个小游戏：切菜、搅拌、装盘
//
// 每个小游戏都是独立的交互跟踪器，只在所属阶段存活：
// 进入阶段时创建，阶段结束时丢弃，不会复用。
// 所有计时都按逻辑帧计数（60 TPS），与墙钟时间无关。
package minigame

import (
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Result 小游戏对一次输入或一次帧更新的反馈
type Result int

const (
	// ResultNone 无事发生
	ResultNone Result = iota
	// ResultCompleted 本次输入使小游戏成功完成
	ResultCompleted
	// ResultTimeout 时间耗尽（仅装盘游戏）
	ResultTimeout
	// ResultMiss 点击未命中目标（外壳可播放错误提示音）
	ResultMiss
)

// String 返回结果名称，用于日志
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultCompleted:
		return "completed"
	case ResultTimeout:
		return "timeout"
	case ResultMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// MiniGame 小游戏的公共能力集合
//
// completed 是终态标志：一旦为 true 就不会再变回 false。
type MiniGame interface {
	// HandleEvent 处理一个指针事件
	HandleEvent(ev utils.PointerEvent) Result
	// Update 推进一帧
	Update() Result
	// Draw 绘制到屏幕，face 用于进度/时间标签
	Draw(screen *ebiten.Image, face text.Face)
	// IsCompleted 是否已结束（成功或超时）
	IsCompleted() bool
}
