package game

import (
	"errors"
	"fmt"
	"log"
)

// ErrInvalidState 非法的模式名称
var ErrInvalidState = errors.New("invalid game state")

// Mode 游戏当前所处的界面模式
type Mode int

const (
	// ModeMenu 主菜单
	ModeMenu Mode = iota
	// ModeRecipeSelection 选择菜谱
	ModeRecipeSelection
	// ModeCooking 烹饪中
	ModeCooking
	// ModeResult 结果页（装盘超时后展示）
	ModeResult
)

var modeNames = map[Mode]string{
	ModeMenu:            "menu",
	ModeRecipeSelection: "recipe_selection",
	ModeCooking:         "cooking",
	ModeResult:          "result",
}

// String 返回模式名称
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode 将模式名称解析为 Mode
func ParseMode(name string) (Mode, error) {
	for mode, modeName := range modeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return ModeMenu, fmt.Errorf("%w: %q", ErrInvalidState, name)
}

// GameState 存储跨场景共享的状态：当前模式与总分
type GameState struct {
	mode  Mode
	score int
}

// NewGameState 创建游戏状态，初始处于主菜单，分数为 0
func NewGameState() *GameState {
	return &GameState{mode: ModeMenu}
}

// SetState 按名称切换模式
// 名称不合法时记录诊断信息并返回 ErrInvalidState，模式保持不变
func (gs *GameState) SetState(name string) error {
	mode, err := ParseMode(name)
	if err != nil {
		log.Printf("[GameState] Rejected state change to %q (current: %s)", name, gs.mode)
		return err
	}
	gs.Set(mode)
	return nil
}

// Set 切换到指定模式
func (gs *GameState) Set(mode Mode) {
	if mode == gs.mode {
		return
	}
	log.Printf("[GameState] %s -> %s", gs.mode, mode)
	gs.mode = mode
}

// Mode 返回当前模式
func (gs *GameState) Mode() Mode {
	return gs.mode
}

// Score 返回当前总分
func (gs *GameState) Score() int {
	return gs.score
}

// AddScore 增加分数
func (gs *GameState) AddScore(points int) {
	gs.score += points
}
