package cooking

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/minigame"
	"github.com/decker502/vantalu/pkg/utils"
)

// ServeReward 成功装盘获得的分数
const ServeReward = 100

// 阶段流程的哨兵错误
var (
	ErrNoActiveRecipe  = errors.New("no active recipe")
	ErrWrongIngredient = errors.New("ingredient is not part of the recipe")
	ErrAlreadySelected = errors.New("ingredient already selected")
	ErrStageNotReady   = errors.New("current stage is not complete")
	ErrNotSelecting    = errors.New("ingredients can only be picked in the select stage")
)

// Stage 烹饪阶段
type Stage int

const (
	StageSelect Stage = iota
	StageChop
	StageMix
	StageServe
)

// String 返回阶段名称（也用作帮助文本的键）
func (s Stage) String() string {
	switch s {
	case StageSelect:
		return "select"
	case StageChop:
		return "chop"
	case StageMix:
		return "mix"
	case StageServe:
		return "serve"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Outcome 最近一次装盘的结果
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeServed
	OutcomeTimeout
)

// String 返回结果名称
func (o Outcome) String() string {
	switch o {
	case OutcomeServed:
		return "served"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Cue 需要播放的提示音
type Cue int

const (
	CueSuccess Cue = iota
	CueError
)

// Option Controller 的可选配置
type Option func(*Controller)

// WithCueHandler 设置提示音回调
func WithCueHandler(fn func(Cue)) Option {
	return func(c *Controller) {
		c.onCue = fn
	}
}

// WithMixingOptions 设置创建搅拌小游戏时使用的选项
func WithMixingOptions(opts ...minigame.MixingOption) Option {
	return func(c *Controller) {
		c.mixingOpts = opts
	}
}

// Controller 烹饪阶段控制器
// 负责 select → chop → mix → serve 的推进、计分以及回到菜谱选择
type Controller struct {
	state *game.GameState
	rng   *rand.Rand

	recipe   *Recipe
	stage    Stage
	selected []string
	active   minigame.MiniGame
	outcome  Outcome

	onCue      func(Cue)
	mixingOpts []minigame.MixingOption
}

// NewController 创建阶段控制器
//
// 参数：
//   - gs: 全局游戏状态（模式与分数）
//   - rng: 切菜小游戏的随机源，为 nil 时使用全局随机源
//   - opts: 可选配置
//
// 返回：
//   - *Controller: 尚未开始任何菜谱的控制器
func NewController(gs *game.GameState, rng *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		state: gs,
		rng:   rng,
		stage: StageSelect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start 开始烹饪指定菜谱：阶段回到 select，清空已选食材，模式切换到 cooking
func (c *Controller) Start(recipe Recipe) {
	c.recipe = &recipe
	c.outcome = OutcomeNone
	c.reset()
	c.state.Set(game.ModeCooking)
	log.Printf("[Cooking] Started recipe %s (%d ingredients)", recipe.Name, len(recipe.Ingredients))
}

// reset 阶段回到 select，清空已选食材并丢弃小游戏
func (c *Controller) reset() {
	c.stage = StageSelect
	c.selected = nil
	c.active = nil
}

// SelectIngredient 在 select 阶段选择一种食材
// 选满所需食材后自动进入 chop 阶段
func (c *Controller) SelectIngredient(name string) error {
	if c.recipe == nil {
		return ErrNoActiveRecipe
	}
	if c.stage != StageSelect {
		return fmt.Errorf("%w (stage: %s)", ErrNotSelecting, c.stage)
	}

	if !c.recipe.Requires(name) {
		c.cue(CueError)
		return fmt.Errorf("%w: %s", ErrWrongIngredient, name)
	}
	if c.IsSelected(name) {
		return fmt.Errorf("%w: %s", ErrAlreadySelected, name)
	}

	c.selected = append(c.selected, name)
	c.cue(CueSuccess)
	log.Printf("[Cooking] Selected %s (%d/%d)", name, len(c.selected), len(c.recipe.Ingredients))

	if c.selectionComplete() {
		c.enterStage(StageChop)
	}
	return nil
}

// selectionComplete 是否已选齐所有食材
func (c *Controller) selectionComplete() bool {
	return c.recipe != nil && len(c.selected) == len(c.recipe.Ingredients)
}

// HandleEvent 将指针事件交给当前小游戏并处理其结果
func (c *Controller) HandleEvent(ev utils.PointerEvent) {
	if c.active == nil {
		return
	}
	c.handleResult(c.active.HandleEvent(ev))
}

// Update 推进当前小游戏一帧
func (c *Controller) Update() {
	if c.active == nil {
		return
	}
	c.handleResult(c.active.Update())
}

// handleResult 根据小游戏的返回信号推进流程
func (c *Controller) handleResult(result minigame.Result) {
	switch result {
	case minigame.ResultCompleted:
		c.cue(CueSuccess)
		c.advance()
	case minigame.ResultMiss:
		c.cue(CueError)
	case minigame.ResultTimeout:
		c.cue(CueError)
		c.timeout()
	}
}

// CanAdvance 当前阶段是否已满足进入下一阶段的条件
func (c *Controller) CanAdvance() bool {
	if c.recipe == nil {
		return false
	}
	if c.stage == StageSelect {
		return c.selectionComplete()
	}
	return c.active != nil && c.active.IsCompleted()
}

// Next 手动进入下一阶段（“下一步/完成”按钮）
// 条件不满足时返回 ErrStageNotReady，状态不变
func (c *Controller) Next() error {
	if c.recipe == nil {
		return ErrNoActiveRecipe
	}
	if !c.CanAdvance() {
		return fmt.Errorf("%w (stage: %s)", ErrStageNotReady, c.stage)
	}
	c.advance()
	return nil
}

// advance 进入下一阶段；serve 完成后计分并回到菜谱选择
func (c *Controller) advance() {
	switch c.stage {
	case StageSelect:
		c.enterStage(StageChop)
	case StageChop:
		c.enterStage(StageMix)
	case StageMix:
		c.enterStage(StageServe)
	case StageServe:
		c.serve()
	}
}

// enterStage 切换阶段并创建新的小游戏实例
func (c *Controller) enterStage(stage Stage) {
	c.stage = stage
	switch stage {
	case StageChop:
		c.active = minigame.NewChoppingGame(c.rng)
	case StageMix:
		c.active = minigame.NewMixingGame(c.mixingOpts...)
	case StageServe:
		c.active = minigame.NewServingGame()
	default:
		c.active = nil
	}
	log.Printf("[Cooking] Entered stage %s", stage)
}

// serve 装盘成功：加分、重置并回到菜谱选择
func (c *Controller) serve() {
	c.state.AddScore(ServeReward)
	c.outcome = OutcomeServed
	c.reset()
	c.state.Set(game.ModeRecipeSelection)
	log.Printf("[Cooking] Dish %s served, score %d", c.recipe.Name, c.state.Score())
}

// timeout 装盘超时：不加分，重置并进入结果页
func (c *Controller) timeout() {
	c.outcome = OutcomeTimeout
	c.reset()
	c.state.Set(game.ModeResult)
	log.Printf("[Cooking] Dish %s timed out, score %d", c.recipe.Name, c.state.Score())
}

func (c *Controller) cue(cue Cue) {
	if c.onCue != nil {
		c.onCue(cue)
	}
}

// Recipe 当前（或最近一次）菜谱，未开始时返回 nil
func (c *Controller) Recipe() *Recipe {
	return c.recipe
}

// Stage 当前阶段
func (c *Controller) Stage() Stage {
	return c.stage
}

// Selected 已选食材（按选择顺序）
func (c *Controller) Selected() []string {
	return slices.Clone(c.selected)
}

// IsSelected 指定食材是否已选
func (c *Controller) IsSelected(name string) bool {
	return slices.Contains(c.selected, name)
}

// MiniGame 当前阶段的小游戏，select 阶段为 nil
func (c *Controller) MiniGame() minigame.MiniGame {
	return c.active
}

// Outcome 最近一次装盘的结果
func (c *Controller) Outcome() Outcome {
	return c.outcome
}
