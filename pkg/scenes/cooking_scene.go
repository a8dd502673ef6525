package scenes

import (
	"errors"
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 阶段标题
var stageTitles = map[cooking.Stage]string{
	cooking.StageSelect: "పదార్థాలు ఎంచుకోండి - Select Ingredients",
	cooking.StageChop:   "కోయండి - Chopping",
	cooking.StageMix:    "కలపండి - Mixing",
	cooking.StageServe:  "వడ్డించండి - Serving",
}

const (
	nextLabel   = "తరువాత - Next"
	finishLabel = "ముగించు - Finish"

	instructionLineHeight = 24
)

// CookingScene 烹饪场景
// 顶部显示菜谱名称和做法，下方按阶段显示食材网格或小游戏
type CookingScene struct {
	env *Env
}

// NewCookingScene 创建烹饪场景
func NewCookingScene(env *Env) *CookingScene {
	log.Printf("[CookingScene] Created")
	return &CookingScene{env: env}
}

// ingredientAt 返回点击位置对应的食材下标，未命中返回 -1
func (s *CookingScene) ingredientAt(ev utils.PointerEvent) int {
	for i := range s.env.Book.Ingredients {
		if isClick(ev, config.IngredientIconRect(i)) {
			return i
		}
	}
	return -1
}

// HandleEvent 分发指针事件
//   - 阶段可推进时，点击"下一步"按钮推进
//   - select 阶段：点击食材图标尝试选择
//   - 其他阶段：交给当前小游戏
func (s *CookingScene) HandleEvent(ev utils.PointerEvent) {
	ctrl := s.env.Controller
	if ctrl.Recipe() == nil {
		return
	}

	if ctrl.CanAdvance() && isClick(ev, config.NextButtonRect) {
		if err := ctrl.Next(); err != nil {
			log.Printf("[CookingScene] Next rejected: %v", err)
		}
		return
	}

	if ctrl.Stage() != cooking.StageSelect {
		ctrl.HandleEvent(ev)
		return
	}

	i := s.ingredientAt(ev)
	if i < 0 {
		return
	}
	name := s.env.Book.Ingredients[i].Name
	if err := ctrl.SelectIngredient(name); err != nil {
		if errors.Is(err, cooking.ErrAlreadySelected) {
			return
		}
		log.Printf("[CookingScene] Pick rejected: %v", err)
	}
}

// Update 推进当前小游戏（装盘计时）
func (s *CookingScene) Update(deltaTime float64) {
	s.env.Controller.Update()
}

// Draw 绘制烹饪界面
func (s *CookingScene) Draw(screen *ebiten.Image) {
	ctrl := s.env.Controller
	recipe := ctrl.Recipe()
	if recipe == nil {
		return
	}
	stage := ctrl.Stage()

	s.env.Backgrounds.Draw(screen, StageBackgroundID(stage, recipe.Background))
	s.drawHeader(screen, recipe)

	utils.DrawTextCenteredX(screen, stageTitles[stage], s.env.Fonts.Title,
		config.ScreenWidth/2, config.StageTitleY, config.ColorBlack)

	if stage == cooking.StageSelect {
		s.drawIngredientGrid(screen)
	} else if mg := ctrl.MiniGame(); mg != nil {
		mg.Draw(screen, s.env.Fonts.Small)
	}

	if ctrl.CanAdvance() {
		label := nextLabel
		if stage == cooking.StageServe {
			label = finishLabel
		}
		drawButton(screen, config.NextButtonRect, label, s.env.Fonts.Title, config.ColorBlue, config.ColorBlack)
	}
}

// drawHeader 菜谱名称和自动换行的做法说明
func (s *CookingScene) drawHeader(screen *ebiten.Image, recipe *cooking.Recipe) {
	utils.DrawText(screen, "వంటకం - Recipe: "+recipe.Name, s.env.Fonts.Title,
		config.HeaderX, config.RecipeTitleY, config.ColorBlack)

	lines := utils.WrapText(recipe.Instructions, s.env.Fonts.Small, config.InstructionsWidth)
	for i, line := range lines {
		utils.DrawText(screen, line, s.env.Fonts.Small,
			config.HeaderX, float64(config.InstructionsY+i*instructionLineHeight), config.ColorBlack)
	}
}

// drawIngredientGrid 绘制全部食材，已选食材加绿色边框
func (s *CookingScene) drawIngredientGrid(screen *ebiten.Image) {
	rm := s.env.Resources
	for i, ing := range s.env.Book.Ingredients {
		r := config.IngredientIconRect(i)
		icon := rm.LoadImageOrPlaceholder(ing.Image, config.IngredientIconSize, config.IngredientIconSize, ing.PlaceholderColor())
		utils.DrawImageAt(screen, icon, r.Min.X, r.Min.Y)

		utils.DrawText(screen, ing.Name, s.env.Fonts.Small,
			float64(r.Min.X), float64(r.Min.Y+config.IngredientLabelOffset), config.ColorBlack)

		if s.env.Controller.IsSelected(ing.Name) {
			utils.StrokeRect(screen, r, config.SelectedOutlineWidth, config.ColorGreen)
		}
	}
}
