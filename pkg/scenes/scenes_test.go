package scenes

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/minigame"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestEnv 使用仓库自带的菜谱书和空资源目录创建场景依赖
// 所有图片都会退化为占位色块，字体退化为内置字体
func newTestEnv(t *testing.T) (*Env, *[]cooking.Cue) {
	t.Helper()

	book, err := config.LoadRecipeBook("../../data/recipes.yaml")
	if err != nil {
		t.Fatalf("Failed to load recipe book: %v", err)
	}

	var cues []cooking.Cue
	state := game.NewGameState()
	rm := game.NewResourceManager(nil, t.TempDir())
	ctrl := cooking.NewController(state, rand.New(rand.NewPCG(1, 2)),
		cooking.WithCueHandler(func(c cooking.Cue) { cues = append(cues, c) }))

	env := &Env{
		State:       state,
		Resources:   rm,
		Book:        book,
		Recipes:     cooking.RecipesFromBook(book),
		Controller:  ctrl,
		Backgrounds: NewBackgrounds(rm, book),
		Fonts:       LoadFonts(rm),
	}
	return env, &cues
}

func rectCenter(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func clickAt(p image.Point) utils.PointerEvent {
	return utils.PointerEvent{Type: utils.PointerDown, X: p.X, Y: p.Y, Pressed: true}
}

func moveTo(p image.Point) utils.PointerEvent {
	return utils.PointerEvent{Type: utils.PointerMove, X: p.X, Y: p.Y}
}

// ingredientIndex 返回食材在网格中的下标
func ingredientIndex(t *testing.T, env *Env, name string) int {
	t.Helper()
	for i, ing := range env.Book.Ingredients {
		if ing.Name == name {
			return i
		}
	}
	t.Fatalf("ingredient %s not in pantry", name)
	return -1
}

// clickIngredient 点击网格中的指定食材
func clickIngredient(t *testing.T, scene *CookingScene, name string) {
	t.Helper()
	i := ingredientIndex(t, scene.env, name)
	scene.HandleEvent(clickAt(rectCenter(config.IngredientIconRect(i))))
}

func TestStageBackgroundID(t *testing.T) {
	tests := []struct {
		name     string
		stage    cooking.Stage
		recipeBg string
		want     string
	}{
		{"选料阶段使用菜谱背景", cooking.StageSelect, BackgroundModern, BackgroundModern},
		{"切菜阶段固定普通厨房", cooking.StageChop, BackgroundModern, BackgroundKitchen},
		{"搅拌阶段固定传统厨房", cooking.StageMix, BackgroundKitchen, BackgroundTraditional},
		{"装盘阶段使用菜谱背景", cooking.StageServe, BackgroundTraditional, BackgroundTraditional},
		{"菜谱未指定背景", cooking.StageServe, "", BackgroundKitchen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StageBackgroundID(tt.stage, tt.recipeBg); got != tt.want {
				t.Errorf("StageBackgroundID(%s, %q) = %q, want %q", tt.stage, tt.recipeBg, got, tt.want)
			}
		})
	}
}

func TestBackgroundsPlaceholder(t *testing.T) {
	env, _ := newTestEnv(t)

	for _, id := range []string{BackgroundKitchen, BackgroundTraditional, "unknown"} {
		img := env.Backgrounds.Image(id)
		if img == nil {
			t.Fatalf("Background %q should never be nil", id)
		}
		if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != config.ScreenWidth || h != config.ScreenHeight {
			t.Errorf("Background %q size = %dx%d, want %dx%d", id, w, h, config.ScreenWidth, config.ScreenHeight)
		}
	}

	if env.Backgrounds.Image(BackgroundKitchen) != env.Backgrounds.Image(BackgroundKitchen) {
		t.Error("Expected background images to be cached")
	}
}

func TestMenuSceneStartButton(t *testing.T) {
	tests := []struct {
		name string
		ev   utils.PointerEvent
		want game.Mode
	}{
		{"点击开始按钮", clickAt(rectCenter(config.StartButtonRect)), game.ModeRecipeSelection},
		{"点击按钮外部", clickAt(image.Pt(10, 10)), game.ModeMenu},
		{"移动到按钮上", moveTo(rectCenter(config.StartButtonRect)), game.ModeMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newTestEnv(t)
			NewMenuScene(env).HandleEvent(tt.ev)
			if got := env.State.Mode(); got != tt.want {
				t.Errorf("Mode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecipeSelectionStartsCooking(t *testing.T) {
	env, _ := newTestEnv(t)
	env.State.Set(game.ModeRecipeSelection)
	scene := NewRecipeSelectionScene(env)

	// 按钮之间的空隙不会命中
	scene.HandleEvent(clickAt(image.Pt(config.RecipeButtonX+10, config.RecipeButtonStartY+config.RecipeButtonHeight+5)))
	if env.State.Mode() != game.ModeRecipeSelection {
		t.Fatalf("Click between buttons changed mode to %s", env.State.Mode())
	}

	scene.HandleEvent(clickAt(rectCenter(config.RecipeButtonRect(1))))
	if env.State.Mode() != game.ModeCooking {
		t.Fatalf("Mode = %s, want cooking", env.State.Mode())
	}
	recipe := env.Controller.Recipe()
	if recipe == nil || recipe.Name != env.Recipes[1].Name {
		t.Fatalf("Expected recipe %s to be started, got %v", env.Recipes[1].Name, recipe)
	}
	if env.Controller.Stage() != cooking.StageSelect || len(env.Controller.Selected()) != 0 {
		t.Error("A new recipe should start in the select stage with no selection")
	}
}

func TestCookingScenePicksIngredients(t *testing.T) {
	env, cues := newTestEnv(t)
	recipe := env.Recipes[0]
	env.Controller.Start(recipe)
	scene := NewCookingScene(env)

	var wrong string
	for _, ing := range env.Book.Ingredients {
		if !recipe.Requires(ing.Name) {
			wrong = ing.Name
			break
		}
	}
	if wrong == "" {
		t.Fatal("Test requires an ingredient outside the first recipe")
	}

	clickIngredient(t, scene, wrong)
	if env.Controller.IsSelected(wrong) {
		t.Errorf("Wrong ingredient %s should not be selected", wrong)
	}
	if len(*cues) != 1 || (*cues)[0] != cooking.CueError {
		t.Errorf("Expected one error cue, got %v", *cues)
	}

	first := recipe.Ingredients[0]
	clickIngredient(t, scene, first)
	clickIngredient(t, scene, first)
	if got := env.Controller.Selected(); len(got) != 1 || got[0] != first {
		t.Errorf("Selected = %v, want [%s]", got, first)
	}
	if len(*cues) != 2 {
		t.Errorf("Duplicate pick should be silent, cues = %v", *cues)
	}

	// 空白处点击不影响选择
	scene.HandleEvent(clickAt(image.Pt(5, 690)))
	if len(env.Controller.Selected()) != 1 {
		t.Error("Click outside the grid changed the selection")
	}
}

func TestCookingSceneAdvancesToChopping(t *testing.T) {
	env, _ := newTestEnv(t)
	recipe := env.Recipes[0]
	env.Controller.Start(recipe)
	scene := NewCookingScene(env)

	for _, name := range recipe.Ingredients {
		clickIngredient(t, scene, name)
	}
	if env.Controller.Stage() != cooking.StageChop {
		t.Fatalf("Stage = %s, want chop after selecting every ingredient", env.Controller.Stage())
	}

	chop, ok := env.Controller.MiniGame().(*minigame.ChoppingGame)
	if !ok {
		t.Fatalf("Expected a chopping game, got %T", env.Controller.MiniGame())
	}

	// 之后的点击交给切菜小游戏
	scene.HandleEvent(clickAt(rectCenter(chop.ActiveArea())))
	if chop.ChopCount() != 1 {
		t.Errorf("ChopCount = %d, want 1", chop.ChopCount())
	}
}

func TestCookingSceneChopsIntoMixing(t *testing.T) {
	env, _ := newTestEnv(t)
	env.Controller.Start(env.Recipes[0])
	scene := NewCookingScene(env)

	for _, name := range env.Recipes[0].Ingredients {
		clickIngredient(t, scene, name)
	}
	for i := 0; i < 10; i++ {
		chop := env.Controller.MiniGame().(*minigame.ChoppingGame)
		scene.HandleEvent(clickAt(rectCenter(chop.ActiveArea())))
	}
	if env.Controller.Stage() != cooking.StageMix {
		t.Fatalf("Stage = %s, want mix after 10 chops", env.Controller.Stage())
	}

	// 搅拌阶段没有计时，Update 不改变阶段
	for i := 0; i < 120; i++ {
		scene.Update(1.0 / 60.0)
	}
	if env.Controller.Stage() != cooking.StageMix {
		t.Errorf("Stage = %s, mixing has no timer", env.Controller.Stage())
	}
}

func TestResultSceneReturnsToSelection(t *testing.T) {
	env, _ := newTestEnv(t)
	env.State.Set(game.ModeResult)
	scene := NewResultScene(env)

	scene.HandleEvent(moveTo(image.Pt(400, 400)))
	if env.State.Mode() != game.ModeResult {
		t.Fatalf("Move should not leave the result page")
	}

	scene.HandleEvent(clickAt(image.Pt(400, 400)))
	if env.State.Mode() != game.ModeRecipeSelection {
		t.Errorf("Mode = %s, want recipe_selection", env.State.Mode())
	}
}

func TestResultSceneMessage(t *testing.T) {
	env, _ := newTestEnv(t)
	scene := NewResultScene(env)
	if got := scene.message(); got != timeoutMessage {
		t.Errorf("message() = %q, want %q", got, timeoutMessage)
	}
}

func TestHelpOverlayConsumesClicks(t *testing.T) {
	env, _ := newTestEnv(t)
	help := NewHelpOverlay(env)

	if help.HandleEvent(clickAt(rectCenter(config.StartButtonRect))) {
		t.Error("Closed overlay should not consume clicks outside the help button")
	}

	if !help.HandleEvent(clickAt(rectCenter(config.HelpButtonRect))) || !help.IsOpen() {
		t.Fatal("Clicking the help button should open the overlay")
	}

	// 面板打开时其他点击被吞掉
	if !help.HandleEvent(clickAt(rectCenter(config.StartButtonRect))) {
		t.Error("Open overlay should consume every event")
	}
	if !help.HandleEvent(moveTo(image.Pt(1, 1))) {
		t.Error("Open overlay should consume move events")
	}
	if !help.IsOpen() {
		t.Fatal("Overlay should stay open until the close box is clicked")
	}

	if !help.HandleEvent(clickAt(rectCenter(config.CloseHelpRect))) || help.IsOpen() {
		t.Error("Clicking the close box should close the overlay")
	}
}

func TestHelpKey(t *testing.T) {
	env, _ := newTestEnv(t)

	if got := HelpKey(env.State, env.Controller); got != "menu" {
		t.Errorf("HelpKey in menu = %q, want menu", got)
	}

	env.Controller.Start(env.Recipes[0])
	if got := HelpKey(env.State, env.Controller); got != "select" {
		t.Errorf("HelpKey while cooking = %q, want select", got)
	}

	env.State.Set(game.ModeResult)
	if got := HelpKey(env.State, env.Controller); got != "result" {
		t.Errorf("HelpKey in result = %q, want result", got)
	}
}

func TestHelpOverlayLines(t *testing.T) {
	env, _ := newTestEnv(t)
	help := NewHelpOverlay(env)

	if lines := help.Lines(); len(lines) == 0 || lines[0] == noHelpText {
		t.Errorf("Expected bundled help for the menu, got %v", lines)
	}

	env.Book = &config.RecipeBook{}
	if lines := help.Lines(); len(lines) != 1 || lines[0] != noHelpText {
		t.Errorf("Lines() = %v, want fallback text", lines)
	}
}

// TestScenesDraw 所有场景在资源缺失时都能正常绘制
func TestScenesDraw(t *testing.T) {
	env, _ := newTestEnv(t)
	screen := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	help := NewHelpOverlay(env)

	NewMenuScene(env).Draw(screen)
	NewRecipeSelectionScene(env).Draw(screen)

	cookingScene := NewCookingScene(env)
	cookingScene.Draw(screen) // 未开始菜谱时不绘制
	env.Controller.Start(env.Recipes[0])
	cookingScene.Draw(screen)
	for _, name := range env.Recipes[0].Ingredients {
		clickIngredient(t, cookingScene, name)
	}
	cookingScene.Draw(screen)

	NewResultScene(env).Draw(screen)

	help.HandleEvent(clickAt(rectCenter(config.HelpButtonRect)))
	help.Draw(screen)
}
