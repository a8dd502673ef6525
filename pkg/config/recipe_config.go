package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/vantalu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultRecipesPath 内置菜谱书路径
const DefaultRecipesPath = "data/recipes.yaml"

// 配置校验使用的哨兵错误
var (
	ErrUnknownIngredient   = errors.New("recipe requires unknown ingredient")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrInvalidColor        = errors.New("invalid color")
	ErrEmptyRecipeBook     = errors.New("recipe book has no recipes")
	ErrUnknownBackground   = errors.New("recipe references unknown background")
	ErrRecipeNoIngredients = errors.New("recipe has no ingredients")
)

// RecipeBook 菜谱书配置（data/recipes.yaml）
//
// 结构：
//
//	ingredients:
//	  - name: బియ్యం
//	    image: rice.png
//	    color: [255, 255, 255]
//	backgrounds:
//	  - id: kitchen
//	    image: kitchen_background.png
//	    color: [220, 220, 200]
//	recipes:
//	  - name: పులిహోర
//	    background: kitchen
//	    ingredients: [బియ్యం, పసుపు]
//	    instructions: ...
//	help:
//	  select:
//	    - ...
type RecipeBook struct {
	Ingredients []IngredientConfig  `yaml:"ingredients"`
	Backgrounds []BackgroundConfig  `yaml:"backgrounds"`
	Recipes     []RecipeConfig      `yaml:"recipes"`
	Help        map[string][]string `yaml:"help"` // 帮助文本：阶段/模式名 -> 行
}

// IngredientConfig 食材定义
type IngredientConfig struct {
	Name  string `yaml:"name"`  // 食材名称（唯一标识）
	Image string `yaml:"image"` // 图片文件名（相对 images 目录）
	Color []int  `yaml:"color"` // 图片缺失时的占位色 [R, G, B]
}

// BackgroundConfig 厨房背景定义
type BackgroundConfig struct {
	ID    string `yaml:"id"`
	Image string `yaml:"image"`
	Color []int  `yaml:"color"`
}

// RecipeConfig 菜谱定义
type RecipeConfig struct {
	Name         string   `yaml:"name"`
	Background   string   `yaml:"background"`
	Ingredients  []string `yaml:"ingredients"`
	Instructions string   `yaml:"instructions"`
}

// PlaceholderColor 返回食材的占位色，未配置时返回默认灰色
func (ic IngredientConfig) PlaceholderColor() color.RGBA {
	c, err := parseRGB(ic.Color)
	if err != nil || len(ic.Color) == 0 {
		return ColorPlaceholderIngredient
	}
	return c
}

// PlaceholderColor 返回背景的占位色，未配置时返回默认厨房色
func (bc BackgroundConfig) PlaceholderColor() color.RGBA {
	c, err := parseRGB(bc.Color)
	if err != nil || len(bc.Color) == 0 {
		return ColorDefaultBackground
	}
	return c
}

// LoadRecipeBook 加载并校验菜谱书
//
// 参数：
//   - path: 菜谱书路径，为空时使用内置的 data/recipes.yaml；
//     嵌入数据中不存在的路径从磁盘读取
//
// 返回：
//   - *RecipeBook: 通过校验的菜谱书
//   - error: 读取、解析或校验失败
func LoadRecipeBook(path string) (*RecipeBook, error) {
	if path == "" {
		path = DefaultRecipesPath
	}
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("recipe book: %w", err)
	}

	book, err := ParseRecipeBook(data)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe book %s: %w", path, err)
	}
	return book, nil
}

// ParseRecipeBook 解析并校验菜谱书 YAML 数据
func ParseRecipeBook(data []byte) (*RecipeBook, error) {
	var book RecipeBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse recipe book YAML: %w", err)
	}

	if err := validateRecipeBook(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

// FindIngredient 按名称查找食材
func (b *RecipeBook) FindIngredient(name string) (IngredientConfig, bool) {
	for _, ing := range b.Ingredients {
		if ing.Name == name {
			return ing, true
		}
	}
	return IngredientConfig{}, false
}

// FindBackground 按 ID 查找背景
func (b *RecipeBook) FindBackground(id string) (BackgroundConfig, bool) {
	for _, bg := range b.Backgrounds {
		if bg.ID == id {
			return bg, true
		}
	}
	return BackgroundConfig{}, false
}

// HelpLines 返回指定键的帮助文本，不存在时返回 nil
func (b *RecipeBook) HelpLines(key string) []string {
	return b.Help[key]
}

// validateRecipeBook 校验菜谱书
//   - 至少一个菜谱
//   - 食材、背景、菜谱名称不重复
//   - 菜谱引用的食材和背景必须存在
//   - 颜色必须是 3 个 0~255 的分量
func validateRecipeBook(book *RecipeBook) error {
	if len(book.Recipes) == 0 {
		return ErrEmptyRecipeBook
	}

	ingredients := make(map[string]bool, len(book.Ingredients))
	for _, ing := range book.Ingredients {
		if ingredients[ing.Name] {
			return fmt.Errorf("ingredient %q: %w", ing.Name, ErrDuplicateName)
		}
		if len(ing.Color) > 0 {
			if _, err := parseRGB(ing.Color); err != nil {
				return fmt.Errorf("ingredient %q: %w", ing.Name, err)
			}
		}
		ingredients[ing.Name] = true
	}

	backgrounds := make(map[string]bool, len(book.Backgrounds))
	for _, bg := range book.Backgrounds {
		if backgrounds[bg.ID] {
			return fmt.Errorf("background %q: %w", bg.ID, ErrDuplicateName)
		}
		if len(bg.Color) > 0 {
			if _, err := parseRGB(bg.Color); err != nil {
				return fmt.Errorf("background %q: %w", bg.ID, err)
			}
		}
		backgrounds[bg.ID] = true
	}

	recipes := make(map[string]bool, len(book.Recipes))
	for _, recipe := range book.Recipes {
		if recipes[recipe.Name] {
			return fmt.Errorf("recipe %q: %w", recipe.Name, ErrDuplicateName)
		}
		recipes[recipe.Name] = true

		if len(recipe.Ingredients) == 0 {
			return fmt.Errorf("recipe %q: %w", recipe.Name, ErrRecipeNoIngredients)
		}

		seen := make(map[string]bool, len(recipe.Ingredients))
		for _, name := range recipe.Ingredients {
			if !ingredients[name] {
				return fmt.Errorf("recipe %q needs %q: %w", recipe.Name, name, ErrUnknownIngredient)
			}
			if seen[name] {
				return fmt.Errorf("recipe %q lists %q twice: %w", recipe.Name, name, ErrDuplicateName)
			}
			seen[name] = true
		}

		if recipe.Background != "" && !backgrounds[recipe.Background] {
			return fmt.Errorf("recipe %q uses %q: %w", recipe.Name, recipe.Background, ErrUnknownBackground)
		}
	}

	return nil
}

// parseRGB 将 [R, G, B] 转换为不透明颜色
func parseRGB(components []int) (color.RGBA, error) {
	if len(components) != 3 {
		return color.RGBA{}, fmt.Errorf("expected 3 components, got %d: %w", len(components), ErrInvalidColor)
	}
	for _, c := range components {
		if c < 0 || c > 255 {
			return color.RGBA{}, fmt.Errorf("component %d out of range: %w", c, ErrInvalidColor)
		}
	}
	return color.RGBA{R: uint8(components[0]), G: uint8(components[1]), B: uint8(components[2]), A: 255}, nil
}
