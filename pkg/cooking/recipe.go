// Package cooking 实现一道菜从选料到装盘的阶段流程
//
// 阶段顺序固定为 select → chop → mix → serve，只能前进不能回退。
// Controller 独占当前阶段的小游戏实例，每次阶段切换都会创建新实例。
package cooking

import (
	"slices"

	"github.com/decker502/vantalu/pkg/config"
)

// Recipe 一道菜谱，创建后不再修改
type Recipe struct {
	Name         string
	Ingredients  []string // 所需食材；匹配时不考虑顺序，显示时按此顺序
	Instructions string
	Background   string // 厨房背景ID
}

// Requires 判断该菜谱是否需要指定食材
func (r Recipe) Requires(name string) bool {
	return slices.Contains(r.Ingredients, name)
}

// RecipesFromBook 从菜谱书配置构建菜谱列表，保持配置中的顺序
func RecipesFromBook(book *config.RecipeBook) []Recipe {
	recipes := make([]Recipe, 0, len(book.Recipes))
	for _, rc := range book.Recipes {
		recipes = append(recipes, Recipe{
			Name:         rc.Name,
			Ingredients:  slices.Clone(rc.Ingredients),
			Instructions: rc.Instructions,
			Background:   rc.Background,
		})
	}
	return recipes
}
