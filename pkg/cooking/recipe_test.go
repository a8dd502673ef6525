package cooking

import (
	"testing"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRequires(t *testing.T) {
	assert.True(t, testRecipe.Requires("ఉప్పు"))
	assert.False(t, testRecipe.Requires("బియ్యం"))
	assert.False(t, testRecipe.Requires(""))
}

func TestRecipesFromBook(t *testing.T) {
	book := &config.RecipeBook{
		Recipes: []config.RecipeConfig{
			{Name: "A", Background: "kitchen", Ingredients: []string{"x", "y"}, Instructions: "do A"},
			{Name: "B", Background: "modern_kitchen", Ingredients: []string{"z"}, Instructions: "do B"},
		},
	}

	recipes := RecipesFromBook(book)
	require.Len(t, recipes, 2)
	assert.Equal(t, "A", recipes[0].Name)
	assert.Equal(t, []string{"x", "y"}, recipes[0].Ingredients)
	assert.Equal(t, "kitchen", recipes[0].Background)
	assert.Equal(t, "do B", recipes[1].Instructions)

	// 菜谱与配置互不影响
	book.Recipes[0].Ingredients[0] = "changed"
	assert.Equal(t, "x", recipes[0].Ingredients[0])
}

func TestBundledRecipesResolve(t *testing.T) {
	book, err := config.LoadRecipeBook("../../data/recipes.yaml")
	require.NoError(t, err)

	for _, recipe := range RecipesFromBook(book) {
		for _, name := range recipe.Ingredients {
			_, ok := book.FindIngredient(name)
			assert.True(t, ok, "recipe %s needs %s which is not in the pantry", recipe.Name, name)
		}
	}
}
