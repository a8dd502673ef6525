package config

import (
	"image"
	"testing"
)

// TestIngredientIconRect 测试食材网格坐标计算（每行 5 个）
func TestIngredientIconRect(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  image.Rectangle
	}{
		{name: "第一个", index: 0, want: image.Rect(100, 150, 164, 214)},
		{name: "第一行最后一个", index: 4, want: image.Rect(500, 150, 564, 214)},
		{name: "第二行第一个", index: 5, want: image.Rect(100, 250, 164, 314)},
		{name: "第四行第三个", index: 17, want: image.Rect(300, 450, 364, 514)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IngredientIconRect(tt.index); got != tt.want {
				t.Errorf("IngredientIconRect(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

// TestRecipeButtonRect 测试菜谱按钮纵向排列
func TestRecipeButtonRect(t *testing.T) {
	if got, want := RecipeButtonRect(0), image.Rect(200, 150, 600, 230); got != want {
		t.Errorf("RecipeButtonRect(0) = %v, want %v", got, want)
	}
	if got, want := RecipeButtonRect(4), image.Rect(200, 550, 600, 630); got != want {
		t.Errorf("RecipeButtonRect(4) = %v, want %v", got, want)
	}
}

// TestButtonsDoNotOverlapIngredientGrid 下一步按钮不能压住食材网格
func TestButtonsDoNotOverlapIngredientGrid(t *testing.T) {
	for i := 0; i < 20; i++ {
		icon := IngredientIconRect(i)
		if icon.Overlaps(NextButtonRect) {
			t.Errorf("ingredient %d at %v overlaps next button %v", i, icon, NextButtonRect)
		}
		if icon.Overlaps(HelpButtonRect) {
			t.Errorf("ingredient %d at %v overlaps help button %v", i, icon, HelpButtonRect)
		}
	}
}
