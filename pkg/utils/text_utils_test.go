package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := newTestFace(t, 18)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{name: "短文本不换行", input: "rice", maxWidth: 400, expectMin: 1},
		{name: "长文本换行", input: strings.Repeat("mix the lemon juice ", 10), maxWidth: 200, expectMin: 2},
		{name: "泰卢固文换行", input: strings.Repeat("బియ్యం ఉడికించి ", 8), maxWidth: 120, expectMin: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("Expected at least %d lines, got %d: %v", tt.expectMin, len(lines), lines)
			}
			for i, line := range lines {
				if len([]rune(line)) > 1 && measureTextWidth(line, font) > tt.maxWidth {
					t.Errorf("line %d %q exceeds max width %.0f", i, line, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextDegenerateInput 测试边界输入
func TestWrapTextDegenerateInput(t *testing.T) {
	font := newTestFace(t, 18)

	if lines := WrapText("", font, 100); len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty text should return single empty line, got %v", lines)
	}
	if lines := WrapText("abc", nil, 100); len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("nil font should return text unchanged, got %v", lines)
	}
	if lines := WrapText("abc", font, 0); len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("zero width should return text unchanged, got %v", lines)
	}
}

// TestMeasureTextWidth 测试宽度测量
func TestMeasureTextWidth(t *testing.T) {
	font := newTestFace(t, 18)

	if w := measureTextWidth("", font); w != 0 {
		t.Errorf("empty string width = %f, want 0", w)
	}
	if w := measureTextWidth("abc", nil); w != 0 {
		t.Errorf("nil font width = %f, want 0", w)
	}
	short := measureTextWidth("ab", font)
	long := measureTextWidth("abcdef", font)
	if !(long > short && short > 0) {
		t.Errorf("expected width to grow with text, got short=%f long=%f", short, long)
	}
}
