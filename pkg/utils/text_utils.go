package utils

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText 在 (x, y) 绘制文本（左上角对齐）
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawCenteredText 在矩形 r 内居中绘制文本
func DrawCenteredText(dst *ebiten.Image, s string, face text.Face, r image.Rectangle, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	w, h := text.Measure(s, face, 0)
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	DrawText(dst, s, face, x, y, clr)
}

// DrawTextCenteredX 以 centerX 为水平中心、y 为顶部绘制文本
func DrawTextCenteredX(dst *ebiten.Image, s string, face text.Face, centerX, y float64, clr color.Color) {
	DrawText(dst, s, face, centerX-measureTextWidth(s, face)/2, y, clr)
}

// DrawTextRightAligned 以 rightX 为右边界绘制文本
func DrawTextRightAligned(dst *ebiten.Image, s string, face text.Face, rightX, y float64, clr color.Color) {
	DrawText(dst, s, face, rightX-measureTextWidth(s, face), y, clr)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 逐字符累加，超宽时断行
//   - 如果单个字符就超过最大宽度，强制单独成行
//   - 支持泰卢固文与英文混合文本（按 rune 处理）
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)

		testLine := currentLine + char
		if measureTextWidth(testLine, font) > maxWidth {
			if currentLine == "" {
				lines = append(lines, char)
				textStr = textStr[size:]
				continue
			}

			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = char
		} else {
			currentLine = testLine
		}

		textStr = textStr[size:]
	}

	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}

	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
