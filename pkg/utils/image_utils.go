package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SolidImage 创建指定尺寸的纯色图片
// 用作图片资源缺失时的占位图
func SolidImage(width, height int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(clr)
	return img
}

// ScaleImageTo 将图片缩放到指定尺寸，返回新图片
//
// 参数：
//   - src: 源图片，为 nil 时返回 nil
//   - width, height: 目标尺寸
//
// 注意：
//   - 会创建新的 GPU 图片，应在加载阶段调用，不要逐帧调用
//   - 尺寸已匹配时直接返回源图片
func ScaleImageTo(src *ebiten.Image, width, height int) *ebiten.Image {
	if src == nil {
		return nil
	}

	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src
	}

	dst := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(bounds.Dx()), float64(height)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// DrawImageAt 在 (x, y) 绘制图片
func DrawImageAt(dst, img *ebiten.Image, x, y int) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(img, op)
}
