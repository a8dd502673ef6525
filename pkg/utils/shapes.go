package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments 椭圆近似多边形的边数
const ellipseSegments = 48

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// StrokeRect 绘制矩形边框
func StrokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// ellipsePath 构造内切于矩形 r 的椭圆路径
func ellipsePath(r image.Rectangle) *vector.Path {
	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2

	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + rx*math.Cos(theta))
		y := float32(cy + ry*math.Sin(theta))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// drawPathOptions 以纯色、抗锯齿方式绘制路径
func drawPathOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

// FillEllipse 填充内切于矩形 r 的椭圆
func FillEllipse(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillPath(dst, ellipsePath(r), nil, drawPathOptions(clr))
}

// StrokeEllipse 绘制内切于矩形 r 的椭圆边框
func StrokeEllipse(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vector.StrokePath(dst, ellipsePath(r), op, drawPathOptions(clr))
}
