// Package ebitencanvas 在 ebiten.Image 上实现 canvas.Canvas
package ebitencanvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/triangledowntoleft/pkg/canvas"
)

// Canvas 包装一帧的目标图像
//
// 变换以 ebiten.GeoM 保存；ebiten 的 GeoM.Translate 是在已有变换之后追加，
// 这里通过 Concat 把新变换放在前面，得到画布式的局部坐标语义。
type Canvas struct {
	dst   *ebiten.Image
	geoM  ebiten.GeoM
	saved []ebiten.GeoM
}

// New 创建画布
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Reset 切换目标图像并清空变换栈，便于每帧复用
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.geoM.Reset()
	c.saved = c.saved[:0]
}

// Size 实现 canvas.Canvas
func (c *Canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear 实现 canvas.Canvas
func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

// Save 实现 canvas.Canvas
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.geoM)
}

// Restore 实现 canvas.Canvas
func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.geoM = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// prepend 让 op 先作用于局部坐标
func (c *Canvas) prepend(op ebiten.GeoM) {
	op.Concat(c.geoM)
	c.geoM = op
}

// Translate 实现 canvas.Canvas
func (c *Canvas) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	c.prepend(op)
}

// Rotate 实现 canvas.Canvas
func (c *Canvas) Rotate(deg float64) {
	var op ebiten.GeoM
	op.Rotate(deg * math.Pi / 180)
	c.prepend(op)
}

// Apply 将局部坐标变换到图像坐标
func (c *Canvas) Apply(x, y float64) (float64, float64) {
	return c.geoM.Apply(x, y)
}

// DrawLine 实现 canvas.Canvas
//
// vector.StrokeLine 只有平头端点，圆头通过在两端补画圆实现。
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, p canvas.Paint) {
	ax, ay := c.geoM.Apply(x1, y1)
	bx, by := c.geoM.Apply(x2, y2)
	width := float32(p.StrokeWidth)

	vector.StrokeLine(c.dst, float32(ax), float32(ay), float32(bx), float32(by), width, p.Color, true)
	if p.RoundCap {
		r := width / 2
		vector.FillCircle(c.dst, float32(ax), float32(ay), r, p.Color, true)
		vector.FillCircle(c.dst, float32(bx), float32(by), r, p.Color, true)
	}
}
