// Package ggcanvas 基于 fogleman/gg 的光栅画布，用于无头渲染和 PNG 导出
package ggcanvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/decker502/triangledowntoleft/pkg/canvas"
)

// Canvas 包装 gg.Context
type Canvas struct {
	dc    *gg.Context
	depth int
}

// New 创建 w×h 的画布
func New(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Size 实现 canvas.Canvas
func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Clear 实现 canvas.Canvas
func (c *Canvas) Clear(clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.Clear()
}

// Save 实现 canvas.Canvas
func (c *Canvas) Save() {
	c.dc.Push()
	c.depth++
}

// Restore 实现 canvas.Canvas
func (c *Canvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.depth--
}

// Translate 实现 canvas.Canvas
func (c *Canvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

// Rotate 实现 canvas.Canvas
func (c *Canvas) Rotate(deg float64) {
	c.dc.Rotate(gg.Radians(deg))
}

// DrawLine 实现 canvas.Canvas
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, p canvas.Paint) {
	c.dc.SetColor(p.Color)
	c.dc.SetLineWidth(p.StrokeWidth)
	if p.RoundCap {
		c.dc.SetLineCap(gg.LineCapRound)
	} else {
		c.dc.SetLineCap(gg.LineCapButt)
	}
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// Image 返回当前帧图像
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG 将当前帧写入 PNG 文件
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
