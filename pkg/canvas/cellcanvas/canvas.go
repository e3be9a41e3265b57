// Package cellcanvas 在 tcell 终端屏幕上实现 canvas.Canvas
//
// 每个字符单元显示上下两个像素（'▀' 前景为上半、背景为下半），
// 因此逻辑尺寸为 cols × rows*2。
package cellcanvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/triangledowntoleft/pkg/canvas"
)

const halfBlock = '▀'

// Canvas 终端像素画布
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
	pixels     []color.RGBA
	stack      *canvas.MatrixStack
}

// New 创建画布并按屏幕当前尺寸分配像素
func New(s tcell.Screen) *Canvas {
	c := &Canvas{
		screen: s,
		stack:  canvas.NewMatrixStack(),
	}
	c.Resize()
	return c
}

// Resize 按屏幕尺寸重新分配像素缓冲
func (c *Canvas) Resize() {
	c.cols, c.rows = c.screen.Size()
	c.pixels = make([]color.RGBA, c.cols*c.rows*2)
}

// Size 实现 canvas.Canvas
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows * 2)
}

// Clear 实现 canvas.Canvas，同时重置变换栈
func (c *Canvas) Clear(clr color.Color) {
	fill := toRGBA(clr)
	for i := range c.pixels {
		c.pixels[i] = fill
	}
	c.stack.Reset()
}

// Save 实现 canvas.Canvas
func (c *Canvas) Save() { c.stack.Save() }

// Restore 实现 canvas.Canvas
func (c *Canvas) Restore() { c.stack.Restore() }

// Translate 实现 canvas.Canvas
func (c *Canvas) Translate(x, y float64) { c.stack.Translate(x, y) }

// Rotate 实现 canvas.Canvas
func (c *Canvas) Rotate(deg float64) { c.stack.Rotate(deg) }

// DrawLine 实现 canvas.Canvas
//
// 沿线段以半个像素为步长盖印圆盘，端点天然是圆头。
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, p canvas.Paint) {
	ax, ay := c.stack.Apply(x1, y1)
	bx, by := c.stack.Apply(x2, y2)
	r := math.Max(p.StrokeWidth/2, 0.5)
	clr := toRGBA(p.Color)

	steps := int(math.Ceil(math.Hypot(bx-ax, by-ay)*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stamp(ax+(bx-ax)*t, ay+(by-ay)*t, r, clr)
	}
}

// stamp 填充以 (x,y) 为圆心、r 为半径的像素
func (c *Canvas) stamp(x, y, r float64, clr color.RGBA) {
	h := c.rows * 2
	for py := int(math.Floor(y - r)); py <= int(math.Ceil(y+r)); py++ {
		if py < 0 || py >= h {
			continue
		}
		for px := int(math.Floor(x - r)); px <= int(math.Ceil(x+r)); px++ {
			if px < 0 || px >= c.cols {
				continue
			}
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= r*r {
				c.pixels[py*c.cols+px] = clr
			}
		}
	}
}

// Pixel 返回逻辑像素 (x,y) 的颜色
func (c *Canvas) Pixel(x, y int) color.RGBA {
	return c.pixels[y*c.cols+x]
}

// Show 把像素缓冲写入终端并刷新
func (c *Canvas) Show() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(2*row)*c.cols+col]
			bottom := c.pixels[(2*row+1)*c.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			c.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	c.screen.Show()
}

func toRGBA(clr color.Color) color.RGBA {
	if rgba, ok := clr.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := clr.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
