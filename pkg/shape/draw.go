package shape

import (
	"image/color"
	"math"

	"github.com/decker502/triangledowntoleft/pkg/anim"
	"github.com/decker502/triangledowntoleft/pkg/canvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
)

// 分段索引
const (
	stageLeftEdge   = 0 // 左上 → 左下
	stageBottomEdge = 1 // 左下 → 右下
	stageSlantEdge  = 2 // 右下 → 左上
	stageRotate     = 3
	stageSlide      = 4
)

// stage 读取第 i 段进度，分段数少于 i+1 时视为已完成
func stage(scale float64, i, parts int) float64 {
	if i >= parts {
		if scale >= 1 {
			return 1
		}
		return 0
	}
	return anim.StageFraction(scale, i, parts)
}

// DrawTriangleDownToLeft 绘制直角朝向左下的三角形
//
// 前三段依次描出三条边，第四段绕中心旋转 Deg，第五段向屏幕左下角滑出。
//
// 参数：
//   - c: 绘图上下文
//   - scale: 节点当前缩放 0 ~ 1
//   - clr: 线条颜色
//   - w: 控件配置
func DrawTriangleDownToLeft(c canvas.Canvas, scale float64, clr color.Color, w config.Widget) {
	width, height := c.Size()
	m := math.Min(width, height)
	size := m / w.SizeFactor
	half := size / 2

	paint := canvas.Paint{
		Color:       clr,
		StrokeWidth: m / w.StrokeFactor,
		RoundCap:    true,
	}

	slide := stage(scale, stageSlide, w.Parts)

	c.Save()
	c.Translate(width/2-width/2*slide, height/2+height/2*slide)
	c.Rotate(w.Deg * stage(scale, stageRotate, w.Parts))

	topLeftX, topLeftY := -half, -half
	cornerX, cornerY := -half, half
	rightX, rightY := half, half

	drawPartialLine(c, topLeftX, topLeftY, cornerX, cornerY, stage(scale, stageLeftEdge, w.Parts), paint)
	drawPartialLine(c, cornerX, cornerY, rightX, rightY, stage(scale, stageBottomEdge, w.Parts), paint)
	drawPartialLine(c, rightX, rightY, topLeftX, topLeftY, stage(scale, stageSlantEdge, w.Parts), paint)

	c.Restore()
}

// drawPartialLine 从 (x1,y1) 出发，沿线段方向绘制 f 比例的长度
func drawPartialLine(c canvas.Canvas, x1, y1, x2, y2, f float64, p canvas.Paint) {
	if f <= 0 {
		return
	}
	c.DrawLine(x1, y1, x1+(x2-x1)*f, y1+(y2-y1)*f, p)
}
