// Package canvas 定义图形绘制所需的最小 2D 绘图上下文
//
// 坐标变换遵循常见画布语义：Translate/Rotate 作用于局部坐标，
// Save/Restore 成对使用以保存和恢复变换栈。
package canvas

import "image/color"

// Paint 描述一条线段的画笔
type Paint struct {
	Color       color.Color
	StrokeWidth float64
	RoundCap    bool
}

// Canvas 是宿主平台提供的绘图上下文
type Canvas interface {
	// Size 返回画布的逻辑尺寸
	Size() (w, h float64)

	// Clear 用指定颜色填充整个画布（不受变换影响）
	Clear(c color.Color)

	// Save 压入当前变换
	Save()

	// Restore 弹出最近一次 Save 的变换，栈为空时忽略
	Restore()

	// Translate 平移局部坐标系
	Translate(x, y float64)

	// Rotate 旋转局部坐标系，单位为角度（顺时针，y 轴向下）
	Rotate(deg float64)

	// DrawLine 在当前变换下绘制线段
	DrawLine(x1, y1, x2, y2 float64, p Paint)
}
