// Package anim 提供分段缩放插值与单个图形的动画状态
package anim

import "math"

// Inverse 返回 1/n
func Inverse(n int) float64 {
	return 1.0 / float64(n)
}

// MaxScale 返回第 i 段之前剩余的缩放量（不小于 0）
func MaxScale(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)*Inverse(n))
}

// StageFraction 计算第 i 段（共 n 段）的进度
//
// 整体缩放 [0,1] 被等分为 n 个窗口，第 i 段只有在前面各段饱和后才开始增长。
//
// 返回：
//   - float64: 该段进度，范围 [0,1]
func StageFraction(scale float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(scale, i, n)) * float64(n)
}

// StageFractions 一次性计算全部 n 段的进度
func StageFractions(scale float64, n int) []float64 {
	fractions := make([]float64, n)
	for i := range fractions {
		fractions[i] = StageFraction(scale, i, n)
	}
	return fractions
}
