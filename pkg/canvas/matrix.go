package canvas

import (
	"math"

	"github.com/fogleman/gg"
)

// MatrixStack 基于 gg.Matrix 的变换栈
//
// 供没有原生变换支持的画布实现（终端、测试记录器）使用。
type MatrixStack struct {
	current gg.Matrix
	saved   []gg.Matrix
}

// NewMatrixStack 创建单位变换栈
func NewMatrixStack() *MatrixStack {
	return &MatrixStack{current: gg.Identity()}
}

// Save 压入当前变换
func (s *MatrixStack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore 弹出变换
func (s *MatrixStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Translate 平移局部坐标系
func (s *MatrixStack) Translate(x, y float64) {
	s.current = s.current.Translate(x, y)
}

// Rotate 旋转局部坐标系（角度）
func (s *MatrixStack) Rotate(deg float64) {
	s.current = s.current.Rotate(gg.Radians(deg))
}

// Apply 将局部坐标变换为画布坐标
func (s *MatrixStack) Apply(x, y float64) (float64, float64) {
	return s.current.TransformPoint(x, y)
}

// Reset 清空栈并回到单位变换
func (s *MatrixStack) Reset() {
	s.current = gg.Identity()
	s.saved = s.saved[:0]
}

// Depth 返回当前栈深度
func (s *MatrixStack) Depth() int {
	return len(s.saved)
}

// Scale 返回当前变换的线性缩放因子（用于线宽）
func (s *MatrixStack) Scale() float64 {
	return math.Sqrt(math.Abs(s.current.XX*s.current.YY - s.current.XY*s.current.YX))
}
