package canvas

import "image/color"

// Line 是 Recorder 记录下来的一条线段（已变换到画布坐标）
type Line struct {
	X1, Y1, X2, Y2 float64
	Paint          Paint
}

// Recorder 是只记录操作的内存画布，供测试和无头渲染统计使用
type Recorder struct {
	W, H    float64
	Cleared []color.Color
	Lines   []Line
	stack   *MatrixStack
}

// NewRecorder 创建指定尺寸的记录画布
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, stack: NewMatrixStack()}
}

// Size 实现 Canvas
func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Clear 实现 Canvas，同时丢弃之前记录的线段
func (r *Recorder) Clear(c color.Color) {
	r.Cleared = append(r.Cleared, c)
	r.Lines = r.Lines[:0]
}

// Save 实现 Canvas
func (r *Recorder) Save() { r.stack.Save() }

// Restore 实现 Canvas
func (r *Recorder) Restore() { r.stack.Restore() }

// Translate 实现 Canvas
func (r *Recorder) Translate(x, y float64) { r.stack.Translate(x, y) }

// Rotate 实现 Canvas
func (r *Recorder) Rotate(deg float64) { r.stack.Rotate(deg) }

// DrawLine 实现 Canvas
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, p Paint) {
	ax, ay := r.stack.Apply(x1, y1)
	bx, by := r.stack.Apply(x2, y2)
	r.Lines = append(r.Lines, Line{X1: ax, Y1: ay, X2: bx, Y2: by, Paint: p})
}

// Depth 返回未恢复的 Save 次数，绘制结束后应为 0
func (r *Recorder) Depth() int { return r.stack.Depth() }
