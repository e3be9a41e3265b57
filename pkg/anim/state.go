package anim

import "math"

// UpdateResult 表示一次 Update 之后动画的走向
type UpdateResult int

const (
	// Continue 当前周期尚未结束
	Continue UpdateResult = iota
	// Advance 当前周期刚好完成一个单位，控制权应交给相邻节点
	Advance
)

// String 返回可读名称（用于日志）
func (r UpdateResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Advance:
		return "advance"
	default:
		return "unknown"
	}
}

// State 单个图形的动画状态
//
// 零值即为静止状态：Scale=0, PrevScale=0, Dir=0。
type State struct {
	Scale     float64 // 当前缩放，0 ~ 1
	PrevScale float64 // 上一次完成周期时提交的缩放（0 或 1）
	Dir       float64 // 方向：-1, 0, 1
}

// Update 按 step 推进一次缩放
//
// 当累计变化量超过 1 时，缩放会被精确吸附到 PrevScale+Dir，
// 方向清零并返回 Advance；保证每个周期只前进一个单位。
//
// 参数：
//   - step: 每次推进的增量
//
// 返回：
//   - UpdateResult: Continue 或 Advance
func (s *State) Update(step float64) UpdateResult {
	s.Scale += s.Dir * step
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + s.Dir
		s.Dir = 0
		s.PrevScale = s.Scale
		return Advance
	}
	return Continue
}

// StartUpdating 在静止时启动一个新周期
//
// 方向由上一次提交的缩放决定（0 → +1，1 → -1）。
// 已经在动画中时不做任何事。
//
// 返回：
//   - bool: 是否真正启动了新周期
func (s *State) StartUpdating() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*s.PrevScale
	return true
}

// Abort 放弃进行中的周期，回到最后一次提交的缩放
func (s *State) Abort() {
	s.Scale = s.PrevScale
	s.Dir = 0
}

// Animating 是否处于周期之中
func (s *State) Animating() bool {
	return s.Dir != 0
}
