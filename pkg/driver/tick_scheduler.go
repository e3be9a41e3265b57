package driver

import "time"

// TickScheduler 由帧循环轮询的调度器
//
// 宿主在每个逻辑帧调用 Poll，返回 true 时才执行一次渲染。
// 预约只记录截止时间，从不阻塞。
type TickScheduler struct {
	now      func() time.Time
	pending  bool
	hasDue   bool
	dueAt    time.Time
	detached bool
}

// NewTickScheduler 创建调度器，now 为 nil 时使用 time.Now
func NewTickScheduler(now func() time.Time) *TickScheduler {
	if now == nil {
		now = time.Now
	}
	return &TickScheduler{now: now}
}

// RequestRedraw 实现 Scheduler
func (s *TickScheduler) RequestRedraw() {
	s.pending = true
}

// RequestRedrawAfter 实现 Scheduler
func (s *TickScheduler) RequestRedrawAfter(d time.Duration) error {
	if s.detached {
		return ErrDetached
	}
	due := s.now().Add(d)
	if !s.hasDue || due.Before(s.dueAt) {
		s.dueAt = due
	}
	s.hasDue = true
	return nil
}

// Poll 检查是否需要重绘，并消费对应的请求
func (s *TickScheduler) Poll() bool {
	if s.pending {
		s.pending = false
		return true
	}
	if s.hasDue && !s.now().Before(s.dueAt) {
		s.hasDue = false
		return true
	}
	return false
}

// NextDue 返回下一次预约的时间
func (s *TickScheduler) NextDue() (time.Time, bool) {
	return s.dueAt, s.hasDue
}

// Detach 分离调度器，之后的预约都会失败
func (s *TickScheduler) Detach() {
	s.detached = true
	s.hasDue = false
}

// Attach 重新接入宿主
func (s *TickScheduler) Attach() {
	s.detached = false
}
