package driver

import (
	"sync"
	"time"
)

// TimerScheduler 基于 time.AfterFunc 的调度器
//
// 到期时向 C 发送一个信号，由宿主的事件循环在自己的 goroutine 中渲染。
// C 的容量为 1，多个重绘请求会合并为一次。
type TimerScheduler struct {
	C chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewTimerScheduler 创建调度器
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{C: make(chan struct{}, 1)}
}

// signal 非阻塞地发送重绘信号
func (s *TimerScheduler) signal() {
	select {
	case s.C <- struct{}{}:
	default:
	}
}

// RequestRedraw 实现 Scheduler
func (s *TimerScheduler) RequestRedraw() {
	s.signal()
}

// RequestRedrawAfter 实现 Scheduler
func (s *TimerScheduler) RequestRedrawAfter(d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrDetached
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.signal)
	return nil
}

// Close 停止挂起的定时器并分离调度器
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
