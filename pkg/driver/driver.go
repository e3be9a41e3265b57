// Package driver 提供动画帧驱动器及其重绘调度器
//
// 驱动器只负责“是否在动画中”和“何时请求下一次重绘”，
// 实际的重绘时机由宿主平台的调度器决定，任何实现都不得阻塞渲染线程。
package driver

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDetached 调度器已与宿主分离（窗口关闭、视图移除等）
	ErrDetached = errors.New("scheduler detached")

	// ErrStalled 预约下一次重绘失败，动画停在当前位置
	ErrStalled = errors.New("animation stalled")
)

// Scheduler 是宿主提供的重绘请求接口
type Scheduler interface {
	// RequestRedraw 请求尽快重绘
	RequestRedraw()

	// RequestRedrawAfter 请求在 d 之后重绘
	RequestRedrawAfter(d time.Duration) error
}

// Driver 帧驱动器
type Driver struct {
	animating bool
	delay     time.Duration
	scheduler Scheduler
}

// New 创建帧驱动器
//
// 参数：
//   - s: 宿主调度器
//   - delay: 两次 tick 之间的间隔
func New(s Scheduler, delay time.Duration) *Driver {
	return &Driver{
		delay:     delay,
		scheduler: s,
	}
}

// Animating 是否在动画中
func (d *Driver) Animating() bool {
	return d.animating
}

// Start 开始动画并立即请求一次重绘；已在动画中时忽略
func (d *Driver) Start() {
	if d.animating {
		return
	}
	d.animating = true
	d.scheduler.RequestRedraw()
}

// Stop 停止动画
func (d *Driver) Stop() {
	d.animating = false
}

// Animate 在动画中时执行一次 tick 并预约下一次重绘
//
// tick 内部可以调用 Stop；即使如此也会预约一次重绘，
// 以便画出周期结束时的最终状态。
//
// 返回：
//   - error: 预约失败时返回包装了 ErrStalled 的错误，驱动器随之停止
func (d *Driver) Animate(tick func()) error {
	if !d.animating {
		return nil
	}
	tick()
	if err := d.scheduler.RequestRedrawAfter(d.delay); err != nil {
		d.animating = false
		return fmt.Errorf("%w: %w", ErrStalled, err)
	}
	return nil
}
