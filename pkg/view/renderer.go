// Package view 将节点序列、帧驱动器和绘图上下文组合为可由宿主调用的渲染器
package view

import (
	"log"

	"github.com/decker502/triangledowntoleft/pkg/anim"
	"github.com/decker502/triangledowntoleft/pkg/canvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
	"github.com/decker502/triangledowntoleft/pkg/driver"
	"github.com/decker502/triangledowntoleft/pkg/shape"
)

// Renderer 控件渲染器
//
// 所有方法都必须在宿主的渲染线程上调用。
type Renderer struct {
	widget config.Widget
	chain  *shape.Chain
	driver *driver.Driver
}

// NewRenderer 创建渲染器
//
// 参数：
//   - w: 已解析的控件配置
//   - s: 宿主的重绘调度器
func NewRenderer(w config.Widget, s driver.Scheduler) *Renderer {
	return &Renderer{
		widget: w,
		chain:  shape.NewChain(w),
		driver: driver.New(s, w.Delay),
	}
}

// Chain 返回节点序列（用于调试显示和测试）
func (r *Renderer) Chain() *shape.Chain {
	return r.chain
}

// Animating 是否正在播放周期
func (r *Renderer) Animating() bool {
	return r.driver.Animating()
}

// Paint 只绘制当前帧，不推进动画
func (r *Renderer) Paint(c canvas.Canvas) {
	c.Clear(r.widget.BackColor)
	r.chain.Draw(c)
}

// Render 绘制当前帧并推进一次动画
func (r *Renderer) Render(c canvas.Canvas) {
	r.Paint(c)
	if err := r.driver.Animate(r.tick); err != nil {
		// 预约失败不向宿主传播：丢弃进行中的周期，等待下一次点击重新开始
		log.Printf("[Renderer] %v，节点 %d 回到 scale=%.0f",
			err, r.chain.CurrentIndex(), r.chain.Current().State.PrevScale)
		r.chain.Abort()
	}
}

// tick 推进节点序列，周期完成时停止驱动器
func (r *Renderer) tick() {
	if r.chain.Update() == anim.Advance {
		r.driver.Stop()
	}
}

// HandleTap 处理一次按下事件
//
// 当前节点正在动画中时忽略。
func (r *Renderer) HandleTap() {
	if r.chain.StartUpdating() {
		log.Printf("[Renderer] 节点 %d 开始周期 (dir=%+.0f)",
			r.chain.CurrentIndex(), r.chain.Current().State.Dir)
		r.driver.Start()
	}
}
