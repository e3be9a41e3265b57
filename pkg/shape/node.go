// Package shape 实现按颜色排列的三角形节点序列及其遍历控制
package shape

import (
	"github.com/decker502/triangledowntoleft/pkg/anim"
	"github.com/decker502/triangledowntoleft/pkg/canvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
)

// Node 序列中的一个图形实例，每种颜色一个
type Node struct {
	Index int
	State anim.State
}

// Update 推进本节点的动画状态
func (n *Node) Update(w config.Widget) anim.UpdateResult {
	return n.State.Update(w.Step)
}

// StartUpdating 尝试在本节点上启动新周期
func (n *Node) StartUpdating() bool {
	return n.State.StartUpdating()
}

// Draw 使用本节点的颜色和当前缩放绘制三角形
func (n *Node) Draw(c canvas.Canvas, w config.Widget) {
	DrawTriangleDownToLeft(c, n.State.Scale, w.Color(n.Index), w)
}
