package shape

import (
	"log"

	"github.com/decker502/triangledowntoleft/pkg/anim"
	"github.com/decker502/triangledowntoleft/pkg/canvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
)

// Chain 固定长度的节点序列及遍历游标
//
// 节点在构造后不再增删；游标在两端反弹而不是回绕。
type Chain struct {
	nodes  []Node
	cur    int
	dir    int // +1 或 -1
	widget config.Widget
}

// NewChain 按调色板长度创建节点序列，游标位于 0，方向 +1
func NewChain(w config.Widget) *Chain {
	nodes := make([]Node, len(w.Palette))
	for i := range nodes {
		nodes[i].Index = i
	}
	return &Chain{
		nodes:  nodes,
		cur:    0,
		dir:    1,
		widget: w,
	}
}

// Len 返回节点数
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Current 返回当前节点
func (c *Chain) Current() *Node {
	return &c.nodes[c.cur]
}

// CurrentIndex 返回当前节点索引
func (c *Chain) CurrentIndex() int {
	return c.cur
}

// Direction 返回遍历方向
func (c *Chain) Direction() int {
	return c.dir
}

// Node 返回第 i 个节点（只读用途）
func (c *Chain) Node(i int) *Node {
	return &c.nodes[i]
}

// next 返回 dir 方向上的相邻索引；到达边界时翻转方向并停在原地
func (c *Chain) next(dir int) int {
	n := c.cur + dir
	if n < 0 || n >= len(c.nodes) {
		c.dir = -c.dir
		return c.cur
	}
	return n
}

// Update 推进当前节点；周期完成时移动到相邻节点
//
// 返回：
//   - anim.UpdateResult: 当前节点完成一个单位时为 Advance
func (c *Chain) Update() anim.UpdateResult {
	res := c.Current().Update(c.widget)
	if res == anim.Advance {
		from := c.cur
		c.cur = c.next(c.dir)
		log.Printf("[Chain] 节点 %d 完成周期 (scale=%.0f)，当前节点 %d，方向 %+d",
			from, c.nodes[from].State.Scale, c.cur, c.dir)
	}
	return res
}

// StartUpdating 在当前节点上启动新周期
func (c *Chain) StartUpdating() bool {
	return c.Current().StartUpdating()
}

// Abort 放弃当前节点进行中的周期
func (c *Chain) Abort() {
	c.Current().State.Abort()
}

// Draw 绘制当前节点
func (c *Chain) Draw(cv canvas.Canvas) {
	c.Current().Draw(cv, c.widget)
}
