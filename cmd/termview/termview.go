package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/triangledowntoleft/pkg/canvas/cellcanvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
	"github.com/decker502/triangledowntoleft/pkg/driver"
	"github.com/decker502/triangledowntoleft/pkg/view"
)

// termView 终端宿主
//
// 所有控件状态只在 run 所在的 goroutine 中访问；
// 事件轮询和定时器只向通道发送信号。
type termView struct {
	screen    tcell.Screen
	canvas    *cellcanvas.Canvas
	scheduler *driver.TimerScheduler
	renderer  *view.Renderer
	buttons   tcell.ButtonMask
}

func newTermView(screen tcell.Screen, widget config.Widget) *termView {
	scheduler := driver.NewTimerScheduler()
	return &termView{
		screen:    screen,
		canvas:    cellcanvas.New(screen),
		scheduler: scheduler,
		renderer:  view.NewRenderer(widget, scheduler),
	}
}

// run 事件循环，直到用户退出或屏幕关闭
func (tv *termView) run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := tv.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tv.scheduler.RequestRedraw()
	for {
		select {
		case ev := <-events:
			if !tv.handleEvent(ev) {
				return
			}
		case <-tv.scheduler.C:
			tv.renderer.Render(tv.canvas)
			tv.canvas.Show()
		}
	}
}

// handleEvent 分发终端事件，返回 false 表示退出
func (tv *termView) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return tv.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		tv.handleMouse(ev.Buttons())
	case *tcell.EventResize:
		tv.screen.Sync()
		tv.canvas.Resize()
		tv.renderer.Paint(tv.canvas)
		tv.canvas.Show()
	}
	return true
}

// handleKey 处理按键，返回 false 表示退出
func (tv *termView) handleKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape || key == tcell.KeyCtrlC:
		return false
	case key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return false
	case key == tcell.KeyEnter, key == tcell.KeyRune && r == ' ':
		tv.renderer.HandleTap()
	}
	return true
}

// handleMouse 只在左键从松开变为按下时触发点击
func (tv *termView) handleMouse(buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0
	wasPressed := tv.buttons&tcell.Button1 != 0
	tv.buttons = buttons
	if pressed && !wasPressed {
		log.Printf("[TermView] mouse tap")
		tv.renderer.HandleTap()
	}
}
