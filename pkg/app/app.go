// Package app 提供控件宿主的核心包装器
//
// 该包把渲染器接入 ebiten 游戏循环，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/triangledowntoleft/pkg/canvas/ebitencanvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
	"github.com/decker502/triangledowntoleft/pkg/driver"
	"github.com/decker502/triangledowntoleft/pkg/settings"
	"github.com/decker502/triangledowntoleft/pkg/view"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 在画面左上角显示节点和缩放信息
	Debug bool
	// WidgetConfigPath 控件配置文件路径，为空则使用嵌入配置
	WidgetConfigPath string
	// Settings 窗口偏好管理器，可为 nil（移动端或降级模式）
	Settings *settings.SettingsManager
}

// App 是控件宿主，实现 ebiten.Game 接口
//
// 屏幕不会每帧清空：只有调度器认为需要重绘时才调用渲染器，
// 其余帧保留上一次的画面。
type App struct {
	renderer  *view.Renderer
	scheduler *driver.TickScheduler
	canvas    *ebitencanvas.Canvas
	settings  *settings.SettingsManager
	debug     bool

	width, height int
	frameDue      bool // 调度器要求的重绘（推进动画）
	repaint       bool // 尺寸变化后的重绘（不推进动画）

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化控件宿主
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	widget, err := config.LoadWidget(cfg.WidgetConfigPath)
	if err != nil {
		return nil, fmt.Errorf("控件配置加载失败: %w", err)
	}
	log.Printf("[App] 节点数 %d，重绘间隔 %v，分段数 %d", len(widget.Palette), widget.Delay, widget.Parts)

	scheduler := driver.NewTickScheduler(nil)
	// 首帧需要画出背景
	scheduler.RequestRedraw()

	ebiten.SetScreenClearedEveryFrame(false)

	return &App{
		renderer:  view.NewRenderer(widget, scheduler),
		scheduler: scheduler,
		canvas:    ebitencanvas.New(nil),
		settings:  cfg.Settings,
		debug:     cfg.Debug,
	}, nil
}

// Update 处理输入和重绘调度
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		a.scheduler.Detach()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			if a.settings != nil {
				s := a.settings.GetSettings()
				ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
				log.Printf("[App] Delayed SetWindowSize(%d, %d)", s.WindowWidth, s.WindowHeight)
			}
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if pointerJustPressed() {
		a.renderer.HandleTap()
	}

	if a.scheduler.Poll() {
		a.frameDue = true
	}
	return nil
}

// toggleFullscreen 切换全屏，退出全屏时恢复保存的窗口尺寸
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}

	if a.settings != nil {
		w, h := ebiten.WindowSize()
		a.settings.SetWindowSize(w, h)
	}
	ebiten.SetFullscreen(true)
}

// Draw 在需要时绘制一帧
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Reset(screen)

	switch {
	case a.frameDue:
		a.frameDue = false
		a.repaint = false
		a.renderer.Render(a.canvas)
	case a.repaint:
		a.repaint = false
		a.renderer.Paint(a.canvas)
	default:
		return
	}

	if a.debug {
		chain := a.renderer.Chain()
		node := chain.Current()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("node %d/%d dir %+d\nscale %.3f",
			chain.CurrentIndex(), chain.Len(), chain.Direction(), node.State.Scale))
	}
}

// Layout 使用完整的外部尺寸（全屏显示），尺寸变化时安排一次重绘
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.repaint = true
	}
	return outsideWidth, outsideHeight
}

// SaveOnExit 保存窗口偏好
//
// 返回 true 表示保存成功或无需保存
func (a *App) SaveOnExit() bool {
	if a.settings == nil {
		return true
	}

	fullscreen := ebiten.IsFullscreen()
	a.settings.SetFullscreen(fullscreen)
	if !fullscreen {
		w, h := ebiten.WindowSize()
		a.settings.SetWindowSize(w, h)
	}

	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

// Renderer 返回渲染器
func (a *App) Renderer() *view.Renderer {
	return a.renderer
}
