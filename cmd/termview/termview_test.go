package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/triangledowntoleft/pkg/config"
)

func newTestView(t *testing.T) *termView {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	widget, err := config.DefaultWidgetConfig().Resolve()
	require.NoError(t, err)

	tv := newTermView(screen, widget)
	t.Cleanup(tv.scheduler.Close)
	return tv
}

func TestHandleKeyQuit(t *testing.T) {
	tv := newTestView(t)
	assert.False(t, tv.handleKey(tcell.KeyEscape, 0))
	assert.False(t, tv.handleKey(tcell.KeyCtrlC, 0))
	assert.False(t, tv.handleKey(tcell.KeyRune, 'q'))
	assert.False(t, tv.renderer.Animating())
}

func TestHandleKeySpaceTaps(t *testing.T) {
	tv := newTestView(t)
	assert.True(t, tv.handleKey(tcell.KeyRune, ' '))
	assert.True(t, tv.renderer.Animating())
	// Start 会立即请求重绘
	assert.Len(t, tv.scheduler.C, 1)
}

func TestHandleMouseTapsOnPressEdge(t *testing.T) {
	tv := newTestView(t)

	tv.handleMouse(tcell.Button1)
	assert.True(t, tv.renderer.Animating())

	// 跑完当前周期后，按住不放不会再次触发
	for tv.renderer.Animating() {
		tv.renderer.Render(tv.canvas)
	}
	tv.handleMouse(tcell.Button1)
	assert.False(t, tv.renderer.Animating())

	tv.handleMouse(tcell.ButtonNone)
	tv.handleMouse(tcell.Button1)
	assert.True(t, tv.renderer.Animating())
}
