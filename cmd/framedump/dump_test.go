package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/triangledowntoleft/pkg/config"
)

func TestDumpWritesFrames(t *testing.T) {
	widget, err := config.DefaultWidgetConfig().Resolve()
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "frames")
	written, err := dump(widget, dumpOptions{
		OutDir: out,
		Width:  36,
		Height: 64,
		Taps:   2,
		Every:  100,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Equal(t, written, len(entries))
	// 每个周期约 252 帧：第 100/200/300/400/500 帧加上两个周期各自的收尾帧
	assert.GreaterOrEqual(t, written, 6)
	assert.LessOrEqual(t, written, 8)
}

func TestDumpRejectsBadSize(t *testing.T) {
	widget, err := config.DefaultWidgetConfig().Resolve()
	require.NoError(t, err)

	_, err = dump(widget, dumpOptions{OutDir: t.TempDir(), Width: 0, Height: 10, Taps: 1})
	assert.Error(t, err)
}
