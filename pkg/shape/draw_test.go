package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/triangledowntoleft/pkg/canvas"
)

func TestDrawAtRestDrawsNothing(t *testing.T) {
	rec := canvas.NewRecorder(720, 720)
	DrawTriangleDownToLeft(rec, 0, color.Black, testWidget(t))

	assert.Empty(t, rec.Lines)
	assert.Equal(t, 0, rec.Depth())
}

func TestDrawHalfway(t *testing.T) {
	w := testWidget(t)
	rec := canvas.NewRecorder(720, 720)
	DrawTriangleDownToLeft(rec, 0.5, w.Palette[0], w)

	require.Len(t, rec.Lines, 3)
	assert.Equal(t, 0, rec.Depth())

	left := rec.Lines[0]
	assert.InDelta(t, 310, left.X1, 1e-6)
	assert.InDelta(t, 310, left.Y1, 1e-6)
	assert.InDelta(t, 310, left.X2, 1e-6)
	assert.InDelta(t, 410, left.Y2, 1e-6)

	bottom := rec.Lines[1]
	assert.InDelta(t, 410, bottom.X2, 1e-6)
	assert.InDelta(t, 410, bottom.Y2, 1e-6)

	// 斜边只画了一半，终点在中心
	slant := rec.Lines[2]
	assert.InDelta(t, 360, slant.X2, 1e-6)
	assert.InDelta(t, 360, slant.Y2, 1e-6)

	assert.Equal(t, w.Palette[0], left.Paint.Color)
	assert.InDelta(t, 8, left.Paint.StrokeWidth, 1e-9)
	assert.True(t, left.Paint.RoundCap)
}

func TestDrawRotatesAndSlides(t *testing.T) {
	w := testWidget(t)
	rec := canvas.NewRecorder(720, 720)
	DrawTriangleDownToLeft(rec, 1, color.Black, w)

	require.Len(t, rec.Lines, 3)

	// 旋转 90° 后平移到左下角 (0, 720)
	left := rec.Lines[0]
	assert.InDelta(t, 50, left.X1, 1e-6)
	assert.InDelta(t, 670, left.Y1, 1e-6)
	assert.InDelta(t, -50, left.X2, 1e-6)
	assert.InDelta(t, 670, left.Y2, 1e-6)
}

func TestDrawPreservesEdgeLengthWhileRotating(t *testing.T) {
	w := testWidget(t)
	rec := canvas.NewRecorder(720, 720)
	DrawTriangleDownToLeft(rec, 0.7, color.Black, w)

	require.Len(t, rec.Lines, 3)
	for i, l := range rec.Lines[:2] {
		length := math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
		assert.InDelta(t, 100, length, 1e-6, "edge %d", i)
	}
}

func TestNodeDrawUsesPaletteColor(t *testing.T) {
	w := testWidget(t)
	c := NewChain(w)
	tap(t, c)
	tap(t, c)

	// 节点 2 处于静止，画节点 1 的完整状态
	rec := canvas.NewRecorder(400, 800)
	c.Node(1).Draw(rec, w)
	require.NotEmpty(t, rec.Lines)
	assert.Equal(t, w.Palette[1], rec.Lines[0].Paint.Color)

	rec = canvas.NewRecorder(400, 800)
	c.Draw(rec)
	assert.Empty(t, rec.Lines)
}
