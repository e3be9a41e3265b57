package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixStackTranslateThenRotate(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(10, 0)
	s.Rotate(90)

	x, y := s.Apply(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}

func TestMatrixStackSaveRestore(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(5, 5)
	s.Save()
	s.Translate(100, 0)
	assert.Equal(t, 1, s.Depth())

	s.Restore()
	x, y := s.Apply(0, 0)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)

	// 空栈 Restore 被忽略
	s.Restore()
	assert.Equal(t, 0, s.Depth())
}

func TestMatrixStackScale(t *testing.T) {
	s := NewMatrixStack()
	s.Rotate(33)
	assert.InDelta(t, 1, s.Scale(), 1e-9)
}

func TestRecorderTransformsLines(t *testing.T) {
	r := NewRecorder(200, 100)
	r.Clear(color.White)
	r.Save()
	r.Translate(100, 50)
	r.DrawLine(0, 0, 10, 0, Paint{Color: color.Black, StrokeWidth: 2})
	r.Restore()

	assert.Equal(t, 0, r.Depth())
	assert.Len(t, r.Cleared, 1)
	if assert.Len(t, r.Lines, 1) {
		l := r.Lines[0]
		assert.InDelta(t, 100, l.X1, 1e-9)
		assert.InDelta(t, 110, l.X2, 1e-9)
		assert.InDelta(t, 50, l.Y2, 1e-9)
	}

	r.Clear(color.White)
	assert.Empty(t, r.Lines)
}
