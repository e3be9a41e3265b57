package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 0.02 / 5

// runCycle 推进直到周期结束，返回调用 Update 的次数
func runCycle(t *testing.T, s *State) int {
	t.Helper()
	for n := 1; n < 10000; n++ {
		if s.Update(step) == Advance {
			return n
		}
	}
	t.Fatal("cycle never completed")
	return 0
}

func TestStateZeroValueIsIdle(t *testing.T) {
	var s State
	assert.False(t, s.Animating())
	assert.Equal(t, Continue, s.Update(step))
	assert.Equal(t, 0.0, s.Scale)
}

func TestStartUpdatingToggle(t *testing.T) {
	var s State

	require.True(t, s.StartUpdating())
	assert.Equal(t, 1.0, s.Dir)

	runCycle(t, &s)
	assert.Equal(t, 1.0, s.Scale)
	assert.Equal(t, 1.0, s.PrevScale)
	assert.Equal(t, 0.0, s.Dir)

	require.True(t, s.StartUpdating())
	assert.Equal(t, -1.0, s.Dir)

	runCycle(t, &s)
	assert.Equal(t, 0.0, s.Scale)
	assert.Equal(t, 0.0, s.PrevScale)
}

func TestStartUpdatingIsNoopWhileAnimating(t *testing.T) {
	var s State
	require.True(t, s.StartUpdating())
	s.Update(step)

	assert.False(t, s.StartUpdating())
	assert.Equal(t, 1.0, s.Dir)
	assert.InDelta(t, step, s.Scale, 1e-12)
}

func TestUpdateNeverOvershoots(t *testing.T) {
	var s State
	s.StartUpdating()
	for {
		res := s.Update(step)
		assert.LessOrEqual(t, s.Scale, 1.0)
		if res == Advance {
			break
		}
	}
	assert.Equal(t, 1.0, s.Scale)

	// 周期结束后继续 Update 不会移动
	assert.Equal(t, Continue, s.Update(step))
	assert.Equal(t, 1.0, s.Scale)
}

func TestUpdateCycleLength(t *testing.T) {
	var s State
	s.StartUpdating()
	n := runCycle(t, &s)
	// 0.004 的步长大约需要 250 次，浮点误差最多多出一次
	assert.GreaterOrEqual(t, n, 250)
	assert.LessOrEqual(t, n, 252)
}

func TestAbortRestoresCommittedScale(t *testing.T) {
	var s State
	s.StartUpdating()
	for i := 0; i < 10; i++ {
		s.Update(step)
	}
	s.Abort()
	assert.Equal(t, 0.0, s.Scale)
	assert.False(t, s.Animating())
	assert.True(t, s.StartUpdating())
}

func TestUpdateResultString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "advance", Advance.String())
	assert.Equal(t, "unknown", UpdateResult(7).String())
}
