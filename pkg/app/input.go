package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerJustPressed 检查本帧是否发生了按下（触摸优先，其次鼠标左键）
//
// 同一帧内的多点触摸只算一次按下。
func pointerJustPressed() bool {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
