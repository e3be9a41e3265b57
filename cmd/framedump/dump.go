package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/triangledowntoleft/pkg/canvas/ggcanvas"
	"github.com/decker502/triangledowntoleft/pkg/config"
	"github.com/decker502/triangledowntoleft/pkg/driver"
	"github.com/decker502/triangledowntoleft/pkg/view"
)

// maxStepsPerTap 单次点击最多推进的虚拟毫秒数
const maxStepsPerTap = 10 * 60 * 1000

type dumpOptions struct {
	OutDir        string
	Width, Height int
	Taps          int
	Every         int
}

// virtualClock 手动推进的时钟
type virtualClock struct{ now time.Time }

func (c *virtualClock) Now() time.Time { return c.now }

// dump 在虚拟时钟上执行点击序列并保存帧
//
// 返回：
//   - int: 写入的帧数
//   - error: 参数错误或写文件失败
func dump(widget config.Widget, opts dumpOptions) (int, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return 0, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	clock := &virtualClock{now: time.Unix(0, 0)}
	scheduler := driver.NewTickScheduler(clock.Now)
	renderer := view.NewRenderer(widget, scheduler)
	cv := ggcanvas.New(opts.Width, opts.Height)

	frame, written := 0, 0
	save := func() error {
		path := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := cv.SavePNG(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
		return nil
	}

	for tap := 0; tap < opts.Taps; tap++ {
		renderer.HandleTap()
		log.Printf("[FrameDump] 点击 %d：节点 %d", tap+1, renderer.Chain().CurrentIndex())

		settled := false
		for step := 0; step < maxStepsPerTap; step++ {
			clock.now = clock.now.Add(time.Millisecond)
			if !scheduler.Poll() {
				if _, due := scheduler.NextDue(); !due && !renderer.Animating() {
					settled = true
					break
				}
				continue
			}

			renderer.Render(cv)
			frame++
			if frame%opts.Every == 0 {
				if err := save(); err != nil {
					return written, err
				}
			}
		}
		if !settled {
			return written, fmt.Errorf("tap %d did not settle", tap+1)
		}

		// 每个周期结束时的最终画面总是保存
		if frame%opts.Every != 0 {
			if err := save(); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}
