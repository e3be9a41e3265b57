// cmd/framedump/main.go
// 无头导出动画帧
//
// 在虚拟时钟上模拟若干次点击，把渲染出的帧写成 PNG，
// 用于检查分段插值和颜色序列，不需要窗口或终端。
//
// 用法：
//   go run ./cmd/framedump --taps=6 --every=25 --out=frames

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/decker502/triangledowntoleft/pkg/config"
)

func main() {
	cliApp := &cli.App{
		Name:  "framedump",
		Usage: "把点击序列渲染为 PNG 帧",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "控件配置文件（.yaml / .toml）"},
			&cli.StringFlag{Name: "out", Value: "frames", Usage: "输出目录"},
			&cli.IntFlag{Name: "width", Value: 360, Usage: "画布宽度"},
			&cli.IntFlag{Name: "height", Value: 640, Usage: "画布高度"},
			&cli.IntFlag{Name: "taps", Value: 1, Usage: "模拟点击次数"},
			&cli.IntFlag{Name: "every", Value: 10, Usage: "每隔多少帧保存一张"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "详细日志"},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if !c.Bool("verbose") {
		log.SetFlags(0)
	}

	widget, err := config.LoadWidget(c.String("config"))
	if err != nil {
		return err
	}

	written, err := dump(widget, dumpOptions{
		OutDir: c.String("out"),
		Width:  c.Int("width"),
		Height: c.Int("height"),
		Taps:   c.Int("taps"),
		Every:  c.Int("every"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ 写入 %d 帧到 %s\n", written, c.String("out"))
	return nil
}
