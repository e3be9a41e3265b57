// cmd/termview/main.go
// 终端版控件宿主
//
// 空格、回车或鼠标左键按下视为一次点击，q / Esc / Ctrl+C 退出。
//
// 用法：
//   go run ./cmd/termview --config=data/widget.yaml --log=termview.log

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"

	"github.com/decker502/triangledowntoleft/pkg/config"
)

func main() {
	cliApp := &cli.App{
		Name:  "termview",
		Usage: "在终端中显示三角形动画",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "控件配置文件（.yaml / .toml）"},
			&cli.StringFlag{Name: "log", Usage: "日志文件路径（终端被画面占用，默认不输出日志）"},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "termview: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if path := c.String("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("打开日志文件失败: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	widget, err := config.LoadWidget(c.String("config"))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端屏幕失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端屏幕失败: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	tv := newTermView(screen, widget)
	defer tv.scheduler.Close()
	tv.run()
	return nil
}
