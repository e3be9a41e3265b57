package main

import (
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/decker502/triangledowntoleft/pkg/app"
	"github.com/decker502/triangledowntoleft/pkg/embedded"
	"github.com/decker502/triangledowntoleft/pkg/settings"
)

const appName = "triangledowntoleft"

func main() {
	cliApp := &cli.App{
		Name:  appName,
		Usage: "全屏显示指向左下的三角形动画，点击开始下一个周期",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "控件配置文件（.yaml / .toml），为空使用内置配置",
				EnvVars: []string{"TRIANGLE_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "详细日志",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "显示节点和缩放信息",
			},
			&cli.BoolFlag{
				Name:  "fullscreen",
				Usage: "全屏启动（覆盖保存的设置）",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if !c.Bool("verbose") {
		log.SetOutput(io.Discard)
	}

	embedded.Init(dataFS)

	// 存储不可用时以降级模式运行
	store, err := settings.OpenStore(appName)
	if err != nil {
		log.Printf("[Main] Warning: %v (settings will not be persisted)", err)
	}
	settingsManager, err := settings.NewSettingsManager(store)
	if err != nil {
		return err
	}
	if c.IsSet("fullscreen") {
		settingsManager.SetFullscreen(c.Bool("fullscreen"))
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:          c.Bool("verbose"),
		Debug:            c.Bool("debug"),
		WidgetConfigPath: c.String("config"),
		Settings:         settingsManager,
	})
	if err != nil {
		return err
	}

	s := settingsManager.GetSettings()
	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle("Triangle Down To Left")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(s.Fullscreen)

	return ebiten.RunGame(gameApp)
}
