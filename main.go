package main

import (
	"flag"
	"os"

	"github.com/decker502/emberwave/pkg/app"
	"github.com/decker502/emberwave/pkg/embedded"
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	level     = flag.String("level", "", "直接进入指定关卡（如 1-2），为空时从进度继续")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	replayOut = flag.String("replay-out", "", "通关时把输入录像写入该文件")
)

func main() {
	flag.Parse()
	logger.Init(*verbose)

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Level:     *level,
		ReplayOut: *replayOut,
	})
	if err != nil {
		logger.Log.WithError(err).Error("[Main] Failed to start")
		os.Exit(1)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Emberwave")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	game.Shutdown()
	if runErr != nil {
		logger.Log.WithError(runErr).Error("[Main] Game loop exited with error")
		os.Exit(1)
	}
}
