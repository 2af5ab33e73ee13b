// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和初始化嵌入资源。
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/game"
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/decker502/emberwave/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// ScreenWidth 逻辑屏幕宽度（与关卡默认宽度一致）
	ScreenWidth = 960
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 560

	// AppName gdata 存储使用的应用名
	AppName = "emberwave"
)

// ErrNoLevels 嵌入资源中没有任何关卡
var ErrNoLevels = errors.New("no embedded levels")

// Config 定义应用启动配置
type Config struct {
	// Level 指定要加载的关卡（如 "1-2"），为空则从进度中选择最高的已解锁关卡
	Level string
	// ReplayOut 非空时把每次通关的输入录像写到该文件
	ReplayOut string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	progress     *game.ProgressManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	log := logger.Log

	// 存储不可用时降级为仅内存
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.WithError(err).Warn("[App] gdata unavailable, progress will not be saved")
		store = nil
	}

	settings := game.NewSettingsManager(store)
	// 两个管理器在创建时各自加载已保存的数据
	progress := game.NewProgressManager(store)

	physics, err := config.LoadEmbeddedPhysicsConfig()
	if err != nil {
		return nil, fmt.Errorf("物理配置加载失败: %w", err)
	}

	order, err := config.ListEmbeddedLevels()
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, ErrNoLevels
	}
	log.WithField("count", len(order)).Info("[App] Levels discovered")

	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		SceneManager: sceneManager,
		Progress:     progress,
		Settings:     settings,
		Physics:      physics,
		LevelOrder:   order,
		ReplayOut:    cfg.ReplayOut,
	}
	sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		return scenes.NewGameScene(deps, levelID)
	})

	levelToLoad := cfg.Level
	if levelToLoad == "" {
		levelToLoad = highestUnlocked(progress, order)
		log.WithField("level", levelToLoad).Info("[App] Resuming from progress")
	}
	if !sceneManager.LoadLevel(levelToLoad) {
		return nil, fmt.Errorf("failed to load level %q", levelToLoad)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		progress:     progress,
	}, nil
}

// highestUnlocked 返回顺序中最后一个已解锁的关卡
func highestUnlocked(progress *game.ProgressManager, order []string) string {
	level := order[0]
	for _, id := range order {
		if progress.IsUnlocked(order, id) {
			level = id
		}
	}
	return level
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		logger.Log.Debug("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Shutdown 退出前保存设置和进度
func (a *App) Shutdown() {
	if saver, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		saver.SaveOnExit()
		return
	}
	if err := a.settings.Save(); err != nil {
		logger.Log.WithError(err).Warn("[App] Failed to save settings")
	}
	if err := a.progress.Save(); err != nil {
		logger.Log.WithError(err).Warn("[App] Failed to save progress")
	}
}
