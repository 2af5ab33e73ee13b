package scenes

import (
	"fmt"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/game"
	"github.com/decker502/emberwave/pkg/input"
	"github.com/decker502/emberwave/pkg/input/keyboard"
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/decker502/emberwave/pkg/replay"
	"github.com/decker502/emberwave/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// deathMessageDuration 死亡提示显示时长（秒）
const deathMessageDuration = 1.5

// Deps 关卡场景共享的依赖
type Deps struct {
	SceneManager *game.SceneManager
	Progress     *game.ProgressManager
	Settings     *game.SettingsManager
	Physics      *config.PhysicsConfig

	// LevelOrder 按顺序排列的全部关卡 ID，用于"下一关"和解锁判断
	LevelOrder []string

	// ReplayOut 非空时，每次通关把录像写入该路径
	ReplayOut string
}

// GameScene 运行一个关卡：采集输入、推进模拟、记录成绩
type GameScene struct {
	deps    *Deps
	levelID string

	sim      *sim.Simulation
	mapper   *keyboard.Mapper
	recorder *replay.Recorder

	last     sim.FrameResult
	recorded bool // 本次通关是否已经写入成绩

	message      string
	messageTimer float64

	log *logrus.Entry
}

// NewGameScene 加载嵌入的关卡并创建场景
//
// 返回:
//   - *GameScene: 关卡场景
//   - error: 关卡不存在、配置不合法或按键绑定无效
func NewGameScene(deps *Deps, levelID string) (*GameScene, error) {
	level, err := config.LoadEmbeddedLevel(levelID)
	if err != nil {
		return nil, err
	}

	s, err := sim.New(level, deps.Physics)
	if err != nil {
		return nil, err
	}

	mapper, err := keyboard.NewMapper(deps.Settings.GetSettings().Bindings)
	if err != nil {
		logger.Log.WithError(err).Warn("[GameScene] Invalid key bindings, using defaults")
		mapper, err = keyboard.NewMapper(keyboard.DefaultBindings())
		if err != nil {
			return nil, fmt.Errorf("default bindings: %w", err)
		}
	}

	scene := &GameScene{
		deps:     deps,
		levelID:  levelID,
		sim:      s,
		mapper:   mapper,
		recorder: replay.NewRecorder(levelID),
		log:      logger.Log.WithField("level", levelID),
	}
	scene.last = s.Result()

	scene.log.Info("[GameScene] Level loaded")
	return scene, nil
}

// Update 处理快捷键并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	s.handleHotkeys()

	state := s.mapper.Poll()
	s.advance(deltaTime, state)
}

func (s *GameScene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.sim.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		settings := s.deps.Settings
		settings.SetShowTether(!settings.GetSettings().ShowTether)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if s.sim.Completed() {
			s.nextLevel()
		}
	}
}

// advance 推进模拟并处理本次调用产生的事件
func (s *GameScene) advance(deltaTime float64, state input.State) {
	r := s.sim.Advance(deltaTime, state)
	for i := 0; i < r.Steps; i++ {
		s.recorder.Record(state)
	}
	s.last = r

	if s.messageTimer > 0 {
		s.messageTimer -= deltaTime
	}
	if r.Died {
		s.message = fmt.Sprintf("%s actor died: %s", r.DeathActor, r.DeathCause)
		s.messageTimer = deathMessageDuration
	}

	if r.Completed && !s.recorded {
		s.recordCompletion(r)
	}
}

func (s *GameScene) restart() {
	s.sim.Reset()
	s.recorder.Restart(s.sim.Deaths())
	s.recorded = false
	s.message = ""
	s.last = s.sim.Result()
}

// recordCompletion 保存成绩和录像，失败只记录日志
func (s *GameScene) recordCompletion(r sim.FrameResult) {
	s.recorded = true

	improved := s.deps.Progress.RecordCompletion(s.levelID, game.Completion{
		Elapsed: r.Elapsed,
		Deaths:  r.Deaths,
		Gems:    r.GemsCollected,
		AllGems: r.AllGemsCollected,
	})
	if improved {
		s.message = "New record!"
		s.messageTimer = deathMessageDuration * 2
	}

	if err := s.deps.Progress.Save(); err != nil {
		s.log.WithError(err).Warn("[GameScene] Failed to save progress")
	}

	if s.deps.ReplayOut != "" {
		if err := replay.SaveFile(s.deps.ReplayOut, s.recorder.Recording()); err != nil {
			s.log.WithError(err).Warn("[GameScene] Failed to save replay")
		}
	}
}

// nextLevel 切换到下一关；已经是最后一关时重新开始当前关卡
func (s *GameScene) nextLevel() {
	next := config.NextLevelID(s.deps.LevelOrder, s.levelID)
	if next == "" || s.deps.SceneManager == nil || !s.deps.SceneManager.LoadLevel(next) {
		s.restart()
	}
}

// SaveOnExit 退出时保存设置和进度
func (s *GameScene) SaveOnExit() bool {
	ok := true
	if err := s.deps.Settings.Save(); err != nil {
		s.log.WithError(err).Warn("[GameScene] Failed to save settings")
		ok = false
	}
	if err := s.deps.Progress.Save(); err != nil {
		s.log.WithError(err).Warn("[GameScene] Failed to save progress")
		ok = false
	}
	return ok
}
