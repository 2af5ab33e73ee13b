// verify_level 无窗口的关卡校验和录像回放工具
//
// 用法:
//
//	go run ./cmd/verify_level                          # 校验 data/levels 下全部关卡
//	go run ./cmd/verify_level --level data/levels/1-2.yaml
//	go run ./cmd/verify_level --replay run.replay      # 回放录像（关卡按录像中的 ID 查找）
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/decker502/emberwave/pkg/replay"
	"github.com/decker502/emberwave/pkg/sim"
	"github.com/sirupsen/logrus"
)

var (
	levelsDir   = flag.String("levels", "data/levels", "关卡目录")
	levelFile   = flag.String("level", "", "只校验（或回放）这一个关卡文件")
	physicsFile = flag.String("physics", "data/physics.yaml", "物理配置文件，不存在时使用默认值")
	replayFile  = flag.String("replay", "", "要回放的录像文件")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	logger.Init(*verbose)

	physics, err := loadPhysics(*physicsFile)
	if err != nil {
		fail(err)
	}

	if *replayFile != "" {
		if err := runReplay(*replayFile, physics); err != nil {
			fail(err)
		}
		return
	}

	files, err := levelFiles()
	if err != nil {
		fail(err)
	}

	bad := 0
	for _, f := range files {
		log := logger.Log.WithField("file", f)
		level, err := config.LoadLevelConfig(f)
		if err == nil {
			_, err = sim.New(level, physics)
		}
		if err != nil {
			log.WithError(err).Error("[VerifyLevel] invalid")
			bad++
			continue
		}
		log.WithFields(logrus.Fields{
			"id":        level.ID,
			"platforms": len(level.Platforms),
			"gems":      len(level.Gems),
			"tether":    level.Tether != nil,
		}).Info("[VerifyLevel] ok")
	}

	fmt.Printf("%d level(s) checked, %d invalid\n", len(files), bad)
	if bad > 0 {
		os.Exit(1)
	}
}

func loadPhysics(path string) (*config.PhysicsConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.DefaultPhysicsConfig(), nil
	}
	return config.LoadPhysicsConfig(path)
}

func levelFiles() ([]string, error) {
	if *levelFile != "" {
		return []string{*levelFile}, nil
	}
	files, err := filepath.Glob(filepath.Join(*levelsDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no level files in %s", *levelsDir)
	}
	sort.Strings(files)
	return files, nil
}

func runReplay(path string, physics *config.PhysicsConfig) error {
	rec, err := replay.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	file := *levelFile
	if file == "" {
		file = filepath.Join(*levelsDir, rec.LevelID+".yaml")
	}
	level, err := config.LoadLevelConfig(file)
	if err != nil {
		return err
	}
	if level.ID != rec.LevelID {
		return fmt.Errorf("replay was recorded on level %q, got %q", rec.LevelID, level.ID)
	}

	s, err := sim.New(level, physics)
	if err != nil {
		return err
	}

	sum := replay.Play(s, rec)
	fmt.Printf("level %s: frames=%d/%d deaths=%d gems=%d/%d completed=%t",
		level.ID, sum.Frames, len(rec.Frames), sum.Deaths, sum.Gems, len(level.Gems), sum.Completed)
	if sum.Completed {
		fmt.Printf(" at frame %d (%.2fs)", sum.CompletedAt, sum.Elapsed)
	}
	fmt.Println()
	return nil
}

func fail(err error) {
	logger.Log.WithError(err).Error("[VerifyLevel] failed")
	os.Exit(1)
}
