package systems

import (
	"testing"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/world"
)

// stepDT 测试使用的固定步长（秒）
const stepDT = 1.0 / 60

// newTestWorld 基于最小关卡创建测试世界，mutate 可为 nil
func newTestWorld(t *testing.T, mutate func(level *config.LevelConfig)) *world.World {
	t.Helper()

	level := config.NewBareLevel("test")
	if mutate != nil {
		mutate(level)
	}

	w, err := world.New(level, nil)
	if err != nil {
		t.Fatalf("failed to build test world: %v", err)
	}
	return w
}
