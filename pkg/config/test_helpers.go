package config

import "github.com/decker502/emberwave/pkg/geom"

// NewBareLevel 创建只有地面和两个出口的最小关卡
// 测试辅助函数，被多个包的测试共享使用；调用方可以在返回值上追加实体
func NewBareLevel(id string) *LevelConfig {
	return &LevelConfig{
		ID:      id,
		Name:    "bare " + id,
		Width:   960,
		Height:  560,
		Gravity: 0.48,
		Spawns: SpawnConfig{
			Red:  PointConfig{X: 80, Y: 476},
			Blue: PointConfig{X: 130, Y: 476},
		},
		Platforms: []PlatformConfig{
			{Rect: geom.NewRect(0, 520, 960, 40)},
		},
		Exits: []ExitConfig{
			{Rect: geom.NewRect(820, 126, 40, 44), Color: "red"},
			{Rect: geom.NewRect(865, 126, 40, 44), Color: "blue"},
		},
	}
}
