package systems

import "github.com/decker502/emberwave/pkg/world"

// RisingHazardSystem 每个运行帧抬高一次水面
type RisingHazardSystem struct {
	world *world.World
}

// NewRisingHazardSystem 创建水面系统
func NewRisingHazardSystem(w *world.World) *RisingHazardSystem {
	return &RisingHazardSystem{world: w}
}

// Update 关卡没有上涨水面时什么也不做
func (s *RisingHazardSystem) Update() {
	if s.world.Rising != nil {
		s.world.Rising.Advance()
	}
}
