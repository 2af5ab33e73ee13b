package systems

import (
	"math"

	"github.com/decker502/emberwave/pkg/world"
)

// PatrolSystem 巡逻敌人在 [MinX, MaxX] 之间往返，纯运动学
type PatrolSystem struct {
	world *world.World
}

// NewPatrolSystem 创建巡逻系统
func NewPatrolSystem(w *world.World) *PatrolSystem {
	return &PatrolSystem{world: w}
}

// Update 移动所有敌人，到达边界时夹回范围内并反向
func (s *PatrolSystem) Update() {
	for _, e := range s.world.Enemies {
		e.X += e.Speed
		if e.X <= e.MinX {
			e.X = e.MinX
			e.Speed = math.Abs(e.Speed)
		} else if e.X >= e.MaxX {
			e.X = e.MaxX
			e.Speed = -math.Abs(e.Speed)
		}
	}
}
