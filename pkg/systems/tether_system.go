package systems

import (
	"github.com/decker502/emberwave/pkg/world"
)

// TetherSystem 把两个角色的中心距离限制在绳长以内
//
// 这是位置约束：只修改位置不修改速度，持续超长时每帧都会修正。
type TetherSystem struct {
	world *world.World
}

// NewTetherSystem 创建绳索系统
func NewTetherSystem(w *world.World) *TetherSystem {
	return &TetherSystem{world: w}
}

// Update 在两个角色都移动之后调用
func (s *TetherSystem) Update() {
	w := s.world
	tether := w.Tether
	if tether == nil {
		return
	}

	a, b := w.Actors[0], w.Actors[1]
	delta := b.Center().Sub(a.Center())
	dist := delta.Len()
	if dist == 0 || dist <= tether.MaxLength {
		return
	}

	if tether.AllowSnapDeath {
		w.Kill(a, world.CauseTetherSnap)
		w.Kill(b, world.CauseTetherSnap)
		return
	}

	// 两端各拉一半，质心不变
	pull := delta.Mul((dist - tether.MaxLength) * tether.Stiffness * 0.5 / dist)
	a.X += pull.X()
	a.Y += pull.Y()
	b.X -= pull.X()
	b.Y -= pull.Y()

	resolveGround(w, a)
	resolveGround(w, b)
}
