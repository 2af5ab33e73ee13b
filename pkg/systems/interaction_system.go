package systems

import (
	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/world"
)

// InteractionSystem 宝石拾取和危险判定
type InteractionSystem struct {
	world *world.World
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(w *world.World) *InteractionSystem {
	return &InteractionSystem{world: w}
}

// CollectGems 角色拾取与自己同色、尚未收集的宝石
// 异色重叠不产生任何效果，宝石留给对应颜色的角色。
func (s *InteractionSystem) CollectGems() {
	for _, a := range s.world.Actors {
		r := a.Rect()
		for _, g := range s.world.Gems {
			if g.Collected || g.Color != a.Color || !r.Overlaps(g.Rect) {
				continue
			}
			g.Collected = true
			a.Collected++
		}
	}
}

// CheckHazards 检查两个角色是否碰到敌人、被水淹没或踩进不免疫的危险区
// 每个角色命中第一个条件即判定死亡。
func (s *InteractionSystem) CheckHazards() {
	for _, a := range s.world.Actors {
		if cause, hit := s.hazardFor(a); hit {
			s.world.Kill(a, cause)
		}
	}
}

func (s *InteractionSystem) hazardFor(a *components.Actor) (string, bool) {
	w := s.world
	r := a.Rect()

	for _, e := range w.Enemies {
		if r.Overlaps(e.Rect()) {
			return world.CauseEnemy, true
		}
	}

	if w.Rising != nil && w.Rising.Submerges(r) {
		return world.CauseFlood, true
	}

	for _, h := range w.Hazards {
		if r.Overlaps(h.Rect) && !a.IsImmune(h.Kind) {
			return world.CauseHazard, true
		}
	}

	return "", false
}
