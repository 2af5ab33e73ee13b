package systems

import (
	"math"

	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/world"
)

// CrateSystem 箱子的独立物理：重力、摩擦，以及与平台、关闭的门、其他箱子的碰撞
//
// 箱子没有主动驱动力，只会因为角色推动而获得水平速度。
// 箱子没有颜色，彩色屏障对它总是实体。
type CrateSystem struct {
	world *world.World
}

// NewCrateSystem 创建箱子系统
func NewCrateSystem(w *world.World) *CrateSystem {
	return &CrateSystem{world: w}
}

// Update 按关卡顺序更新所有箱子
func (s *CrateSystem) Update() {
	for i := range s.world.Crates {
		s.integrate(i)
	}
}

func (s *CrateSystem) integrate(i int) {
	w := s.world
	t := w.Physics.Crate
	c := w.Crates[i]

	c.DY = math.Min(c.DY+w.Gravity, t.MaxFall)
	c.DX *= t.Friction
	if math.Abs(c.DX) < t.StopEpsilon {
		c.DX = 0
	}

	c.X += c.DX
	dir := c.DX
	for _, r := range s.obstacles(i) {
		if !c.Rect().Overlaps(r) {
			continue
		}
		if dir > 0 {
			c.X = r.X - c.W
		} else if dir < 0 {
			c.X = r.Right()
		}
		c.DX = 0
	}
	if c.X < 0 {
		c.X = 0
		c.DX = 0
	}
	if c.X+c.W > w.Width {
		c.X = w.Width - c.W
		c.DX = 0
	}

	c.Y += c.DY
	c.OnGround = false
	dir = c.DY
	for _, r := range s.obstacles(i) {
		if !c.Rect().Overlaps(r) {
			continue
		}
		if dir > 0 {
			c.Y = r.Y - c.H
			c.DY = 0
			c.OnGround = true
		} else if dir < 0 {
			c.Y = r.Bottom()
			c.DY = 0
		}
	}
}

// obstacles 返回第 i 个箱子需要碰撞的矩形：平台、关闭的门、其他箱子
func (s *CrateSystem) obstacles(i int) []geom.Rect {
	w := s.world
	rects := make([]geom.Rect, 0, len(w.Platforms)+len(w.Doors)+len(w.Crates))
	for _, solid := range w.Solids() {
		rects = append(rects, solid.Rect)
	}
	for j, other := range w.Crates {
		if j != i {
			rects = append(rects, other.Rect())
		}
	}
	return rects
}
