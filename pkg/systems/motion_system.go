package systems

import (
	"math"

	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/world"
)

// MotionSystem 积分角色位置并处理与关卡、箱子的碰撞
//
// 每个角色按轴分离处理：先 X 后 Y。X 方向先处理平台和门，再处理推箱子；
// Y 方向先处理平台和门，再处理站上/顶到箱子。最后检查是否掉出世界。
type MotionSystem struct {
	world *world.World
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(w *world.World) *MotionSystem {
	return &MotionSystem{world: w}
}

// Update 依次移动两个角色
func (s *MotionSystem) Update() {
	for _, a := range s.world.Actors {
		s.integrate(a)
	}
}

func (s *MotionSystem) integrate(a *components.Actor) {
	w := s.world
	tuning := w.Physics.Actor

	a.DY = math.Min(a.DY+w.Gravity, tuning.MaxFall)

	a.X += a.DX
	if !resolveActorX(w, a) {
		return
	}
	s.pushCrates(a)

	a.Y += a.DY
	a.OnGround = false
	if !resolveActorY(w, a) {
		return
	}
	s.standOnCrates(a)

	if a.Y > w.Height+w.Physics.FallMargin {
		w.Kill(a, world.CauseFell)
	}
}

// pushCrates 处理角色与箱子的水平接触
//
// 角色有水平速度时尝试把箱子推动 dx × PushFactor：箱子撞到世界则退回原位并挡住角色（dx 清零），
// 否则提交移动、把 dx × ImpartFactor 传给箱子，并让角色贴住箱子新的边缘。
// 没有水平速度时把角色分离到离中心较近的一侧。
func (s *MotionSystem) pushCrates(a *components.Actor) {
	w := s.world
	tuning := w.Physics.Crate

	for i, c := range w.Crates {
		if !a.Rect().Overlaps(c.Rect()) {
			continue
		}

		if a.DX == 0 {
			separate(a, c)
			continue
		}

		dx := a.DX
		oldX := c.X
		c.X += dx * tuning.PushFactor
		if w.CrateCollides(i) {
			// 箱子推不动：角色被挡住
			c.X = oldX
			a.DX = 0
		} else {
			c.DX += dx * tuning.ImpartFactor
		}

		if dx > 0 {
			a.X = c.X - a.W
		} else {
			a.X = c.X + c.W
		}
	}
}

// standOnCrates 处理角色与箱子的垂直接触
// 既不是落在箱顶也不是顶到箱底时，从侧面分离并清零 dx。
func (s *MotionSystem) standOnCrates(a *components.Actor) {
	tol := s.world.Physics.Crate.StandTolerance

	for _, c := range s.world.Crates {
		if !a.Rect().Overlaps(c.Rect()) {
			continue
		}

		switch {
		case a.DY > 0 && a.Bottom()-c.Y <= tol:
			a.Y = c.Y - a.H
			a.DY = 0
			a.OnGround = true
		case a.DY < 0 && c.Y+c.H-a.Y <= tol:
			a.Y = c.Y + c.H
			a.DY = 0
		default:
			separate(a, c)
			a.DX = 0
		}
	}
}

// separate 把角色移到箱子离角色中心较近的一侧
func separate(a *components.Actor, c *components.Crate) {
	if a.Center().X() < c.X+c.W/2 {
		a.X = c.X - a.W
	} else {
		a.X = c.X + c.W
	}
}
