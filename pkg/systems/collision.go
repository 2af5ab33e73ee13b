package systems

import (
	"math"

	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/world"
)

// restEpsilon 脚底与表面顶边的距离在该范围内视为站在上面
const restEpsilon = 1e-6

// resolveActorX 水平移动后把角色推出所有重叠的实体
//
// 实体按 w.Solids() 的顺序遍历，多个实体同时重叠时最后一个决定位置。
// 同色屏障直接穿过，异色致命屏障杀死角色并返回 false（本帧不再继续处理该角色）。
func resolveActorX(w *world.World, a *components.Actor) bool {
	dir := a.DX
	for _, s := range w.Solids() {
		if !a.Rect().Overlaps(s.Rect) {
			continue
		}
		switch s.ResponseTo(a.Color) {
		case components.ResponsePass:
			continue
		case components.ResponseKill:
			w.Kill(a, world.CauseBarrier)
			return false
		}

		if dir > 0 {
			a.X = s.Rect.X - a.W
		} else if dir < 0 {
			a.X = s.Rect.Right()
		}
		a.DX = 0
	}
	return true
}

// resolveActorY 垂直移动后把角色推出所有重叠的实体，向下落地时设置 OnGround
func resolveActorY(w *world.World, a *components.Actor) bool {
	dir := a.DY
	for _, s := range w.Solids() {
		if !a.Rect().Overlaps(s.Rect) {
			continue
		}
		switch s.ResponseTo(a.Color) {
		case components.ResponsePass:
			continue
		case components.ResponseKill:
			w.Kill(a, world.CauseBarrier)
			return false
		}

		if dir > 0 {
			a.Y = s.Rect.Y - a.H
			a.DY = 0
			a.OnGround = true
		} else if dir < 0 {
			a.Y = s.Rect.Bottom()
			a.DY = 0
		}
	}
	return true
}

// resolveGround 位置被拉动后重新判断角色是否着地
//
// 没有在上升的角色如果陷进了某个实体的顶部，会被放回顶部；
// 脚底正好贴着实体顶边时同样算着地。
func resolveGround(w *world.World, a *components.Actor) {
	a.OnGround = false
	for _, s := range w.SolidsWithCrates() {
		resp := s.ResponseTo(a.Color)
		if resp == components.ResponsePass {
			continue
		}

		r := a.Rect()
		if r.Overlaps(s.Rect) {
			if resp == components.ResponseKill {
				w.Kill(a, world.CauseBarrier)
				return
			}
			if a.DY >= 0 && r.Bottom() > s.Rect.Y && a.Y < s.Rect.Y {
				a.Y = s.Rect.Y - a.H
				a.DY = 0
				a.OnGround = true
			}
			continue
		}

		if a.DY >= 0 && r.OverlapsX(s.Rect) && math.Abs(r.Bottom()-s.Rect.Y) <= restEpsilon {
			a.OnGround = true
		}
	}
}
