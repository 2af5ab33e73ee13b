package systems

import (
	"math"

	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/input"
	"github.com/decker502/emberwave/pkg/world"
)

// ControlSystem 把输入转换为角色速度，并维护跳跃计时器
//
// 水平加减速以"每帧"为单位，土狼时间和输入缓冲以秒为单位递减。
type ControlSystem struct {
	world *world.World
}

// NewControlSystem 创建控制系统
func NewControlSystem(w *world.World) *ControlSystem {
	return &ControlSystem{world: w}
}

// Update 对两个角色应用本帧输入
//
// 参数:
//   - dt: 本帧时长（秒），只用于跳跃计时器
//   - state: 本帧输入
func (s *ControlSystem) Update(dt float64, state input.State) {
	tuning := s.world.Physics.Actor
	for i, a := range s.world.Actors {
		applyControls(a, state.Actors[i], dt, &tuning)
	}
}

func applyControls(a *components.Actor, in input.ActorInput, dt float64, t *config.ActorTuning) {
	if dir := in.Direction(); dir != 0 {
		a.DX += dir * t.Accel
		a.DX = math.Max(-t.MaxSpeed, math.Min(t.MaxSpeed, a.DX))
	} else if math.Abs(a.DX) <= t.Decel {
		a.DX = 0
	} else {
		a.DX -= math.Copysign(t.Decel, a.DX)
	}

	if a.OnGround {
		a.Coyote = t.CoyoteMax
	} else {
		a.Coyote = math.Max(0, a.Coyote-dt)
	}

	// 只在按下的那一帧装填缓冲，一直按住不会重复起跳
	if in.Jump && !a.JumpHeld {
		a.Buffer = t.BufferMax
	} else {
		a.Buffer = math.Max(0, a.Buffer-dt)
	}
	a.JumpHeld = in.Jump

	if a.Buffer > 0 && a.Coyote > 0 {
		a.DY = t.JumpPower
		a.OnGround = false
		a.Coyote = 0
		a.Buffer = 0
	}

	if !in.Jump && a.DY < 0 {
		a.DY *= t.JumpCutFactor
	}
}
