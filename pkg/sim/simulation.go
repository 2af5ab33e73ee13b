// Package sim 固定步长的模拟循环
//
// Simulation 是一个显式的上下文对象，拥有关卡实例的全部可变状态。
// 每一步按固定顺序执行：
// 控制 → 角色积分 → 箱子积分 → 绳索 → 宝石 → 危险判定 → 压力板/门 → 巡逻敌人 → 水面 → 胜利判定。
// 任一阶段出现死亡都会结束本步，并在返回前同步完成重置。
package sim

import (
	"fmt"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/input"
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/decker502/emberwave/pkg/systems"
	"github.com/decker502/emberwave/pkg/world"
	"github.com/sirupsen/logrus"
)

const (
	// StepDT 模拟步长：速度类常量按每秒 60 步调校
	StepDT = 1.0 / 60

	// MaxCatchUpSteps Advance 单次调用最多补跑的步数，超出部分直接丢弃
	MaxCatchUpSteps = 5
)

// Simulation 单个关卡的模拟实例，只能在一个 goroutine 中使用
type Simulation struct {
	world *world.World

	control     *systems.ControlSystem
	motion      *systems.MotionSystem
	crates      *systems.CrateSystem
	tether      *systems.TetherSystem
	interaction *systems.InteractionSystem
	patrol      *systems.PatrolSystem
	rising      *systems.RisingHazardSystem

	deaths    int
	elapsed   float64
	paused    bool
	completed bool

	accumulator float64

	log *logrus.Entry
}

// New 校验关卡定义并创建模拟实例
//
// 参数:
//   - level: 关卡定义（会应用默认值）
//   - physics: 物理配置，为 nil 时使用默认配置
//
// 返回:
//   - *Simulation: 模拟实例
//   - error: 关卡配置不合法时返回包装了 config.ErrInvalidLevel 的错误
func New(level *config.LevelConfig, physics *config.PhysicsConfig) (*Simulation, error) {
	w, err := world.New(level, physics)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	s := &Simulation{
		world:       w,
		control:     systems.NewControlSystem(w),
		motion:      systems.NewMotionSystem(w),
		crates:      systems.NewCrateSystem(w),
		tether:      systems.NewTetherSystem(w),
		interaction: systems.NewInteractionSystem(w),
		patrol:      systems.NewPatrolSystem(w),
		rising:      systems.NewRisingHazardSystem(w),
		log:         logger.Log.WithField("level", w.ID),
	}

	w.UpdatePlates()

	s.log.Debug("[Simulation] created")
	return s, nil
}

// World 返回关卡实例，供渲染等只读方在两步之间读取
func (s *Simulation) World() *world.World {
	return s.world
}

// Step 执行一个模拟步
//
// 暂停或已通关时只刷新绳索距离等展示数据，不积分、不推进时间。
func (s *Simulation) Step(dt float64, in input.State) FrameResult {
	if s.paused || s.completed {
		return s.Result()
	}

	s.elapsed += dt
	w := s.world

	s.control.Update(dt, in)

	phases := []func(){
		s.motion.Update,
		s.crates.Update,
		s.tether.Update,
		s.interaction.CollectGems,
		s.interaction.CheckHazards,
		w.UpdatePlates,
		s.patrol.Update,
		s.rising.Update,
	}
	for _, phase := range phases {
		phase()
		if w.Dead() {
			return s.die()
		}
	}

	if w.BothAtExits() {
		s.completed = true
		s.log.WithFields(logrus.Fields{
			"deaths":  s.deaths,
			"elapsed": s.elapsed,
			"gems":    w.GemsCollected(),
		}).Info("[Simulation] level complete")
	}

	r := s.Result()
	r.Steps = 1
	return r
}

// die 记录死亡并同步执行完整的动态状态重置
func (s *Simulation) die() FrameResult {
	cause, color := s.world.DeathCause()
	s.deaths++
	s.log.WithFields(logrus.Fields{
		"cause":  cause,
		"actor":  color,
		"deaths": s.deaths,
	}).Debug("[Simulation] actor died, resetting")

	s.resetDynamic()

	r := s.Result()
	r.Steps = 1
	r.Died = true
	r.DeathCause = cause
	r.DeathActor = color
	return r
}

func (s *Simulation) resetDynamic() {
	s.world.ResetDynamic()
	s.elapsed = 0
}

// Advance 按真实经过的时间推进模拟，内部以 StepDT 为步长
//
// 单次调用最多执行 MaxCatchUpSteps 步，防止长时间卡顿后追赶过多。
// 返回最后一步的结果；期间任一步发生死亡时 Died 为 true。
func (s *Simulation) Advance(realDT float64, in input.State) FrameResult {
	if s.paused || s.completed {
		s.accumulator = 0
		return s.Result()
	}

	s.accumulator += realDT

	var (
		r     = s.Result()
		steps int
		died  bool
		cause FrameResult
	)
	for s.accumulator >= StepDT && steps < MaxCatchUpSteps {
		r = s.Step(StepDT, in)
		s.accumulator -= StepDT
		steps++
		if r.Died {
			died = true
			cause = r
		}
		if r.Completed {
			break
		}
	}
	if steps == MaxCatchUpSteps && s.accumulator >= StepDT {
		s.accumulator = 0
	}

	r.Steps = steps
	if died {
		r.Died = true
		r.DeathCause = cause.DeathCause
		r.DeathActor = cause.DeathActor
	}
	return r
}

// Reset 玩家手动重置：恢复动态状态、清除通关和暂停状态，不计入死亡次数
// 重复调用没有额外效果。
func (s *Simulation) Reset() {
	s.resetDynamic()
	s.completed = false
	s.paused = false
	s.accumulator = 0
	s.log.Debug("[Simulation] reset")
}

// Pause 暂停模拟
func (s *Simulation) Pause() {
	s.paused = true
}

// Resume 恢复模拟
func (s *Simulation) Resume() {
	s.paused = false
}

// TogglePause 切换暂停状态，返回切换后是否暂停
func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused 是否处于暂停状态
func (s *Simulation) Paused() bool {
	return s.paused
}

// Completed 是否已通关（直到 Reset 之前保持为 true）
func (s *Simulation) Completed() bool {
	return s.completed
}

// Deaths 累计死亡次数
func (s *Simulation) Deaths() int {
	return s.deaths
}

// Elapsed 本次尝试的运行时间（秒）
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Result 返回当前状态的快照（不推进模拟）
func (s *Simulation) Result() FrameResult {
	w := s.world
	return FrameResult{
		Deaths:           s.deaths,
		GemsCollected:    w.GemsCollected(),
		Collected:        [2]int{w.Actors[0].Collected, w.Actors[1].Collected},
		AllGemsCollected: w.AllGemsCollected(),
		Completed:        s.completed,
		TetherDistance:   w.TetherDistance(),
		Paused:           s.paused,
		Elapsed:          s.elapsed,
	}
}
