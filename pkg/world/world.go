// Package world 保存一个关卡实例的全部状态
//
// World 是单一所有权树的根：静态几何（平台、危险区、出口）在帧内不变，
// 动态实体（角色、箱子、宝石、压力板、敌人、水面）在原地修改。
// 门的开关状态不存储，由压力板状态推导。
package world

import (
	"fmt"

	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
)

// 死亡原因
const (
	CauseFell       = "fell"
	CauseBarrier    = "barrier"
	CauseHazard     = "hazard"
	CauseEnemy      = "enemy"
	CauseFlood      = "flood"
	CauseTetherSnap = "tether"
)

// restEpsilon 判断"脚底正好贴在表面上"的容差
const restEpsilon = 1e-6

// World 关卡运行时状态
type World struct {
	ID      string
	Name    string
	Width   float64
	Height  float64
	Gravity float64

	Physics *config.PhysicsConfig

	// Actors 下标 0 为红色角色 A，下标 1 为蓝色角色 B
	Actors [2]*components.Actor

	Platforms []components.Platform
	Plates    []*components.Plate
	Doors     []*components.Door
	Hazards   []components.Hazard
	Exits     []components.Exit
	Gems      []*components.Gem
	Crates    []*components.Crate
	Enemies   []*components.PatrolEnemy

	Rising *components.RisingHazard // 可为 nil
	Tether *components.Tether       // 可为 nil（两个角色独立行动）

	CratesPressPlates bool

	level *config.LevelConfig

	dead       bool
	deathCause string
	deadActor  types.ActorColor

	solids []components.Solid // 复用的缓冲区
}

// New 根据关卡定义创建关卡实例
//
// 参数:
//   - level: 关卡定义，拷贝后应用默认值并校验，不会修改调用方的值
//   - physics: 物理配置，为 nil 时使用默认配置
//
// 返回:
//   - *World: 关卡实例
//   - error: 关卡或物理配置不合法
func New(level *config.LevelConfig, physics *config.PhysicsConfig) (*World, error) {
	if level == nil {
		return nil, fmt.Errorf("%w: level is nil", config.ErrInvalidLevel)
	}
	if physics == nil {
		physics = config.DefaultPhysicsConfig()
	}

	// 拷贝一份：重置时从这里重建箱子和敌人，调用方之后的修改不应影响它
	level = level.Clone()
	level.ApplyDefaults()
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := physics.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}

	w := &World{
		ID:                level.ID,
		Name:              level.Name,
		Width:             level.Width,
		Height:            level.Height,
		Gravity:           level.Gravity,
		Physics:           physics,
		CratesPressPlates: level.CratesPressPlates,
		level:             level,
	}

	size := physics.Actor
	w.Actors[0] = components.NewActor(types.ColorRed, level.Spawns.Red.X, level.Spawns.Red.Y, size.Width, size.Height)
	w.Actors[1] = components.NewActor(types.ColorBlue, level.Spawns.Blue.X, level.Spawns.Blue.Y, size.Width, size.Height)

	for _, p := range level.Platforms {
		w.Platforms = append(w.Platforms, components.Platform{
			Rect:   p.Rect,
			Color:  types.ActorColor(p.Color),
			Lethal: p.Lethal,
		})
	}

	for _, p := range level.Plates {
		w.Plates = append(w.Plates, &components.Plate{ID: p.ID, Rect: p.Rect})
	}

	for _, d := range level.Doors {
		door := &components.Door{ID: d.ID, Rect: d.Rect}
		for _, id := range d.Plates {
			door.Plates = append(door.Plates, w.Plates[level.PlateIndex(id)])
		}
		w.Doors = append(w.Doors, door)
	}

	for _, h := range level.Hazards {
		w.Hazards = append(w.Hazards, components.Hazard{Rect: h.Rect, Kind: types.HazardKind(h.Kind)})
	}

	for _, e := range level.Exits {
		w.Exits = append(w.Exits, components.Exit{Rect: e.Rect, Color: types.ActorColor(e.Color)})
	}

	for _, g := range level.Gems {
		w.Gems = append(w.Gems, &components.Gem{Rect: g.Rect, Color: types.ActorColor(g.Color)})
	}

	if level.RisingHazard != nil {
		w.Rising = components.NewRisingHazard(level.RisingHazard.Start, level.RisingHazard.Speed)
	}

	if level.Tether != nil {
		w.Tether = &components.Tether{
			MaxLength:      level.Tether.MaxLength,
			Stiffness:      level.Tether.Stiffness,
			AllowSnapDeath: level.Tether.AllowSnapDeath,
		}
	}

	w.spawnCrates()
	w.spawnEnemies()

	return w, nil
}

// spawnCrates 在关卡定义的初始位置重新创建所有箱子
func (w *World) spawnCrates() {
	w.Crates = w.Crates[:0]
	for _, c := range w.level.Crates {
		w.Crates = append(w.Crates, components.NewCrate(c.Rect))
	}
}

// spawnEnemies 在初始位置和巡逻范围重新创建所有敌人
func (w *World) spawnEnemies() {
	w.Enemies = w.Enemies[:0]
	for _, e := range w.level.Enemies {
		w.Enemies = append(w.Enemies, &components.PatrolEnemy{
			X: e.X, Y: e.Y, W: e.W, H: e.H,
			Speed: e.Speed,
			MinX:  e.MinX,
			MaxX:  e.MaxX,
		})
	}
}

// Solids 返回当前帧对角色有效的实体：先按关卡顺序列出平台，再列出关闭的门
//
// 返回的切片在下一次调用时会被复用，调用方不能保存。
func (w *World) Solids() []components.Solid {
	w.solids = w.solids[:0]
	for i, p := range w.Platforms {
		w.solids = append(w.solids, components.Solid{
			Kind:   components.SolidPlatform,
			Rect:   p.Rect,
			Color:  p.Color,
			Lethal: p.Lethal,
			Index:  i,
		})
	}
	for i, d := range w.Doors {
		if d.IsSolid() {
			w.solids = append(w.solids, components.Solid{
				Kind:  components.SolidDoor,
				Rect:  d.Rect,
				Index: i,
			})
		}
	}
	return w.solids
}

// SolidsWithCrates 在 Solids 的基础上追加所有箱子
func (w *World) SolidsWithCrates() []components.Solid {
	solids := w.Solids()
	for i, c := range w.Crates {
		solids = append(solids, components.Solid{
			Kind:  components.SolidCrate,
			Rect:  c.Rect(),
			Index: i,
		})
	}
	w.solids = solids
	return solids
}

// CrateCollides 检查第 i 个箱子是否与世界发生碰撞
//
// 检测对象：所有平台（箱子没有颜色，彩色屏障对它都是实体）、关闭的门、
// 其他箱子以及水平方向的世界边界。推动它的角色不参与检测。
func (w *World) CrateCollides(i int) bool {
	c := w.Crates[i]
	r := c.Rect()

	for _, p := range w.Platforms {
		if r.Overlaps(p.Rect) {
			return true
		}
	}
	for _, d := range w.Doors {
		if d.IsSolid() && r.Overlaps(d.Rect) {
			return true
		}
	}
	for j, other := range w.Crates {
		if j != i && r.Overlaps(other.Rect()) {
			return true
		}
	}

	return c.X < 0 || c.X+c.W > w.Width
}

// UpdatePlates 从当前位置重新计算所有压力板状态（没有滞后）
//
// 压力板被激活的条件：有角色（或在允许时有箱子）与其重叠，
// 且底边不低于压力板底边 + 容差（区分踩在上面和从侧面碰到）。
func (w *World) UpdatePlates() {
	tol := w.Physics.PlateTolerance
	for _, plate := range w.Plates {
		plate.Active = false
		for _, a := range w.Actors {
			if pressing(a.Rect(), plate.Rect, tol) {
				plate.Active = true
				break
			}
		}
		if plate.Active || !w.CratesPressPlates {
			continue
		}
		for _, c := range w.Crates {
			if pressing(c.Rect(), plate.Rect, tol) {
				plate.Active = true
				break
			}
		}
	}
}

func pressing(body, plate geom.Rect, tol float64) bool {
	return body.Overlaps(plate) && body.Bottom() <= plate.Bottom()+tol
}

// Kill 标记角色死亡
// 同一帧只记录第一次死亡的原因，重置由模拟循环统一执行
func (w *World) Kill(a *components.Actor, cause string) {
	if w.dead {
		return
	}
	w.dead = true
	w.deathCause = cause
	w.deadActor = a.Color
}

// Dead 本帧是否有角色死亡
func (w *World) Dead() bool {
	return w.dead
}

// DeathCause 返回本帧死亡的原因和角色颜色
func (w *World) DeathCause() (string, types.ActorColor) {
	return w.deathCause, w.deadActor
}

// ResetDynamic 重置所有动态状态（静态几何不变）
//
// 角色回到出生点、水面回到初始高度、箱子和敌人在初始位置重新创建、
// 清空宝石收集状态和角色计数、清除死亡标记。重复调用没有额外效果。
func (w *World) ResetDynamic() {
	for _, a := range w.Actors {
		a.Reset()
		a.Collected = 0
	}
	for _, g := range w.Gems {
		g.Collected = false
	}
	if w.Rising != nil {
		w.Rising.Reset()
	}
	w.spawnCrates()
	w.spawnEnemies()
	w.UpdatePlates()

	w.dead = false
	w.deathCause = ""
	w.deadActor = types.ColorNone
}

// BothAtExits 两个角色是否同时站在各自颜色的出口上
func (w *World) BothAtExits() bool {
	for _, a := range w.Actors {
		if !w.atExit(a) {
			return false
		}
	}
	return true
}

func (w *World) atExit(a *components.Actor) bool {
	r := a.Rect()
	for _, e := range w.Exits {
		if e.Color == a.Color && r.Overlaps(e.Rect) {
			return true
		}
	}
	return false
}

// TetherDistance 返回两个角色中心点之间的距离
func (w *World) TetherDistance() float64 {
	return geom.Distance(w.Actors[0].Center(), w.Actors[1].Center())
}

// GemsCollected 返回已收集的宝石数量
func (w *World) GemsCollected() int {
	n := 0
	for _, g := range w.Gems {
		if g.Collected {
			n++
		}
	}
	return n
}

// AllGemsCollected 是否收集了全部宝石（关卡没有宝石时为 false）
func (w *World) AllGemsCollected() bool {
	return len(w.Gems) > 0 && w.GemsCollected() == len(w.Gems)
}
