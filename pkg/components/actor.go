package components

import (
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/zyedidia/generic/mapset"
)

// Actor 可控角色
//
// 由模拟循环持有，每帧被移动系统、锁链系统和交互系统修改。
// 死亡时不销毁，而是重置回出生点。
type Actor struct {
	X, Y   float64 // 左上角位置
	DX, DY float64 // 每帧速度
	W, H   float64 // 固定尺寸

	SpawnX, SpawnY float64

	Coyote float64 // 土狼时间剩余（秒）
	Buffer float64 // 跳跃输入缓冲剩余（秒）

	OnGround bool
	JumpHeld bool // 上一帧跳跃键是否按住（用于边沿检测）

	Color     types.ActorColor
	Immune    mapset.Set[types.HazardKind]
	Collected int // 已收集的宝石数量
}

// NewActor 创建角色，免疫类型按颜色默认设置（红色免疫火，蓝色免疫水）
func NewActor(color types.ActorColor, spawnX, spawnY, w, h float64) *Actor {
	immune := mapset.New[types.HazardKind]()
	for _, k := range types.DefaultImmunities(color) {
		immune.Put(k)
	}

	return &Actor{
		X:      spawnX,
		Y:      spawnY,
		W:      w,
		H:      h,
		SpawnX: spawnX,
		SpawnY: spawnY,
		Color:  color,
		Immune: immune,
	}
}

// Rect 返回角色当前占据的矩形
func (a *Actor) Rect() geom.Rect {
	return geom.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// Center 返回角色中心点
func (a *Actor) Center() mgl64.Vec2 {
	return a.Rect().Center()
}

// Bottom 返回脚底坐标
func (a *Actor) Bottom() float64 {
	return a.Y + a.H
}

// IsImmune 检查角色是否免疫某种危险
func (a *Actor) IsImmune(kind types.HazardKind) bool {
	return a.Immune.Has(kind)
}

// Reset 将运动状态恢复到出生时（位置、速度、计时器、着地标志）
// 宝石计数由关卡重置负责
func (a *Actor) Reset() {
	a.X, a.Y = a.SpawnX, a.SpawnY
	a.DX, a.DY = 0, 0
	a.Coyote, a.Buffer = 0, 0
	a.OnGround = false
	a.JumpHeld = false
}
