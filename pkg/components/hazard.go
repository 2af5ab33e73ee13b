package components

import (
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
)

// Hazard 危险区域
type Hazard struct {
	geom.Rect
	Kind types.HazardKind
}

// RisingHazard 上涨的危险水面
// Level 是水面的世界坐标 Y 值，运行时单调减小直到 0
type RisingHazard struct {
	Level float64
	Start float64
	Speed float64
}

// NewRisingHazard 创建水面
func NewRisingHazard(start, speed float64) *RisingHazard {
	return &RisingHazard{Level: start, Start: start, Speed: speed}
}

// Advance 水面上涨一帧
func (r *RisingHazard) Advance() {
	r.Level -= r.Speed
	if r.Level < 0 {
		r.Level = 0
	}
}

// Reset 水面回到初始高度
func (r *RisingHazard) Reset() {
	r.Level = r.Start
}

// Submerges 矩形底边低于水面即被淹没
func (r *RisingHazard) Submerges(rect geom.Rect) bool {
	return rect.Bottom() > r.Level
}

// PatrolEnemy 巡逻敌人，纯运动学，不受物理影响
// 巡逻范围限定的是左边缘 X
type PatrolEnemy struct {
	X, Y       float64
	W, H       float64
	Speed      float64
	MinX, MaxX float64
}

// Rect 返回敌人当前占据的矩形
func (e *PatrolEnemy) Rect() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}
