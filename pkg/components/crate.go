package components

import "github.com/decker502/emberwave/pkg/geom"

// Crate 可推动的箱子
// 与角色相同的积分方式，但没有输入，只能被角色推动
type Crate struct {
	X, Y     float64
	W, H     float64
	DX, DY   float64
	OnGround bool
}

// NewCrate 在关卡定义的初始位置创建箱子
func NewCrate(r geom.Rect) *Crate {
	return &Crate{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Rect 返回箱子当前占据的矩形
func (c *Crate) Rect() geom.Rect {
	return geom.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}
