// Package geom 提供世界坐标下的轴对齐矩形与向量工具
//
// 坐标系：原点在左上角，Y 轴向下增长。所有空间实体都以 Rect 作为形状，
// 碰撞检测只通过矩形重叠判定。
package geom

import "github.com/go-gl/mathgl/mgl64"

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right 返回右边缘坐标
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边缘坐标
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center 返回矩形中心点
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Valid 宽高都必须为正
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Overlaps 检查两个矩形是否重叠
//
// 使用严格不等式：仅边缘接触不算重叠（站在平台上的角色与平台不重叠）。
//
// 参数:
//   - o: 另一个矩形
//
// 返回:
//   - bool: 重叠返回 true
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// OverlapsX 检查两个矩形在水平方向上的投影是否重叠
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X
}

// Distance 返回两点之间的欧氏距离
func Distance(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}

// Clamp 将 v 限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
