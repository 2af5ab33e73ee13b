package components

// Tether 锁链配置
// 没有持久状态，只约束两个角色中心点之间的最大距离
type Tether struct {
	MaxLength      float64
	Stiffness      float64 // 0 ~ 1，每帧修正超出长度的比例
	AllowSnapDeath bool    // 为 true 时超出长度直接判定死亡
}
