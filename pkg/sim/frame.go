package sim

import "github.com/decker502/emberwave/pkg/types"

// FrameResult 一次 Step（或一次 Advance）之后对外公开的状态
type FrameResult struct {
	// Deaths 当前关卡累计死亡次数
	Deaths int
	// Died 本次调用中是否发生过死亡（此时动态状态已经重置）
	Died bool
	// DeathCause 最近一次死亡的原因和角色，Died 为 false 时为空
	DeathCause string
	DeathActor types.ActorColor

	// GemsCollected 当前关卡已收集的宝石数，Collected 按角色下标拆分
	GemsCollected    int
	Collected        [2]int
	AllGemsCollected bool

	Completed      bool
	TetherDistance float64
	Paused         bool

	// Elapsed 本次尝试的运行时间（秒），死亡和重置时归零
	Elapsed float64

	// Steps 本次调用实际执行的模拟步数（Step 总是 0 或 1）
	Steps int
}
