package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏场景（关卡、关卡选择等），同一时间只有一个场景处于活动状态
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一次调用经过的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen 上
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
