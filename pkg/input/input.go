// Package input 定义模拟核心消费的逐帧输入
//
// 核心只关心"某个逻辑动作这一帧是否按住"，按键采集由宿主负责（见 keyboard 子包）。
// 跳跃的按下边沿由核心自己根据上一帧状态计算。
package input

// ActorInput 单个角色一帧的输入
type ActorInput struct {
	Left  bool `msgpack:"l" yaml:"left"`
	Right bool `msgpack:"r" yaml:"right"`
	Jump  bool `msgpack:"j" yaml:"jump"`
}

// Direction 返回水平方向：右减左，取值 -1、0、+1
func (in ActorInput) Direction() float64 {
	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}

// State 两个角色一帧的输入，下标与 types.ActorColors 一致
type State struct {
	Actors [2]ActorInput `msgpack:"a" yaml:"actors"`
}

// Idle 没有任何按键的输入
var Idle = State{}

// With 返回替换了第 i 个角色输入的副本
func (s State) With(i int, in ActorInput) State {
	s.Actors[i] = in
	return s
}
