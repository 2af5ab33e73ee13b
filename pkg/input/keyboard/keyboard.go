// Package keyboard 把 ebiten 键盘状态映射为模拟输入
package keyboard

import (
	"fmt"

	"github.com/decker502/emberwave/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding 单个角色的按键绑定，按键使用 ebiten 的键名（如 "ArrowLeft"、"A"）
type Binding struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Jump  string `yaml:"jump"`
}

// Bindings 两个角色的按键绑定，下标与 types.ActorColors 一致
type Bindings [2]Binding

// DefaultBindings 红色角色用方向键，蓝色角色用 WASD
func DefaultBindings() Bindings {
	return Bindings{
		{Left: "ArrowLeft", Right: "ArrowRight", Jump: "ArrowUp"},
		{Left: "A", Right: "D", Jump: "W"},
	}
}

// keys 解析后的按键
type keys struct {
	left, right, jump ebiten.Key
}

// Mapper 轮询 ebiten 键盘状态生成 input.State
type Mapper struct {
	keys [2]keys
}

// NewMapper 解析按键绑定
//
// 返回:
//   - *Mapper: 输入映射器
//   - error: 键名无法识别
func NewMapper(b Bindings) (*Mapper, error) {
	m := &Mapper{}
	for i, binding := range b {
		var err error
		if m.keys[i].left, err = parseKey(binding.Left); err != nil {
			return nil, fmt.Errorf("actor %d left: %w", i, err)
		}
		if m.keys[i].right, err = parseKey(binding.Right); err != nil {
			return nil, fmt.Errorf("actor %d right: %w", i, err)
		}
		if m.keys[i].jump, err = parseKey(binding.Jump); err != nil {
			return nil, fmt.Errorf("actor %d jump: %w", i, err)
		}
	}
	return m, nil
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// Poll 读取当前帧的按键状态
func (m *Mapper) Poll() input.State {
	var s input.State
	for i, k := range m.keys {
		s.Actors[i] = input.ActorInput{
			Left:  ebiten.IsKeyPressed(k.left),
			Right: ebiten.IsKeyPressed(k.right),
			Jump:  ebiten.IsKeyPressed(k.jump),
		}
	}
	return s
}
