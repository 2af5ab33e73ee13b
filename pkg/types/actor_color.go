// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// ActorColor 角色（以及出口、宝石、彩色屏障）的颜色标识
type ActorColor string

const (
	// ColorNone 无颜色（中立平台）
	ColorNone ActorColor = ""
	// ColorRed 红色角色 A（火）
	ColorRed ActorColor = "red"
	// ColorBlue 蓝色角色 B（水）
	ColorBlue ActorColor = "blue"
)

// ActorColors 两个可控角色的颜色，顺序即角色下标（0 = A, 1 = B）
var ActorColors = [2]ActorColor{ColorRed, ColorBlue}

// String 返回颜色的字符串表示
func (c ActorColor) String() string {
	if c == ColorNone {
		return "none"
	}
	return string(c)
}

// Valid 检查是否为角色颜色（red/blue）
func (c ActorColor) Valid() bool {
	return c == ColorRed || c == ColorBlue
}

// Index 返回颜色对应的角色下标
//
// 返回:
//   - int: 0 表示红色，1 表示蓝色，其他颜色返回 -1
func (c ActorColor) Index() int {
	switch c {
	case ColorRed:
		return 0
	case ColorBlue:
		return 1
	default:
		return -1
	}
}

// ParseActorColor 解析配置中的颜色字符串
// allowNone 为 true 时接受空字符串（中立）
func ParseActorColor(s string, allowNone bool) (ActorColor, error) {
	c := ActorColor(s)
	if c == ColorNone && allowNone {
		return c, nil
	}
	if !c.Valid() {
		return ColorNone, fmt.Errorf("unknown color %q (expected red or blue)", s)
	}
	return c, nil
}
