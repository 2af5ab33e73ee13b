package types

import "fmt"

// HazardKind 危险区域的类型
type HazardKind string

const (
	// HazardFire 火焰池：红色角色免疫
	HazardFire HazardKind = "fire"
	// HazardWater 水池：蓝色角色免疫
	HazardWater HazardKind = "water"
	// HazardPoison 毒液：所有角色都会死亡
	HazardPoison HazardKind = "poison"
)

// String 返回危险类型的字符串表示
func (k HazardKind) String() string {
	return string(k)
}

// ParseHazardKind 解析配置中的危险类型
func ParseHazardKind(s string) (HazardKind, error) {
	switch HazardKind(s) {
	case HazardFire, HazardWater, HazardPoison:
		return HazardKind(s), nil
	default:
		return "", fmt.Errorf("unknown hazard kind %q (expected fire, water or poison)", s)
	}
}

// DefaultImmunities 返回某颜色角色默认免疫的危险类型
func DefaultImmunities(c ActorColor) []HazardKind {
	switch c {
	case ColorRed:
		return []HazardKind{HazardFire}
	case ColorBlue:
		return []HazardKind{HazardWater}
	default:
		return nil
	}
}
