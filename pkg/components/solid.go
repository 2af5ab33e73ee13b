package components

import (
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
)

// Platform 静态平台
// Color 非空时为彩色屏障
type Platform struct {
	geom.Rect
	Color  types.ActorColor
	Lethal bool
}

// Plate 压力板，Active 每帧从占用情况重新计算
type Plate struct {
	ID string
	geom.Rect
	Active bool
}

// Door 门
// 打开状态不单独存储：当且仅当所有关联压力板都激活时门是打开的
type Door struct {
	ID string
	geom.Rect
	Plates []*Plate
}

// Open 门是否打开
func (d *Door) Open() bool {
	for _, p := range d.Plates {
		if !p.Active {
			return false
		}
	}
	return true
}

// IsSolid 关闭的门是实体
func (d *Door) IsSolid() bool {
	return !d.Open()
}

// SolidKind 实体的种类
type SolidKind int

const (
	// SolidPlatform 平台（含彩色屏障）
	SolidPlatform SolidKind = iota
	// SolidDoor 关闭的门
	SolidDoor
	// SolidCrate 箱子
	SolidCrate
)

// String 返回实体种类名称
func (k SolidKind) String() string {
	switch k {
	case SolidPlatform:
		return "platform"
	case SolidDoor:
		return "door"
	case SolidCrate:
		return "crate"
	default:
		return "unknown"
	}
}

// Response 角色与实体重叠时的处理方式
type Response int

const (
	// ResponseBlock 推出并清零速度
	ResponseBlock Response = iota
	// ResponsePass 同色穿过
	ResponsePass
	// ResponseKill 异色致命屏障
	ResponseKill
)

// Solid 当前帧可以被碰撞的实体
// Index 是该实体在其所属列表中的下标（用于回写箱子等）
type Solid struct {
	Kind   SolidKind
	Rect   geom.Rect
	Color  types.ActorColor
	Lethal bool
	Index  int
}

// ResponseTo 返回某颜色角色碰到该实体时的处理方式
func (s Solid) ResponseTo(color types.ActorColor) Response {
	if s.Color == types.ColorNone {
		return ResponseBlock
	}
	if s.Color == color {
		return ResponsePass
	}
	if s.Lethal {
		return ResponseKill
	}
	return ResponseBlock
}
