package components

import (
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
)

// Exit 出口，只对同色角色有效
type Exit struct {
	geom.Rect
	Color types.ActorColor
}

// Gem 宝石，只能被同色角色收集一次
type Gem struct {
	geom.Rect
	Color     types.ActorColor
	Collected bool
}
