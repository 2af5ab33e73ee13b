package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel 关卡配置校验失败
// 所有校验错误都包装此错误，调用方可以用 errors.Is 判断
var ErrInvalidLevel = errors.New("invalid level config")

// 默认尺寸（与原版关卡一致）
const (
	DefaultGemSize         = 18.0
	DefaultCrateWidth      = 44.0
	DefaultCrateHeight     = 26.0
	DefaultTetherLength    = 160.0
	DefaultTetherStiffness = 0.5
)

// LevelConfig 关卡定义
//
// 关卡加载一次后作为值交给模拟核心，模拟期间不再修改。
// 所有坐标均为世界坐标（左上角为原点，Y 轴向下）。
type LevelConfig struct {
	ID          string  `yaml:"id" json:"id"`                                       // 关卡ID，如 "1-1"
	Name        string  `yaml:"name" json:"name"`                                   // 关卡名称
	Description string  `yaml:"description,omitempty" json:"description,omitempty"` // 关卡描述（可选）
	Width       float64 `yaml:"width" json:"width"`                                 // 世界宽度
	Height      float64 `yaml:"height" json:"height"`                               // 世界高度
	Gravity     float64 `yaml:"gravity" json:"gravity"`                             // 每帧重力加速度

	Spawns    SpawnConfig      `yaml:"spawns" json:"spawns"`
	Platforms []PlatformConfig `yaml:"platforms" json:"platforms"`
	Plates    []PlateConfig    `yaml:"plates,omitempty" json:"plates,omitempty"`
	Doors     []DoorConfig     `yaml:"doors,omitempty" json:"doors,omitempty"`
	Hazards   []HazardConfig   `yaml:"hazards,omitempty" json:"hazards,omitempty"`
	Exits     []ExitConfig     `yaml:"exits" json:"exits"`
	Gems      []GemConfig      `yaml:"gems,omitempty" json:"gems,omitempty"`
	Crates    []CrateConfig    `yaml:"crates,omitempty" json:"crates,omitempty"`
	Enemies   []EnemyConfig    `yaml:"enemies,omitempty" json:"enemies,omitempty"`

	RisingHazard *RisingHazardConfig `yaml:"risingHazard,omitempty" json:"risingHazard,omitempty"` // 上涨的水面（可选）
	Tether       *TetherConfig       `yaml:"tether,omitempty" json:"tether,omitempty"`             // 锁链（可选，nil 表示两个角色独立行动）

	// CratesPressPlates 箱子是否也能压下压力板
	CratesPressPlates bool `yaml:"cratesPressPlates,omitempty" json:"cratesPressPlates,omitempty"`
}

// PointConfig 坐标点
type PointConfig struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// SpawnConfig 两个角色的出生点
type SpawnConfig struct {
	Red  PointConfig `yaml:"red" json:"red"`
	Blue PointConfig `yaml:"blue" json:"blue"`
}

// PlatformConfig 平台
// Color 非空时为彩色屏障：同色角色可穿过，异色角色被阻挡；Lethal 为 true 时异色角色触碰即死亡
type PlatformConfig struct {
	geom.Rect `yaml:",inline"`
	Color     string `yaml:"color,omitempty" json:"color,omitempty"`
	Lethal    bool   `yaml:"lethal,omitempty" json:"lethal,omitempty"`
}

// PlateConfig 压力板
type PlateConfig struct {
	ID        string `yaml:"id" json:"id"`
	geom.Rect `yaml:",inline"`
}

// DoorConfig 门，所有关联压力板都被压下时打开
type DoorConfig struct {
	ID        string `yaml:"id,omitempty" json:"id,omitempty"`
	geom.Rect `yaml:",inline"`
	Plates    []string `yaml:"plates" json:"plates"`
}

// HazardConfig 危险区域
type HazardConfig struct {
	geom.Rect `yaml:",inline"`
	Kind      string `yaml:"kind" json:"kind"` // "fire", "water", "poison"
}

// ExitConfig 出口
type ExitConfig struct {
	geom.Rect `yaml:",inline"`
	Color     string `yaml:"color" json:"color"`
}

// GemConfig 宝石，宽高为 0 时使用默认尺寸
type GemConfig struct {
	geom.Rect `yaml:",inline"`
	Color     string `yaml:"color" json:"color"`
}

// CrateConfig 可推动的箱子，宽高为 0 时使用默认尺寸
type CrateConfig struct {
	geom.Rect `yaml:",inline"`
}

// EnemyConfig 巡逻敌人，在 [MinX, MaxX] 之间来回移动（X 为左边缘）
type EnemyConfig struct {
	geom.Rect `yaml:",inline"`
	Speed     float64 `yaml:"speed" json:"speed"` // 每帧移动距离，符号表示初始方向
	MinX      float64 `yaml:"minX" json:"minX"`
	MaxX      float64 `yaml:"maxX" json:"maxX"`
}

// RisingHazardConfig 上涨的危险水面
type RisingHazardConfig struct {
	Speed float64 `yaml:"speed" json:"speed"`                     // 每帧上涨距离
	Start float64 `yaml:"start,omitempty" json:"start,omitempty"` // 初始水面高度，0 表示世界底部
}

// TetherConfig 锁链配置
type TetherConfig struct {
	MaxLength      float64 `yaml:"maxLength" json:"maxLength"`
	Stiffness      float64 `yaml:"stiffness" json:"stiffness"` // 0 ~ 1
	AllowSnapDeath bool    `yaml:"allowSnapDeath,omitempty" json:"allowSnapDeath,omitempty"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析并校验后的关卡配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return ParseLevelConfig(data, filepath)
}

// ParseLevelConfig 解析 YAML 数据为关卡配置
// source 仅用于错误信息（文件路径或嵌入资源路径）
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	levelConfig.ApplyDefaults()

	if err := levelConfig.Validate(); err != nil {
		return nil, fmt.Errorf("level config %s: %w", source, err)
	}

	return &levelConfig, nil
}

// Clone 深拷贝关卡定义，拷贝与原值不共享任何切片或指针
func (c *LevelConfig) Clone() *LevelConfig {
	out := *c
	out.Platforms = slices.Clone(c.Platforms)
	out.Plates = slices.Clone(c.Plates)
	out.Hazards = slices.Clone(c.Hazards)
	out.Exits = slices.Clone(c.Exits)
	out.Gems = slices.Clone(c.Gems)
	out.Crates = slices.Clone(c.Crates)
	out.Enemies = slices.Clone(c.Enemies)

	if c.Doors != nil {
		out.Doors = make([]DoorConfig, len(c.Doors))
		for i, d := range c.Doors {
			d.Plates = slices.Clone(d.Plates)
			out.Doors[i] = d
		}
	}
	if c.RisingHazard != nil {
		r := *c.RisingHazard
		out.RisingHazard = &r
	}
	if c.Tether != nil {
		t := *c.Tether
		out.Tether = &t
	}
	return &out
}

// ApplyDefaults 为缺失的可选字段设置默认值
// 可以重复调用
func (c *LevelConfig) ApplyDefaults() {
	for i := range c.Gems {
		if c.Gems[i].W == 0 {
			c.Gems[i].W = DefaultGemSize
		}
		if c.Gems[i].H == 0 {
			c.Gems[i].H = DefaultGemSize
		}
	}

	for i := range c.Crates {
		if c.Crates[i].W == 0 {
			c.Crates[i].W = DefaultCrateWidth
		}
		if c.Crates[i].H == 0 {
			c.Crates[i].H = DefaultCrateHeight
		}
	}

	if c.RisingHazard != nil && c.RisingHazard.Start == 0 {
		c.RisingHazard.Start = c.Height
	}

	if c.Tether != nil {
		if c.Tether.MaxLength == 0 {
			c.Tether.MaxLength = DefaultTetherLength
		}
		if c.Tether.Stiffness == 0 {
			c.Tether.Stiffness = DefaultTetherStiffness
		}
	}
}

// Validate 验证关卡配置的完整性和合法性
//
// 返回的错误包装 ErrInvalidLevel。
func (c *LevelConfig) Validate() error {
	if err := validateLevelConfig(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return nil
}

// validateLevelConfig 执行具体的校验规则
func validateLevelConfig(c *LevelConfig) error {
	if c.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.1fx%.1f", c.Width, c.Height)
	}

	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.3f", c.Gravity)
	}

	for i, p := range c.Platforms {
		if !p.Valid() {
			return fmt.Errorf("platforms[%d]: width and height must be positive", i)
		}
		if _, err := types.ParseActorColor(p.Color, true); err != nil {
			return fmt.Errorf("platforms[%d]: %w", i, err)
		}
		if p.Lethal && p.Color == "" {
			return fmt.Errorf("platforms[%d]: lethal barrier requires a color", i)
		}
	}

	plateIDs := make(map[string]bool, len(c.Plates))
	for i, p := range c.Plates {
		if p.ID == "" {
			return fmt.Errorf("plates[%d]: id is required", i)
		}
		if plateIDs[p.ID] {
			return fmt.Errorf("plates[%d]: duplicate plate id %q", i, p.ID)
		}
		if !p.Valid() {
			return fmt.Errorf("plates[%d]: width and height must be positive", i)
		}
		plateIDs[p.ID] = true
	}

	for i, d := range c.Doors {
		if !d.Valid() {
			return fmt.Errorf("doors[%d]: width and height must be positive", i)
		}
		if len(d.Plates) == 0 {
			return fmt.Errorf("doors[%d]: at least one linked plate is required", i)
		}
		for _, id := range d.Plates {
			if !plateIDs[id] {
				return fmt.Errorf("doors[%d]: references unknown plate %q", i, id)
			}
		}
	}

	for i, h := range c.Hazards {
		if !h.Valid() {
			return fmt.Errorf("hazards[%d]: width and height must be positive", i)
		}
		if _, err := types.ParseHazardKind(h.Kind); err != nil {
			return fmt.Errorf("hazards[%d]: %w", i, err)
		}
	}

	exitColors := make(map[types.ActorColor]bool, 2)
	for i, e := range c.Exits {
		if !e.Valid() {
			return fmt.Errorf("exits[%d]: width and height must be positive", i)
		}
		color, err := types.ParseActorColor(e.Color, false)
		if err != nil {
			return fmt.Errorf("exits[%d]: %w", i, err)
		}
		exitColors[color] = true
	}
	for _, color := range types.ActorColors {
		if !exitColors[color] {
			return fmt.Errorf("no exit defined for color %s", color)
		}
	}

	for i, g := range c.Gems {
		if !g.Valid() {
			return fmt.Errorf("gems[%d]: width and height must be positive", i)
		}
		if _, err := types.ParseActorColor(g.Color, false); err != nil {
			return fmt.Errorf("gems[%d]: %w", i, err)
		}
	}

	for i, cr := range c.Crates {
		if !cr.Valid() {
			return fmt.Errorf("crates[%d]: width and height must be positive", i)
		}
	}

	for i, e := range c.Enemies {
		if !e.Valid() {
			return fmt.Errorf("enemies[%d]: width and height must be positive", i)
		}
		if e.Speed == 0 {
			return fmt.Errorf("enemies[%d]: speed cannot be zero", i)
		}
		if e.MinX > e.MaxX {
			return fmt.Errorf("enemies[%d]: patrol range invalid: minX(%.1f) > maxX(%.1f)", i, e.MinX, e.MaxX)
		}
	}

	if c.RisingHazard != nil && c.RisingHazard.Speed < 0 {
		return fmt.Errorf("risingHazard: speed cannot be negative, got %.3f", c.RisingHazard.Speed)
	}

	if c.Tether != nil {
		if c.Tether.MaxLength <= 0 {
			return fmt.Errorf("tether: maxLength must be positive, got %.1f", c.Tether.MaxLength)
		}
		if c.Tether.Stiffness < 0 || c.Tether.Stiffness > 1 {
			return fmt.Errorf("tether: stiffness must be between 0 and 1, got %.2f", c.Tether.Stiffness)
		}
	}

	return nil
}

// PlateIndex 返回压力板 ID 对应的下标，不存在返回 -1
func (c *LevelConfig) PlateIndex(id string) int {
	for i, p := range c.Plates {
		if p.ID == id {
			return i
		}
	}
	return -1
}
