package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PhysicsConfig 物理手感配置
//
// 速度、加速度类常量都是"每帧"数值（按 60 步/秒调校），
// 跳跃计时器（土狼时间、输入缓冲）以秒为单位。两者刻意混用，修改时不要统一换算。
//
// 配置文件位置: data/physics.yaml
type PhysicsConfig struct {
	Actor ActorTuning `yaml:"actor" json:"actor"`
	Crate CrateTuning `yaml:"crate" json:"crate"`

	// FallMargin 角色掉出世界底部多少距离后判定死亡
	FallMargin float64 `yaml:"fallMargin" json:"fallMargin"`

	// PlateTolerance 压力板判定容差：角色底边不超过压力板底边 + 容差才算踩下
	PlateTolerance float64 `yaml:"plateTolerance" json:"plateTolerance"`
}

// ActorTuning 角色移动参数
type ActorTuning struct {
	Width         float64 `yaml:"width" json:"width"`
	Height        float64 `yaml:"height" json:"height"`
	MaxSpeed      float64 `yaml:"maxSpeed" json:"maxSpeed"`           // 每帧最大水平速度
	Accel         float64 `yaml:"accel" json:"accel"`                 // 每帧水平加速度
	Decel         float64 `yaml:"decel" json:"decel"`                 // 每帧水平减速度
	JumpPower     float64 `yaml:"jumpPower" json:"jumpPower"`         // 起跳速度（负数向上）
	MaxFall       float64 `yaml:"maxFall" json:"maxFall"`             // 最大下落速度
	JumpCutFactor float64 `yaml:"jumpCutFactor" json:"jumpCutFactor"` // 松开跳跃键时上升速度的衰减系数
	CoyoteMax     float64 `yaml:"coyoteMax" json:"coyoteMax"`         // 土狼时间（秒）
	BufferMax     float64 `yaml:"bufferMax" json:"bufferMax"`         // 跳跃输入缓冲（秒）
}

// CrateTuning 箱子参数
type CrateTuning struct {
	MaxFall        float64 `yaml:"maxFall" json:"maxFall"`
	Friction       float64 `yaml:"friction" json:"friction"`             // 每帧水平速度乘数
	StopEpsilon    float64 `yaml:"stopEpsilon" json:"stopEpsilon"`       // 低于该速度直接归零
	PushFactor     float64 `yaml:"pushFactor" json:"pushFactor"`         // 推动时箱子位移 = 角色速度 × PushFactor
	ImpartFactor   float64 `yaml:"impartFactor" json:"impartFactor"`     // 推动成功后传递给箱子的速度比例
	StandTolerance float64 `yaml:"standTolerance" json:"standTolerance"` // 站上/顶到箱子的判定容差
}

// DefaultPhysicsConfig 返回默认物理配置
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Actor: ActorTuning{
			Width:         34,
			Height:        44,
			MaxSpeed:      2.6,
			Accel:         0.6,
			Decel:         0.7,
			JumpPower:     -11.6,
			MaxFall:       11,
			JumpCutFactor: 0.9,
			CoyoteMax:     0.10,
			BufferMax:     0.12,
		},
		Crate: CrateTuning{
			MaxFall:        12,
			Friction:       0.92,
			StopEpsilon:    0.02,
			PushFactor:     0.9,
			ImpartFactor:   0.5,
			StandTolerance: 16,
		},
		FallMargin:     200,
		PlateTolerance: 2,
	}
}

// LoadPhysicsConfig 加载物理配置
//
// 文件中缺失（为零）的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/physics.yaml"）
//
// 返回:
//   - *PhysicsConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadPhysicsConfig(path string) (*PhysicsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read physics config: %w", err)
	}
	return ParsePhysicsConfig(data)
}

// ParsePhysicsConfig 解析 YAML 数据为物理配置
func ParsePhysicsConfig(data []byte) (*PhysicsConfig, error) {
	var config PhysicsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse physics config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}

	return &config, nil
}

// applyDefaults 用默认值填充零值字段
func (c *PhysicsConfig) applyDefaults() {
	d := DefaultPhysicsConfig()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}

	fill(&c.Actor.Width, d.Actor.Width)
	fill(&c.Actor.Height, d.Actor.Height)
	fill(&c.Actor.MaxSpeed, d.Actor.MaxSpeed)
	fill(&c.Actor.Accel, d.Actor.Accel)
	fill(&c.Actor.Decel, d.Actor.Decel)
	fill(&c.Actor.JumpPower, d.Actor.JumpPower)
	fill(&c.Actor.MaxFall, d.Actor.MaxFall)
	fill(&c.Actor.JumpCutFactor, d.Actor.JumpCutFactor)
	fill(&c.Actor.CoyoteMax, d.Actor.CoyoteMax)
	fill(&c.Actor.BufferMax, d.Actor.BufferMax)

	fill(&c.Crate.MaxFall, d.Crate.MaxFall)
	fill(&c.Crate.Friction, d.Crate.Friction)
	fill(&c.Crate.StopEpsilon, d.Crate.StopEpsilon)
	fill(&c.Crate.PushFactor, d.Crate.PushFactor)
	fill(&c.Crate.ImpartFactor, d.Crate.ImpartFactor)
	fill(&c.Crate.StandTolerance, d.Crate.StandTolerance)

	fill(&c.FallMargin, d.FallMargin)
	fill(&c.PlateTolerance, d.PlateTolerance)
}

// Validate 验证配置有效性
func (c *PhysicsConfig) Validate() error {
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return fmt.Errorf("actor size must be positive, got %.1fx%.1f", c.Actor.Width, c.Actor.Height)
	}
	if c.Actor.MaxSpeed <= 0 || c.Actor.Accel <= 0 || c.Actor.Decel <= 0 {
		return fmt.Errorf("actor maxSpeed, accel and decel must be positive")
	}
	if c.Actor.JumpPower >= 0 {
		return fmt.Errorf("actor jumpPower must be negative (upward), got %.2f", c.Actor.JumpPower)
	}
	if c.Actor.MaxFall <= 0 || c.Crate.MaxFall <= 0 {
		return fmt.Errorf("maxFall must be positive")
	}
	if c.Actor.JumpCutFactor <= 0 || c.Actor.JumpCutFactor >= 1 {
		return fmt.Errorf("actor jumpCutFactor must be in (0,1), got %.2f", c.Actor.JumpCutFactor)
	}
	if c.Actor.CoyoteMax < 0 || c.Actor.BufferMax < 0 {
		return fmt.Errorf("jump timers cannot be negative")
	}
	if c.Crate.Friction <= 0 || c.Crate.Friction > 1 {
		return fmt.Errorf("crate friction must be in (0,1], got %.2f", c.Crate.Friction)
	}
	if c.Crate.PushFactor <= 0 || c.Crate.ImpartFactor < 0 {
		return fmt.Errorf("crate pushFactor must be positive and impartFactor non-negative")
	}
	if c.Crate.StandTolerance <= 0 {
		return fmt.Errorf("crate standTolerance must be positive")
	}
	if c.FallMargin < 0 || c.PlateTolerance < 0 {
		return fmt.Errorf("fallMargin and plateTolerance cannot be negative")
	}
	return nil
}
