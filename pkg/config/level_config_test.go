package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/emberwave/pkg/geom"
)

const validLevelYAML = `id: "t-1"
name: "Test Level"
description: "A test level"
width: 960
height: 560
gravity: 0.48
spawns:
  red: { x: 80, y: 476 }
  blue: { x: 130, y: 476 }
platforms:
  - { x: 0, y: 520, w: 960, h: 40 }
  - { x: 300, y: 400, w: 16, h: 120, color: red, lethal: true }
plates:
  - { id: "p1", x: 360, y: 504, w: 40, h: 16 }
doors:
  - { id: "d1", x: 500, y: 440, w: 20, h: 80, plates: ["p1"] }
hazards:
  - { x: 600, y: 508, w: 40, h: 12, kind: fire }
exits:
  - { x: 820, y: 476, w: 40, h: 44, color: red }
  - { x: 870, y: 476, w: 40, h: 44, color: blue }
gems:
  - { x: 170, y: 430, color: red }
crates:
  - { x: 200, y: 494 }
enemies:
  - { x: 700, y: 496, w: 24, h: 24, speed: 1.5, minX: 650, maxX: 760 }
risingHazard:
  speed: 0.25
tether:
  maxLength: 160
`

// TestLoadLevelConfig 测试关卡配置文件加载
func TestLoadLevelConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "test-level.yaml")
		if err := os.WriteFile(testFile, []byte(validLevelYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		config, err := LoadLevelConfig(testFile)
		if err != nil {
			t.Fatalf("LoadLevelConfig() failed: %v", err)
		}

		if config.ID != "t-1" {
			t.Errorf("Expected ID 't-1', got '%s'", config.ID)
		}
		if config.Description != "A test level" {
			t.Errorf("Expected Description 'A test level', got '%s'", config.Description)
		}
		if len(config.Platforms) != 2 {
			t.Fatalf("Expected 2 platforms, got %d", len(config.Platforms))
		}
		barrier := config.Platforms[1]
		if barrier.X != 300 || barrier.H != 120 || barrier.Color != "red" || !barrier.Lethal {
			t.Errorf("Barrier parsed incorrectly: %+v", barrier)
		}
		if len(config.Doors) != 1 || len(config.Doors[0].Plates) != 1 || config.Doors[0].Plates[0] != "p1" {
			t.Errorf("Door plates parsed incorrectly: %+v", config.Doors)
		}
		if config.Enemies[0].Speed != 1.5 || config.Enemies[0].MaxX != 760 {
			t.Errorf("Enemy parsed incorrectly: %+v", config.Enemies[0])
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadLevelConfig("nonexistent.yaml")
		if err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseLevelConfig([]byte("id: [unclosed"), "inline")
		if err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})
}

// TestApplyDefaults 测试默认值
func TestApplyDefaults(t *testing.T) {
	config, err := ParseLevelConfig([]byte(validLevelYAML), "inline")
	if err != nil {
		t.Fatalf("ParseLevelConfig() failed: %v", err)
	}

	if config.Gems[0].W != DefaultGemSize || config.Gems[0].H != DefaultGemSize {
		t.Errorf("Expected default gem size %.0f, got %.0fx%.0f", DefaultGemSize, config.Gems[0].W, config.Gems[0].H)
	}
	if config.Crates[0].W != DefaultCrateWidth || config.Crates[0].H != DefaultCrateHeight {
		t.Errorf("Expected default crate size, got %.0fx%.0f", config.Crates[0].W, config.Crates[0].H)
	}
	if config.RisingHazard.Start != config.Height {
		t.Errorf("Expected rising hazard to start at world height %.0f, got %.0f", config.Height, config.RisingHazard.Start)
	}
	if config.Tether.Stiffness != DefaultTetherStiffness {
		t.Errorf("Expected default stiffness %.2f, got %.2f", DefaultTetherStiffness, config.Tether.Stiffness)
	}
	if config.Tether.AllowSnapDeath {
		t.Error("AllowSnapDeath should default to false")
	}
}

// TestClone 拷贝不与原值共享切片和指针
func TestClone(t *testing.T) {
	orig, err := ParseLevelConfig([]byte(validLevelYAML), "inline")
	if err != nil {
		t.Fatalf("ParseLevelConfig() failed: %v", err)
	}

	c := orig.Clone()
	c.Platforms[0].W = 1
	c.Doors[0].Plates[0] = "other"
	c.Crates[0].X = 1
	c.Enemies[0].Speed = 9
	c.RisingHazard.Speed = 9
	c.Tether.MaxLength = 9

	if orig.Platforms[0].W != 960 {
		t.Errorf("platforms shared: W = %.0f", orig.Platforms[0].W)
	}
	if orig.Doors[0].Plates[0] != "p1" {
		t.Errorf("door plates shared: %v", orig.Doors[0].Plates)
	}
	if orig.Crates[0].X != 200 || orig.Enemies[0].Speed != 1.5 {
		t.Error("crates or enemies shared")
	}
	if orig.RisingHazard.Speed != 0.25 || orig.Tether.MaxLength != 160 {
		t.Error("rising hazard or tether shared")
	}

	bare := NewBareLevel("b").Clone()
	if bare.Doors != nil || bare.Tether != nil || bare.RisingHazard != nil {
		t.Error("nil fields should stay nil")
	}
}

// TestValidateLevelConfig 测试各类非法配置
func TestValidateLevelConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *LevelConfig)
		wantErr string
	}{
		{
			name:    "missing id",
			mutate:  func(c *LevelConfig) { c.ID = "" },
			wantErr: "level ID is required",
		},
		{
			name:    "non-positive gravity",
			mutate:  func(c *LevelConfig) { c.Gravity = 0 },
			wantErr: "gravity must be positive",
		},
		{
			name:    "zero size platform",
			mutate:  func(c *LevelConfig) { c.Platforms[0].W = 0 },
			wantErr: "platforms[0]",
		},
		{
			name: "unknown platform color",
			mutate: func(c *LevelConfig) {
				c.Platforms = append(c.Platforms, PlatformConfig{Rect: geom.NewRect(0, 0, 10, 10), Color: "green"})
			},
			wantErr: "unknown color",
		},
		{
			name: "lethal without color",
			mutate: func(c *LevelConfig) {
				c.Platforms = append(c.Platforms, PlatformConfig{Rect: geom.NewRect(0, 0, 10, 10), Lethal: true})
			},
			wantErr: "lethal barrier requires a color",
		},
		{
			name: "door references unknown plate",
			mutate: func(c *LevelConfig) {
				c.Doors = []DoorConfig{{Rect: geom.NewRect(0, 0, 10, 10), Plates: []string{"ghost"}}}
			},
			wantErr: "unknown plate",
		},
		{
			name: "door without plates",
			mutate: func(c *LevelConfig) {
				c.Doors = []DoorConfig{{Rect: geom.NewRect(0, 0, 10, 10)}}
			},
			wantErr: "at least one linked plate",
		},
		{
			name: "duplicate plate id",
			mutate: func(c *LevelConfig) {
				c.Plates = []PlateConfig{
					{ID: "a", Rect: geom.NewRect(0, 0, 10, 10)},
					{ID: "a", Rect: geom.NewRect(20, 0, 10, 10)},
				}
			},
			wantErr: "duplicate plate id",
		},
		{
			name:    "missing blue exit",
			mutate:  func(c *LevelConfig) { c.Exits = c.Exits[:1] },
			wantErr: "no exit defined for color blue",
		},
		{
			name: "unknown hazard kind",
			mutate: func(c *LevelConfig) {
				c.Hazards = []HazardConfig{{Rect: geom.NewRect(0, 0, 10, 10), Kind: "lava"}}
			},
			wantErr: "unknown hazard kind",
		},
		{
			name: "enemy range inverted",
			mutate: func(c *LevelConfig) {
				c.Enemies = []EnemyConfig{{Rect: geom.NewRect(0, 0, 10, 10), Speed: 1, MinX: 50, MaxX: 10}}
			},
			wantErr: "patrol range invalid",
		},
		{
			name: "enemy zero speed",
			mutate: func(c *LevelConfig) {
				c.Enemies = []EnemyConfig{{Rect: geom.NewRect(0, 0, 10, 10), MinX: 0, MaxX: 10}}
			},
			wantErr: "speed cannot be zero",
		},
		{
			name:    "tether stiffness out of range",
			mutate:  func(c *LevelConfig) { c.Tether = &TetherConfig{MaxLength: 100, Stiffness: 1.5} },
			wantErr: "stiffness must be between 0 and 1",
		},
		{
			name:    "negative rising speed",
			mutate:  func(c *LevelConfig) { c.RisingHazard = &RisingHazardConfig{Speed: -1} },
			wantErr: "speed cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewBareLevel("v-1")
			tt.mutate(config)

			err := config.Validate()
			if err == nil {
				t.Fatalf("Expected validation error containing %q", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Expected error to wrap ErrInvalidLevel, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestBareLevelIsValid(t *testing.T) {
	config := NewBareLevel("bare")
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		t.Fatalf("Bare level should be valid: %v", err)
	}
}

func TestPlateIndex(t *testing.T) {
	config := NewBareLevel("plates")
	config.Plates = []PlateConfig{
		{ID: "a", Rect: geom.NewRect(0, 0, 10, 10)},
		{ID: "b", Rect: geom.NewRect(20, 0, 10, 10)},
	}
	if config.PlateIndex("b") != 1 {
		t.Errorf("Expected index 1 for plate b, got %d", config.PlateIndex("b"))
	}
	if config.PlateIndex("missing") != -1 {
		t.Error("Expected -1 for missing plate")
	}
}
