package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPhysicsConfigIsValid(t *testing.T) {
	if err := DefaultPhysicsConfig().Validate(); err != nil {
		t.Fatalf("Default physics config should be valid: %v", err)
	}
}

// TestParsePhysicsConfigPartial 未配置的字段使用默认值
func TestParsePhysicsConfigPartial(t *testing.T) {
	config, err := ParsePhysicsConfig([]byte("actor:\n  maxSpeed: 3.2\ncrate:\n  friction: 0.8\n"))
	if err != nil {
		t.Fatalf("ParsePhysicsConfig() failed: %v", err)
	}

	if config.Actor.MaxSpeed != 3.2 {
		t.Errorf("Expected MaxSpeed=3.2, got %f", config.Actor.MaxSpeed)
	}
	if config.Crate.Friction != 0.8 {
		t.Errorf("Expected Friction=0.8, got %f", config.Crate.Friction)
	}

	def := DefaultPhysicsConfig()
	if config.Actor.JumpPower != def.Actor.JumpPower {
		t.Errorf("Expected default JumpPower=%f, got %f", def.Actor.JumpPower, config.Actor.JumpPower)
	}
	if config.PlateTolerance != def.PlateTolerance {
		t.Errorf("Expected default PlateTolerance=%f, got %f", def.PlateTolerance, config.PlateTolerance)
	}
}

func TestParsePhysicsConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"upward jump must be negative", "actor:\n  jumpPower: 5\n"},
		{"jump cut factor out of range", "actor:\n  jumpCutFactor: 1.5\n"},
		{"friction out of range", "crate:\n  friction: 1.2\n"},
		{"malformed yaml", "actor: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePhysicsConfig([]byte(tt.yaml)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadPhysicsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	if err := os.WriteFile(path, []byte("fallMargin: 120\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	config, err := LoadPhysicsConfig(path)
	if err != nil {
		t.Fatalf("LoadPhysicsConfig() failed: %v", err)
	}
	if config.FallMargin != 120 {
		t.Errorf("Expected FallMargin=120, got %f", config.FallMargin)
	}

	if _, err := LoadPhysicsConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
