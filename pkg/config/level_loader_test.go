package config

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/emberwave/pkg/embedded"
)

// TestShippedLevelsAreValid 仓库自带的所有关卡都必须通过校验
func TestShippedLevelsAreValid(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "data", "levels", "*.yaml"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("Expected at least one shipped level")
	}

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			if _, err := LoadLevelConfig(f); err != nil {
				t.Errorf("Shipped level %s is invalid: %v", f, err)
			}
		})
	}
}

func TestShippedPhysicsConfigMatchesDefaults(t *testing.T) {
	config, err := LoadPhysicsConfig(filepath.Join("..", "..", "data", "physics.yaml"))
	if err != nil {
		t.Fatalf("LoadPhysicsConfig() failed: %v", err)
	}
	if *config != *DefaultPhysicsConfig() {
		t.Errorf("data/physics.yaml drifted from defaults: %+v", config)
	}
}

func TestEmbeddedLevels(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/levels/1-1.yaml": {Data: []byte(validLevelYAML)},
		"data/levels/1-2.yaml": {Data: []byte(validLevelYAML)},
	})

	ids, err := ListEmbeddedLevels()
	if err != nil {
		t.Fatalf("ListEmbeddedLevels() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "1-1" || ids[1] != "1-2" {
		t.Errorf("Unexpected level ids: %v", ids)
	}

	if NextLevelID(ids, "1-1") != "1-2" {
		t.Error("Expected 1-2 after 1-1")
	}
	if NextLevelID(ids, "1-2") != "" {
		t.Error("Expected no level after the last one")
	}

	level, err := LoadEmbeddedLevel("1-1")
	if err != nil {
		t.Fatalf("LoadEmbeddedLevel() failed: %v", err)
	}
	if level.ID != "t-1" {
		t.Errorf("Expected parsed ID t-1, got %s", level.ID)
	}

	if _, err := LoadEmbeddedLevel("9-9"); err == nil {
		t.Error("Expected error for missing embedded level")
	}

	physics, err := LoadEmbeddedPhysicsConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedPhysicsConfig() failed: %v", err)
	}
	if *physics != *DefaultPhysicsConfig() {
		t.Error("Expected defaults when physics.yaml is not embedded")
	}
}
