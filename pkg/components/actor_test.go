package components

import (
	"testing"

	"github.com/decker502/emberwave/pkg/types"
)

func TestNewActorImmunities(t *testing.T) {
	red := NewActor(types.ColorRed, 80, 476, 34, 44)
	blue := NewActor(types.ColorBlue, 130, 476, 34, 44)

	if !red.IsImmune(types.HazardFire) || red.IsImmune(types.HazardWater) {
		t.Error("Red actor should be immune to fire only")
	}
	if !blue.IsImmune(types.HazardWater) || blue.IsImmune(types.HazardFire) {
		t.Error("Blue actor should be immune to water only")
	}
	if red.IsImmune(types.HazardPoison) || blue.IsImmune(types.HazardPoison) {
		t.Error("Nobody is immune to poison")
	}
}

// TestActorReset 重置后位置精确回到出生点
func TestActorReset(t *testing.T) {
	a := NewActor(types.ColorRed, 80.25, 476.5, 34, 44)
	a.X, a.Y = 300.123, 12.5
	a.DX, a.DY = 2.6, -11.6
	a.Coyote, a.Buffer = 0.1, 0.12
	a.OnGround = true
	a.JumpHeld = true
	a.Collected = 3

	a.Reset()

	if a.X != 80.25 || a.Y != 476.5 {
		t.Errorf("Expected spawn (80.25,476.5), got (%v,%v)", a.X, a.Y)
	}
	if a.DX != 0 || a.DY != 0 || a.Coyote != 0 || a.Buffer != 0 {
		t.Errorf("Expected velocity and timers zeroed, got %+v", a)
	}
	if a.OnGround || a.JumpHeld {
		t.Error("Expected flags cleared")
	}
	if a.Collected != 3 {
		t.Error("Actor.Reset should not touch the gem counter")
	}

	// 重复重置没有额外效果
	a.Reset()
	if a.X != 80.25 || a.Y != 476.5 {
		t.Error("Second reset should be a no-op")
	}
}

func TestActorGeometry(t *testing.T) {
	a := NewActor(types.ColorBlue, 10, 20, 34, 44)
	if a.Bottom() != 64 {
		t.Errorf("Expected bottom 64, got %f", a.Bottom())
	}
	c := a.Center()
	if c.X() != 27 || c.Y() != 42 {
		t.Errorf("Expected center (27,42), got (%f,%f)", c.X(), c.Y())
	}
}
