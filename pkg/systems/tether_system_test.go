package systems

import (
	"testing"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTether(maxLength, stiffness float64, snap bool) func(*config.LevelConfig) {
	return func(l *config.LevelConfig) {
		l.Tether = &config.TetherConfig{MaxLength: maxLength, Stiffness: stiffness, AllowSnapDeath: snap}
	}
}

// TestTetherHalfStiffness 中心距离 200、绳长 160、刚度 0.5：修正后距离 180，每端拉动 10
func TestTetherHalfStiffness(t *testing.T) {
	w := newTestWorld(t, withTether(160, 0.5, false))
	red, blue := w.Actors[0], w.Actors[1]
	red.X, red.Y = 100, 100
	blue.X, blue.Y = 300, 100

	NewTetherSystem(w).Update()

	assert.InDelta(t, 180.0, w.TetherDistance(), 1e-9)
	assert.InDelta(t, 110.0, red.X, 1e-9)
	assert.InDelta(t, 290.0, blue.X, 1e-9)
	assert.Equal(t, 100.0, red.Y)
	assert.False(t, w.Dead())
}

func TestTetherFullStiffnessBoundsDistance(t *testing.T) {
	w := newTestWorld(t, withTether(160, 1, false))
	ts := NewTetherSystem(w)
	red, blue := w.Actors[0], w.Actors[1]

	positions := [][4]float64{
		{100, 100, 400, 100},
		{100, 50, 300, 300},
		{600, 280, 50, 60},
		{200, 200, 200, 20},
		{10, 10, 900, 290},
	}
	for _, p := range positions {
		red.X, red.Y, blue.X, blue.Y = p[0], p[1], p[2], p[3]
		ts.Update()
		assert.LessOrEqual(t, w.TetherDistance(), 160+1e-9, "positions %v", p)
	}
}

func TestTetherWithinLengthIsNoop(t *testing.T) {
	w := newTestWorld(t, withTether(160, 0.5, false))
	red, blue := w.Actors[0], w.Actors[1]
	red.X, red.Y = 100, 100
	blue.X, blue.Y = 200, 100
	red.OnGround = true

	NewTetherSystem(w).Update()

	assert.Equal(t, 100.0, red.X)
	assert.Equal(t, 200.0, blue.X)
	assert.True(t, red.OnGround, "no re-resolution when slack")
}

func TestTetherSnapDeath(t *testing.T) {
	w := newTestWorld(t, withTether(160, 0.5, true))
	red, blue := w.Actors[0], w.Actors[1]
	red.X = 100
	blue.X = 300

	NewTetherSystem(w).Update()

	require.True(t, w.Dead())
	cause, _ := w.DeathCause()
	assert.Equal(t, world.CauseTetherSnap, cause)
	assert.Equal(t, 100.0, red.X, "snap does not move actors")
}

func TestTetherWithoutConfigIsNoop(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Actors[1].X = 900

	NewTetherSystem(w).Update()
	assert.Equal(t, 900.0, w.Actors[1].X)
}

// TestTetherRegroundsActors 拉动后重新判断着地：陷进平台的角色被放回顶部，贴着地面的角色保持着地
func TestTetherRegroundsActors(t *testing.T) {
	w := newTestWorld(t, func(l *config.LevelConfig) {
		withTether(100, 0.5, false)(l)
		l.Platforms = append(l.Platforms, config.PlatformConfig{Rect: geom.NewRect(300, 400, 100, 20)})
	})
	red, blue := w.Actors[0], w.Actors[1]
	red.X, red.Y = 320, 476
	blue.X, blue.Y = 320, 356

	NewTetherSystem(w).Update()

	assert.Equal(t, 356.0, blue.Y, "pulled into the ledge, placed back on top")
	assert.True(t, blue.OnGround)
	assert.InDelta(t, 471.0, red.Y, 1e-9)
	assert.False(t, red.OnGround)
}

func TestTetherKeepsRestingActorGrounded(t *testing.T) {
	w := newTestWorld(t, withTether(160, 0.5, false))
	red, blue := w.Actors[0], w.Actors[1]
	red.X, blue.X = 100, 300
	red.OnGround, blue.OnGround = false, false

	NewTetherSystem(w).Update()

	assert.Equal(t, 476.0, red.Y)
	assert.True(t, red.OnGround)
	assert.True(t, blue.OnGround)
}
