package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	player, phys, proj := Player, Physics, Projectile
	t.Cleanup(func() {
		Player, Physics, Projectile = player, phys, proj
	})
}

func TestDefaults(t *testing.T) {
	p := DefaultPlayer()
	assert.Equal(t, 20.0, p.Sensitivity)
	assert.Equal(t, 89.99, p.PitchLimit)
	assert.Equal(t, ClampHorizontal, p.ClampMode)
	assert.Equal(t, MovementPhysics, p.MovementMode)
	assert.Equal(t, 15.0, DefaultProjectile().MuzzleSpeed)
	assert.Equal(t, mgl64.Vec3{0, -9.81, 0}, DefaultPhysics().Gravity)
}

func TestDecodeTuningPartial(t *testing.T) {
	restoreGlobals(t)

	doc := `
player:
  targetSpeed: 4
  acceleration: 0.8
  clampMode: full
  movementMode: kinematic
physics:
  gravity: [0, -20, 0]
`
	tun, err := DecodeTuning(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 4.0, tun.Player.TargetSpeed)
	assert.Equal(t, 0.8, tun.Player.Acceleration)
	assert.Equal(t, ClampFull, tun.Player.ClampMode)
	assert.Equal(t, MovementKinematic, tun.Player.MovementMode)
	// untouched keys keep their defaults
	assert.Equal(t, 20.0, tun.Player.Sensitivity)
	assert.Equal(t, mgl64.Vec3{0, -20, 0}, tun.Physics.Gravity)
	assert.Equal(t, 15.0, tun.Projectile.MuzzleSpeed)

	tun.Apply()
	assert.Equal(t, 4.0, Player.TargetSpeed)
	assert.Equal(t, -20.0, Physics.Gravity.Y())
}

func TestDecodeTuningEmpty(t *testing.T) {
	tun, err := DecodeTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Player, *tun.Player)
}

func TestDecodeTuningRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "player:\n  warpSpeed: 9\n"},
		{"unknown clamp mode", "player:\n  clampMode: diagonal\n"},
		{"non-positive target speed", "player:\n  targetSpeed: 0\n"},
		{"pitch limit too large", "player:\n  pitchLimit: 90\n"},
		{"density range inverted", "projectile:\n  minDensity: 9\n  maxDensity: 1\n"},
		{"short gravity vector", "physics:\n  gravity: [0, -9.81]\n"},
		{"nan target speed", "player:\n  targetSpeed: .nan\n"},
		{"nan pitch limit", "player:\n  pitchLimit: .nan\n"},
		{"infinite muzzle speed", "projectile:\n  muzzleSpeed: .inf\n"},
		{"negative infinite gravity", "physics:\n  gravity: [0, -.inf, 0]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTuning(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuning(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projectile:\n  maxLive: 4\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 4, Projectile.MaxLive)

	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "unknown", ActionCount.String())
}

func TestParseAction(t *testing.T) {
	for a := ActionMoveForward; a < ActionCount; a++ {
		got, ok := ParseAction(a.String())
		assert.True(t, ok, a.String())
		assert.Equal(t, a, got)
	}

	_, ok := ParseAction("none")
	assert.False(t, ok)
	_, ok = ParseAction("crouch")
	assert.False(t, ok)
}
