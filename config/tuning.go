package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning is the shape of a YAML override file. Absent sections keep their
// current values.
type Tuning struct {
	Player     *PlayerConfig     `yaml:"player"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Projectile *ProjectileConfig `yaml:"projectile"`
}

var (
	ErrInvalidTuning = errors.New("invalid tuning")
)

// LoadTuning reads a YAML file and applies it over the global configuration.
func LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTuning(f)
	if err != nil {
		return fmt.Errorf("decode tuning %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// DecodeTuning parses a tuning document seeded with the current globals, so
// a file only needs the keys it changes.
func DecodeTuning(r io.Reader) (*Tuning, error) {
	player, phys, proj := Player, Physics, Projectile
	t := &Tuning{Player: &player, Physics: &phys, Projectile: &proj}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tuning) Validate() error {
	if err := t.validateFinite(); err != nil {
		return err
	}
	if p := t.Player; p != nil {
		if p.TargetSpeed <= 0 {
			return fmt.Errorf("%w: player.targetSpeed must be positive, got %v", ErrInvalidTuning, p.TargetSpeed)
		}
		if p.PitchLimit <= 0 || p.PitchLimit >= 90 {
			return fmt.Errorf("%w: player.pitchLimit must be in (0, 90), got %v", ErrInvalidTuning, p.PitchLimit)
		}
		if p.Sensitivity < 0 {
			return fmt.Errorf("%w: player.sensitivity must not be negative", ErrInvalidTuning)
		}
		if p.HalfHeight <= 0 || p.Radius <= 0 {
			return fmt.Errorf("%w: player body dimensions must be positive", ErrInvalidTuning)
		}
	}
	if p := t.Projectile; p != nil {
		if p.MinDensity <= 0 || p.MinDensity > p.MaxDensity {
			return fmt.Errorf("%w: projectile density range [%v, %v]", ErrInvalidTuning, p.MinDensity, p.MaxDensity)
		}
		if p.MaxLive < 1 {
			return fmt.Errorf("%w: projectile.maxLive must be at least 1", ErrInvalidTuning)
		}
	}
	if p := t.Physics; p != nil {
		if p.BroadphaseCell <= 0 || p.BroadphaseExtent <= 0 {
			return fmt.Errorf("%w: broadphase sizes must be positive", ErrInvalidTuning)
		}
	}
	return nil
}

// validateFinite rejects NaN and infinite values in every float field.
func (t *Tuning) validateFinite() error {
	fields := map[string]float64{}
	if p := t.Player; p != nil {
		fields["player.sensitivity"] = p.Sensitivity
		fields["player.pitchLimit"] = p.PitchLimit
		fields["player.targetSpeed"] = p.TargetSpeed
		fields["player.acceleration"] = p.Acceleration
		fields["player.jumpImpulse"] = p.JumpImpulse
		fields["player.jumpCooldown"] = p.JumpCooldown
		fields["player.groundNormalY"] = p.GroundNormalY
		fields["player.kinematicAccel"] = p.KinematicAccel
		fields["player.kinematicFriction"] = p.KinematicFriction
		fields["player.halfHeight"] = p.HalfHeight
		fields["player.radius"] = p.Radius
		fields["player.density"] = p.Density
		for i, v := range p.Spawn {
			fields[fmt.Sprintf("player.spawn[%d]", i)] = v
		}
	}
	if p := t.Physics; p != nil {
		for i, v := range p.Gravity {
			fields[fmt.Sprintf("physics.gravity[%d]", i)] = v
		}
		fields["physics.linearDamping"] = p.LinearDamping
		fields["physics.angularDamping"] = p.AngularDamping
		fields["physics.friction"] = p.Friction
		fields["physics.restitution"] = p.Restitution
		fields["physics.killY"] = p.KillY
	}
	if p := t.Projectile; p != nil {
		fields["projectile.muzzleSpeed"] = p.MuzzleSpeed
		fields["projectile.forwardOffset"] = p.ForwardOffset
		fields["projectile.inheritVelocity"] = p.InheritVelocity
		fields["projectile.cubeHalfExtent"] = p.CubeHalfExtent
		fields["projectile.sphereRadius"] = p.SphereRadius
		fields["projectile.maxSpin"] = p.MaxSpin
		fields["projectile.minDensity"] = p.MinDensity
		fields["projectile.maxDensity"] = p.MaxDensity
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := fields[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, name, v)
		}
	}
	return nil
}

// Apply copies every present section into the globals.
func (t *Tuning) Apply() {
	if t.Player != nil {
		Player = *t.Player
	}
	if t.Physics != nil {
		Physics = *t.Physics
	}
	if t.Projectile != nil {
		Projectile = *t.Projectile
	}
}

func (m ClampMode) String() string {
	switch m {
	case ClampFull:
		return "full"
	default:
		return "horizontal"
	}
}

func (m *ClampMode) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(node.Value) {
	case "horizontal":
		*m = ClampHorizontal
	case "full":
		*m = ClampFull
	default:
		return fmt.Errorf("%w: unknown clamp mode %q", ErrInvalidTuning, node.Value)
	}
	return nil
}

func (m MovementMode) String() string {
	switch m {
	case MovementKinematic:
		return "kinematic"
	default:
		return "physics"
	}
}

func (m *MovementMode) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(node.Value) {
	case "physics":
		*m = MovementPhysics
	case "kinematic":
		*m = MovementKinematic
	default:
		return fmt.Errorf("%w: unknown movement mode %q", ErrInvalidTuning, node.Value)
	}
	return nil
}
