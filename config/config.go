package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ClampMode selects which velocity components take part in the speed clamp.
type ClampMode int

const (
	// ClampHorizontal clamps the XZ components and leaves vertical velocity alone.
	ClampHorizontal ClampMode = iota
	// ClampFull clamps the whole 3D vector.
	ClampFull
)

// MovementMode selects how the player body is driven.
type MovementMode int

const (
	// MovementPhysics drives a dynamic body with additive impulses.
	MovementPhysics MovementMode = iota
	// MovementKinematic integrates velocity in the controller and commands a kinematic body.
	MovementKinematic
)

// PlayerConfig contains all player controller tuning values
type PlayerConfig struct {
	// Look
	Sensitivity float64 `yaml:"sensitivity"` // degrees per second per input unit
	PitchLimit  float64 `yaml:"pitchLimit"`  // degrees, symmetric

	// Movement
	TargetSpeed  float64      `yaml:"targetSpeed"`
	Acceleration float64      `yaml:"acceleration"`
	JumpImpulse  float64      `yaml:"jumpImpulse"`
	ClampMode    ClampMode    `yaml:"clampMode"`
	MovementMode MovementMode `yaml:"movementMode"`

	// Jump gating
	RequireGround bool    `yaml:"requireGround"`
	JumpCooldown  float64 `yaml:"jumpCooldown"`  // seconds
	GroundNormalY float64 `yaml:"groundNormalY"` // min contact normal Y counted as floor

	// Kinematic mode
	KinematicAccel    float64 `yaml:"kinematicAccel"`
	KinematicFriction float64 `yaml:"kinematicFriction"`

	// Body
	HalfHeight float64    `yaml:"halfHeight"`
	Radius     float64    `yaml:"radius"`
	Density    float64    `yaml:"density"`
	Spawn      mgl64.Vec3 `yaml:"spawn"`
}

// PhysicsConfig contains world simulation values
type PhysicsConfig struct {
	Gravity          mgl64.Vec3 `yaml:"gravity"`
	BroadphaseExtent int        `yaml:"broadphaseExtent"` // half size of the XZ hash in world units
	BroadphaseCell   int        `yaml:"broadphaseCell"`
	MaxBodies        int        `yaml:"maxBodies"`
	LinearDamping    float64    `yaml:"linearDamping"`
	AngularDamping   float64    `yaml:"angularDamping"`
	Friction         float64    `yaml:"friction"`
	Restitution      float64    `yaml:"restitution"`
	KillY            float64    `yaml:"killY"`
}

// ProjectileConfig contains thrown object values
type ProjectileConfig struct {
	MuzzleSpeed     float64 `yaml:"muzzleSpeed"`
	ForwardOffset   float64 `yaml:"forwardOffset"`
	InheritVelocity float64 `yaml:"inheritVelocity"` // fraction of player velocity added to the launch
	CubeHalfExtent  float64 `yaml:"cubeHalfExtent"`
	SphereRadius    float64 `yaml:"sphereRadius"`
	MaxSpin         float64 `yaml:"maxSpin"` // rad/s per axis
	MinDensity      float64 `yaml:"minDensity"`
	MaxDensity      float64 `yaml:"maxDensity"`
	MaxLive         int     `yaml:"maxLive"`
}

// CameraConfig contains projection values
type CameraConfig struct {
	FOV       float64 // degrees
	Near      float64
	Far       float64
	EyeOffset float64 // added to the body center on Y
}

// LightConfig contains the orbiting light values
type LightConfig struct {
	Radius float64
	Height float64
	Period float64 // time divisor for the orbit angle
}

// HUDConfig contains overlay styling
type HUDConfig struct {
	CrosshairSize float64
	TextColor     color.RGBA
	PanelColor    color.RGBA
}

type Config struct {
	Width    int
	Height   int
	Title    string
	TickRate int
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Enabled bool
}

var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var Light LightConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:    1000,
		Height:   800,
		Title:    "FPS01",
		TickRate: 60,
	}

	Player = DefaultPlayer()
	Physics = DefaultPhysics()
	Projectile = DefaultProjectile()

	Camera = CameraConfig{
		FOV:       75,
		Near:      0.1,
		Far:       500,
		EyeOffset: 0.6,
	}

	Light = LightConfig{
		Radius: 4,
		Height: 8,
		Period: 4,
	}

	HUD = HUDConfig{
		CrosshairSize: 8,
		TextColor:     White,
		PanelColor:    BlackOverlay,
	}
}

// DefaultPlayer returns the compiled-in player tuning.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		// Look
		Sensitivity: 20.0,
		PitchLimit:  89.99,

		// Movement
		TargetSpeed:  6.0,
		Acceleration: 1.0,
		JumpImpulse:  5.0,
		ClampMode:    ClampHorizontal,
		MovementMode: MovementPhysics,

		// Jump gating
		RequireGround: true,
		JumpCooldown:  0.25,
		GroundNormalY: 0.7,

		// Kinematic mode
		KinematicAccel:    40,
		KinematicFriction: 25,

		// Body (capsule approximated by its bounding box)
		HalfHeight: 0.6,
		Radius:     0.4,
		Density:    20,
		Spawn:      mgl64.Vec3{0, 2.5, 10},
	}
}

// DefaultPhysics returns the compiled-in world tuning.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:          mgl64.Vec3{0, -9.81, 0},
		BroadphaseExtent: 512,
		BroadphaseCell:   8,
		MaxBodies:        2048,
		LinearDamping:    0.01,
		AngularDamping:   0.05,
		Friction:         0.5,
		Restitution:      0.1,
		KillY:            -100,
	}
}

// DefaultProjectile returns the compiled-in projectile tuning.
func DefaultProjectile() ProjectileConfig {
	return ProjectileConfig{
		MuzzleSpeed:     15,
		ForwardOffset:   1.0,
		InheritVelocity: 0.5,
		CubeHalfExtent:  0.5,
		SphereRadius:    0.5,
		MaxSpin:         3.0,
		MinDensity:      0.5,
		MaxDensity:      8.0,
		MaxLive:         128,
	}
}
