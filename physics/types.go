package physics

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrUnknownBody     = errors.New("unknown body")
	ErrUnknownCollider = errors.New("unknown collider")
	ErrStaticBody      = errors.New("static bodies cannot be changed")
	ErrWorldFull       = errors.New("body limit reached")
	ErrInvalidShape    = errors.New("invalid shape")
)

// BodyHandle identifies a rigid body. The zero handle is never issued.
type BodyHandle uint32

// ColliderHandle identifies a collider. The zero handle is never issued.
type ColliderHandle uint32

type BodyKind int

const (
	Static BodyKind = iota
	Dynamic
	Kinematic
)

func (k BodyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	}
	return "unknown"
}

type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
	ShapeBall
	ShapeCapsuleY
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCuboid:
		return "cuboid"
	case ShapeBall:
		return "ball"
	case ShapeCapsuleY:
		return "capsule"
	}
	return "unknown"
}

// Shape describes a collider volume centered on its body.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3 // cuboid
	Radius      float64    // ball and capsule
	HalfHeight  float64    // capsule segment half length
}

func Cuboid(hx, hy, hz float64) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: mgl64.Vec3{hx, hy, hz}}
}

func Ball(radius float64) Shape {
	return Shape{Kind: ShapeBall, Radius: radius}
}

// CapsuleY is a capsule standing on the Y axis.
func CapsuleY(halfHeight, radius float64) Shape {
	return Shape{Kind: ShapeCapsuleY, HalfHeight: halfHeight, Radius: radius}
}

// Extents returns the half size of the axis aligned box enclosing the shape.
// Cuboids are treated as axis aligned regardless of body rotation.
func (s Shape) Extents() mgl64.Vec3 {
	switch s.Kind {
	case ShapeBall:
		return mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	case ShapeCapsuleY:
		return mgl64.Vec3{s.Radius, s.HalfHeight + s.Radius, s.Radius}
	default:
		return s.HalfExtents
	}
}

func (s Shape) Volume() float64 {
	switch s.Kind {
	case ShapeBall:
		return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
	case ShapeCapsuleY:
		r := s.Radius
		return math.Pi*r*r*(2*s.HalfHeight) + 4.0/3.0*math.Pi*r*r*r
	default:
		e := s.HalfExtents
		return 8 * e.X() * e.Y() * e.Z()
	}
}

func (s Shape) valid() bool {
	switch s.Kind {
	case ShapeBall:
		return s.Radius > 0
	case ShapeCapsuleY:
		return s.Radius > 0 && s.HalfHeight >= 0
	case ShapeCuboid:
		e := s.HalfExtents
		return e.X() > 0 && e.Y() > 0 && e.Z() > 0
	}
	return false
}

// Pose is a world placement.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// At returns an unrotated pose at p.
func At(p mgl64.Vec3) Pose {
	return Pose{Position: p, Rotation: mgl64.QuatIdent()}
}

// BodyState is a snapshot of one body.
type BodyState struct {
	Kind            BodyKind
	Pose            Pose
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Mass            float64
}

// BodyDesc is everything needed to create a body and its single collider.
type BodyDesc struct {
	Kind            BodyKind
	Shape           Shape
	Pose            Pose
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Density         float64
	Friction        float64
	Restitution     float64
	Sensor          bool
	LockRotation    bool
}

// BodyUpdate carries the fields to overwrite; nil fields are left alone.
type BodyUpdate struct {
	Position        *mgl64.Vec3
	Rotation        *mgl64.Quat
	LinearVelocity  *mgl64.Vec3
	AngularVelocity *mgl64.Vec3
}

type ColliderInfo struct {
	Handle      ColliderHandle
	Body        BodyHandle
	Shape       Shape
	Pose        Pose
	Sensor      bool
	Friction    float64
	Restitution float64
}

// ContactEvent reports two solid colliders starting or stopping to touch.
// A < B and Normal points from A toward B.
type ContactEvent struct {
	A, B    ColliderHandle
	Normal  mgl64.Vec3
	Started bool
}

// IntersectionEvent reports a collider entering or leaving a sensor.
type IntersectionEvent struct {
	Sensor       ColliderHandle
	Other        ColliderHandle
	Intersecting bool
}

// BodyReader is the read side of the world used by pose sync.
type BodyReader interface {
	Body(h BodyHandle) (BodyState, error)
	Collider(h ColliderHandle) (ColliderInfo, error)
}

// Adapter is the contract the controller and the host tick rely on.
// Draining an empty queue returns nil.
type Adapter interface {
	BodyReader
	SetBody(h BodyHandle, u BodyUpdate) error
	CreateBody(desc BodyDesc) (BodyHandle, ColliderHandle, error)
	RemoveBody(h BodyHandle) error
	Advance(dt float64)
	DrainContactEvents() []ContactEvent
	Touching(h ColliderHandle) []ContactEvent
	DrainIntersectionEvents() []IntersectionEvent
	DrainFallen() []BodyHandle
}
