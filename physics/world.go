package physics

import (
	"fmt"
	"sort"

	"github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type body struct {
	handle       BodyHandle
	kind         BodyKind
	pose         Pose
	linvel       mgl64.Vec3
	angvel       mgl64.Vec3
	mass         float64
	invMass      float64
	lockRotation bool
	fallen       bool
	collider     *collider
}

type collider struct {
	handle      ColliderHandle
	body        *body
	shape       Shape
	sensor      bool
	friction    float64
	restitution float64
}

type pairKey struct {
	a, b ColliderHandle
}

func makePair(a, b ColliderHandle) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// World is a small rigid body simulation: axis aligned boxes and spheres,
// impulse based contact response, resolv broadphase.
// It is not safe for concurrent use.
type World struct {
	cfg config.PhysicsConfig

	bodies    map[BodyHandle]*body
	colliders map[ColliderHandle]*collider
	order     []*body

	nextBody     BodyHandle
	nextCollider ColliderHandle

	broadphase *broadphase

	touching map[pairKey]mgl64.Vec3
	sensing  map[pairKey]struct{}

	contactEvents      []ContactEvent
	intersectionEvents []IntersectionEvent
	fallen             []BodyHandle
}

var _ Adapter = (*World)(nil)

func NewWorld(cfg config.PhysicsConfig) *World {
	w := &World{
		cfg:        cfg,
		bodies:     map[BodyHandle]*body{},
		colliders:  map[ColliderHandle]*collider{},
		broadphase: newBroadphase(cfg.BroadphaseExtent, cfg.BroadphaseCell),
		touching:   map[pairKey]mgl64.Vec3{},
		sensing:    map[pairKey]struct{}{},
	}
	logger := w.logger()
	logger.Debug().
		Int("extent", cfg.BroadphaseExtent).
		Int("cell", cfg.BroadphaseCell).
		Msg("world created")
	return w
}

func (w *World) logger() zerolog.Logger {
	return log.With().Str("subsystem", "physics").Logger()
}

// CreateBody registers a body with one collider sharing its pose.
func (w *World) CreateBody(desc BodyDesc) (BodyHandle, ColliderHandle, error) {
	if !desc.Shape.valid() {
		return 0, 0, fmt.Errorf("%w: %+v", ErrInvalidShape, desc.Shape)
	}
	if w.cfg.MaxBodies > 0 && len(w.order) >= w.cfg.MaxBodies {
		return 0, 0, fmt.Errorf("%w (%d)", ErrWorldFull, w.cfg.MaxBodies)
	}

	w.nextBody++
	w.nextCollider++

	pose := desc.Pose
	if pose.Rotation == (mgl64.Quat{}) {
		pose.Rotation = mgl64.QuatIdent()
	}

	b := &body{
		handle:       w.nextBody,
		kind:         desc.Kind,
		pose:         pose,
		lockRotation: desc.LockRotation,
	}
	switch desc.Kind {
	case Dynamic:
		density := desc.Density
		if density <= 0 {
			density = 1
		}
		b.mass = density * desc.Shape.Volume()
		b.invMass = 1 / b.mass
		b.linvel = desc.LinearVelocity
		b.angvel = desc.AngularVelocity
	case Kinematic:
		b.linvel = desc.LinearVelocity
		b.angvel = desc.AngularVelocity
	}
	if b.lockRotation {
		b.angvel = mgl64.Vec3{}
	}

	c := &collider{
		handle:      w.nextCollider,
		body:        b,
		shape:       desc.Shape,
		sensor:      desc.Sensor,
		friction:    desc.Friction,
		restitution: desc.Restitution,
	}
	b.collider = c

	w.bodies[b.handle] = b
	w.colliders[c.handle] = c
	w.order = append(w.order, b)
	w.broadphase.add(c)

	return b.handle, c.handle, nil
}

func (w *World) Body(h BodyHandle) (BodyState, error) {
	b, ok := w.bodies[h]
	if !ok {
		return BodyState{}, fmt.Errorf("%w: %d", ErrUnknownBody, h)
	}
	return BodyState{
		Kind:            b.kind,
		Pose:            b.pose,
		LinearVelocity:  b.linvel,
		AngularVelocity: b.angvel,
		Mass:            b.mass,
	}, nil
}

func (w *World) Collider(h ColliderHandle) (ColliderInfo, error) {
	c, ok := w.colliders[h]
	if !ok {
		return ColliderInfo{}, fmt.Errorf("%w: %d", ErrUnknownCollider, h)
	}
	return ColliderInfo{
		Handle:      c.handle,
		Body:        c.body.handle,
		Shape:       c.shape,
		Pose:        c.body.pose,
		Sensor:      c.sensor,
		Friction:    c.friction,
		Restitution: c.restitution,
	}, nil
}

// SetBody overwrites the given fields of a dynamic or kinematic body.
func (w *World) SetBody(h BodyHandle, u BodyUpdate) error {
	b, ok := w.bodies[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, h)
	}
	if b.kind == Static {
		return fmt.Errorf("%w: %d", ErrStaticBody, h)
	}
	if u.Position != nil {
		b.pose.Position = *u.Position
		if b.pose.Position.Y() >= w.cfg.KillY {
			b.fallen = false
		}
		w.broadphase.move(b.collider)
	}
	if u.Rotation != nil {
		b.pose.Rotation = u.Rotation.Normalize()
	}
	if u.LinearVelocity != nil {
		b.linvel = *u.LinearVelocity
	}
	if u.AngularVelocity != nil && !b.lockRotation {
		b.angvel = *u.AngularVelocity
	}
	return nil
}

// RemoveBody drops a body and its collider. Contacts it was part of are
// reported as stopped on the next drain.
func (w *World) RemoveBody(h BodyHandle) error {
	b, ok := w.bodies[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, h)
	}
	c := b.collider
	w.broadphase.remove(c)
	delete(w.bodies, h)
	for i, ob := range w.order {
		if ob == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	for _, k := range sortedPairs(w.touching) {
		if k.a != c.handle && k.b != c.handle {
			continue
		}
		w.contactEvents = append(w.contactEvents, ContactEvent{A: k.a, B: k.b, Normal: w.touching[k]})
		delete(w.touching, k)
	}
	for _, k := range sortedPairs(w.sensing) {
		if k.a != c.handle && k.b != c.handle {
			continue
		}
		w.intersectionEvents = append(w.intersectionEvents, w.intersection(k, false))
		delete(w.sensing, k)
	}
	delete(w.colliders, c.handle)
	return nil
}

// BodyCount is the number of live bodies.
func (w *World) BodyCount() int {
	return len(w.order)
}

func (w *World) DrainContactEvents() []ContactEvent {
	if len(w.contactEvents) == 0 {
		return nil
	}
	out := w.contactEvents
	w.contactEvents = nil
	return out
}

// Touching lists the solid pairs the collider is in contact with after the
// last Advance, with their current normals. A < B and Normal points from A
// toward B as in ContactEvent.
func (w *World) Touching(h ColliderHandle) []ContactEvent {
	var out []ContactEvent
	for _, k := range sortedPairs(w.touching) {
		if k.a != h && k.b != h {
			continue
		}
		out = append(out, ContactEvent{A: k.a, B: k.b, Normal: w.touching[k], Started: true})
	}
	return out
}

func (w *World) DrainIntersectionEvents() []IntersectionEvent {
	if len(w.intersectionEvents) == 0 {
		return nil
	}
	out := w.intersectionEvents
	w.intersectionEvents = nil
	return out
}

// DrainFallen returns dynamic bodies that dropped below the kill plane since
// the last drain. Each body is reported once until it is moved back up.
func (w *World) DrainFallen() []BodyHandle {
	if len(w.fallen) == 0 {
		return nil
	}
	out := w.fallen
	w.fallen = nil
	return out
}

func (w *World) intersection(k pairKey, on bool) IntersectionEvent {
	sensor, other := k.a, k.b
	if c, ok := w.colliders[k.b]; ok && c.sensor {
		sensor, other = k.b, k.a
	}
	return IntersectionEvent{Sensor: sensor, Other: other, Intersecting: on}
}

func sortedPairs[V any](m map[pairKey]V) []pairKey {
	keys := make([]pairKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	return keys
}
