package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	contactSlop        = 0.01
	allowedPenetration = 0.005
	correctionPercent  = 0.8
	solverIterations   = 4
	restingSpeed       = 1.0 // closing speeds below this do not bounce
)

// Advance steps the simulation by dt seconds: integrate, resolve contacts,
// queue events and kill plane crossings.
func (w *World) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	w.integrate(dt)

	current := map[pairKey]mgl64.Vec3{}
	sensing := map[pairKey]struct{}{}
	for i := 0; i < solverIterations; i++ {
		for _, k := range w.candidatePairs() {
			a, b := w.colliders[k.a], w.colliders[k.b]
			m, ok := collide(a, b)
			if !ok {
				continue
			}
			if a.sensor || b.sensor {
				if m.depth > 0 {
					sensing[k] = struct{}{}
				}
				continue
			}
			current[k] = m.normal
			w.resolve(a, b, m)
		}
	}

	w.emit(current, sensing)
	w.checkFallen()
}

func (w *World) integrate(dt float64) {
	for _, b := range w.order {
		switch b.kind {
		case Dynamic:
			b.linvel = b.linvel.Add(w.cfg.Gravity.Mul(dt))
			b.linvel = b.linvel.Mul(1 / (1 + dt*w.cfg.LinearDamping))
			b.angvel = b.angvel.Mul(1 / (1 + dt*w.cfg.AngularDamping))
		case Kinematic:
		default:
			continue
		}
		b.pose.Position = b.pose.Position.Add(b.linvel.Mul(dt))
		if !b.lockRotation && b.angvel.LenSqr() > 0 {
			b.pose.Rotation = integrateRotation(b.pose.Rotation, b.angvel, dt)
		}
		w.broadphase.move(b.collider)
	}
}

// integrateRotation advances q by angular velocity omega over dt.
func integrateRotation(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	spin := mgl64.Quat{W: 0, V: omega}
	return q.Add(spin.Mul(q).Scale(0.5 * dt)).Normalize()
}

// candidatePairs lists collider pairs from the broadphase where at least one
// side can respond, in handle order.
func (w *World) candidatePairs() []pairKey {
	seen := map[pairKey]struct{}{}
	for _, b := range w.order {
		c := b.collider
		for _, h := range w.broadphase.candidates(c) {
			o, ok := w.colliders[h]
			if !ok {
				continue
			}
			if !c.sensor && !o.sensor && c.body.invMass == 0 && o.body.invMass == 0 {
				continue
			}
			seen[makePair(c.handle, h)] = struct{}{}
		}
	}
	return sortedPairs(seen)
}

func (w *World) resolve(a, b *collider, m manifold) {
	ba, bb := a.body, b.body
	ia, ib := ba.invMass, bb.invMass
	sum := ia + ib
	if sum == 0 {
		return
	}
	n := m.normal

	if m.depth > allowedPenetration {
		corr := n.Mul((m.depth - allowedPenetration) * correctionPercent / sum)
		if ia > 0 {
			ba.pose.Position = ba.pose.Position.Sub(corr.Mul(ia))
		}
		if ib > 0 {
			bb.pose.Position = bb.pose.Position.Add(corr.Mul(ib))
		}
	}

	rel := bb.linvel.Sub(ba.linvel)
	vn := rel.Dot(n)
	if vn < 0 && m.depth >= 0 {
		e := (a.restitution + b.restitution) / 2
		if -vn < restingSpeed {
			e = 0
		}
		j := -(1 + e) * vn / sum
		impulse := n.Mul(j)
		ba.linvel = ba.linvel.Sub(impulse.Mul(ia))
		bb.linvel = bb.linvel.Add(impulse.Mul(ib))

		rel = bb.linvel.Sub(ba.linvel)
		tangent := rel.Sub(n.Mul(rel.Dot(n)))
		if tl := tangent.Len(); tl > 1e-9 {
			t := tangent.Mul(1 / tl)
			mu := (a.friction + b.friction) / 2
			jt := mgl64.Clamp(-rel.Dot(t)/sum, -mu*j, mu*j)
			fi := t.Mul(jt)
			ba.linvel = ba.linvel.Sub(fi.Mul(ia))
			bb.linvel = bb.linvel.Add(fi.Mul(ib))
		}
	}

	if ia > 0 {
		w.broadphase.move(a)
	}
	if ib > 0 {
		w.broadphase.move(b)
	}
}

// emit diffs this tick's touching pairs against the last tick's.
func (w *World) emit(current map[pairKey]mgl64.Vec3, sensing map[pairKey]struct{}) {
	for _, k := range sortedPairs(current) {
		if _, ok := w.touching[k]; !ok {
			w.contactEvents = append(w.contactEvents, ContactEvent{A: k.a, B: k.b, Normal: current[k], Started: true})
		}
	}
	for _, k := range sortedPairs(w.touching) {
		if _, ok := current[k]; !ok {
			w.contactEvents = append(w.contactEvents, ContactEvent{A: k.a, B: k.b, Normal: w.touching[k]})
		}
	}
	w.touching = current

	for _, k := range sortedPairs(sensing) {
		if _, ok := w.sensing[k]; !ok {
			w.intersectionEvents = append(w.intersectionEvents, w.intersection(k, true))
		}
	}
	for _, k := range sortedPairs(w.sensing) {
		if _, ok := sensing[k]; !ok {
			w.intersectionEvents = append(w.intersectionEvents, w.intersection(k, false))
		}
	}
	w.sensing = sensing
}

func (w *World) checkFallen() {
	for _, b := range w.order {
		if b.kind != Dynamic || b.fallen {
			continue
		}
		if y := b.pose.Position.Y(); y < w.cfg.KillY || math.IsNaN(y) {
			b.fallen = true
			w.fallen = append(w.fallen, b.handle)
		}
	}
}
