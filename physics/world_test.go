package physics

import (
	"testing"

	"github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultPhysics())
}

func addFloor(t *testing.T, w *World) (BodyHandle, ColliderHandle) {
	t.Helper()
	b, c, err := w.CreateBody(BodyDesc{
		Kind:     Static,
		Shape:    Cuboid(100, 0.5, 100),
		Pose:     At(mgl64.Vec3{}),
		Friction: 0.5,
	})
	require.NoError(t, err)
	return b, c
}

func step(w *World, ticks int) {
	for i := 0; i < ticks; i++ {
		w.Advance(dt)
	}
}

func TestCreateBodyHandles(t *testing.T) {
	w := newTestWorld(t)
	b1, c1, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(1), Pose: At(mgl64.Vec3{0, 5, 0})})
	require.NoError(t, err)
	b2, c2, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(1), Pose: At(mgl64.Vec3{5, 5, 0})})
	require.NoError(t, err)

	assert.NotZero(t, b1)
	assert.NotEqual(t, b1, b2)
	assert.NotEqual(t, c1, c2)

	info, err := w.Collider(c2)
	require.NoError(t, err)
	assert.Equal(t, b2, info.Body)
	assert.Equal(t, mgl64.Vec3{5, 5, 0}, info.Pose.Position)

	st, err := w.Body(b1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.QuatIdent(), st.Pose.Rotation)
	assert.Greater(t, st.Mass, 0.0)
	assert.Equal(t, 2, w.BodyCount())
}

func TestCreateBodyRejects(t *testing.T) {
	w := newTestWorld(t)
	_, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(0)})
	assert.ErrorIs(t, err, ErrInvalidShape)

	cfg := config.DefaultPhysics()
	cfg.MaxBodies = 1
	small := NewWorld(cfg)
	_, _, err = small.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(1)})
	require.NoError(t, err)
	_, _, err = small.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(1)})
	assert.ErrorIs(t, err, ErrWorldFull)
}

func TestUnknownHandles(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.Body(42)
	assert.ErrorIs(t, err, ErrUnknownBody)
	_, err = w.Collider(42)
	assert.ErrorIs(t, err, ErrUnknownCollider)
	assert.ErrorIs(t, w.SetBody(42, BodyUpdate{}), ErrUnknownBody)
	assert.ErrorIs(t, w.RemoveBody(42), ErrUnknownBody)
}

func TestBallSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t)
	_, floor := addFloor(t, w)
	ball, ballCol, err := w.CreateBody(BodyDesc{
		Kind:        Dynamic,
		Shape:       Ball(1),
		Pose:        At(mgl64.Vec3{5, 4, 5}),
		Density:     1,
		Friction:    0.5,
		Restitution: 0.1,
	})
	require.NoError(t, err)

	step(w, 300)

	st, err := w.Body(ball)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, st.Pose.Position.Y(), 0.05)
	assert.InDelta(t, 0.0, st.LinearVelocity.Y(), 0.5)

	var started bool
	for _, ev := range w.DrainContactEvents() {
		assert.Equal(t, makePair(floor, ballCol), makePair(ev.A, ev.B))
		if ev.Started {
			started = true
			// floor was created first, so the normal points up at the ball
			assert.InDelta(t, 1.0, ev.Normal.Y(), 1e-9)
		}
	}
	assert.True(t, started)
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := newTestWorld(t)
	floor, _ := addFloor(t, w)
	_, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Cuboid(2, 2, 2), Pose: At(mgl64.Vec3{0, 10, 0}), Density: 30})
	require.NoError(t, err)

	before, err := w.Body(floor)
	require.NoError(t, err)
	step(w, 240)
	after, err := w.Body(floor)
	require.NoError(t, err)
	assert.Equal(t, before.Pose, after.Pose)

	p := mgl64.Vec3{1, 1, 1}
	assert.ErrorIs(t, w.SetBody(floor, BodyUpdate{Position: &p}), ErrStaticBody)
}

func TestKinematicMovesOnlyAsCommanded(t *testing.T) {
	w := newTestWorld(t)
	addFloor(t, w)
	k, _, err := w.CreateBody(BodyDesc{Kind: Kinematic, Shape: Cuboid(1, 0.25, 1), Pose: At(mgl64.Vec3{0, 5, 0})})
	require.NoError(t, err)

	step(w, 60)
	st, err := w.Body(k)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, 5, 0}, st.Pose.Position)

	v := mgl64.Vec3{1, 0, 0}
	require.NoError(t, w.SetBody(k, BodyUpdate{LinearVelocity: &v}))
	step(w, 60)
	st, err = w.Body(k)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, st.Pose.Position.X(), 1e-9)
	assert.Equal(t, 5.0, st.Pose.Position.Y())
}

func TestLockRotationIgnoresSpin(t *testing.T) {
	w := newTestWorld(t)
	spin := mgl64.Vec3{0, 4, 0}
	b, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: CapsuleY(1, 0.5), Pose: At(mgl64.Vec3{0, 5, 0}), LockRotation: true})
	require.NoError(t, err)
	require.NoError(t, w.SetBody(b, BodyUpdate{AngularVelocity: &spin}))
	step(w, 10)
	st, err := w.Body(b)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{}, st.AngularVelocity)
	assert.Equal(t, mgl64.QuatIdent(), st.Pose.Rotation)
}

func TestSpinningBodyRotates(t *testing.T) {
	w := newTestWorld(t)
	b, _, err := w.CreateBody(BodyDesc{
		Kind:            Dynamic,
		Shape:           Cuboid(0.5, 0.5, 0.5),
		Pose:            At(mgl64.Vec3{0, 50, 0}),
		AngularVelocity: mgl64.Vec3{0, 2, 0},
	})
	require.NoError(t, err)
	step(w, 10)
	st, err := w.Body(b)
	require.NoError(t, err)
	assert.False(t, st.Pose.Rotation.ApproxEqualThreshold(mgl64.QuatIdent(), 1e-3))
	assert.InDelta(t, 1.0, st.Pose.Rotation.Len(), 1e-9)
}

func TestDrainEmptyQueues(t *testing.T) {
	w := newTestWorld(t)
	assert.Nil(t, w.DrainContactEvents())
	assert.Nil(t, w.DrainIntersectionEvents())
	assert.Nil(t, w.DrainFallen())
	w.Advance(dt)
	assert.Nil(t, w.DrainContactEvents())
}

func TestSensorReportsIntersections(t *testing.T) {
	w := newTestWorld(t)
	_, sensor, err := w.CreateBody(BodyDesc{Kind: Static, Shape: Cuboid(2, 2, 2), Pose: At(mgl64.Vec3{0, 10, 0}), Sensor: true})
	require.NoError(t, err)
	ball, ballCol, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(0.5), Pose: At(mgl64.Vec3{0, 14, 0})})
	require.NoError(t, err)

	step(w, 120)

	evs := w.DrainIntersectionEvents()
	require.Len(t, evs, 2)
	assert.Equal(t, IntersectionEvent{Sensor: sensor, Other: ballCol, Intersecting: true}, evs[0])
	assert.Equal(t, IntersectionEvent{Sensor: sensor, Other: ballCol, Intersecting: false}, evs[1])
	assert.Nil(t, w.DrainContactEvents())

	// sensors never push
	st, err := w.Body(ball)
	require.NoError(t, err)
	assert.Less(t, st.Pose.Position.Y(), 8.0)
}

func TestKillPlaneReportsOnce(t *testing.T) {
	w := newTestWorld(t)
	b, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Ball(0.5), Pose: At(mgl64.Vec3{0, -99.9, 0})})
	require.NoError(t, err)

	step(w, 30)
	assert.Equal(t, []BodyHandle{b}, w.DrainFallen())
	step(w, 30)
	assert.Nil(t, w.DrainFallen())

	// moving it back up re-arms the check
	up := mgl64.Vec3{0, -99.9, 0}
	zero := mgl64.Vec3{}
	require.NoError(t, w.SetBody(b, BodyUpdate{Position: &up, LinearVelocity: &zero}))
	step(w, 30)
	assert.Equal(t, []BodyHandle{b}, w.DrainFallen())
}

func TestRemoveBodyStopsContacts(t *testing.T) {
	w := newTestWorld(t)
	_, floor := addFloor(t, w)
	box, boxCol, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Cuboid(0.5, 0.5, 0.5), Pose: At(mgl64.Vec3{0, 1.0, 0})})
	require.NoError(t, err)

	step(w, 5)
	evs := w.DrainContactEvents()
	require.NotEmpty(t, evs)
	assert.True(t, evs[0].Started)

	require.NoError(t, w.RemoveBody(box))
	evs = w.DrainContactEvents()
	require.Len(t, evs, 1)
	assert.False(t, evs[0].Started)
	assert.Equal(t, makePair(floor, boxCol), makePair(evs[0].A, evs[0].B))

	_, err = w.Collider(boxCol)
	assert.ErrorIs(t, err, ErrUnknownCollider)
	assert.Equal(t, 1, w.BodyCount())
}

func TestTouchingReportsCurrentNormal(t *testing.T) {
	w := newTestWorld(t)
	_, floor := addFloor(t, w)
	box, boxCol, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Cuboid(0.5, 0.5, 0.5), Pose: At(mgl64.Vec3{0, 1.0, 0})})
	require.NoError(t, err)
	assert.Empty(t, w.Touching(boxCol))

	step(w, 30)
	touching := w.Touching(boxCol)
	require.Len(t, touching, 1)
	assert.Equal(t, makePair(floor, boxCol), makePair(touching[0].A, touching[0].B))
	assert.True(t, touching[0].Started)
	assert.InDelta(t, 1.0, touching[0].Normal.Y(), 1e-9)
	assert.Equal(t, touching, w.Touching(floor))

	require.NoError(t, w.RemoveBody(box))
	assert.Empty(t, w.Touching(floor))
}

func TestDynamicBoxesStack(t *testing.T) {
	w := newTestWorld(t)
	addFloor(t, w)
	low, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Cuboid(1, 1, 1), Pose: At(mgl64.Vec3{0, 1.6, 0}), Density: 1})
	require.NoError(t, err)
	high, _, err := w.CreateBody(BodyDesc{Kind: Dynamic, Shape: Cuboid(1, 1, 1), Pose: At(mgl64.Vec3{0, 3.8, 0}), Density: 1})
	require.NoError(t, err)

	step(w, 300)

	lo, err := w.Body(low)
	require.NoError(t, err)
	hi, err := w.Body(high)
	require.NoError(t, err)
	assert.Greater(t, hi.Pose.Position.Y(), lo.Pose.Position.Y()+1.8)
	assert.Greater(t, lo.Pose.Position.Y(), 1.3)
}
