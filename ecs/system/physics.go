package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

const (
	collisionTypeCritter cp.CollisionType = iota + 1
	collisionTypeGroundSensor
	collisionTypeSolid
)

const (
	defaultBodySize = 0.5
	sensorDepth     = 0.05
	sensorOverlap   = 0.02
)

// PhysicsSystem owns the Chipmunk space. Critter bodies are created frozen and
// only the switch protocol thaws them, so at most one critter is simulated.
type PhysicsSystem struct {
	space         *cp.Space
	clock         clock.Clock
	handlersReady bool

	bodies   map[ecs.Entity]*bodyInfo
	sensors  map[*cp.Shape]ecs.Entity
	contacts map[ecs.Entity]int
	gravity  map[ecs.Entity]float64
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
	mass   float64
}

func NewPhysicsSystem(clk clock.Clock, gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:    space,
		clock:    clk,
		bodies:   make(map[ecs.Entity]*bodyInfo),
		sensors:  make(map[*cp.Shape]ecs.Entity),
		contacts: make(map[ecs.Entity]int),
		gravity:  make(map[ecs.Entity]float64),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)

	dt := 0.0
	if ps.clock != nil {
		dt = ps.clock.Delta()
	}
	if dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

// Sync creates bodies for new physics entities and releases bodies whose
// entity is gone. Update calls it every frame; callers that need bodies before
// the first frame call it directly.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.bodies[e]; ok {
			return
		}
		ps.createBody(w, e, body, t)
	})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if e, ok := sys.sensorEntity(arb); ok {
			sys.contacts[e]++
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		if e, ok := sys.sensorEntity(arb); ok && sys.contacts[e] > 0 {
			sys.contacts[e]--
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) sensorEntity(arb *cp.Arbiter) (ecs.Entity, bool) {
	a, b := arb.Shapes()
	if e, ok := ps.sensors[a]; ok {
		return e, true
	}
	e, ok := ps.sensors[b]
	return e, ok
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = defaultBodySize, defaultBodySize
	}

	if bodyComp.Static {
		bb := cp.BB{L: t.X - width/2, B: t.Y - height/2, R: t.X + width/2, T: t.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		ps.bodies[e] = &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
		bodyComp.Body = ps.space.StaticBody
		bodyComp.Shape = shape
		return
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation * math.Pi / 180)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeCritter)

	sensor := cp.NewBox2(body, cp.BB{
		L: -width * 0.45,
		B: -height/2 - sensorDepth,
		R: width * 0.45,
		T: -height/2 + sensorOverlap,
	}, 0)
	sensor.SetSensor(true)
	sensor.SetCollisionType(collisionTypeGroundSensor)

	info := &bodyInfo{body: body, shapes: []*cp.Shape{shape, sensor}, mass: mass}
	ps.bodies[e] = info
	ps.sensors[sensor] = e

	scale := 1.0
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent); ok {
		scale = gs.Scale
	}
	ps.gravity[e] = scale
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(ps.gravity[e]), damping, dt)
	})

	ps.space.AddBody(body)
	if bodyComp.Enabled {
		for _, s := range info.shapes {
			ps.space.AddShape(s)
		}
	} else {
		body.SetType(cp.BODY_KINEMATIC)
	}

	bodyComp.Body = body
	bodyComp.Shape = shape
	bodyComp.Sensor = sensor
}

// Freeze stops simulating e: velocities are zeroed, the body turns kinematic
// and its shapes leave the space so co-located critters never collide.
func (ps *PhysicsSystem) Freeze(w *ecs.World, e ecs.Entity) {
	bodyComp, info, ok := ps.lookup(w, e)
	if !ok {
		return
	}

	info.body.SetVelocity(0, 0)
	info.body.SetAngularVelocity(0)
	info.body.SetType(cp.BODY_KINEMATIC)
	for _, s := range info.shapes {
		if ps.space.ContainsShape(s) {
			ps.space.RemoveShape(s)
		}
	}

	ps.contacts[e] = 0
	if contact, ok := ecs.Get(w, e, component.ContactComponent); ok {
		contact.Count = 0
		contact.Grounded = false
	}
	bodyComp.Enabled = false
}

// Thaw resumes simulation of e from rest.
func (ps *PhysicsSystem) Thaw(w *ecs.World, e ecs.Entity) {
	bodyComp, info, ok := ps.lookup(w, e)
	if !ok {
		return
	}

	if info.body.GetType() != cp.BODY_DYNAMIC {
		info.body.SetType(cp.BODY_DYNAMIC)
	}
	for _, s := range info.shapes {
		if !ps.space.ContainsShape(s) {
			ps.space.AddShape(s)
		}
	}
	info.body.SetMass(info.mass)
	info.body.SetMoment(cp.INFINITY)
	info.body.SetVelocity(0, 0)
	info.body.SetAngularVelocity(0)
	info.body.Activate()

	bodyComp.Enabled = true
}

func (ps *PhysicsSystem) Enabled(w *ecs.World, e ecs.Entity) bool {
	bodyComp, _, ok := ps.lookup(w, e)
	return ok && bodyComp.Enabled
}

// SetGravityScale scales gravity for e. Negative values pull upward.
func (ps *PhysicsSystem) SetGravityScale(w *ecs.World, e ecs.Entity, scale float64) {
	if ps == nil || !w.IsAlive(e) {
		return
	}
	ps.gravity[e] = scale
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent); ok {
		gs.Scale = scale
		return
	}
	_ = ecs.Add(w, e, component.GravityScaleComponent, &component.GravityScale{Scale: scale})
}

// Teleport places e at (x, y) with the given rotation in degrees.
func (ps *PhysicsSystem) Teleport(w *ecs.World, e ecs.Entity, x, y, rotation float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	t.X, t.Y, t.Rotation = x, y, rotation

	if _, info, ok := ps.lookup(w, e); ok && !info.static {
		info.body.SetPosition(cp.Vector{X: x, Y: y})
		info.body.SetAngle(rotation * math.Pi / 180)
	}
}

// SetRotation turns e in place, in degrees.
func (ps *PhysicsSystem) SetRotation(w *ecs.World, e ecs.Entity, rotation float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	ps.Teleport(w, e, t.X, t.Y, rotation)
}

// Translate moves e by dx along its local x axis, so an upside-down critter
// walks the other way in world space.
func (ps *PhysicsSystem) Translate(w *ecs.World, e ecs.Entity, dx float64) {
	if dx == 0 {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	worldDX := dx * math.Cos(t.Rotation*math.Pi/180)
	t.X += worldDX

	if _, info, ok := ps.lookup(w, e); ok && !info.static {
		pos := info.body.Position()
		info.body.SetPosition(cp.Vector{X: pos.X + worldDX, Y: pos.Y})
	}
}

func (ps *PhysicsSystem) Grounded(w *ecs.World, e ecs.Entity) bool {
	if ps == nil {
		return false
	}
	if contact, ok := ecs.Get(w, e, component.ContactComponent); ok {
		return contact.Grounded
	}
	return ps.contacts[e] > 0
}

func (ps *PhysicsSystem) lookup(w *ecs.World, e ecs.Entity) (*component.PhysicsBody, *bodyInfo, bool) {
	if ps == nil || !w.IsAlive(e) {
		return nil, nil, false
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return nil, nil, false
	}
	info, ok := ps.bodies[e]
	if !ok {
		t, hasTransform := ecs.Get(w, e, component.TransformComponent)
		if !hasTransform {
			return nil, nil, false
		}
		ps.ensureHandlers()
		ps.createBody(w, e, bodyComp, t)
		info = ps.bodies[e]
	}
	if info == nil || info.body == nil {
		return nil, nil, false
	}
	return bodyComp, info, true
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	ecs.ForEach(w, component.ContactComponent.Kind(), func(e ecs.Entity, contact *component.Contact) {
		contact.Count = ps.contacts[e]
		contact.Grounded = contact.Count > 0
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
		if bodyComp.Static || !bodyComp.Enabled || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = common.NormalizeAngle(bodyComp.Body.Angle() * 180 / math.Pi)
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			if ps.space.ContainsShape(shape) {
				ps.space.RemoveShape(shape)
			}
			delete(ps.sensors, shape)
		}
		if !info.static && info.body != nil && ps.space.ContainsBody(info.body) {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.bodies, e)
		delete(ps.contacts, e)
		delete(ps.gravity, e)
	}
}
