package joint

import (
	"fmt"
)

/// Rigid body velocity update function type.
type BodyVelocityFunc func(body *Body, gravity Vector, damping float64, dt float64)

/// Rigid body position update function type.
type BodyPositionFunc func(body *Body, dt float64)

// body types
const (
	BODY_DYNAMIC = iota
	BODY_KINEMATIC
	BODY_STATIC
)

type Body struct {
	id       int
	bodyType int

	// Integration functions
	velocity_func BodyVelocityFunc
	position_func BodyPositionFunc

	// mass and it's inverse
	m     float64
	m_inv float64

	// moment of inertia and it's inverse
	i     float64
	i_inv float64

	// position (of the center of gravity), velocity, force
	p Vector
	v Vector
	f Vector

	// Angle, angular velocity, torque (radians)
	a float64
	w float64
	t float64

	transform Transform

	UserData interface{}

	// "pseudo-velocities" used for eliminating overlap.
	v_bias Vector
	w_bias float64

	space *Space
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.id)
}

var bodyCur int = 0

func NewBody(mass, moment float64) *Body {
	body := &Body{
		id:            bodyCur,
		transform:     NewTransformIdentity(),
		velocity_func: BodyUpdateVelocity,
		position_func: BodyUpdatePosition,
	}
	bodyCur++

	body.SetMass(mass)
	body.SetMoment(moment)
	body.SetAngle(0)

	return body
}

func NewStaticBody() *Body {
	body := NewBody(0, 0)
	body.SetType(BODY_STATIC)
	return body
}

func NewKinematicBody() *Body {
	body := NewBody(0, 0)
	body.SetType(BODY_KINEMATIC)
	return body
}

// MomentForBox is the moment of inertia of a solid box centered on the body.
func MomentForBox(mass, width, height float64) float64 {
	return mass * (width*width + height*height) / 12.0
}

func (body *Body) GetType() int {
	return body.bodyType
}

func (body *Body) SetType(newType int) {
	if body.bodyType == newType {
		return
	}
	assertf(body.space == nil || body.space.locked == 0, "Space is locked")

	body.bodyType = newType
	if newType == BODY_DYNAMIC {
		body.m_inv = 1 / body.m
		body.i_inv = 1 / body.i
		return
	}

	body.m = INFINITY
	body.i = INFINITY
	body.m_inv = 0
	body.i_inv = 0
	if newType == BODY_STATIC {
		body.v = Vector{}
		body.w = 0
	}
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) SetMass(mass float64) {
	assertf(body.bodyType == BODY_DYNAMIC, "You cannot set the mass of kinematic or static bodies.")
	assertf(mass >= 0, "Mass must be positive and finite.")
	body.m = mass
	body.m_inv = 1 / mass
}

func (body Body) Moment() float64 {
	return body.i
}

func (body *Body) SetMoment(moment float64) {
	assertf(moment >= 0, "Moment of Inertia must be positive.")
	body.i = moment
	body.i_inv = 1 / moment
}

func (body *Body) Position() Vector {
	return body.p
}

func (body *Body) SetPosition(position Vector) {
	body.p = position
	body.SetTransform(body.p, body.a)
}

func (body *Body) Angle() float64 {
	return body.a
}

func (body *Body) SetAngle(angle float64) {
	body.a = angle
	body.SetTransform(body.p, angle)
}

func (body *Body) Rotation() Vector {
	return Vector{body.transform.a, body.transform.b}
}

func (body *Body) Velocity() Vector {
	return body.v
}

func (body *Body) SetVelocity(x, y float64) {
	body.v = Vector{x, y}
}

func (body *Body) SetVelocityVector(v Vector) {
	body.v = v
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(angularVelocity float64) {
	body.w = angularVelocity
}

func (body *Body) Force() Vector {
	return body.f
}

func (body *Body) SetForce(force Vector) {
	body.f = force
}

func (body *Body) Torque() float64 {
	return body.t
}

func (body *Body) SetTorque(torque float64) {
	body.t = torque
}

func (body *Body) SetTransform(p Vector, a float64) {
	body.transform = NewTransformRigid(p, a)
}

func (body *Body) WorldToLocal(point Vector) Vector {
	return NewTransformRigidInverse(body.transform).Point(point)
}

func (body *Body) LocalToWorld(point Vector) Vector {
	return body.transform.Point(point)
}

func (body *Body) ApplyForceAtWorldPoint(force, point Vector) {
	body.f = body.f.Add(force)

	r := point.Sub(body.p)
	body.t += r.Cross(force)
}

func (body *Body) ApplyImpulseAtWorldPoint(impulse, point Vector) {
	apply_impulse(body, impulse, point.Sub(body.p))
}

func (body *Body) VelocityAtWorldPoint(point Vector) Vector {
	r := point.Sub(body.p)
	return body.v.Add(r.Perp().Mult(body.w))
}

func (body *Body) KineticEnergy() float64 {
	// Need to do some fudging to avoid NaNs
	vsq := body.v.Dot(body.v)
	wsq := body.w * body.w
	var a, b float64
	if vsq != 0 {
		a = vsq * body.m
	}
	if wsq != 0 {
		b = wsq * body.i
	}
	return a + b
}

func (body *Body) SetVelocityUpdateFunc(f BodyVelocityFunc) {
	body.velocity_func = f
}

func (body *Body) SetPositionUpdateFunc(f BodyPositionFunc) {
	body.position_func = f
}

func BodyUpdateVelocity(body *Body, gravity Vector, damping, dt float64) {
	if body.GetType() == BODY_KINEMATIC {
		return
	}

	assertf(body.m > 0 && body.i > 0, "Body's mass and moment must be positive")

	body.v = body.v.Mult(damping).Add(gravity.Add(body.f.Mult(body.m_inv)).Mult(dt))
	body.w = body.w*damping + body.t*body.i_inv*dt

	body.f = Vector{}
	body.t = 0
}

func BodyUpdatePosition(body *Body, dt float64) {
	body.p = body.p.Add(body.v.Add(body.v_bias).Mult(dt))
	body.a = body.a + (body.w+body.w_bias)*dt
	body.SetTransform(body.p, body.a)

	body.v_bias = Vector{}
	body.w_bias = 0
}

func apply_impulses(a, b *Body, r1, r2, j Vector) {
	apply_impulse(a, j.Neg(), r1)
	apply_impulse(b, j, r2)
}

func apply_bias_impulses(a, b *Body, r1, r2, j Vector) {
	apply_bias_impulse(a, j.Neg(), r1)
	apply_bias_impulse(b, j, r2)
}

func apply_bias_impulse(body *Body, j, r Vector) {
	body.v_bias = body.v_bias.Add(j.Mult(body.m_inv))
	body.w_bias += body.i_inv * r.Cross(j)
}

func apply_impulse(body *Body, j, r Vector) {
	body.v = body.v.Add(j.Mult(body.m_inv))
	body.w += body.i_inv * r.Cross(j)
}

func apply_angular_impulses(a, b *Body, j float64) {
	a.w -= j * a.i_inv
	b.w += j * b.i_inv
}

func relative_velocity(a, b *Body, r1, r2 Vector) Vector {
	v1_sum := a.v.Add(r1.Perp().Mult(a.w))
	v2_sum := b.v.Add(r2.Perp().Mult(b.w))
	return v2_sum.Sub(v1_sum)
}

func k_scalar_body(body *Body, r, n Vector) float64 {
	rcn := r.Cross(n)
	return body.m_inv + body.i_inv*rcn*rcn
}

func k_scalar(a, b *Body, r1, r2, n Vector) float64 {
	return k_scalar_body(a, r1, n) + k_scalar_body(b, r2, n)
}
