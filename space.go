package joint

import "math"

// Space steps a set of bodies held together by constraints. It has no
// collision detection; bodies only interact through their constraints.
type Space struct {
	Iterations uint

	gravity Vector
	damping float64

	curr_dt float64

	dynamicBodies []*Body
	staticBodies  []*Body
	constraints   []*Constraint

	StaticBody *Body

	locked int
}

func NewSpace() *Space {
	space := &Space{
		Iterations: 10,
		damping:    1.0,
	}
	space.StaticBody = space.AddBody(NewStaticBody())
	return space
}

func (space *Space) Gravity() Vector {
	return space.gravity
}

func (space *Space) SetGravity(gravity Vector) {
	space.gravity = gravity
}

func (space *Space) Damping() float64 {
	return space.damping
}

// SetDamping sets the fraction of velocity bodies keep each second.
func (space *Space) SetDamping(damping float64) {
	assertf(damping > 0, "Damping must be positive")
	space.damping = damping
}

func (space *Space) CurrentTimeStep() float64 {
	return space.curr_dt
}

func (space *Space) AddBody(body *Body) *Body {
	assertf(body.space != space, "You have already added this body to this space. You must not add it a second time.")
	assertf(body.space == nil, "You have already added this body to another space. You cannot add it to a second.")
	assertf(space.locked == 0, "This operation cannot be done safely during a call to Step().")

	if body.GetType() == BODY_STATIC {
		space.staticBodies = append(space.staticBodies, body)
	} else {
		space.dynamicBodies = append(space.dynamicBodies, body)
	}
	body.space = space
	return body
}

func (space *Space) RemoveBody(body *Body) {
	assertf(body.space == space, "Cannot remove a body that was not added to the space.")
	assertf(space.locked == 0, "This operation cannot be done safely during a call to Step().")

	if body.GetType() == BODY_STATIC {
		space.staticBodies = removeBody(space.staticBodies, body)
	} else {
		space.dynamicBodies = removeBody(space.dynamicBodies, body)
	}
	body.space = nil
}

func removeBody(bodies []*Body, body *Body) []*Body {
	for i, b := range bodies {
		if b == body {
			return append(bodies[:i], bodies[i+1:]...)
		}
	}
	return bodies
}

func (space *Space) AddConstraint(constraint *Constraint) *Constraint {
	assertf(constraint.space == nil, "This constraint is already added to a space.")
	assertf(constraint.a != nil && constraint.b != nil, "Constraint is attached to a nil body")
	assertf(space.locked == 0, "This operation cannot be done safely during a call to Step().")

	space.constraints = append(space.constraints, constraint)
	constraint.space = space
	return constraint
}

func (space *Space) RemoveConstraint(constraint *Constraint) {
	assertf(constraint.space == space, "Cannot remove a constraint that was not added to the space.")
	assertf(space.locked == 0, "This operation cannot be done safely during a call to Step().")

	for i, c := range space.constraints {
		if c == constraint {
			space.constraints = append(space.constraints[:i], space.constraints[i+1:]...)
			break
		}
	}
	constraint.space = nil
}

func (space *Space) EachBody(f func(*Body)) {
	for _, body := range space.dynamicBodies {
		f(body)
	}
	for _, body := range space.staticBodies {
		f(body)
	}
}

func (space *Space) EachConstraint(f func(*Constraint)) {
	for _, constraint := range space.constraints {
		f(constraint)
	}
}

func (space *Space) Step(dt float64) {
	if dt == 0 {
		return
	}

	prev_dt := space.curr_dt
	space.curr_dt = dt

	bodies := space.dynamicBodies
	constraints := space.constraints

	space.locked++
	defer func() { space.locked-- }()

	for _, body := range bodies {
		body.position_func(body, dt)
	}

	// Prestep the constraints.
	for _, constraint := range constraints {
		if constraint.PreSolve != nil {
			constraint.PreSolve(constraint, space)
		}
		constraint.Class.PreStep(dt)
	}

	// Integrate velocities.
	damping := math.Pow(space.damping, dt)
	gravity := space.gravity
	for _, body := range bodies {
		body.velocity_func(body, gravity, damping, dt)
	}

	// Apply cached impulses
	var dt_coef float64
	if prev_dt != 0 {
		dt_coef = dt / prev_dt
	}
	for _, constraint := range constraints {
		constraint.Class.ApplyCachedImpulse(dt_coef)
	}

	// Run the impulse solver.
	for i := uint(0); i < space.Iterations; i++ {
		for _, constraint := range constraints {
			constraint.Class.ApplyImpulse(dt)
		}
	}

	// Run the constraint post-solve callbacks
	for _, constraint := range constraints {
		if constraint.PostSolve != nil {
			constraint.PostSolve(constraint, space)
		}
	}
}
