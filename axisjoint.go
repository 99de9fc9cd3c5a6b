package joint

import "math"

// The axes a planar solver can drive, in row order.
var planarAxes = [3]JointAxis{LinX, LinY, AngX}

type rowKind uint8

const (
	rowInactive rowKind = iota
	// equality: drives the axis error to zero from both sides.
	rowEquality
	// lower/upper: one-sided, only pushes the axis back inside a limit.
	rowLower
	rowUpper
	rowVelocity
	rowSpring
)

// axisRow is one scalar constraint along a joint axis. Linear rows act along n
// through the anchor points, angular rows on the relative angle.
type axisRow struct {
	kind    rowKind
	angular bool

	n, rA, rB Vector
	mass      float64

	bias   float64
	target float64
	factor float64

	// spring damping state
	targetVrn, vCoef float64

	jAcc, jBias float64
}

func (row *axisRow) setup(a, b *Body, angular bool, n, rA, rB Vector) float64 {
	row.angular = angular
	var k float64
	if angular {
		k = a.i_inv + b.i_inv
	} else {
		row.n, row.rA, row.rB = n, rA, rB
		k = k_scalar(a, b, rA, rB, n)
	}
	if k == 0 || math.IsInf(k, 0) {
		row.mass = 0
	} else {
		row.mass = 1.0 / k
	}
	return k
}

func (row *axisRow) deactivate() {
	row.kind = rowInactive
	row.jAcc = 0
}

func (row *axisRow) velocity(a, b *Body) float64 {
	if row.angular {
		return b.w - a.w
	}
	return relative_velocity(a, b, row.rA, row.rB).Dot(row.n)
}

func (row *axisRow) apply(a, b *Body, j float64) {
	if row.angular {
		apply_angular_impulses(a, b, j)
		return
	}
	apply_impulses(a, b, row.rA, row.rB, row.n.Mult(j))
}

func (row *axisRow) biasVelocity(a, b *Body) float64 {
	if row.angular {
		return b.w_bias - a.w_bias
	}
	v1 := a.v_bias.Add(row.rA.Perp().Mult(a.w_bias))
	v2 := b.v_bias.Add(row.rB.Perp().Mult(b.w_bias))
	return v2.Sub(v1).Dot(row.n)
}

func (row *axisRow) applyBias(a, b *Body, j float64) {
	if row.angular {
		a.w_bias -= j * a.i_inv
		b.w_bias += j * b.i_inv
		return
	}
	apply_bias_impulses(a, b, row.rA, row.rB, row.n.Mult(j))
}

// AxisJoint is a planar constraint driven entirely by a JointData. Each
// PreStep it re-reads Data and builds one scalar row per locked or limited
// axis and one per motorized axis. Only LinX, LinY and AngX are solved; the
// remaining axes of a 3D configuration are ignored.
//
// Linear axes are measured from LocalAnchor1 to LocalAnchor2 along body A's
// local X and Y, AngX is the angle of body B relative to body A.
//
// Locked axes ignore their limits and motors. A limit with Min >= Max pins the
// axis at the middle of the range. One-sided limit rows correct their error
// through the bodies' bias velocities, so hitting a limit does not bounce.
type AxisJoint struct {
	*Constraint
	Data JointData

	limits [3]axisRow
	motors [3]axisRow
}

func NewAxisJoint(a, b *Body, data JointData) *Constraint {
	joint := &AxisJoint{Data: data}
	joint.Constraint = NewConstraint(joint, a, b)
	return joint.Constraint
}

// frame returns the world anchor offsets of both bodies, the offset from A's
// center to B's anchor, the anchor separation and A's axis directions.
func (joint *AxisJoint) frame() (r1, r2, rA, delta Vector, dirs [2]Vector) {
	a := joint.a
	b := joint.b

	r1 = a.transform.Vect(Vec2(joint.Data.LocalAnchor1()))
	r2 = b.transform.Vect(Vec2(joint.Data.LocalAnchor2()))
	delta = b.p.Add(r2).Sub(a.p.Add(r1))
	rA = r1.Add(delta)

	rot := a.Rotation()
	dirs = [2]Vector{rot, rot.Perp()}
	return
}

// JointPosition returns the current coordinate of the joint along axis: the
// anchor separation for LinX and LinY, the relative angle for AngX.
func (joint *AxisJoint) JointPosition(axis JointAxis) float64 {
	_, _, _, delta, dirs := joint.frame()
	switch axis {
	case LinX, LinY:
		return delta.Dot(dirs[axis])
	case AngX:
		return joint.b.a - joint.a.a
	}
	return 0
}

// JointVelocity returns the current rate of change of the coordinate along axis.
func (joint *AxisJoint) JointVelocity(axis JointAxis) float64 {
	_, r2, rA, _, dirs := joint.frame()
	switch axis {
	case LinX, LinY:
		return relative_velocity(joint.a, joint.b, rA, r2).Dot(dirs[axis])
	case AngX:
		return joint.b.w - joint.a.w
	}
	return 0
}

func (joint *AxisJoint) PreStep(dt float64) {
	a := joint.a
	b := joint.b
	data := joint.Data

	_, r2, rA, delta, dirs := joint.frame()

	coef := bias_coef(joint.errorBias, dt)
	maxBias := joint.maxBias

	for i, axis := range planarAxes {
		angular := axis.IsAngular()
		var n Vector
		var pos float64
		if angular {
			pos = b.a - a.a
		} else {
			n = dirs[i]
			pos = delta.Dot(n)
		}

		row := &joint.limits[i]
		kind, pdist := rowInactive, 0.0
		if data.IsLocked(axis) {
			kind, pdist = rowEquality, pos
		} else if l, ok := data.ActiveLimit(axis); ok {
			switch {
			case l.Min >= l.Max:
				kind, pdist = rowEquality, pos-(l.Min+l.Max)*0.5
			case pos < l.Min:
				kind, pdist = rowLower, pos-l.Min
			case pos > l.Max:
				kind, pdist = rowUpper, pos-l.Max
			}
		}
		if kind == rowInactive {
			row.deactivate()
		} else {
			if row.kind != kind {
				row.jAcc = 0
			}
			row.kind = kind
			row.setup(a, b, angular, n, rA, r2)
			row.bias = Clamp(-coef*pdist/dt, -maxBias, maxBias)
			row.jBias = 0
		}

		motorRow := &joint.motors[i]
		motor, ok := data.ActiveMotor(axis)
		if !ok {
			motorRow.deactivate()
			continue
		}
		switch motor.Model {
		case VelocityTracking:
			if motorRow.kind != rowVelocity {
				motorRow.jAcc = 0
			}
			motorRow.kind = rowVelocity
			motorRow.setup(a, b, angular, n, rA, r2)
			motorRow.target = motor.Target
			motorRow.factor = motor.Factor
		case PositionTracking:
			motorRow.kind = rowSpring
			k := motorRow.setup(a, b, angular, n, rA, r2)
			if motorRow.mass == 0 {
				motorRow.deactivate()
				continue
			}
			motorRow.targetVrn = 0
			motorRow.vCoef = 1.0 - math.Exp(-motor.Damping*dt*k)

			jSpring := (motor.Target - pos) * motor.Stiffness * dt
			motorRow.jAcc = jSpring
			motorRow.apply(a, b, jSpring)
		default:
			motorRow.deactivate()
		}
	}
}

func (joint *AxisJoint) ApplyCachedImpulse(dt_coef float64) {
	a := joint.a
	b := joint.b

	for i := range planarAxes {
		if row := &joint.limits[i]; row.kind != rowInactive {
			row.apply(a, b, row.jAcc*dt_coef)
		}
		// springs re-apply their impulse in PreStep
		if row := &joint.motors[i]; row.kind == rowVelocity {
			row.apply(a, b, row.jAcc*dt_coef)
		}
	}
}

func (joint *AxisJoint) ApplyImpulse(dt float64) {
	a := joint.a
	b := joint.b
	jMax := joint.maxForce * dt

	for i := range planarAxes {
		joint.applyMotor(a, b, &joint.motors[i], jMax)
	}
	for i := range planarAxes {
		joint.applyLimit(a, b, &joint.limits[i], jMax)
	}
}

func (joint *AxisJoint) applyLimit(a, b *Body, row *axisRow, jMax float64) {
	if row.kind == rowInactive || row.mass == 0 {
		return
	}

	if row.kind == rowEquality {
		vr := row.velocity(a, b)
		j := (row.bias - vr) * row.mass
		jOld := row.jAcc
		row.jAcc = Clamp(jOld+j, -jMax, jMax)
		row.apply(a, b, row.jAcc-jOld)
		return
	}

	lo, hi := 0.0, jMax
	if row.kind == rowUpper {
		lo, hi = -jMax, 0
	}

	// position correction
	vbr := row.biasVelocity(a, b)
	jb := (row.bias - vbr) * row.mass
	jbOld := row.jBias
	row.jBias = Clamp(jbOld+jb, lo, hi)
	row.applyBias(a, b, row.jBias-jbOld)

	// stop approaching the limit
	vr := row.velocity(a, b)
	j := -vr * row.mass
	jOld := row.jAcc
	row.jAcc = Clamp(jOld+j, lo, hi)
	row.apply(a, b, row.jAcc-jOld)
}

func (joint *AxisJoint) applyMotor(a, b *Body, row *axisRow, jMax float64) {
	switch row.kind {
	case rowVelocity:
		if row.mass == 0 {
			return
		}
		vr := row.velocity(a, b)
		j := (row.target - vr) * row.mass * row.factor
		jOld := row.jAcc
		row.jAcc = Clamp(jOld+j, -jMax, jMax)
		row.apply(a, b, row.jAcc-jOld)
	case rowSpring:
		vrn := row.velocity(a, b)
		vDamp := (row.targetVrn - vrn) * row.vCoef
		row.targetVrn = vrn + vDamp

		jDamp := vDamp * row.mass
		row.jAcc += jDamp
		row.apply(a, b, jDamp)
	}
}

func (joint *AxisJoint) GetImpulse() float64 {
	var sum float64
	for i := range planarAxes {
		sum += joint.limits[i].jAcc * joint.limits[i].jAcc
		sum += joint.motors[i].jAcc * joint.motors[i].jAcc
	}
	return math.Sqrt(sum)
}
