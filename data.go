package joint

import "github.com/go-gl/mathgl/mgl64"

// JointData describes the relative motion allowed between two bodies: which
// axes are locked, which are bounded, which are driven, and the joint geometry
// in each body's local frame.
//
// JointData is a plain value. Every method returns an updated copy and leaves
// the receiver untouched, so a finished value can be handed to a solver and
// read from any goroutine. Nothing is validated on the way in; call Validate
// when that matters.
//
// A locked axis takes precedence over any limit or motor stored for it.
type JointData struct {
	dim Dim

	locked    JointAxesMask
	limited   JointAxesMask
	motorized JointAxesMask

	limits [numAxes]JointLimits
	motors [numAxes]JointMotor

	localAnchor1, localAnchor2 mgl64.Vec3
	// only read by 3D solvers
	localAxis1, localAxis2 mgl64.Vec3
}

func NewJointData(dim Dim) JointData {
	return JointData{dim: dim}
}

func (d JointData) Dim() Dim {
	return d.dim
}

// LockAxes adds mask to the locked axes. Axes are never unlocked.
func (d JointData) LockAxes(mask JointAxesMask) JointData {
	d.locked |= mask
	return d
}

// LimitAxis sets the limit of axis, replacing any previous one.
func (d JointData) LimitAxis(axis JointAxis, limits JointLimits) JointData {
	if axis >= numAxes {
		return d
	}
	d.limited |= axis.Mask()
	d.limits[axis] = limits
	return d
}

func (d JointData) UnlimitAxis(axis JointAxis) JointData {
	if axis >= numAxes {
		return d
	}
	d.limited &^= axis.Mask()
	d.limits[axis] = JointLimits{}
	return d
}

// MotorVelocity drives axis toward targetVel.
func (d JointData) MotorVelocity(axis JointAxis, targetVel, factor float64) JointData {
	return d.setMotor(axis, VelocityMotor(targetVel, factor))
}

// MotorPosition drives axis toward targetPos with a damped spring.
func (d JointData) MotorPosition(axis JointAxis, targetPos, stiffness, damping float64) JointData {
	return d.setMotor(axis, PositionMotor(targetPos, stiffness, damping))
}

func (d JointData) UnmotorAxis(axis JointAxis) JointData {
	if axis >= numAxes {
		return d
	}
	d.motorized &^= axis.Mask()
	d.motors[axis] = JointMotor{}
	return d
}

func (d JointData) setMotor(axis JointAxis, motor JointMotor) JointData {
	if axis >= numAxes {
		return d
	}
	d.motorized |= axis.Mask()
	d.motors[axis] = motor
	return d
}

func (d JointData) WithLocalAnchor1(p mgl64.Vec3) JointData {
	d.localAnchor1 = p
	return d
}

func (d JointData) WithLocalAnchor2(p mgl64.Vec3) JointData {
	d.localAnchor2 = p
	return d
}

// WithLocalAxis1 sets the joint's primary axis in the first body's frame.
// The caller is responsible for passing a unit vector.
func (d JointData) WithLocalAxis1(axis mgl64.Vec3) JointData {
	d.localAxis1 = axis
	return d
}

func (d JointData) WithLocalAxis2(axis mgl64.Vec3) JointData {
	d.localAxis2 = axis
	return d
}

func (d JointData) Locked() JointAxesMask {
	return d.locked
}

func (d JointData) IsLocked(axis JointAxis) bool {
	return d.locked.Contains(axis)
}

// FreeAxes returns the axes of the configuration's dimensionality that are
// not locked. Limited and motorized axes count as free.
func (d JointData) FreeAxes() JointAxesMask {
	return d.dim.Axes().Without(d.locked)
}

func (d JointData) LimitedAxes() JointAxesMask {
	return d.limited
}

func (d JointData) Limit(axis JointAxis) (JointLimits, bool) {
	if !d.limited.Contains(axis) {
		return JointLimits{}, false
	}
	return d.limits[axis], true
}

func (d JointData) MotorAxes() JointAxesMask {
	return d.motorized
}

func (d JointData) Motor(axis JointAxis) (JointMotor, bool) {
	if !d.motorized.Contains(axis) {
		return JointMotor{}, false
	}
	return d.motors[axis], true
}

// ActiveLimit is Limit for consumers: a locked axis reports no limit.
func (d JointData) ActiveLimit(axis JointAxis) (JointLimits, bool) {
	if d.locked.Contains(axis) {
		return JointLimits{}, false
	}
	return d.Limit(axis)
}

// ActiveMotor is Motor for consumers: a locked axis reports no motor.
func (d JointData) ActiveMotor(axis JointAxis) (JointMotor, bool) {
	if d.locked.Contains(axis) {
		return JointMotor{}, false
	}
	return d.Motor(axis)
}

func (d JointData) LocalAnchor1() mgl64.Vec3 {
	return d.localAnchor1
}

func (d JointData) LocalAnchor2() mgl64.Vec3 {
	return d.localAnchor2
}

func (d JointData) LocalAxis1() mgl64.Vec3 {
	return d.localAxis1
}

func (d JointData) LocalAxis2() mgl64.Vec3 {
	return d.localAxis2
}
