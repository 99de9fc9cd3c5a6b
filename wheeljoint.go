package joint

import "github.com/go-gl/mathgl/mgl64"

// WheelJoint builds the JointData of a wheel: a body spinning freely about one
// axis of another body.
//
//	data := NewWheelJoint(mgl64.Vec3{1, 0, 0}).
//		LocalAnchor1(mgl64.Vec3{0, -0.5, 1}).
//		MotorVelocity(AngX, 10, 1).
//		Data()
type WheelJoint struct {
	data JointData
}

// NewWheelJoint returns a 3D wheel spinning about axis, expressed in both
// bodies' local frames. Every linear axis is locked, as are the steering
// (AngZ) and camber (AngY) axes; AngX is left free. Camber additionally gets a
// zero-width limit so it stays pinned if a caller rebuilds the lock mask.
func NewWheelJoint(axis mgl64.Vec3) WheelJoint {
	data := NewJointData(Dim3).
		LockAxes(MaskLinAxes | MaskAngY | MaskAngZ).
		WithLocalAxis1(axis).
		WithLocalAxis2(axis).
		LimitAxis(AngY, JointLimits{0, 0})
	return WheelJoint{data: data}
}

// NewWheelJoint2D returns a planar wheel. The wheel slides along the first
// body's local X (the suspension, pinned by a zero-width limit until widened),
// cannot move along its local Y and spins freely about AngX.
//
// Unlike NewWheelJoint, not every axis but the spin axis is locked: LinX is
// left unlocked so the suspension travel can be opened with LimitAxis, which
// a lock would override.
func NewWheelJoint2D() WheelJoint {
	data := NewJointData(Dim2).
		LockAxes(MaskLinY).
		LimitAxis(LinX, JointLimits{0, 0})
	return WheelJoint{data: data}
}

// Data returns the finished configuration.
func (j WheelJoint) Data() JointData {
	return j.data
}

func (j WheelJoint) LocalAnchor1(anchor mgl64.Vec3) WheelJoint {
	j.data = j.data.WithLocalAnchor1(anchor)
	return j
}

func (j WheelJoint) LocalAnchor2(anchor mgl64.Vec3) WheelJoint {
	j.data = j.data.WithLocalAnchor2(anchor)
	return j
}

func (j WheelJoint) LockAxes(mask JointAxesMask) WheelJoint {
	j.data = j.data.LockAxes(mask)
	return j
}

func (j WheelJoint) LimitAxis(axis JointAxis, limits JointLimits) WheelJoint {
	j.data = j.data.LimitAxis(axis, limits)
	return j
}

func (j WheelJoint) UnlimitAxis(axis JointAxis) WheelJoint {
	j.data = j.data.UnlimitAxis(axis)
	return j
}

// MotorVelocity sets the target velocity the motor on axis needs to reach.
func (j WheelJoint) MotorVelocity(axis JointAxis, targetVel, factor float64) WheelJoint {
	j.data = j.data.MotorVelocity(axis, targetVel, factor)
	return j
}

// MotorPosition sets the target position the motor on axis needs to reach.
func (j WheelJoint) MotorPosition(axis JointAxis, targetPos, stiffness, damping float64) WheelJoint {
	j.data = j.data.MotorPosition(axis, targetPos, stiffness, damping)
	return j
}

func (j WheelJoint) UnmotorAxis(axis JointAxis) WheelJoint {
	j.data = j.data.UnmotorAxis(axis)
	return j
}
