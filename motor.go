package joint

import (
	"fmt"
	"strings"
)

// MotorModel selects how a motorized axis is driven.
type MotorModel uint8

const (
	// VelocityTracking drives the axis toward a target velocity. Factor in [0,1]
	// blends between free motion (0) and fully tracking the target (1).
	VelocityTracking MotorModel = iota + 1
	// PositionTracking drives the axis toward a target position with a
	// spring of the given stiffness and a damper.
	PositionTracking
)

func (m MotorModel) String() string {
	switch m {
	case VelocityTracking:
		return "velocity"
	case PositionTracking:
		return "position"
	}
	return fmt.Sprintf("MotorModel(%d)", uint8(m))
}

func ParseMotorModel(s string) (MotorModel, error) {
	switch strings.ToLower(s) {
	case "velocity":
		return VelocityTracking, nil
	case "position":
		return PositionTracking, nil
	}
	return 0, fmt.Errorf("joint: unknown motor model %q", s)
}

// JointMotor is the drive attached to one axis. Parameters that do not belong
// to the model are left zero.
type JointMotor struct {
	Model  MotorModel
	Target float64

	// VelocityTracking
	Factor float64

	// PositionTracking
	Stiffness, Damping float64
}

func VelocityMotor(targetVel, factor float64) JointMotor {
	return JointMotor{Model: VelocityTracking, Target: targetVel, Factor: factor}
}

func PositionMotor(targetPos, stiffness, damping float64) JointMotor {
	return JointMotor{Model: PositionTracking, Target: targetPos, Stiffness: stiffness, Damping: damping}
}
