package joint

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/multierr"
)

var (
	ErrAxisOutOfDim      = errors.New("axis not valid for dimensionality")
	ErrInvertedLimit     = errors.New("limit min greater than max")
	ErrNonFinite         = errors.New("non-finite value")
	ErrNonUnitAxis       = errors.New("local axis is not unit length")
	ErrMotorOnLockedAxis = errors.New("motor on locked axis")
	ErrMotorFactor       = errors.New("velocity motor factor outside [0,1]")
	ErrNegativeGain      = errors.New("negative motor stiffness or damping")
	ErrUnknownMotorModel = errors.New("unknown motor model")
)

const unitTolerance = 1e-6

// Validate reports every inconsistency in d. The other JointData methods
// accept all of these silently; solvers that want to reject them call
// Validate before use. A limit on a locked axis is a harmless no-op and is
// not reported.
//
// The returned error combines one wrapped sentinel per problem, use
// errors.Is or multierr.Errors to inspect it.
func (d JointData) Validate() error {
	var err error

	valid := d.dim.Axes()
	for _, mask := range []struct {
		name string
		m    JointAxesMask
	}{{"locked", d.locked}, {"limits", d.limited}, {"motors", d.motorized}} {
		if extra := mask.m.Without(valid); extra != 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s %s in %s", ErrAxisOutOfDim, mask.name, extra, d.dim))
		}
	}

	for _, axis := range d.limited.Axes() {
		l := d.limits[axis]
		if !finite(l.Min) || !finite(l.Max) {
			err = multierr.Append(err, fmt.Errorf("%w: limit on %s", ErrNonFinite, axis))
			continue
		}
		if l.Min > l.Max {
			err = multierr.Append(err, fmt.Errorf("%w: %s [%g, %g]", ErrInvertedLimit, axis, l.Min, l.Max))
		}
	}

	for _, axis := range d.motorized.Axes() {
		err = multierr.Append(err, d.validateMotor(axis))
	}

	err = multierr.Append(err, validatePoint("local anchor 1", d.localAnchor1))
	err = multierr.Append(err, validatePoint("local anchor 2", d.localAnchor2))
	if d.dim == Dim3 {
		err = multierr.Append(err, validateAxis("local axis 1", d.localAxis1))
		err = multierr.Append(err, validateAxis("local axis 2", d.localAxis2))
	}

	return err
}

func (d JointData) validateMotor(axis JointAxis) error {
	var err error
	m := d.motors[axis]
	if d.locked.Contains(axis) {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrMotorOnLockedAxis, axis))
	}
	if !finite(m.Target) || !finite(m.Factor) || !finite(m.Stiffness) || !finite(m.Damping) {
		return multierr.Append(err, fmt.Errorf("%w: motor on %s", ErrNonFinite, axis))
	}
	switch m.Model {
	case VelocityTracking:
		if m.Factor < 0 || m.Factor > 1 {
			err = multierr.Append(err, fmt.Errorf("%w: %s factor %g", ErrMotorFactor, axis, m.Factor))
		}
	case PositionTracking:
		if m.Stiffness < 0 || m.Damping < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s stiffness %g damping %g", ErrNegativeGain, axis, m.Stiffness, m.Damping))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %s %s", ErrUnknownMotorModel, axis, m.Model))
	}
	return err
}

func validatePoint(name string, p mgl64.Vec3) error {
	for _, c := range p {
		if !finite(c) {
			return fmt.Errorf("%w: %s %v", ErrNonFinite, name, p)
		}
	}
	return nil
}

func validateAxis(name string, axis mgl64.Vec3) error {
	if err := validatePoint(name, axis); err != nil {
		return err
	}
	if math.Abs(axis.Len()-1) > unitTolerance {
		return fmt.Errorf("%w: %s %v has length %g", ErrNonUnitAxis, name, axis, axis.Len())
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
