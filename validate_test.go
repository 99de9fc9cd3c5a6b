package joint

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestJointData_Validate(t *testing.T) {
	unit := mgl64.Vec3{1, 0, 0}
	valid3D := NewJointData(Dim3).WithLocalAxis1(unit).WithLocalAxis2(unit)

	tests := []struct {
		name string
		data JointData
		want []error
	}{
		{"empty 2d", NewJointData(Dim2), nil},
		{"unit axes", valid3D, nil},
		{"limit on locked axis", valid3D.LockAxes(MaskAngY).LimitAxis(AngY, JointLimits{0, 0}), nil},
		{"missing axes", NewJointData(Dim3), []error{ErrNonUnitAxis, ErrNonUnitAxis}},
		{"non unit axis", valid3D.WithLocalAxis2(mgl64.Vec3{1, 1, 0}), []error{ErrNonUnitAxis}},
		{"lin_z in 2d", NewJointData(Dim2).LockAxes(MaskLinZ), []error{ErrAxisOutOfDim}},
		{"ang_y motor in 2d", NewJointData(Dim2).MotorVelocity(AngY, 1, 1), []error{ErrAxisOutOfDim}},
		{"inverted limit", valid3D.LimitAxis(LinX, JointLimits{1, 0}), []error{ErrInvertedLimit}},
		{"nan limit", valid3D.LimitAxis(LinX, JointLimits{math.NaN(), 0}), []error{ErrNonFinite}},
		{"motor on locked", valid3D.LockAxes(MaskAngX).MotorVelocity(AngX, 1, 1), []error{ErrMotorOnLockedAxis}},
		{"factor too large", valid3D.MotorVelocity(AngX, 1, 1.5), []error{ErrMotorFactor}},
		{"negative damping", valid3D.MotorPosition(AngX, 1, 10, -1), []error{ErrNegativeGain}},
		{"infinite anchor", valid3D.WithLocalAnchor1(mgl64.Vec3{math.Inf(1), 0, 0}), []error{ErrNonFinite}},
		{
			"several at once",
			NewJointData(Dim2).LockAxes(MaskLinX).MotorVelocity(LinX, 1, -1).LimitAxis(AngX, JointLimits{2, 1}),
			[]error{ErrMotorOnLockedAxis, ErrMotorFactor, ErrInvertedLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			errs := multierr.Errors(err)
			assert.Len(t, errs, len(tt.want))
			for _, want := range tt.want {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
		})
	}
}

func TestJointData_ValidateDoesNotCheck2DAxes(t *testing.T) {
	d := NewJointData(Dim2).WithLocalAxis1(mgl64.Vec3{5, 0, 0})
	assert.NoError(t, d.Validate())
}
