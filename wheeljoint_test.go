package joint

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWheelJoint(t *testing.T) {
	axis := mgl64.Vec3{0, 0.6, 0.8}
	data := NewWheelJoint(axis).Data()

	assert.Equal(t, Dim3, data.Dim())
	assert.True(t, data.Locked().ContainsAll(MaskLinAxes))
	assert.Equal(t, MaskAngX, data.FreeAxes())
	assert.Equal(t, axis, data.LocalAxis1())
	assert.Equal(t, axis, data.LocalAxis2())

	assert.Equal(t, MaskAngY, data.LimitedAxes())
	l, ok := data.Limit(AngY)
	require.True(t, ok)
	assert.Equal(t, JointLimits{0, 0}, l)

	assert.Equal(t, JointAxesMask(0), data.MotorAxes())
	assert.NoError(t, data.Validate())
}

func TestNewWheelJoint2D(t *testing.T) {
	data := NewWheelJoint2D().Data()

	assert.Equal(t, Dim2, data.Dim())
	assert.Equal(t, MaskLinY, data.Locked())
	assert.Equal(t, MaskLinX|MaskAngX, data.FreeAxes())
	l, ok := data.Limit(LinX)
	require.True(t, ok)
	assert.Equal(t, JointLimits{0, 0}, l)
	assert.NoError(t, data.Validate())
}

func TestWheelJoint_ChainMatchesDirectApplication(t *testing.T) {
	axis := mgl64.Vec3{1, 0, 0}
	anchor1 := mgl64.Vec3{0, -0.5, 1.2}
	anchor2 := mgl64.Vec3{0.1, 0, 0}

	chained := NewWheelJoint(axis).
		LocalAnchor1(anchor1).
		LocalAnchor2(anchor2).
		UnlimitAxis(AngY).
		LimitAxis(AngZ, JointLimits{-0.4, 0.4}).
		MotorVelocity(AngX, 12, 0.7).
		MotorPosition(AngZ, 0.1, 50, 5).
		Data()

	direct := NewWheelJoint(axis).Data()
	direct = direct.WithLocalAnchor1(anchor1)
	direct = direct.WithLocalAnchor2(anchor2)
	direct = direct.UnlimitAxis(AngY)
	direct = direct.LimitAxis(AngZ, JointLimits{-0.4, 0.4})
	direct = direct.MotorVelocity(AngX, 12, 0.7)
	direct = direct.MotorPosition(AngZ, 0.1, 50, 5)

	assert.Equal(t, direct, chained)
}

func TestWheelJoint_DataIsAProjection(t *testing.T) {
	builder := NewWheelJoint(mgl64.Vec3{1, 0, 0}).MotorVelocity(AngX, 1, 1)

	first := builder.Data()
	second := builder.Data()
	assert.Equal(t, first, second)

	// Editing the returned value leaves the builder alone.
	_ = first.UnmotorAxis(AngX)
	first = first.LockAxes(MaskAll)
	assert.Equal(t, second, builder.Data())
}

func TestWheelJoint_BuilderIsAValue(t *testing.T) {
	base := NewWheelJoint(mgl64.Vec3{1, 0, 0})
	left := base.LocalAnchor1(mgl64.Vec3{-1, 0, 0})
	right := base.LocalAnchor1(mgl64.Vec3{1, 0, 0})

	assert.Equal(t, mgl64.Vec3{}, base.Data().LocalAnchor1())
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, left.Data().LocalAnchor1())
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, right.Data().LocalAnchor1())
}

func TestWheelJoint_KeepsInconsistentState(t *testing.T) {
	data := NewWheelJoint(mgl64.Vec3{2, 0, 0}).
		MotorVelocity(LinX, 1, 1).
		LimitAxis(AngX, JointLimits{1, -1}).
		Data()

	_, ok := data.Motor(LinX)
	assert.True(t, ok)
	l, _ := data.Limit(AngX)
	assert.Equal(t, JointLimits{1, -1}, l)
	assert.Error(t, data.Validate())
}
