package joint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJointAxesMask_Union(t *testing.T) {
	m := MaskLinX.Union(MaskAngY)

	assert.True(t, m.Contains(LinX))
	assert.True(t, m.Contains(AngY))
	assert.False(t, m.Contains(LinY))
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, []JointAxis{LinX, AngY}, m.Axes())
}

func TestJointAxesMask_ContainsAll(t *testing.T) {
	assert.True(t, MaskAll.ContainsAll(MaskLinAxes))
	assert.False(t, MaskLinAxes.ContainsAll(MaskLinX|MaskAngX))
	assert.Equal(t, MaskLinY|MaskLinZ, MaskLinAxes.Without(MaskLinX))
}

func TestJointAxesMask_String(t *testing.T) {
	assert.Equal(t, "none", JointAxesMask(0).String())
	assert.Equal(t, "lin_x|ang_z", (MaskLinX | MaskAngZ).String())
	assert.Equal(t, "lin_x|0x80", (MaskLinX | 0x80).String())
}

func TestJointAxis_Kind(t *testing.T) {
	for _, axis := range MaskLinAxes.Axes() {
		assert.True(t, axis.IsLinear(), axis.String())
		assert.False(t, axis.IsAngular(), axis.String())
	}
	for _, axis := range MaskAngAxes.Axes() {
		assert.True(t, axis.IsAngular(), axis.String())
		assert.False(t, axis.IsLinear(), axis.String())
	}
}

func TestParseJointAxis(t *testing.T) {
	for a := LinX; a < numAxes; a++ {
		parsed, err := ParseJointAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	axis, err := ParseJointAxis("ANG_Y")
	require.NoError(t, err)
	assert.Equal(t, AngY, axis)

	_, err = ParseJointAxis("ang_w")
	assert.Error(t, err)
}

func TestDim_Axes(t *testing.T) {
	assert.Equal(t, MaskAll, Dim3.Axes())
	assert.Equal(t, MaskLinX|MaskLinY|MaskAngX, Dim2.Axes())

	d, err := ParseDim("2d")
	require.NoError(t, err)
	assert.Equal(t, Dim2, d)

	d, err = ParseDim("")
	require.NoError(t, err)
	assert.Equal(t, Dim3, d)

	_, err = ParseDim("4d")
	assert.Error(t, err)
}
