package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/joint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehicle = `
joints:
  - name: rear_wheel
    archetype: wheel
    axis: [1, 0, 0]
    local_anchor1: [0, -1, 0.5]
    motors:
      ang_x: {model: velocity, target: 10, factor: 1}
  - name: front_wheel
    archetype: wheel
    axis: [1, 0, 0]
    unlimit: [ang_y]
    limits: {ang_z: [-0.5, 0.5]}
  - name: suspension
    archetype: wheel2d
    limits: {lin_x: [-0.2, 0.2]}
    motors:
      lin_x: {model: position, target: 0, stiffness: 400, damping: 20}
  - name: hinge
    dim: 2d
    lock: [lin_x, lin_y]
    local_anchor2: [-1, 0, 0]
    limits: {ang_x: [-1, 1]}
`

func TestParse(t *testing.T) {
	file, err := Parse([]byte(vehicle))
	require.NoError(t, err)
	require.Len(t, file.Joints, 4)

	p, ok := file.Find("suspension")
	require.True(t, ok)
	assert.Equal(t, ArchetypeWheel2D, p.Archetype)

	_, ok = file.Find("missing")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown key": "joints:\n  - name: a\n    colour: red\n",
		"no name":     "joints:\n  - archetype: wheel\n",
		"duplicate":   "joints:\n  - name: a\n  - name: a\n",
		"bad yaml":    "joints: [",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	file, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, file.Joints)
}

func TestPreset_Build(t *testing.T) {
	file, err := Parse([]byte(vehicle))
	require.NoError(t, err)

	tests := map[string]joint.JointData{
		"rear_wheel": joint.NewWheelJoint(mgl64.Vec3{1, 0, 0}).
			LocalAnchor1(mgl64.Vec3{0, -1, 0.5}).
			MotorVelocity(joint.AngX, 10, 1).
			Data(),
		"front_wheel": joint.NewWheelJoint(mgl64.Vec3{1, 0, 0}).
			LimitAxis(joint.AngZ, joint.JointLimits{Min: -0.5, Max: 0.5}).
			UnlimitAxis(joint.AngY).
			Data(),
		"suspension": joint.NewWheelJoint2D().
			LimitAxis(joint.LinX, joint.JointLimits{Min: -0.2, Max: 0.2}).
			MotorPosition(joint.LinX, 0, 400, 20).
			Data(),
		"hinge": joint.NewJointData(joint.Dim2).
			WithLocalAnchor2(mgl64.Vec3{-1, 0, 0}).
			LockAxes(joint.MaskLinX | joint.MaskLinY).
			LimitAxis(joint.AngX, joint.JointLimits{Min: -1, Max: 1}),
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			p, ok := file.Find(name)
			require.True(t, ok)
			got, err := p.Build()
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestPreset_BuildUnlimitAfterLimits(t *testing.T) {
	p := Preset{
		Name:    "a",
		Dim:     "2d",
		Limits:  map[string][2]float64{"ang_x": {-1, 1}},
		Unlimit: []string{"ang_x"},
	}
	data, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, joint.NewJointData(joint.Dim2), data)
}

func TestPreset_BuildDoesNotValidate(t *testing.T) {
	p := Preset{
		Name:   "a",
		Dim:    "2d",
		Lock:   []string{"ang_x"},
		Motors: map[string]Motor{"ang_x": {Model: "velocity", Target: 1, Factor: 1}},
	}
	data, err := p.Build()
	require.NoError(t, err)
	assert.True(t, errors.Is(data.Validate(), joint.ErrMotorOnLockedAxis))
}

func TestPreset_BuildErrors(t *testing.T) {
	axis := &[3]float64{1, 0, 0}
	tests := []struct {
		name   string
		preset Preset
		target error
	}{
		{"archetype", Preset{Archetype: "hinge"}, ErrUnknownArchetype},
		{"wheel without axis", Preset{Archetype: ArchetypeWheel}, ErrMissingAxis},
		{"wheel with local axis", Preset{Archetype: ArchetypeWheel, Axis: axis, LocalAxis1: axis}, ErrMisplacedField},
		{"wheel2d with axis", Preset{Archetype: ArchetypeWheel2D, Axis: axis}, ErrMisplacedField},
		{"wheel2d in 3d", Preset{Archetype: ArchetypeWheel2D, Dim: "3d"}, ErrMisplacedField},
		{"generic with axis", Preset{Axis: axis}, ErrMisplacedField},
		{"dim", Preset{Dim: "4d"}, nil},
		{"lock", Preset{Lock: []string{"lin_w"}}, nil},
		{"limits", Preset{Limits: map[string][2]float64{"x": {0, 1}}}, nil},
		{"unlimit", Preset{Unlimit: []string{"x"}}, nil},
		{"motor axis", Preset{Motors: map[string]Motor{"x": {Model: "velocity"}}}, nil},
		{"motor model", Preset{Motors: map[string]Motor{"ang_x": {Model: "torque"}}}, nil},
		{"limit axis twice", Preset{Limits: map[string][2]float64{"ang_x": {0, 1}, "ANG_X": {2, 3}}}, ErrDuplicateAxis},
		{"motor axis twice", Preset{Motors: map[string]Motor{"lin_y": {Model: "velocity"}, "Lin_Y": {Model: "velocity"}}}, ErrDuplicateAxis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.preset.Name = "broken"
			_, err := tt.preset.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "preset broken")
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vehicle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vehicle), 0o644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Joints, 4)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "preset: load")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("joints: {"), 0o644))
	_, err = LoadFile(bad)
	assert.Contains(t, err.Error(), "preset: unmarshal")
}

func TestParse_DuplicateAxisFailsBuild(t *testing.T) {
	file, err := Parse([]byte("joints:\n  - name: a\n    dim: 2d\n    limits: {ang_x: [0, 1], ANG_X: [2, 3]}\n"))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := file.Joints[0].Build()
		require.ErrorIs(t, err, ErrDuplicateAxis)
	}
}
