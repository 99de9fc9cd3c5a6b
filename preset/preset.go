// Package preset loads named joint configurations from YAML files.
//
//	joints:
//	  - name: rear_wheel
//	    archetype: wheel
//	    axis: [1, 0, 0]
//	    local_anchor1: [0, -1, 0]
//	    motors: {ang_x: {model: velocity, target: 10, factor: 1}}
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/joint"
	"gopkg.in/yaml.v3"
)

const (
	ArchetypeGeneric = "generic"
	ArchetypeWheel   = "wheel"
	ArchetypeWheel2D = "wheel2d"
)

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrMissingAxis      = errors.New("wheel needs an axis")
	ErrMisplacedField   = errors.New("field not valid for archetype")
	ErrDuplicateAxis    = errors.New("axis given twice")
)

// File is one preset document.
type File struct {
	Joints []Preset `yaml:"joints"`
}

// Preset describes a joint as a starting archetype plus edits applied on top
// of it. Build applies the geometry first, then lock, limits, unlimit and
// motors.
type Preset struct {
	Name      string `yaml:"name"`
	Archetype string `yaml:"archetype,omitempty"`
	Dim       string `yaml:"dim,omitempty"`

	Axis         *[3]float64 `yaml:"axis,omitempty,flow"`
	LocalAnchor1 *[3]float64 `yaml:"local_anchor1,omitempty,flow"`
	LocalAnchor2 *[3]float64 `yaml:"local_anchor2,omitempty,flow"`
	LocalAxis1   *[3]float64 `yaml:"local_axis1,omitempty,flow"`
	LocalAxis2   *[3]float64 `yaml:"local_axis2,omitempty,flow"`

	Lock    []string              `yaml:"lock,omitempty,flow"`
	Limits  map[string][2]float64 `yaml:"limits,omitempty"`
	Unlimit []string              `yaml:"unlimit,omitempty,flow"`
	Motors  map[string]Motor      `yaml:"motors,omitempty"`
}

type Motor struct {
	Model     string  `yaml:"model"`
	Target    float64 `yaml:"target"`
	Factor    float64 `yaml:"factor,omitempty"`
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
}

// Parse decodes a preset document. Unknown keys and duplicate or empty names
// are errors.
func Parse(data []byte) (*File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	seen := make(map[string]struct{}, len(file.Joints))
	for i, p := range file.Joints {
		if p.Name == "" {
			return nil, fmt.Errorf("joints[%d]: missing name", i)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("joints[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return &file, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset: unmarshal %s: %w", path, err)
	}
	return file, nil
}

func (f *File) Find(name string) (Preset, bool) {
	for _, p := range f.Joints {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Build turns the preset into a configuration. It does not validate the
// result; call Validate on it for that.
func (p Preset) Build() (joint.JointData, error) {
	data, err := p.base()
	if err != nil {
		return joint.JointData{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}

	for _, name := range p.Lock {
		axis, err := joint.ParseJointAxis(name)
		if err != nil {
			return joint.JointData{}, fmt.Errorf("preset %s: lock: %w", p.Name, err)
		}
		data = data.LockAxes(axis.Mask())
	}
	var seen joint.JointAxesMask
	for name, l := range p.Limits {
		axis, err := joint.ParseJointAxis(name)
		if err != nil {
			return joint.JointData{}, fmt.Errorf("preset %s: limits: %w", p.Name, err)
		}
		if seen.Contains(axis) {
			return joint.JointData{}, fmt.Errorf("preset %s: limits: %w %s", p.Name, ErrDuplicateAxis, axis)
		}
		seen |= axis.Mask()
		data = data.LimitAxis(axis, joint.JointLimits{Min: l[0], Max: l[1]})
	}
	for _, name := range p.Unlimit {
		axis, err := joint.ParseJointAxis(name)
		if err != nil {
			return joint.JointData{}, fmt.Errorf("preset %s: unlimit: %w", p.Name, err)
		}
		data = data.UnlimitAxis(axis)
	}
	seen = 0
	for name, m := range p.Motors {
		axis, err := joint.ParseJointAxis(name)
		if err != nil {
			return joint.JointData{}, fmt.Errorf("preset %s: motors: %w", p.Name, err)
		}
		if seen.Contains(axis) {
			return joint.JointData{}, fmt.Errorf("preset %s: motors: %w %s", p.Name, ErrDuplicateAxis, axis)
		}
		seen |= axis.Mask()
		model, err := joint.ParseMotorModel(m.Model)
		if err != nil {
			return joint.JointData{}, fmt.Errorf("preset %s: motors: %s: %w", p.Name, name, err)
		}
		switch model {
		case joint.VelocityTracking:
			data = data.MotorVelocity(axis, m.Target, m.Factor)
		case joint.PositionTracking:
			data = data.MotorPosition(axis, m.Target, m.Stiffness, m.Damping)
		}
	}
	return data, nil
}

// base returns the archetype with the preset's geometry applied.
func (p Preset) base() (joint.JointData, error) {
	switch p.Archetype {
	case ArchetypeWheel:
		if p.Axis == nil {
			return joint.JointData{}, ErrMissingAxis
		}
		if p.Dim != "" || p.LocalAxis1 != nil || p.LocalAxis2 != nil {
			return joint.JointData{}, fmt.Errorf("%w: dim and local axes come from the wheel axis", ErrMisplacedField)
		}
		wheel := joint.NewWheelJoint(mgl64.Vec3(*p.Axis))
		return p.anchors(wheel).Data(), nil

	case ArchetypeWheel2D:
		if p.Axis != nil || p.LocalAxis1 != nil || p.LocalAxis2 != nil {
			return joint.JointData{}, fmt.Errorf("%w: wheel2d has no axes", ErrMisplacedField)
		}
		if p.Dim != "" && p.Dim != joint.Dim2.String() {
			return joint.JointData{}, fmt.Errorf("%w: wheel2d is %s", ErrMisplacedField, joint.Dim2)
		}
		return p.anchors(joint.NewWheelJoint2D()).Data(), nil

	case ArchetypeGeneric, "":
		if p.Axis != nil {
			return joint.JointData{}, fmt.Errorf("%w: axis is for wheels, use local_axis1/2", ErrMisplacedField)
		}
		dim, err := joint.ParseDim(p.Dim)
		if err != nil {
			return joint.JointData{}, err
		}
		data := joint.NewJointData(dim)
		if p.LocalAnchor1 != nil {
			data = data.WithLocalAnchor1(mgl64.Vec3(*p.LocalAnchor1))
		}
		if p.LocalAnchor2 != nil {
			data = data.WithLocalAnchor2(mgl64.Vec3(*p.LocalAnchor2))
		}
		if p.LocalAxis1 != nil {
			data = data.WithLocalAxis1(mgl64.Vec3(*p.LocalAxis1))
		}
		if p.LocalAxis2 != nil {
			data = data.WithLocalAxis2(mgl64.Vec3(*p.LocalAxis2))
		}
		return data, nil
	}
	return joint.JointData{}, fmt.Errorf("%w %q", ErrUnknownArchetype, p.Archetype)
}

func (p Preset) anchors(wheel joint.WheelJoint) joint.WheelJoint {
	if p.LocalAnchor1 != nil {
		wheel = wheel.LocalAnchor1(mgl64.Vec3(*p.LocalAnchor1))
	}
	if p.LocalAnchor2 != nil {
		wheel = wheel.LocalAnchor2(mgl64.Vec3(*p.LocalAnchor2))
	}
	return wheel
}
