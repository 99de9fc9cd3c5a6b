package joint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// yamlFloat keeps every float64 bit pattern through YAML, including -0,
// infinities and NaN.
type yamlFloat float64

func (f yamlFloat) MarshalYAML() (interface{}, error) {
	var s string
	v := float64(f)
	switch {
	case math.IsNaN(v):
		s = ".nan"
	case math.IsInf(v, 1):
		s = ".inf"
	case math.IsInf(v, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
}

func (f *yamlFloat) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("joint: line %d: expected a number", value.Line)
	}
	switch strings.ToLower(value.Value) {
	case ".nan":
		*f = yamlFloat(math.NaN())
		return nil
	case ".inf", "+.inf":
		*f = yamlFloat(math.Inf(1))
		return nil
	case "-.inf":
		*f = yamlFloat(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(value.Value, 64)
	if err != nil {
		return fmt.Errorf("joint: line %d: %w", value.Line, err)
	}
	*f = yamlFloat(v)
	return nil
}

type yamlVec3 [3]yamlFloat

func toYAMLVec3(v mgl64.Vec3) yamlVec3 {
	return yamlVec3{yamlFloat(v[0]), yamlFloat(v[1]), yamlFloat(v[2])}
}

func (v yamlVec3) vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

type motorDoc struct {
	Model     string    `yaml:"model"`
	Target    yamlFloat `yaml:"target"`
	Factor    yamlFloat `yaml:"factor"`
	Stiffness yamlFloat `yaml:"stiffness"`
	Damping   yamlFloat `yaml:"damping"`
}

// jointDoc is the field-for-field YAML form of JointData.
type jointDoc struct {
	Dim          string                  `yaml:"dim"`
	Locked       []string                `yaml:"locked,flow"`
	Limits       map[string][2]yamlFloat `yaml:"limits,omitempty"`
	Motors       map[string]motorDoc     `yaml:"motors,omitempty"`
	LocalAnchor1 yamlVec3                `yaml:"local_anchor1,flow"`
	LocalAnchor2 yamlVec3                `yaml:"local_anchor2,flow"`
	LocalAxis1   yamlVec3                `yaml:"local_axis1,flow"`
	LocalAxis2   yamlVec3                `yaml:"local_axis2,flow"`
}

func (d JointData) MarshalYAML() (interface{}, error) {
	doc := jointDoc{
		Dim:          d.dim.String(),
		Locked:       []string{},
		LocalAnchor1: toYAMLVec3(d.localAnchor1),
		LocalAnchor2: toYAMLVec3(d.localAnchor2),
		LocalAxis1:   toYAMLVec3(d.localAxis1),
		LocalAxis2:   toYAMLVec3(d.localAxis2),
	}
	if extra := (d.locked | d.limited | d.motorized) &^ MaskAll; extra != 0 {
		return nil, fmt.Errorf("joint: cannot encode axes %s", extra)
	}
	for _, axis := range d.locked.Axes() {
		doc.Locked = append(doc.Locked, axis.String())
	}
	if d.limited != 0 {
		doc.Limits = make(map[string][2]yamlFloat, d.limited.Count())
		for _, axis := range d.limited.Axes() {
			l := d.limits[axis]
			doc.Limits[axis.String()] = [2]yamlFloat{yamlFloat(l.Min), yamlFloat(l.Max)}
		}
	}
	if d.motorized != 0 {
		doc.Motors = make(map[string]motorDoc, d.motorized.Count())
		for _, axis := range d.motorized.Axes() {
			m := d.motors[axis]
			doc.Motors[axis.String()] = motorDoc{
				Model:     m.Model.String(),
				Target:    yamlFloat(m.Target),
				Factor:    yamlFloat(m.Factor),
				Stiffness: yamlFloat(m.Stiffness),
				Damping:   yamlFloat(m.Damping),
			}
		}
	}
	return doc, nil
}

func (d *JointData) UnmarshalYAML(value *yaml.Node) error {
	var doc jointDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("joint: decode: %w", err)
	}

	dim, err := ParseDim(doc.Dim)
	if err != nil {
		return err
	}
	out := NewJointData(dim)

	for _, name := range doc.Locked {
		axis, err := ParseJointAxis(name)
		if err != nil {
			return fmt.Errorf("joint: locked: %w", err)
		}
		out = out.LockAxes(axis.Mask())
	}

	var seen JointAxesMask
	for name, l := range doc.Limits {
		axis, err := ParseJointAxis(name)
		if err != nil {
			return fmt.Errorf("joint: limits: %w", err)
		}
		if seen.Contains(axis) {
			return fmt.Errorf("joint: limits: axis %s given twice", axis)
		}
		seen |= axis.Mask()
		out = out.LimitAxis(axis, JointLimits{Min: float64(l[0]), Max: float64(l[1])})
	}

	seen = 0
	for name, m := range doc.Motors {
		axis, err := ParseJointAxis(name)
		if err != nil {
			return fmt.Errorf("joint: motors: %w", err)
		}
		if seen.Contains(axis) {
			return fmt.Errorf("joint: motors: axis %s given twice", axis)
		}
		seen |= axis.Mask()
		model, err := ParseMotorModel(m.Model)
		if err != nil {
			return fmt.Errorf("joint: motors: %s: %w", name, err)
		}
		out = out.setMotor(axis, JointMotor{
			Model:     model,
			Target:    float64(m.Target),
			Factor:    float64(m.Factor),
			Stiffness: float64(m.Stiffness),
			Damping:   float64(m.Damping),
		})
	}

	out = out.
		WithLocalAnchor1(doc.LocalAnchor1.vec3()).
		WithLocalAnchor2(doc.LocalAnchor2.vec3()).
		WithLocalAxis1(doc.LocalAxis1.vec3()).
		WithLocalAxis2(doc.LocalAxis2.vec3())

	*d = out
	return nil
}
