package joint

import (
	"fmt"
	"math/bits"
	"strings"
)

// Dim is the dimensionality a JointData is built for.
// The zero value is Dim3.
type Dim uint8

const (
	Dim3 Dim = iota
	Dim2
)

// Axes returns the axes that exist in this dimensionality.
func (d Dim) Axes() JointAxesMask {
	if d == Dim2 {
		return MaskLinX | MaskLinY | MaskAngX
	}
	return MaskAll
}

func (d Dim) String() string {
	switch d {
	case Dim3:
		return "3d"
	case Dim2:
		return "2d"
	}
	return fmt.Sprintf("Dim(%d)", uint8(d))
}

func ParseDim(s string) (Dim, error) {
	switch strings.ToLower(s) {
	case "3d", "":
		return Dim3, nil
	case "2d":
		return Dim2, nil
	}
	return 0, fmt.Errorf("joint: unknown dimensionality %q", s)
}

// JointAxis identifies one degree of freedom between two jointed bodies.
// In 2D only LinX, LinY and AngX are used.
type JointAxis uint8

const (
	LinX JointAxis = iota
	LinY
	LinZ
	AngX
	AngY
	AngZ

	numAxes = 6
)

var axisNames = [numAxes]string{"lin_x", "lin_y", "lin_z", "ang_x", "ang_y", "ang_z"}

func (a JointAxis) IsLinear() bool {
	return a <= LinZ
}

func (a JointAxis) IsAngular() bool {
	return a >= AngX && a < numAxes
}

func (a JointAxis) Mask() JointAxesMask {
	return 1 << a
}

func (a JointAxis) String() string {
	if a < numAxes {
		return axisNames[a]
	}
	return fmt.Sprintf("JointAxis(%d)", uint8(a))
}

func ParseJointAxis(s string) (JointAxis, error) {
	s = strings.ToLower(s)
	for i, name := range axisNames {
		if name == s {
			return JointAxis(i), nil
		}
	}
	return 0, fmt.Errorf("joint: unknown axis %q", s)
}

// JointAxesMask is a set of joint axes.
type JointAxesMask uint8

const (
	MaskLinX JointAxesMask = 1 << LinX
	MaskLinY JointAxesMask = 1 << LinY
	MaskLinZ JointAxesMask = 1 << LinZ
	MaskAngX JointAxesMask = 1 << AngX
	MaskAngY JointAxesMask = 1 << AngY
	MaskAngZ JointAxesMask = 1 << AngZ

	MaskLinAxes = MaskLinX | MaskLinY | MaskLinZ
	MaskAngAxes = MaskAngX | MaskAngY | MaskAngZ
	MaskAll     = MaskLinAxes | MaskAngAxes
)

func (m JointAxesMask) Union(other JointAxesMask) JointAxesMask {
	return m | other
}

func (m JointAxesMask) Without(other JointAxesMask) JointAxesMask {
	return m &^ other
}

func (m JointAxesMask) Contains(axis JointAxis) bool {
	return m&axis.Mask() != 0
}

func (m JointAxesMask) ContainsAll(other JointAxesMask) bool {
	return m&other == other
}

func (m JointAxesMask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Axes lists the members in ascending axis order. Bits above AngZ are skipped.
func (m JointAxesMask) Axes() []JointAxis {
	axes := make([]JointAxis, 0, numAxes)
	for a := LinX; a < numAxes; a++ {
		if m.Contains(a) {
			axes = append(axes, a)
		}
	}
	return axes
}

func (m JointAxesMask) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, a := range m.Axes() {
		names = append(names, a.String())
	}
	if extra := m &^ MaskAll; extra != 0 {
		names = append(names, fmt.Sprintf("0x%02x", uint8(extra)))
	}
	return strings.Join(names, "|")
}
