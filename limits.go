package joint

// JointLimits bounds an axis to [Min, Max]. Min == Max pins the axis.
// Ordering is not checked here, see JointData.Validate.
type JointLimits struct {
	Min, Max float64
}

func (l JointLimits) Width() float64 {
	return l.Max - l.Min
}

func (l JointLimits) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}
