package joint

import "math"

type Constrainer interface {
	PreStep(dt float64)
	ApplyCachedImpulse(dt_coef float64)
	ApplyImpulse(dt float64)
	GetImpulse() float64
}

type ConstraintPreSolveFunc func(*Constraint, *Space)
type ConstraintPostSolveFunc func(*Constraint, *Space)

type Constraint struct {
	Class Constrainer
	space *Space

	a, b *Body

	maxForce, errorBias, maxBias float64

	PreSolve  ConstraintPreSolveFunc
	PostSolve ConstraintPostSolveFunc

	UserData interface{}
}

func NewConstraint(class Constrainer, a, b *Body) *Constraint {
	return &Constraint{
		Class: class,
		a:     a,
		b:     b,

		maxForce:  INFINITY,
		errorBias: math.Pow(1.0-0.1, 60.0),
		maxBias:   INFINITY,
	}
}

func (c *Constraint) BodyA() *Body {
	return c.a
}

func (c *Constraint) BodyB() *Body {
	return c.b
}

func (c Constraint) MaxForce() float64 {
	return c.maxForce
}

func (c *Constraint) SetMaxForce(max float64) {
	assertf(max >= 0.0, "Must be positive")
	c.maxForce = max
}

func (c Constraint) MaxBias() float64 {
	return c.maxBias
}

func (c *Constraint) SetMaxBias(max float64) {
	assertf(max >= 0, "Must be positive")
	c.maxBias = max
}

func (c Constraint) ErrorBias() float64 {
	return c.errorBias
}

// SetErrorBias sets the fraction of joint error left uncorrected after one
// second. Defaults to 10% left per 1/60th of a second.
func (c *Constraint) SetErrorBias(errorBias float64) {
	assertf(errorBias >= 0, "Must be positive")
	c.errorBias = errorBias
}

func bias_coef(errorBias, dt float64) float64 {
	return 1.0 - math.Pow(errorBias, dt)
}
