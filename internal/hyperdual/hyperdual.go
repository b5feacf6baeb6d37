package hyperdual

import "fmt"

// Number is a hyper-dual number over float64. The zero value is the additive
// identity (all four components zero). Numbers are immutable; operations
// return new values.
type Number struct {
	f0  float64 // primal function value
	f1  float64 // coefficient of the first perturbation direction
	f2  float64 // coefficient of the second perturbation direction
	f12 float64 // coefficient of the mixed (second-order) term
}

// New builds a Number with all four components set explicitly. Callers use it
// to seed directional perturbations, typically New(x, h1, h2, 0).
func New(value, eps1, eps2, eps1eps2 float64) Number {
	return Number{f0: value, f1: eps1, f2: eps2, f12: eps1eps2}
}

// FromReal injects a plain float64 as a constant: the value component is set
// and every perturbation component is zero. Projecting any operation over
// constants back to the value component reproduces the ordinary real-valued
// computation exactly.
func FromReal(value float64) Number {
	return Number{f0: value}
}

// Real returns the primal value component.
func (x Number) Real() float64 { return x.f0 }

// Eps1 returns the coefficient of the first perturbation direction.
func (x Number) Eps1() float64 { return x.f1 }

// Eps2 returns the coefficient of the second perturbation direction.
func (x Number) Eps2() float64 { return x.f2 }

// Eps1Eps2 returns the coefficient of the mixed second-order term.
func (x Number) Eps1Eps2() float64 { return x.f12 }

// String renders all four components in fixed order for diagnostics. The
// format is not machine-parseable and carries no round-trip guarantee.
func (x Number) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", x.f0, x.f1, x.f2, x.f12)
}
