package hyperdual

// Addition and subtraction are component-wise and exact: differentiation is
// linear, so no truncation enters.

// Add returns x + y.
func (x Number) Add(y Number) Number {
	return Number{x.f0 + y.f0, x.f1 + y.f1, x.f2 + y.f2, x.f12 + y.f12}
}

// AddReal returns x + s, treating s as the constant injection FromReal(s).
func (x Number) AddReal(s float64) Number {
	return Number{x.f0 + s, x.f1, x.f2, x.f12}
}

// Sub returns x - y.
func (x Number) Sub(y Number) Number {
	return Number{x.f0 - y.f0, x.f1 - y.f1, x.f2 - y.f2, x.f12 - y.f12}
}

// SubReal returns x - s.
func (x Number) SubReal(s float64) Number {
	return Number{x.f0 - s, x.f1, x.f2, x.f12}
}

// Mul returns x * y following the exact product rule: the first-order
// components obey bilinearity and the mixed component collects both cross
// terms plus the propagated mixed terms of the operands.
func (x Number) Mul(y Number) Number {
	return Number{
		f0:  x.f0 * y.f0,
		f1:  x.f0*y.f1 + x.f1*y.f0,
		f2:  x.f0*y.f2 + x.f2*y.f0,
		f12: x.f0*y.f12 + x.f1*y.f2 + x.f2*y.f1 + x.f12*y.f0,
	}
}

// MulReal returns x * s: every component scales by s.
func (x Number) MulReal(s float64) Number {
	return Number{x.f0 * s, x.f1 * s, x.f2 * s, x.f12 * s}
}

// Div returns x / y, computed as x * Pow(y, -1). Routing through Pow means a
// divisor whose primal value sits inside the Pow tolerance gets the same
// signed-tolerance derivative substitution as any other power; a divisor with
// a true zero primal value outside that guarded path propagates infinities or
// NaNs per ordinary floating-point semantics.
func (x Number) Div(y Number) Number {
	return x.Mul(Pow(y, -1))
}

// DivReal returns x / s by scaling every component with 1/s.
func (x Number) DivReal(s float64) Number {
	inv := 1 / s
	return Number{x.f0 * inv, x.f1 * inv, x.f2 * inv, x.f12 * inv}
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{-x.f0, -x.f1, -x.f2, -x.f12}
}
