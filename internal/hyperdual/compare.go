package hyperdual

// Ordering and equality compare the primal value component only; perturbation
// components are ignored. Ordering is a primal-value concept: two numbers
// representing the same function value compare equal no matter what
// derivative information they carry. The ...Real variants compare against a
// plain scalar, which behaves exactly like comparing against FromReal(s).

// Less reports whether x.Real() < y.Real().
func (x Number) Less(y Number) bool { return x.f0 < y.f0 }

// LessReal reports whether x.Real() < s.
func (x Number) LessReal(s float64) bool { return x.f0 < s }

// LessOrEqual reports whether x.Real() <= y.Real().
func (x Number) LessOrEqual(y Number) bool { return x.f0 <= y.f0 }

// LessOrEqualReal reports whether x.Real() <= s.
func (x Number) LessOrEqualReal(s float64) bool { return x.f0 <= s }

// Greater reports whether x.Real() > y.Real().
func (x Number) Greater(y Number) bool { return x.f0 > y.f0 }

// GreaterReal reports whether x.Real() > s.
func (x Number) GreaterReal(s float64) bool { return x.f0 > s }

// GreaterOrEqual reports whether x.Real() >= y.Real().
func (x Number) GreaterOrEqual(y Number) bool { return x.f0 >= y.f0 }

// GreaterOrEqualReal reports whether x.Real() >= s.
func (x Number) GreaterOrEqualReal(s float64) bool { return x.f0 >= s }

// Equal reports whether x.Real() == y.Real(). Note that == on Number values
// themselves compares all four components; use Equal for the primal-value
// semantics.
func (x Number) Equal(y Number) bool { return x.f0 == y.f0 }

// EqualReal reports whether x.Real() == s.
func (x Number) EqualReal(s float64) bool { return x.f0 == s }

// NotEqual reports whether x.Real() != y.Real().
func (x Number) NotEqual(y Number) bool { return x.f0 != y.f0 }

// NotEqualReal reports whether x.Real() != s.
func (x Number) NotEqualReal(s float64) bool { return x.f0 != s }
