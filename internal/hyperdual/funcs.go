package hyperdual

import "math"

// DerivTolerance is the threshold below which Pow substitutes a signed
// tolerance for the primal value inside its derivative coefficients. The
// substitution applies only to the derivative formulas; the returned value
// component always uses the true input. This keeps power derivatives finite
// across removable singularities (x → 0 with positive exponent) without
// perturbing the function value.
const DerivTolerance = 1e-15

// Pow returns x raised to the real exponent a.
//
// When |x.Real()| < DerivTolerance the derivative coefficients a·x^(a-1) and
// a·(a-1)·x^(a-2) are evaluated at ±DerivTolerance instead (sign of the primal
// value, zero treated as non-negative), while the value component is
// math.Pow of the unmodified primal value.
func Pow(x Number, a float64) Number {
	xval := x.f0
	if math.Abs(xval) < DerivTolerance {
		if xval >= 0 {
			xval = DerivTolerance
		} else {
			xval = -DerivTolerance
		}
	}
	deriv := a * math.Pow(xval, a-1)
	return Number{
		f0:  math.Pow(x.f0, a),
		f1:  x.f1 * deriv,
		f2:  x.f2 * deriv,
		f12: x.f12*deriv + a*(a-1)*x.f1*x.f2*math.Pow(xval, a-2),
	}
}

// PowNumber returns x raised to a hyper-dual exponent, defined as
// Exp(a * Log(x)).
func PowNumber(x, a Number) Number {
	return Exp(a.Mul(Log(x)))
}

// Exp returns e**x.
func Exp(x Number) Number {
	deriv := math.Exp(x.f0)
	return Number{
		f0:  deriv,
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv * (x.f12 + x.f1*x.f2),
	}
}

// Log returns the natural logarithm of x.
func Log(x Number) Number {
	deriv1 := x.f1 / x.f0
	deriv2 := x.f2 / x.f0
	return Number{
		f0:  math.Log(x.f0),
		f1:  deriv1,
		f2:  deriv2,
		f12: x.f12/x.f0 - deriv1*deriv2,
	}
}

// Sin returns the sine of x.
func Sin(x Number) Number {
	funval := math.Sin(x.f0)
	deriv := math.Cos(x.f0)
	return Number{
		f0:  funval,
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 - funval*x.f1*x.f2,
	}
}

// Cos returns the cosine of x.
func Cos(x Number) Number {
	funval := math.Cos(x.f0)
	deriv := -math.Sin(x.f0)
	return Number{
		f0:  funval,
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 - funval*x.f1*x.f2,
	}
}

// Tan returns the tangent of x.
func Tan(x Number) Number {
	funval := math.Tan(x.f0)
	deriv := funval*funval + 1
	return Number{
		f0:  funval,
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 + x.f1*x.f2*(2*funval*deriv),
	}
}

// Asin returns the arcsine of x.
func Asin(x Number) Number {
	deriv1 := 1 - x.f0*x.f0
	deriv := 1 / math.Sqrt(deriv1)
	return Number{
		f0:  math.Asin(x.f0),
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 + x.f1*x.f2*(x.f0*math.Pow(deriv1, -1.5)),
	}
}

// Acos returns the arccosine of x.
func Acos(x Number) Number {
	deriv1 := 1 - x.f0*x.f0
	deriv := -1 / math.Sqrt(deriv1)
	return Number{
		f0:  math.Acos(x.f0),
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 + x.f1*x.f2*(-x.f0*math.Pow(deriv1, -1.5)),
	}
}

// Atan returns the arctangent of x.
func Atan(x Number) Number {
	deriv1 := 1 + x.f0*x.f0
	deriv := 1 / deriv1
	return Number{
		f0:  math.Atan(x.f0),
		f1:  deriv * x.f1,
		f2:  deriv * x.f2,
		f12: deriv*x.f12 + x.f1*x.f2*(-2*x.f0/(deriv1*deriv1)),
	}
}

// Sqrt returns the square root of x, defined as Pow(x, 0.5) so that it shares
// the tolerance-guarded derivative behavior near zero.
func Sqrt(x Number) Number {
	return Pow(x, 0.5)
}

// Abs branches on the sign of the primal value only: it returns x.Neg() when
// x.Real() < 0 and x otherwise. The derivative therefore flips sign exactly
// where the real absolute value has its kink, matching ordinary calculus
// convention away from zero.
func Abs(x Number) Number {
	if x.LessReal(0) {
		return x.Neg()
	}
	return x
}

// Max returns whichever argument has the larger primal value; the chosen
// number is returned whole, perturbation components included, so the result's
// derivative is that of the selected branch. The comparison is strict
// (x.Greater(y)), so a primal tie returns the second argument.
func Max(x, y Number) Number {
	if x.Greater(y) {
		return x
	}
	return y
}

// Min returns whichever argument has the smaller primal value, whole. The
// comparison is strict (x.Less(y)), so a primal tie returns the second
// argument. Scalar operands promote with FromReal.
func Min(x, y Number) Number {
	if x.Less(y) {
		return x
	}
	return y
}
