package hyperdual

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// floatsEqual compares with a relative tolerance that scales with magnitude,
// falling back to absolute comparison near zero.
func floatsEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= tol
	}
	return diff <= tol*scale
}

// TestHomomorphism_PropertyBased verifies the nilpotent-extension
// homomorphism: applying any supported operation to constant injections and
// projecting the value component must match the ordinary real-valued
// computation, and every perturbation component of the result must be zero.
func TestHomomorphism_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	unary := []struct {
		name string
		hd   func(Number) Number
		real func(float64) float64
		dom  gopter.Gen
	}{
		{"Exp", Exp, math.Exp, gen.Float64Range(-20, 20)},
		{"Log", Log, math.Log, gen.Float64Range(1e-6, 1e6)},
		{"Sin", Sin, math.Sin, gen.Float64Range(-100, 100)},
		{"Cos", Cos, math.Cos, gen.Float64Range(-100, 100)},
		{"Tan", Tan, math.Tan, gen.Float64Range(-1.5, 1.5)},
		{"Asin", Asin, math.Asin, gen.Float64Range(-0.999, 0.999)},
		{"Acos", Acos, math.Acos, gen.Float64Range(-0.999, 0.999)},
		{"Atan", Atan, math.Atan, gen.Float64Range(-100, 100)},
		{"Sqrt", Sqrt, math.Sqrt, gen.Float64Range(1e-6, 1e6)},
		{"Abs", Abs, math.Abs, gen.Float64Range(-100, 100)},
	}

	for _, f := range unary {
		f := f
		properties.Property(f.name+" on a constant projects to the real function", prop.ForAll(
			func(x float64) bool {
				r := f.hd(FromReal(x))
				if r.Eps1() != 0 || r.Eps2() != 0 || r.Eps1Eps2() != 0 {
					return false
				}
				return floatsEqual(r.Real(), f.real(x), 1e-12)
			},
			f.dom,
		))
	}

	properties.Property("Mul on constants projects to real multiplication", prop.ForAll(
		func(a, b float64) bool {
			r := FromReal(a).Mul(FromReal(b))
			return r.Real() == a*b && r.Eps1() == 0 && r.Eps2() == 0 && r.Eps1Eps2() == 0
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("Div on constants projects to real division", prop.ForAll(
		func(a, b float64) bool {
			if math.Abs(b) < 1e-6 {
				b = 1
			}
			r := FromReal(a).Div(FromReal(b))
			return floatsEqual(r.Real(), a/b, 1e-12) &&
				r.Eps1() == 0 && r.Eps2() == 0 && r.Eps1Eps2() == 0
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// genNumber produces hyper-dual numbers with all four components drawn from a
// bounded range.
func genNumber(lo, hi float64) gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(lo, hi), gen.Float64Range(lo, hi),
		gen.Float64Range(lo, hi), gen.Float64Range(lo, hi),
	).Map(func(vs []interface{}) Number {
		return New(vs[0].(float64), vs[1].(float64), vs[2].(float64), vs[3].(float64))
	})
}

// TestLinearity_PropertyBased verifies component-wise exactness of Add/Sub
// over arbitrary operands.
func TestLinearity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every component of a+b is the sum of components", prop.ForAll(
		func(a, b Number) bool {
			s := a.Add(b)
			return s.Real() == a.Real()+b.Real() &&
				s.Eps1() == a.Eps1()+b.Eps1() &&
				s.Eps2() == a.Eps2()+b.Eps2() &&
				s.Eps1Eps2() == a.Eps1Eps2()+b.Eps1Eps2()
		},
		genNumber(-1e6, 1e6), genNumber(-1e6, 1e6),
	))

	properties.Property("every component of a-b is the difference of components", prop.ForAll(
		func(a, b Number) bool {
			d := a.Sub(b)
			return d.Real() == a.Real()-b.Real() &&
				d.Eps1() == a.Eps1()-b.Eps1() &&
				d.Eps2() == a.Eps2()-b.Eps2() &&
				d.Eps1Eps2() == a.Eps1Eps2()-b.Eps1Eps2()
		},
		genNumber(-1e6, 1e6), genNumber(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// TestProductRule_PropertyBased verifies the exact product-rule formulas for
// arbitrary operands; this is pure arithmetic, no tolerance involved.
func TestProductRule_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("(a*b).Eps1 follows the product rule exactly", prop.ForAll(
		func(a, b Number) bool {
			p := a.Mul(b)
			return p.Eps1() == a.Real()*b.Eps1()+a.Eps1()*b.Real() &&
				p.Eps2() == a.Real()*b.Eps2()+a.Eps2()*b.Real()
		},
		genNumber(-1e3, 1e3), genNumber(-1e3, 1e3),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Number) bool {
			ab, ba := a.Mul(b), b.Mul(a)
			// The mixed component sums four products in a different order on
			// each side, so it is compared with a rounding tolerance.
			return ab.Real() == ba.Real() && ab.Eps1() == ba.Eps1() &&
				ab.Eps2() == ba.Eps2() &&
				floatsEqual(ab.Eps1Eps2(), ba.Eps1Eps2(), 1e-12)
		},
		genNumber(-1e3, 1e3), genNumber(-1e3, 1e3),
	))

	properties.TestingRun(t)
}

// TestOrdering_PropertyBased verifies that comparisons depend only on the
// primal value regardless of the perturbation components.
func TestOrdering_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ordering matches float64 ordering of primal values", prop.ForAll(
		func(a, b Number) bool {
			return a.Less(b) == (a.Real() < b.Real()) &&
				a.Greater(b) == (a.Real() > b.Real()) &&
				a.LessOrEqual(b) == (a.Real() <= b.Real()) &&
				a.GreaterOrEqual(b) == (a.Real() >= b.Real()) &&
				a.Equal(b) == (a.Real() == b.Real())
		},
		genNumber(-10, 10), genNumber(-10, 10),
	))

	properties.TestingRun(t)
}
