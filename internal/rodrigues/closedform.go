package rodrigues

import "math"

// ClosedForm evaluates the coefficients from their symbolic expressions.
// At theta = 0 the a1, a2, and b_i expressions hit the 0/0 coordinate
// singularity and return NaN; near zero they lose accuracy to subtractive
// cancellation. That behavior is the baseline the other strategies are
// compared against, so it is left unguarded.
type ClosedForm struct{}

// Name returns "direct".
func (ClosedForm) Name() string { return "direct" }

func (ClosedForm) A0(theta float64) float64 { return math.Cos(theta) }

func (ClosedForm) A1(theta float64) float64 { return math.Sin(theta) / theta }

func (ClosedForm) A2(theta float64) float64 {
	return (1 - math.Cos(theta)) / (theta * theta)
}

// Da0 is the symbolic first derivative of a0.
func (ClosedForm) Da0(theta float64) float64 { return -math.Sin(theta) }

// Da1 is the symbolic first derivative of a1.
func (ClosedForm) Da1(theta float64) float64 {
	return (theta*math.Cos(theta) - math.Sin(theta)) / (theta * theta)
}

// Da2 is the symbolic first derivative of a2.
func (ClosedForm) Da2(theta float64) float64 {
	return (theta*math.Sin(theta) + 2*math.Cos(theta) - 2) / math.Pow(theta, 3)
}

// D2a0 is the symbolic second derivative of a0.
func (ClosedForm) D2a0(theta float64) float64 { return -math.Cos(theta) }

// D2a1 is the symbolic second derivative of a1.
func (ClosedForm) D2a1(theta float64) float64 {
	return -((theta*theta-2)*math.Sin(theta) + 2*theta*math.Cos(theta)) / math.Pow(theta, 3)
}

// D2a2 is the symbolic second derivative of a2.
func (ClosedForm) D2a2(theta float64) float64 {
	return ((theta*theta-6)*math.Cos(theta) - 4*theta*math.Sin(theta) + 6) / math.Pow(theta, 4)
}

func (ClosedForm) B0(theta float64) float64 { return -math.Sin(theta) / theta }

func (ClosedForm) B1(theta float64) float64 {
	return (theta*math.Cos(theta) - math.Sin(theta)) / math.Pow(theta, 3)
}

func (ClosedForm) B2(theta float64) float64 {
	return (theta*math.Sin(theta) + 2*math.Cos(theta) - 2) / math.Pow(theta, 4)
}
