package rodrigues

import (
	"github.com/agbru/rotcoef/internal/hyperdual"
)

// DefaultStep is the default perturbation step seeded into both hyper-dual
// directions.
const DefaultStep = 1e-10

// AutoDiff evaluates the coefficients through hyper-dual arithmetic: the
// angle is seeded as (θ, h1, h2, 0), the closed-form a_i expressions are
// evaluated over hyper-dual numbers, and the derivatives needed for the b_i
// coefficients come out of the perturbation components with the steps divided
// back out. The coefficient values themselves use the plain closed forms; the
// hyper-dual machinery only supplies derivatives.
type AutoDiff struct {
	h1, h2 float64

	direct ClosedForm
}

// NewAutoDiff creates a hyper-dual evaluator with DefaultStep in both
// directions.
func NewAutoDiff() *AutoDiff {
	return &AutoDiff{h1: DefaultStep, h2: DefaultStep}
}

// Name returns "hyperdual".
func (*AutoDiff) Name() string { return "hyperdual" }

// SetSteps replaces both perturbation steps. The second-derivative extraction
// divides by h1*h2, so unequal steps are legal but must stay consistent with
// any external derivative post-processing.
func (a *AutoDiff) SetSteps(h1, h2 float64) {
	a.h1, a.h2 = h1, h2
}

// Steps returns the current perturbation steps.
func (a *AutoDiff) Steps() (h1, h2 float64) { return a.h1, a.h2 }

func (a *AutoDiff) A0(theta float64) float64 { return a.direct.A0(theta) }
func (a *AutoDiff) A1(theta float64) float64 { return a.direct.A1(theta) }
func (a *AutoDiff) A2(theta float64) float64 { return a.direct.A2(theta) }

// Da0 extracts the first derivative of a0 from the hyper-dual evaluation.
func (a *AutoDiff) Da0(theta float64) float64 { return a.a0hat(theta).Eps1() / a.h1 }

// Da1 extracts the first derivative of a1.
func (a *AutoDiff) Da1(theta float64) float64 { return a.a1hat(theta).Eps1() / a.h1 }

// Da2 extracts the first derivative of a2.
func (a *AutoDiff) Da2(theta float64) float64 { return a.a2hat(theta).Eps1() / a.h1 }

// D2a0 extracts the second derivative of a0.
func (a *AutoDiff) D2a0(theta float64) float64 {
	return a.a0hat(theta).Eps1Eps2() / (a.h1 * a.h2)
}

// D2a1 extracts the second derivative of a1.
func (a *AutoDiff) D2a1(theta float64) float64 {
	return a.a1hat(theta).Eps1Eps2() / (a.h1 * a.h2)
}

// D2a2 extracts the second derivative of a2.
func (a *AutoDiff) D2a2(theta float64) float64 {
	return a.a2hat(theta).Eps1Eps2() / (a.h1 * a.h2)
}

func (a *AutoDiff) B0(theta float64) float64 { return a.Da0(theta) / theta }
func (a *AutoDiff) B1(theta float64) float64 { return a.Da1(theta) / theta }
func (a *AutoDiff) B2(theta float64) float64 { return a.Da2(theta) / theta }

// seed builds the perturbed angle (θ, h1, h2, 0).
func (a *AutoDiff) seed(theta float64) hyperdual.Number {
	return hyperdual.New(theta, a.h1, a.h2, 0)
}

func (a *AutoDiff) a0hat(theta float64) hyperdual.Number {
	return hyperdual.Cos(a.seed(theta))
}

func (a *AutoDiff) a1hat(theta float64) hyperdual.Number {
	thetaHat := a.seed(theta)
	return hyperdual.Sin(thetaHat).Div(thetaHat)
}

func (a *AutoDiff) a2hat(theta float64) hyperdual.Number {
	thetaHat := a.seed(theta)
	return hyperdual.FromReal(1).Sub(hyperdual.Cos(thetaHat)).
		Div(hyperdual.Pow(thetaHat, 2))
}
