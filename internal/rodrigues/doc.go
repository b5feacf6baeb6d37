// Package rodrigues evaluates the trigonometric coefficients of the Rodrigues
// rotation formula and their derivative-derived companions:
//
//	a0(θ) = cos θ
//	a1(θ) = sin θ / θ
//	a2(θ) = (1 − cos θ) / θ²
//	b_i(θ) = (1/θ) · d a_i(θ)/dθ
//
// Three evaluation strategies are provided behind the Evaluator interface so
// their accuracy near the θ = 0 coordinate singularity can be compared:
// closed-form symbolic expressions ("direct"), a truncated Taylor expansion
// ("series"), and hyper-dual automatic differentiation ("hyperdual").
package rodrigues
