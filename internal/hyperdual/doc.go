// Package hyperdual implements hyper-dual numbers: four-component values that
// carry a function value together with exact first- and second-order
// directional derivative information through arithmetic and the elementary
// transcendental functions.
//
// A Number holds (value, eps1, eps2, eps1eps2) where eps1 and eps2 are the
// coefficients of two independent nilpotent perturbation directions and
// eps1eps2 is the coefficient of their product. Every operation propagates
// these components by the exact chain rule, so derivative extraction suffers
// none of the subtractive cancellation of finite differences.
//
// # Seeding convention
//
// To differentiate a function f at x, seed the input as
//
//	xhat := hyperdual.New(x, h1, h2, 0)
//
// with two small step sizes h1 and h2 (they may be equal), evaluate f on xhat,
// and recover
//
//	f'(x)  = f(xhat).Eps1() / h1        (equivalently Eps2()/h2)
//	f''(x) = f(xhat).Eps1Eps2() / (h1*h2)
//
// Using unequal h1 and h2 without adjusting the final division corrupts only
// the second-derivative estimate, never the first; document the steps you
// seeded wherever results are divided out.
//
// Numbers are immutable values. All operations are pure functions of their
// operands, so expressions over independent inputs may be evaluated
// concurrently without coordination.
package hyperdual
