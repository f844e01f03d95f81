// Package polynomial implements monomial-basis polynomial primitives over
// the BLS12-381 scalar field: arithmetic, Horner evaluation, Lagrange
// interpolation, and vanishing-polynomial construction.
package polynomial

import "github.com/dasguild/peerdas-kzg/bls"

// Coeff is a polynomial in monomial form, coeffs[i] being the coefficient of
// x^i. The zero polynomial is represented by a nil or empty slice.
type Coeff []bls.Scalar

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Coeff) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x using Horner's method.
func (p Coeff) Eval(x *bls.Scalar) bls.Scalar {
	var result bls.Scalar
	for i := len(p) - 1; i >= 0; i-- {
		result.Mul(&result, x)
		result.Add(&result, &p[i])
	}
	return result
}

// Add returns p+q.
func Add(p, q Coeff) Coeff {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Coeff, n)
	for i := 0; i < n; i++ {
		var a, b bls.Scalar
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Add(&a, &b)
	}
	return out
}

// Neg returns -p.
func Neg(p Coeff) Coeff {
	out := make(Coeff, len(p))
	for i := range p {
		out[i].Neg(&p[i])
	}
	return out
}

// Sub returns p-q.
func Sub(p, q Coeff) Coeff {
	return Add(p, Neg(q))
}

// Mul returns the naive O(n*m) product of p and q.
func Mul(p, q Coeff) Coeff {
	if len(p) == 0 || len(q) == 0 {
		return Coeff{}
	}
	out := make(Coeff, len(p)+len(q)-1)
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range q {
			var term bls.Scalar
			term.Mul(&p[i], &q[j])
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return out
}

// VanishingPoly returns the monic polynomial prod(x - r) for r in roots.
func VanishingPoly(roots []bls.Scalar) Coeff {
	result := Coeff{one()}
	for i := range roots {
		var negRoot bls.Scalar
		negRoot.Neg(&roots[i])
		factor := Coeff{negRoot, one()} // (x - r)
		result = Mul(result, factor)
	}
	return result
}

// LagrangeInterpolate returns the unique minimal-degree polynomial through
// the given (x, y) points via classical O(n^2) Lagrange interpolation. Used
// only in tests and the naive reference prover (fk20.NaiveMultiOpen); the
// hot paths use FFT interpolation instead.
func LagrangeInterpolate(xs, ys []bls.Scalar) Coeff {
	n := len(xs)
	result := make(Coeff, n)

	for i := 0; i < n; i++ {
		// Build the i-th Lagrange basis polynomial scaled by y_i:
		// y_i * prod_{j != i} (x - x_j) / (x_i - x_j).
		numerator := Coeff{one()}
		denom := one()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var negXj bls.Scalar
			negXj.Neg(&xs[j])
			numerator = Mul(numerator, Coeff{negXj, one()})

			var diff bls.Scalar
			diff.Sub(&xs[i], &xs[j])
			denom.Mul(&denom, &diff)
		}
		var invDenom bls.Scalar
		invDenom.Inverse(&denom)
		var scale bls.Scalar
		scale.Mul(&ys[i], &invDenom)

		for k := range numerator {
			var term bls.Scalar
			term.Mul(&numerator[k], &scale)
			if k < len(result) {
				result[k].Add(&result[k], &term)
			}
		}
	}
	return result
}

func one() bls.Scalar {
	var s bls.Scalar
	s.SetOne()
	return s
}
