package fk20

import (
	"errors"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/polynomial"
	"github.com/dasguild/peerdas-kzg/serialization"
)

// NaiveMultiOpen is a reference oracle for ComputeMultiOpeningProofs,
// computing the same FK20 proof for a single coset directly: interpolate
// the coset's points, synthetically divide out the coset's vanishing
// polynomial, and commit the quotient. It exists only to cross-check the
// FFT-based fast path in tests, never on the hot path — it is one Lagrange
// interpolation plus one O(n*m) polynomial division per coset.
func NaiveMultiOpen(commitKey []bls.G1Affine, poly polynomial.Coeff, cosetIndex int) (bls.G1Affine, error) {
	extendedDomain, err := domain.New(serialization.FieldElementsPerExtBlob)
	if err != nil {
		return bls.G1Affine{}, err
	}

	cosetSize := serialization.FieldElementsPerCell

	// Recover the coset's evaluation points as a bit-reversed contiguous
	// slice of the extended domain's roots of unity, mirroring the fast
	// path's coset chunking.
	allRoots := make([]bls.Scalar, extendedDomain.Size)
	var cur bls.Scalar
	cur.SetOne()
	for i := range allRoots {
		allRoots[i] = cur
		cur.Mul(&cur, &extendedDomain.Generator)
	}
	domain.Permute(allRoots)

	points := allRoots[cosetIndex*cosetSize : (cosetIndex+1)*cosetSize]

	padded := make([]bls.Scalar, serialization.FieldElementsPerBlob)
	copy(padded, poly)
	ys := make([]bls.Scalar, cosetSize)
	for i, x := range points {
		ys[i] = polynomial.Coeff(padded).Eval(&x)
	}

	interp := polynomial.LagrangeInterpolate(points, ys)
	numerator := polynomial.Sub(polynomial.Coeff(padded), interp)
	vanishing := polynomial.VanishingPoly(points)

	quotient, rem := syntheticDivide(numerator, vanishing)
	if rem.Degree() != -1 {
		return bls.G1Affine{}, ErrNonVanishingRemainder
	}

	prover, err := NewProver(commitKey, 0)
	if err != nil {
		return bls.G1Affine{}, err
	}
	return prover.CommitPoly(quotient)
}

// syntheticDivide divides numerator by divisor, returning quotient and
// remainder, assuming divisor is monic (as VanishingPoly always produces).
func syntheticDivide(numerator, divisor polynomial.Coeff) (quotient, remainder polynomial.Coeff) {
	rem := append(polynomial.Coeff(nil), numerator...)
	d := divisor.Degree()
	n := rem.Degree()
	if n < d {
		return polynomial.Coeff{}, rem
	}

	quotient = make(polynomial.Coeff, n-d+1)
	for i := n; i >= d; i-- {
		if i >= len(rem) {
			continue
		}
		coeff := rem[i]
		if coeff.IsZero() {
			continue
		}
		quotient[i-d] = coeff
		for j := 0; j <= d; j++ {
			var term bls.Scalar
			term.Mul(&coeff, &divisor[j])
			rem[i-d+j].Sub(&rem[i-d+j], &term)
		}
	}
	return quotient, rem[:d]
}

var ErrNonVanishingRemainder = errors.New("fk20: numerator does not vanish on the coset (not a multiple of the vanishing polynomial)")
