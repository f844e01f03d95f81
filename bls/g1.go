package bls

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BytesPerG1 is the compressed wire length of a G1 point.
const BytesPerG1 = bls12381.SizeOfG1AffineCompressed

// G1Affine is a BLS12-381 G1 point in affine coordinates.
type G1Affine = bls12381.G1Affine

// G1Jac is a BLS12-381 G1 point in Jacobian coordinates, the accumulator
// form used for sums of many points.
type G1Jac = bls12381.G1Jac

// G1Generator returns the standard BLS12-381 G1 generator.
func G1Generator() G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// G1Identity returns the G1 point at infinity.
func G1Identity() G1Affine {
	var p G1Affine
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// IsG1Identity reports whether p is the point at infinity.
func IsG1Identity(p *G1Affine) bool {
	return p.IsInfinity()
}

// G1FromCompressed decodes a 48-byte compressed G1 point, checking that it
// lies on the curve and in the correct subgroup.
func G1FromCompressed(b []byte) (G1Affine, error) {
	var p G1Affine
	if len(b) != BytesPerG1 {
		return p, ErrPointInvalidLength
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, ErrPointNotOnCurveOrSubgroup
	}
	return p, nil
}

// G1ToCompressed encodes p in 48-byte compressed form.
func G1ToCompressed(p *G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

// G1Add returns a+b as an affine point.
func G1Add(a, b *G1Affine) G1Affine {
	var ja, jb, jr G1Jac
	ja.FromAffine(a)
	jb.FromAffine(b)
	jr.Set(&ja).AddAssign(&jb)
	var r G1Affine
	r.FromJacobian(&jr)
	return r
}

// G1Neg returns -p.
func G1Neg(p *G1Affine) G1Affine {
	var r G1Affine
	r.Neg(p)
	return r
}

// G1Sub returns a-b as an affine point.
func G1Sub(a, b *G1Affine) G1Affine {
	neg := G1Neg(b)
	return G1Add(a, &neg)
}

// G1ScalarMul returns s*p.
func G1ScalarMul(p *G1Affine, s *Scalar) G1Affine {
	var bi big.Int
	s.BigInt(&bi)
	var r G1Affine
	r.ScalarMultiplication(p, &bi)
	return r
}

// G1BatchNormalize converts a slice of Jacobian points to affine form in one
// batched-inversion pass, delegating to the underlying curve library.
func G1BatchNormalize(pts []G1Jac) []G1Affine {
	return bls12381.BatchJacobianToAffineG1(pts)
}

// G1MultiExp computes sum(scalars[i] * points[i]) via the underlying
// curve library's generic multi-exponentiation, after filtering out any
// identity bases (some MSM implementations silently zero the whole sum if
// any input point is the identity).
func G1MultiExp(points []G1Affine, scalars []fr.Element) (G1Jac, error) {
	if len(points) != len(scalars) {
		return G1Jac{}, errors.New("length mismatch between points and scalars")
	}
	filteredPoints := make([]G1Affine, 0, len(points))
	filteredScalars := make([]fr.Element, 0, len(scalars))
	for i := range points {
		if IsG1Identity(&points[i]) {
			continue
		}
		filteredPoints = append(filteredPoints, points[i])
		filteredScalars = append(filteredScalars, scalars[i])
	}
	var result G1Jac
	if len(filteredPoints) == 0 {
		return result, nil
	}
	if _, err := result.MultiExp(filteredPoints, filteredScalars, ecc.MultiExpConfig{}); err != nil {
		return G1Jac{}, err
	}
	return result, nil
}
