package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BytesPerG2 is the compressed wire length of a G2 point.
const BytesPerG2 = bls12381.SizeOfG2AffineCompressed

// G2Affine is a BLS12-381 G2 point in affine coordinates.
type G2Affine = bls12381.G2Affine

// G2Jac is a BLS12-381 G2 point in Jacobian coordinates.
type G2Jac = bls12381.G2Jac

// G2Generator returns the standard BLS12-381 G2 generator.
func G2Generator() G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// G2FromCompressed decodes a 96-byte compressed G2 point, checking that it
// lies on the curve and in the correct subgroup.
func G2FromCompressed(b []byte) (G2Affine, error) {
	var p G2Affine
	if len(b) != BytesPerG2 {
		return p, ErrPointInvalidLength
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, ErrPointNotOnCurveOrSubgroup
	}
	return p, nil
}

// G2ToCompressed encodes p in 96-byte compressed form.
func G2ToCompressed(p *G2Affine) []byte {
	b := p.Bytes()
	return b[:]
}

// G2ScalarMul returns s*p.
func G2ScalarMul(p *G2Affine, s *Scalar) G2Affine {
	var bi big.Int
	s.BigInt(&bi)
	var r G2Affine
	r.ScalarMultiplication(p, &bi)
	return r
}

// G2Sub returns a-b as an affine point.
func G2Sub(a, b *G2Affine) G2Affine {
	var jb G2Jac
	jb.FromAffine(b)
	jb.Neg(&jb)
	var ja G2Jac
	ja.FromAffine(a)
	ja.AddAssign(&jb)
	var r G2Affine
	r.FromJacobian(&ja)
	return r
}
