package kzg

import (
	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/polynomial"
	"github.com/dasguild/peerdas-kzg/serialization"
	"github.com/dasguild/peerdas-kzg/verify"
)

// ComputeKZGProof computes the single-point opening proof for a blob at an
// arbitrary evaluation point z, returning the proof and f(z).
func (c *Context) ComputeKZGProof(blob []byte, z bls.Scalar) (proof []byte, y []byte, err error) {
	prover, err := c.requireProver()
	if err != nil {
		return nil, nil, err
	}
	scalars, err := serialization.ParseBlob(blob)
	if err != nil {
		return nil, nil, err
	}
	poly, err := prover.DataToPoly(scalars)
	if err != nil {
		return nil, nil, err
	}

	yScalar := poly.Eval(&z)
	quotient := divideByLinear(poly, z, yScalar)

	proofPoint, err := prover.CommitPoly(quotient)
	if err != nil {
		return nil, nil, err
	}

	return bls.G1ToCompressed(&proofPoint), bls.ScalarToCanonicalBytes(&yScalar), nil
}

// VerifyKZGProof checks a single-point opening proof: commitment, the
// evaluation point z, the claimed value y, and the proof.
func (c *Context) VerifyKZGProof(commitmentBytes []byte, z, y bls.Scalar, proofBytes []byte) (bool, error) {
	commitment, err := serialization.ParseCommitment(commitmentBytes)
	if err != nil {
		return false, err
	}
	proof, err := serialization.ParseProof(proofBytes)
	if err != nil {
		return false, err
	}
	return c.verifySinglePoint(commitment, z, y, proof)
}

func (c *Context) verifySinglePoint(commitment bls.G1Affine, z, y bls.Scalar, proof bls.G1Affine) (bool, error) {
	gen := bls.G1Generator()
	yG1 := bls.G1ScalarMul(&gen, &y)
	lhs := bls.G1Sub(&commitment, &yG1)

	zG2 := bls.G2ScalarMul(&c.g2Gen, &z)
	rhsG2 := bls.G2Sub(&c.g2Tau, &zG2)

	var negProof bls.G1Affine
	negProof.Neg(&proof)

	ok, err := bls.PairingCheck([]bls.G1Affine{lhs, negProof}, []bls.G2Affine{c.g2Gen, rhsG2})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, verify.ErrInvalidProof
	}
	return true, nil
}

// ComputeBlobKZGProof computes the blob-level opening proof: the evaluation
// point is derived from the blob and its commitment via Fiat-Shamir, rather
// than chosen by the caller.
func (c *Context) ComputeBlobKZGProof(blob []byte, commitmentBytes []byte) ([]byte, error) {
	commitment, err := serialization.ParseCommitment(commitmentBytes)
	if err != nil {
		return nil, err
	}
	z := deriveBlobChallenge(blob, commitment)
	proof, _, err := c.ComputeKZGProof(blob, z)
	return proof, err
}

// VerifyBlobKZGProof verifies a single blob-level opening proof.
func (c *Context) VerifyBlobKZGProof(blob []byte, commitmentBytes, proofBytes []byte) (bool, error) {
	commitment, err := serialization.ParseCommitment(commitmentBytes)
	if err != nil {
		return false, err
	}
	proof, err := serialization.ParseProof(proofBytes)
	if err != nil {
		return false, err
	}
	scalars, err := serialization.ParseBlob(blob)
	if err != nil {
		return false, err
	}

	z := deriveBlobChallenge(blob, commitment)
	y, err := c.evalBlobAt(scalars, z)
	if err != nil {
		return false, err
	}
	return c.verifySinglePoint(commitment, z, y, proof)
}

// VerifyBlobKZGProofBatch verifies many blob-level opening proofs with one
// random linear combination and one pairing check.
func (c *Context) VerifyBlobKZGProofBatch(blobs [][]byte, commitmentBytes, proofBytes [][]byte) (bool, error) {
	if len(blobs) != len(commitmentBytes) || len(commitmentBytes) != len(proofBytes) {
		return false, serialization.ErrBatchInputsLengthMismatch
	}
	if len(blobs) == 0 {
		return true, nil
	}

	n := len(blobs)
	commitments := make([]bls.G1Affine, n)
	proofs := make([]bls.G1Affine, n)
	zs := make([]bls.Scalar, n)
	ys := make([]bls.Scalar, n)

	for i := 0; i < n; i++ {
		commitment, err := serialization.ParseCommitment(commitmentBytes[i])
		if err != nil {
			return false, err
		}
		proof, err := serialization.ParseProof(proofBytes[i])
		if err != nil {
			return false, err
		}
		scalars, err := serialization.ParseBlob(blobs[i])
		if err != nil {
			return false, err
		}

		z := deriveBlobChallenge(blobs[i], commitment)
		y, err := c.evalBlobAt(scalars, z)
		if err != nil {
			return false, err
		}

		commitments[i] = commitment
		proofs[i] = proof
		zs[i] = z
		ys[i] = y
	}

	r := deriveBlobBatchChallenge(uint64(serialization.FieldElementsPerBlob), uint64(n), commitments, zs, ys, proofs)

	powers := make([]bls.Scalar, n)
	var cur bls.Scalar
	cur.SetOne()
	for i := 0; i < n; i++ {
		powers[i] = cur
		cur.Mul(&cur, &r)
	}

	// Fold the n individual single-point identities
	// e(commitment_i - [y_i] + z_i*proof_i, [1]) * e(-proof_i, [tau]) == 1
	// into one two-pairing check, by taking the r^i-weighted sums of the
	// [1]-leg terms and the r^i-weighted sum of proofs for the [tau] leg.
	gen := bls.G1Generator()
	aggLHSWeights := make([]bls.Scalar, n)
	for i := 0; i < n; i++ {
		var zy bls.Scalar
		zy.Mul(&zs[i], &powers[i])
		aggLHSWeights[i] = zy
	}

	var yAgg bls.Scalar
	for i := 0; i < n; i++ {
		var term bls.Scalar
		term.Mul(&ys[i], &powers[i])
		yAgg.Add(&yAgg, &term)
	}
	yAggG1 := bls.G1ScalarMul(&gen, &yAgg)

	commitAggJac, err := bls.G1MultiExp(commitments, powers)
	if err != nil {
		return false, err
	}
	var commitAgg bls.G1Affine
	commitAgg.FromJacobian(&commitAggJac)

	zProofAggJac, err := bls.G1MultiExp(proofs, aggLHSWeights)
	if err != nil {
		return false, err
	}
	var zProofAgg bls.G1Affine
	zProofAgg.FromJacobian(&zProofAggJac)

	lhs := bls.G1Sub(&commitAgg, &yAggG1)
	lhs = bls.G1Add(&lhs, &zProofAgg)

	proofAggJac, err := bls.G1MultiExp(proofs, powers)
	if err != nil {
		return false, err
	}
	var proofAgg bls.G1Affine
	proofAgg.FromJacobian(&proofAggJac)
	var negProofAgg bls.G1Affine
	negProofAgg.Neg(&proofAgg)

	ok, err := bls.PairingCheck([]bls.G1Affine{lhs, negProofAgg}, []bls.G2Affine{c.g2Gen, c.g2Tau})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, verify.ErrInvalidProof
	}
	return true, nil
}

func (c *Context) evalBlobAt(scalars []bls.Scalar, z bls.Scalar) (bls.Scalar, error) {
	prover, err := c.requireProver()
	if err != nil {
		return bls.Scalar{}, err
	}
	poly, err := prover.DataToPoly(scalars)
	if err != nil {
		return bls.Scalar{}, err
	}
	return poly.Eval(&z), nil
}

// divideByLinear computes (p - y) / (X - z) assuming y == p.Eval(z), so the
// division is exact (synthetic division by a monic linear divisor).
func divideByLinear(p polynomial.Coeff, z, y bls.Scalar) polynomial.Coeff {
	numerator := make(polynomial.Coeff, len(p))
	copy(numerator, p)
	numerator[0].Sub(&numerator[0], &y)

	if len(numerator) == 0 {
		return polynomial.Coeff{}
	}
	quotient := make(polynomial.Coeff, len(numerator)-1)
	carry := numerator[len(numerator)-1]
	for i := len(numerator) - 2; i >= 0; i-- {
		quotient[i] = carry
		var term bls.Scalar
		term.Mul(&carry, &z)
		carry.Add(&numerator[i], &term)
	}
	return quotient
}
