package fk20_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/fk20"
	"github.com/dasguild/peerdas-kzg/polynomial"
	"github.com/dasguild/peerdas-kzg/serialization"
)

// toySetup builds a deterministic (insecure) monomial-basis G1 SRS of the
// given length from a fixed secret, for use only in tests.
func toySetup(n int, tau bls.Scalar) []bls.G1Affine {
	gen := bls.G1Generator()
	out := make([]bls.G1Affine, n)
	var cur bls.Scalar
	cur.SetOne()
	for i := 0; i < n; i++ {
		out[i] = bls.G1ScalarMul(&gen, &cur)
		cur.Mul(&cur, &tau)
	}
	return out
}

func testTau() bls.Scalar {
	var s bls.Scalar
	s.SetUint64(123456789)
	return s
}

func randomPoly(n int, seed uint64) polynomial.Coeff {
	out := make(polynomial.Coeff, n)
	cur := seed
	for i := range out {
		cur = cur*6364136223846793005 + 1
		out[i].SetUint64(cur)
	}
	return out
}

func TestProverCommitMatchesDirectEvaluation(t *testing.T) {
	c := qt.New(t)

	tau := testTau()
	commitKey := toySetup(serialization.FieldElementsPerBlob, tau)

	prover, err := fk20.NewProver(commitKey, 0)
	c.Assert(err, qt.IsNil)

	poly := randomPoly(16, 7)
	commitment, err := prover.CommitPoly(poly)
	c.Assert(err, qt.IsNil)

	// Commit(poly) must equal poly(tau) * G1Generator.
	expectedScalar := poly.Eval(&tau)
	gen := bls.G1Generator()
	expected := bls.G1ScalarMul(&gen, &expectedScalar)

	c.Assert(commitment.Equal(&expected), qt.IsTrue)
}

func TestMultiOpeningProofVerifiesViaPairing(t *testing.T) {
	c := qt.New(t)

	tau := testTau()
	commitKey := toySetup(serialization.FieldElementsPerBlob, tau)

	prover, err := fk20.NewProver(commitKey, 0)
	c.Assert(err, qt.IsNil)

	poly := randomPoly(serialization.FieldElementsPerBlob, 42)
	commitment, err := prover.CommitPoly(poly)
	c.Assert(err, qt.IsNil)

	cosets, proofs, err := prover.ComputeMultiOpeningProofs(poly)
	c.Assert(err, qt.IsNil)
	c.Assert(cosets, qt.HasLen, serialization.CellsPerExtBlob)
	c.Assert(proofs, qt.HasLen, serialization.CellsPerExtBlob)

	extendedDomain, err := domain.New(serialization.FieldElementsPerExtBlob)
	c.Assert(err, qt.IsNil)

	allRoots := make([]bls.Scalar, extendedDomain.Size)
	var cur bls.Scalar
	cur.SetOne()
	for i := range allRoots {
		allRoots[i] = cur
		cur.Mul(&cur, &extendedDomain.Generator)
	}
	domain.Permute(allRoots)

	cosetSize := serialization.FieldElementsPerCell
	g2Gen := bls.G2Generator()

	for _, k := range []int{0, 1, serialization.CellsPerExtBlob - 1} {
		points := allRoots[k*cosetSize : (k+1)*cosetSize]

		interp := polynomial.LagrangeInterpolate(points, cosets[k])
		interpCommitment, err := prover.CommitPoly(interp)
		c.Assert(err, qt.IsNil)

		vanishing := polynomial.VanishingPoly(points)
		zTau := vanishing.Eval(&tau)
		zTauG2 := bls.G2ScalarMul(&g2Gen, &zTau)

		diff := bls.G1Sub(&commitment, &interpCommitment)
		negProof := bls.G1Neg(&proofs[k])

		ok, err := bls.PairingCheck([]bls.G1Affine{diff, negProof}, []bls.G2Affine{g2Gen, zTauG2})
		c.Assert(err, qt.IsNil)
		c.Assert(ok, qt.IsTrue, qt.Commentf("coset %d failed pairing check", k))
	}
}

func TestMultiOpeningProofMatchesNaiveOracle(t *testing.T) {
	c := qt.New(t)

	tau := testTau()
	commitKey := toySetup(serialization.FieldElementsPerBlob, tau)

	prover, err := fk20.NewProver(commitKey, 0)
	c.Assert(err, qt.IsNil)

	poly := randomPoly(serialization.FieldElementsPerBlob, 99)
	_, proofs, err := prover.ComputeMultiOpeningProofs(poly)
	c.Assert(err, qt.IsNil)

	for _, k := range []int{0, 3} {
		naiveProof, err := fk20.NaiveMultiOpen(commitKey, poly, k)
		c.Assert(err, qt.IsNil)
		c.Assert(proofs[k].Equal(&naiveProof), qt.IsTrue, qt.Commentf("coset %d mismatch with naive oracle", k))
	}
}
