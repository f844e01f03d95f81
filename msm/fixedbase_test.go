package msm_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/msm"
)

func randomBases(n int) []bls.G1Affine {
	g := bls.G1Generator()
	out := make([]bls.G1Affine, n)
	for i := range out {
		var s bls.Scalar
		s.SetUint64(uint64(7*i + 3))
		out[i] = bls.G1ScalarMul(&g, &s)
	}
	return out
}

func linearCombination(bases []bls.G1Affine, scalars []bls.Scalar) bls.G1Jac {
	var acc bls.G1Jac
	for i := range bases {
		p := bls.G1ScalarMul(&bases[i], &scalars[i])
		acc.AddMixed(&p)
	}
	return acc
}

func TestNoPrecompMatchesLinearCombination(t *testing.T) {
	c := qt.New(t)

	bases := randomBases(10)
	scalars := make([]bls.Scalar, 10)
	for i := range scalars {
		scalars[i].SetUint64(uint64(i*i + 1))
	}

	fb := msm.NewNoPrecomp(bases)
	got, err := fb.MSM(scalars)
	c.Assert(err, qt.IsNil)

	want := linearCombination(bases, scalars)

	var gotAffine, wantAffine bls.G1Affine
	gotAffine.FromJacobian(&got)
	wantAffine.FromJacobian(&want)
	c.Assert(gotAffine.Equal(&wantAffine), qt.IsTrue)
}

func TestPrecompMatchesNoPrecomp(t *testing.T) {
	c := qt.New(t)

	bases := randomBases(6)
	scalars := make([]bls.Scalar, 6)
	for i := range scalars {
		scalars[i].SetUint64(uint64(1000*i + 17))
	}

	for _, width := range []uint{2, 4, 9} {
		fbPrecomp := msm.NewPrecomp(bases, width)
		got, err := fbPrecomp.MSM(scalars)
		c.Assert(err, qt.IsNil)

		fbNoPrecomp := msm.NewNoPrecomp(bases)
		want, err := fbNoPrecomp.MSM(scalars)
		c.Assert(err, qt.IsNil)

		var gotAffine, wantAffine bls.G1Affine
		gotAffine.FromJacobian(&got)
		wantAffine.FromJacobian(&want)
		c.Assert(gotAffine.Equal(&wantAffine), qt.IsTrue, qt.Commentf("width=%d", width))
	}
}

func TestMSMRejectsLengthMismatch(t *testing.T) {
	c := qt.New(t)

	bases := randomBases(3)
	fb := msm.NewNoPrecomp(bases)
	_, err := fb.MSM(make([]bls.Scalar, 2))
	c.Assert(err, qt.Equals, msm.ErrLengthMismatch)
}

func TestMSMZeroScalarsIsIdentity(t *testing.T) {
	c := qt.New(t)

	bases := randomBases(4)
	scalars := make([]bls.Scalar, 4) // all zero

	fb := msm.NewPrecomp(bases, 4)
	got, err := fb.MSM(scalars)
	c.Assert(err, qt.IsNil)

	var gotAffine bls.G1Affine
	gotAffine.FromJacobian(&got)
	c.Assert(bls.IsG1Identity(&gotAffine), qt.IsTrue)
}
