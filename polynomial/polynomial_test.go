package polynomial_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/polynomial"
)

func scalar(v uint64) bls.Scalar {
	var s bls.Scalar
	s.SetUint64(v)
	return s
}

func TestEvalHorner(t *testing.T) {
	c := qt.New(t)

	// p(x) = 1 + 2x + 3x^2
	p := polynomial.Coeff{scalar(1), scalar(2), scalar(3)}
	x := scalar(5)
	got := p.Eval(&x)

	want := scalar(1 + 2*5 + 3*25)
	c.Assert(got.Equal(&want), qt.IsTrue)
}

func TestAddSubNeg(t *testing.T) {
	c := qt.New(t)

	p := polynomial.Coeff{scalar(1), scalar(2), scalar(3)}
	q := polynomial.Coeff{scalar(10), scalar(20)}

	sum := polynomial.Add(p, q)
	back := polynomial.Sub(sum, q)

	x := scalar(7)
	gotEval := back.Eval(&x)
	wantEval := p.Eval(&x)
	c.Assert(gotEval.Equal(&wantEval), qt.IsTrue)

	negP := polynomial.Neg(p)
	zero := polynomial.Add(p, negP)
	for _, coeff := range zero {
		c.Assert(coeff.IsZero(), qt.IsTrue)
	}
}

func TestMulDegree(t *testing.T) {
	c := qt.New(t)

	p := polynomial.Coeff{scalar(1), scalar(1)} // x + 1
	q := polynomial.Coeff{scalar(1), scalar(1)} // x + 1
	got := polynomial.Mul(p, q)                 // x^2 + 2x + 1

	want := polynomial.Coeff{scalar(1), scalar(2), scalar(1)}
	c.Assert(len(got), qt.Equals, len(want))
	for i := range want {
		c.Assert(got[i].Equal(&want[i]), qt.IsTrue)
	}
}

func TestVanishingPolyEvaluatesToZeroOnRoots(t *testing.T) {
	c := qt.New(t)

	roots := []bls.Scalar{scalar(2), scalar(5), scalar(11)}
	z := polynomial.VanishingPoly(roots)

	for _, r := range roots {
		got := z.Eval(&r)
		c.Assert(got.IsZero(), qt.IsTrue)
	}

	other := scalar(7)
	got := z.Eval(&other)
	c.Assert(got.IsZero(), qt.IsFalse)
}

func TestLagrangeInterpolateRoundTrip(t *testing.T) {
	c := qt.New(t)

	// p(x) = 3 + 4x + 5x^2
	p := polynomial.Coeff{scalar(3), scalar(4), scalar(5)}
	xs := []bls.Scalar{scalar(0), scalar(1), scalar(2)}
	ys := make([]bls.Scalar, len(xs))
	for i := range xs {
		ys[i] = p.Eval(&xs[i])
	}

	got := polynomial.LagrangeInterpolate(xs, ys)
	c.Assert(len(got), qt.Equals, len(p))
	for i := range p {
		c.Assert(got[i].Equal(&p[i]), qt.IsTrue)
	}
}
