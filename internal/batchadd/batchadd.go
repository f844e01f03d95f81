// Package batchadd implements batched affine point addition: summing many
// BLS12-381 G1 points while amortising the modular inversions behind the
// point-addition formula across the whole batch, via a binary-tree-stride
// reduction.
package batchadd

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/dasguild/peerdas-kzg/bls"
)

// naiveThreshold is the point count below which a plain running sum is
// cheaper than another batched-inversion round.
const naiveThreshold = 16

// Sum computes the sum of points using repeated rounds of batched-inversion
// affine addition, halving the working set each round, until at most
// naiveThreshold points remain, which are then summed directly.
//
// Precondition: no element of points is the identity, and no pair of
// adjacent points in a round forms a doubling-by-negation (P, -P); both are
// the caller's responsibility, consistent with how the fixed-base MSM and
// FK20 SRS tables are constructed so as to never produce such pairs.
func Sum(points []bls.G1Affine) bls.G1Jac {
	working := append([]bls.G1Affine(nil), points...)

	for len(working) > naiveThreshold {
		working = reduceRound(working)
	}

	var acc bls.G1Jac
	for i := range working {
		acc.AddMixed(&working[i])
	}
	return acc
}

// MultiSum runs the same binary-tree-stride reduction across many
// independent point lists concurrently, sharing one batched inversion per
// round across all lists (the termination condition is on the total
// remaining pair count across every list, not per list).
func MultiSum(lists [][]bls.G1Affine) []bls.G1Jac {
	working := make([][]bls.G1Affine, len(lists))
	for i, l := range lists {
		working[i] = append([]bls.G1Affine(nil), l...)
	}

	for totalPairs(working) > naiveThreshold {
		working = reduceRoundMulti(working)
	}

	results := make([]bls.G1Jac, len(working))
	for i, l := range working {
		var acc bls.G1Jac
		for j := range l {
			acc.AddMixed(&l[j])
		}
		results[i] = acc
	}
	return results
}

func totalPairs(lists [][]bls.G1Affine) int {
	total := 0
	for _, l := range lists {
		total += len(l) / 2
	}
	return total
}

// batchInvertFp inverts n nonzero base-field elements with a single
// underlying inversion (Montgomery's trick), mirroring
// internal/batchinvert but specialised to fp.Element since affine point
// coordinates live in the base field, not the scalar field.
func batchInvertFp(in []fp.Element) []fp.Element {
	n := len(in)
	out := make([]fp.Element, n)
	if n == 0 {
		return out
	}

	running := make([]fp.Element, n)
	running[0] = in[0]
	for i := 1; i < n; i++ {
		running[i].Mul(&running[i-1], &in[i])
	}

	if running[n-1].IsZero() {
		panic("batchadd: degenerate pair encountered during batched reduction")
	}

	var accInv fp.Element
	accInv.Inverse(&running[n-1])

	for i := n - 1; i > 0; i-- {
		out[i].Mul(&accInv, &running[i-1])
		accInv.Mul(&accInv, &in[i])
	}
	out[0] = accInv
	return out
}

// reduceRound halves points in one binary-tree-stride round: pairs
// consecutive points, collects the slope denominators for the whole batch,
// inverts them in one pass, and applies the add-or-double formula.
func reduceRound(points []bls.G1Affine) []bls.G1Affine {
	n := len(points)
	pairCount := n / 2
	carry := n%2 == 1

	denominators := make([]fp.Element, pairCount)
	for i := 0; i < pairCount; i++ {
		denominators[i] = slopeDenominator(&points[2*i], &points[2*i+1])
	}
	invDenominators := batchInvertFp(denominators)

	out := make([]bls.G1Affine, 0, pairCount+1)
	if carry {
		out = append(out, points[n-1])
	}
	for i := 0; i < pairCount; i++ {
		out = append(out, addOrDouble(&points[2*i], &points[2*i+1], &invDenominators[i]))
	}
	return out
}

func reduceRoundMulti(lists [][]bls.G1Affine) [][]bls.G1Affine {
	type pairRef struct {
		list, pairIdx int
	}
	var denominators []fp.Element
	var refs []pairRef

	for li, l := range lists {
		pairCount := len(l) / 2
		for i := 0; i < pairCount; i++ {
			denominators = append(denominators, slopeDenominator(&l[2*i], &l[2*i+1]))
			refs = append(refs, pairRef{li, i})
		}
	}

	out := make([][]bls.G1Affine, len(lists))
	for li, l := range lists {
		pairCount := len(l) / 2
		carry := len(l)%2 == 1
		reduced := make([]bls.G1Affine, 0, pairCount+1)
		if carry {
			reduced = append(reduced, l[len(l)-1])
		}
		out[li] = reduced
	}

	if len(denominators) == 0 {
		return out
	}
	invDenominators := batchInvertFp(denominators)

	for idx, ref := range refs {
		l := lists[ref.list]
		a, b := &l[2*ref.pairIdx], &l[2*ref.pairIdx+1]
		out[ref.list] = append(out[ref.list], addOrDouble(a, b, &invDenominators[idx]))
	}
	return out
}

// slopeDenominator returns x2-x1 for distinct-x addition, or 2*y1 for
// doubling (a == b).
func slopeDenominator(a, b *bls.G1Affine) fp.Element {
	var denom fp.Element
	if a.X.Equal(&b.X) {
		denom.Double(&a.Y)
	} else {
		denom.Sub(&b.X, &a.X)
	}
	return denom
}

// addOrDouble applies the affine point add/double formula given the
// precomputed inverse of the slope denominator.
func addOrDouble(a, b *bls.G1Affine, invDenom *fp.Element) bls.G1Affine {
	var lambda, xr, yr fp.Element
	if a.X.Equal(&b.X) {
		// Doubling: lambda = (3*x1^2) / (2*y1).
		var threeXSq fp.Element
		threeXSq.Square(&a.X)
		threeXSq.Mul(&threeXSq, &three)
		lambda.Mul(&threeXSq, invDenom)
	} else {
		// Addition: lambda = (y2-y1) / (x2-x1).
		var dy fp.Element
		dy.Sub(&b.Y, &a.Y)
		lambda.Mul(&dy, invDenom)
	}

	var lambdaSq fp.Element
	lambdaSq.Square(&lambda)
	xr.Sub(&lambdaSq, &a.X)
	xr.Sub(&xr, &b.X)

	var xDiff fp.Element
	xDiff.Sub(&a.X, &xr)
	yr.Mul(&lambda, &xDiff)
	yr.Sub(&yr, &a.Y)

	return bls.G1Affine{X: xr, Y: yr}
}

var three = func() fp.Element {
	var z fp.Element
	z.SetUint64(3)
	return z
}()
