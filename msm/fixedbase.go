// Package msm implements fixed-base multi-scalar-multiplication: computing
// sum(scalars[i] * bases[i]) for a set of bases known in advance, with an
// optional precomputed multiples window table (windowed signed-digit /
// Booth recoding) or a direct fallback through the underlying curve
// library's generic multi-exponentiation.
package msm

import (
	"errors"
	"math/big"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/internal/batchadd"
)

// ErrLengthMismatch is returned when the scalar count does not equal the
// base count.
var ErrLengthMismatch = errors.New("msm: scalar count does not match base count")

// FixedBase holds a set of bases known at setup time, plus, if
// precomputation was requested, the per-base multiples window table used to
// accelerate repeated MSM calls against these same bases.
type FixedBase struct {
	bases []bls.G1Affine
	width uint // 0 means no precomputation
	// table[i] holds every multiple {P_i, 2P_i, 3P_i, ..., 2^(width-1)P_i}
	// of bases[i], in affine form, indexed by multiple-1.
	table [][]bls.G1Affine
}

// NewNoPrecomp builds a FixedBase that evaluates MSM calls through the
// underlying curve library's generic multi-exponentiation, after filtering
// identity bases.
func NewNoPrecomp(bases []bls.G1Affine) *FixedBase {
	return &FixedBase{bases: bases}
}

// NewPrecomp builds a FixedBase with a windowed multiples table of the
// given width. width must be at least 2; the memory cost is
// len(bases) * 2^(width-1) points.
func NewPrecomp(bases []bls.G1Affine, width uint) *FixedBase {
	fb := &FixedBase{bases: bases, width: width}
	numMultiples := 1 << (width - 1)
	fb.table = make([][]bls.G1Affine, len(bases))
	for i, base := range bases {
		multiples := make([]bls.G1Affine, numMultiples)
		multiples[0] = base
		cur := base
		for j := 1; j < numMultiples; j++ {
			cur = bls.G1Add(&cur, &base)
			multiples[j] = cur
		}
		fb.table[i] = multiples
	}
	return fb
}

// MSM computes sum(scalars[i] * bases[i]).
func (fb *FixedBase) MSM(scalars []bls.Scalar) (bls.G1Jac, error) {
	if len(scalars) != len(fb.bases) {
		return bls.G1Jac{}, ErrLengthMismatch
	}
	if fb.width == 0 {
		return bls.G1MultiExp(fb.bases, scalars)
	}
	return fb.msmPrecomp(scalars)
}

// boothWindows recodes a scalar into signed digits in (-2^(w-1), 2^(w-1)]
// using windows of width w bits with carry propagation (Booth recoding).
func boothWindows(s *bls.Scalar, width uint) []int32 {
	var bi big.Int
	s.BigInt(&bi)

	numBits := bls.Modulus().BitLen() + 1 // +1 for the final carry-out window
	numWindows := (numBits + int(width) - 1) / int(width)

	digits := make([]int32, numWindows)
	half := int32(1) << (width - 1)
	mask := (uint64(1) << width) - 1

	carry := uint64(0)
	for i := 0; i < numWindows; i++ {
		shift := uint(i) * width
		chunk := new(big.Int).Rsh(&bi, shift)
		windowVal := uint64(0)
		if chunk.Sign() != 0 {
			windowVal = chunk.Uint64() & mask
		}
		windowVal += carry

		if int32(windowVal) > half {
			digits[i] = int32(windowVal) - (int32(1) << width)
			carry = 1
		} else {
			digits[i] = int32(windowVal)
			carry = 0
		}
	}
	return digits
}

func (fb *FixedBase) msmPrecomp(scalars []bls.Scalar) (bls.G1Jac, error) {
	width := fb.width
	numWindows := 0

	recoded := make([][]int32, len(scalars))
	for i := range scalars {
		recoded[i] = boothWindows(&scalars[i], width)
		if len(recoded[i]) > numWindows {
			numWindows = len(recoded[i])
		}
	}

	// For each window position, gather the (possibly negated) selected
	// multiple contribution from every scalar, then reduce that window's
	// bucket with one shared batch addition.
	windowBuckets := make([]bls.G1Jac, numWindows)
	for w := 0; w < numWindows; w++ {
		var contributions []bls.G1Affine
		for i := range scalars {
			if w >= len(recoded[i]) {
				continue
			}
			digit := recoded[i][w]
			if digit == 0 {
				continue
			}
			idx := absInt32(digit) - 1
			if int(idx) >= len(fb.table[i]) {
				continue
			}
			p := fb.table[i][idx]
			if digit < 0 {
				p = bls.G1Neg(&p)
			}
			contributions = append(contributions, p)
		}
		if len(contributions) == 0 {
			continue
		}
		windowBuckets[w] = batchadd.Sum(contributions)
	}

	// Combine windows MSB-first by repeated doubling-by-2^width and adding.
	var acc bls.G1Jac
	for w := numWindows - 1; w >= 0; w-- {
		if w != numWindows-1 {
			for i := uint(0); i < width; i++ {
				acc.Double(&acc)
			}
		}
		acc.AddAssign(&windowBuckets[w])
	}
	return acc, nil
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
