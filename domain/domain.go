// Package domain implements the multiplicative subgroup of order 2^k over
// the BLS12-381 scalar field, with cached roots of unity, and radix-2 DIT
// FFT / IFFT over both scalars and G1 points, including coset variants.
package domain

import (
	"errors"

	"github.com/dasguild/peerdas-kzg/bls"
)

// ErrDomainTooLarge is returned when the requested size exceeds the field's
// two-adicity (2^32).
var ErrDomainTooLarge = errors.New("domain: size exceeds field two-adicity of 2^32")

// Domain owns the roots of unity of a size-n multiplicative subgroup (n a
// power of two) plus the precomputed tables needed to FFT/IFFT over it. It
// is immutable after construction.
type Domain struct {
	Size    uint64
	LogSize uint

	Generator    bls.Scalar
	GeneratorInv bls.Scalar
	CardinalityInv bls.Scalar // 1/n

	// roots holds [g^0, g^1, ..., g^(n-1)] in natural order; it doubles as
	// the forward-FFT twiddle table (twiddle for layer size m, position k is
	// roots[k*(n/m)]).
	roots []bls.Scalar
	// rootsInv holds the same powers of GeneratorInv, used by the inverse
	// FFT so it need not recompute or invert per layer.
	rootsInv []bls.Scalar
}

// New rounds n up to the next power of two and builds its Domain.
func New(n uint64) (*Domain, error) {
	size := nextPowerOfTwo(n)
	logSize := logTwo(size)
	if logSize > bls.TwoAdicity {
		return nil, ErrDomainTooLarge
	}

	gen := bls.RootOfUnityForDomain(logSize)
	var genInv bls.Scalar
	genInv.Inverse(&gen)

	var nInv bls.Scalar
	nInv.SetUint64(size)
	nInv.Inverse(&nInv)

	d := &Domain{
		Size:           size,
		LogSize:        logSize,
		Generator:      gen,
		GeneratorInv:   genInv,
		CardinalityInv: nInv,
		roots:          powersOf(gen, size),
		rootsInv:       powersOf(genInv, size),
	}
	return d, nil
}

func powersOf(g bls.Scalar, n uint64) []bls.Scalar {
	out := make([]bls.Scalar, n)
	out[0].SetOne()
	for i := uint64(1); i < n; i++ {
		out[i].Mul(&out[i-1], &g)
	}
	return out
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
