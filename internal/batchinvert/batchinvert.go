// Package batchinvert implements Montgomery's batch inversion trick:
// inverting n nonzero field elements using a single field inversion plus
// O(n) multiplications.
package batchinvert

import (
	"errors"

	"github.com/dasguild/peerdas-kzg/bls"
)

// ErrZeroElement is returned when an input element is zero, which has no
// multiplicative inverse.
var ErrZeroElement = errors.New("batchinvert: cannot invert zero element")

// Invert returns the multiplicative inverse of every element in in, computed
// with a single underlying field inversion.
func Invert(in []bls.Scalar) ([]bls.Scalar, error) {
	out := make([]bls.Scalar, len(in))
	scratch := make([]bls.Scalar, len(in))
	if err := InvertInto(in, out, scratch); err != nil {
		return nil, err
	}
	return out, nil
}

// InvertInto computes the inverse of every element of in, writing results
// into out, using scratch as a caller-supplied working buffer. When scratch
// has capacity below len(in), a fresh buffer is allocated in its place for
// this call. out is not resized: it must have length at least len(in).
func InvertInto(in, out []bls.Scalar, scratch []bls.Scalar) error {
	n := len(in)
	if n == 0 {
		return nil
	}
	if cap(scratch) < n {
		scratch = make([]bls.Scalar, n)
	}
	scratch = scratch[:n]

	// Forward pass: scratch[i] = in[0] * in[1] * ... * in[i].
	scratch[0] = in[0]
	for i := 1; i < n; i++ {
		scratch[i].Mul(&scratch[i-1], &in[i])
	}

	if scratch[n-1].IsZero() {
		return ErrZeroElement
	}

	// Single inversion of the running product.
	var accInv bls.Scalar
	accInv.Inverse(&scratch[n-1])

	// Backward pass: recover each individual inverse.
	for i := n - 1; i > 0; i-- {
		out[i].Mul(&accInv, &scratch[i-1])
		accInv.Mul(&accInv, &in[i])
	}
	out[0] = accInv
	return nil
}
