// Package fk20 implements the FK20 multi-opening KZG construction: for a
// polynomial of degree < FIELD_ELEMENTS_PER_BLOB, it computes, for every
// coset of the extended evaluation domain, both the coset's evaluations and
// a single aggregated KZG opening proof attesting to them, by reducing the
// whole batch to one Toeplitz-matrix-times-SRS multiplication solved by
// FFT.
package fk20

import (
	"errors"

	"github.com/dasguild/peerdas-kzg/bls"
)

// ErrToeplitzRowColMismatch is returned when a Toeplitz matrix's row and
// column do not share the same leading entry, the invariant a valid
// Toeplitz matrix must satisfy.
var ErrToeplitzRowColMismatch = errors.New("fk20: toeplitz row[0] must equal col[0]")

// Toeplitz is a square matrix determined by its first row and first
// column; row[0] and col[0] must be equal (both are the (0,0) entry).
type Toeplitz struct {
	Row []bls.Scalar
	Col []bls.Scalar
}

// NewToeplitz builds a Toeplitz matrix from its first row and column,
// enforcing row[0] == col[0].
func NewToeplitz(row, col []bls.Scalar) (*Toeplitz, error) {
	if len(row) == 0 || len(col) == 0 || !row[0].Equal(&col[0]) {
		return nil, ErrToeplitzRowColMismatch
	}
	return &Toeplitz{Row: row, Col: col}, nil
}

// CirculantGeneratingRow embeds the Toeplitz matrix into a circulant matrix
// of twice the dimension, returning its single generating row:
// col ++ reverse(rotate_left(row, 1)).
func (t *Toeplitz) CirculantGeneratingRow() []bls.Scalar {
	n := len(t.Row)
	rotated := make([]bls.Scalar, n)
	copy(rotated, t.Row[1:])
	rotated[n-1] = t.Row[0]

	reversed := make([]bls.Scalar, n)
	for i := 0; i < n; i++ {
		reversed[i] = rotated[n-1-i]
	}

	out := make([]bls.Scalar, 0, 2*n)
	out = append(out, t.Col...)
	out = append(out, reversed...)
	return out
}
