package rs

import "errors"

// ErrPolynomialTooLong is returned when encode is given more coefficients
// than the configured polynomial length.
var ErrPolynomialTooLong = errors.New("rs: polynomial has too many coefficients")

// ErrInvalidBlockIndex is returned when a block erasure index is out of
// [0, block_size) range.
var ErrInvalidBlockIndex = errors.New("rs: invalid block index")

// ErrTooManyBlockErasures is returned when the erasure count exceeds
// block_size/expansion_factor.
var ErrTooManyBlockErasures = errors.New("rs: too many block erasures to recover")

// ErrPolynomialHasInvalidLength is returned when, after recovery, the
// high-order coefficients beyond poly_len are not all zero -- evidence of
// inconsistent inputs.
var ErrPolynomialHasInvalidLength = errors.New("rs: recovered polynomial has invalid length")
