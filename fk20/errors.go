package fk20

import "errors"

var (
	// ErrSliceCountMismatch is returned when the number of per-slice rows
	// passed to BatchToeplitz does not match the configured slice count.
	ErrSliceCountMismatch = errors.New("fk20: slice count does not match batch toeplitz configuration")
	// ErrPolynomialTooLong is returned when a polynomial or data vector
	// exceeds the prover's configured blob length.
	ErrPolynomialTooLong = errors.New("fk20: polynomial exceeds configured length")
	// ErrCommitKeyTooShort is returned when the supplied SRS has fewer
	// points than the configured blob length requires.
	ErrCommitKeyTooShort = errors.New("fk20: commit key shorter than required")
)
