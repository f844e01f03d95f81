package verify

import "errors"

var (
	// ErrInvalidProof is returned when the pairing check fails: the
	// batch of commitments, cosets, and proofs is not consistent.
	ErrInvalidProof = errors.New("verify: invalid proof")
	// ErrCommitmentIndexOutOfRange is returned when a proof's
	// commitment index does not address the deduplicated commitments
	// list.
	ErrCommitmentIndexOutOfRange = errors.New("verify: commitment index out of range")
	// ErrCosetEvalsWrongLength is returned when a proof's evaluation
	// vector is not exactly one coset's worth of scalars.
	ErrCosetEvalsWrongLength = errors.New("verify: coset evaluations have the wrong length")
	// ErrCosetIndexOutOfRange is returned when a proof's coset index is
	// not a valid bit-reversed coset index for the verifier's domain.
	ErrCosetIndexOutOfRange = errors.New("verify: coset index out of range")
	// ErrCommitKeyTooShort is returned when the supplied G1 SRS has
	// fewer points than the coset size requires.
	ErrCommitKeyTooShort = errors.New("verify: commit key shorter than coset size")
)
