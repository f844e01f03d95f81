package kzg

import (
	"errors"

	"github.com/dasguild/peerdas-kzg/verify"
)

var (
	// ErrVerifierOnlyContext is returned when a proving operation is
	// attempted against a context built in verifier-only mode.
	ErrVerifierOnlyContext = errors.New("kzg: context has no prover (verifier-only mode)")
	// ErrG2SetupTooShort is returned when the supplied G2 monomial SRS
	// does not reach the power the FK20 batch verifier needs.
	ErrG2SetupTooShort = errors.New("kzg: g2 monomial setup shorter than required")
)

// IsProofInvalid reports whether err represents a failed cryptographic
// verification (as opposed to malformed input, which fails earlier with a
// validation error). Callers that need to distinguish "this data is
// malformed" from "this data's proof does not check out" should test with
// this predicate.
func IsProofInvalid(err error) bool {
	return errors.Is(err, verify.ErrInvalidProof)
}
