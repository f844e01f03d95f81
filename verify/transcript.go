package verify

import (
	"encoding/binary"

	"github.com/dasguild/peerdas-kzg/bls"
)

// batchDomainSeparator is the Fiat-Shamir domain separator for the
// PeerDAS batch cell-proof challenge.
const batchDomainSeparator = "RCKZGCBATCH__V1_"

// BatchInput is a single cell-proof entry fed to the batch verifier: a
// commitment index into a deduplicated commitments list, the (bit-reversed)
// coset index, the coset's evaluations, and the opening proof.
type BatchInput struct {
	CommitmentIndex uint64
	CosetIndex      uint64
	Evals           []bls.Scalar
	Proof           bls.G1Affine
}

// deriveChallenge builds the canonical Fiat-Shamir transcript for a batch of
// cell-proof inputs and reduces it to a Scalar, per the bit-exact byte
// layout: domain separator, then four 8-byte big-endian counters, then
// every deduplicated commitment, then per-proof commitment index/coset
// index/evaluations/proof.
func deriveChallenge(polynomialBound, cosetSize uint64, commitments []bls.G1Affine, inputs []BatchInput) bls.Scalar {
	buf := make([]byte, 0, len(batchDomainSeparator)+4*8+len(commitments)*bls.BytesPerG1+len(inputs)*(16+bls.BytesPerG1))
	buf = append(buf, batchDomainSeparator...)
	buf = appendUint64(buf, polynomialBound)
	buf = appendUint64(buf, cosetSize)
	buf = appendUint64(buf, uint64(len(commitments)))
	buf = appendUint64(buf, uint64(len(inputs)))

	for i := range commitments {
		buf = append(buf, bls.G1ToCompressed(&commitments[i])...)
	}

	for _, in := range inputs {
		buf = appendUint64(buf, in.CommitmentIndex)
		buf = appendUint64(buf, in.CosetIndex)
		for i := range in.Evals {
			buf = append(buf, bls.ScalarToCanonicalBytes(&in.Evals[i])...)
		}
		buf = append(buf, bls.G1ToCompressed(&in.Proof)...)
	}

	return bls.HashToScalarBiasedReduce(buf)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}
