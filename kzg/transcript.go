package kzg

import (
	"encoding/binary"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/serialization"
)

const (
	blobOpeningDomainSeparator = "FSBLOBVERIFY_V1_"
	eip4844BatchDomainSeparator = "RCKZGBATCH___V1_"
)

// deriveBlobChallenge computes the evaluation point z for a blob KZG proof:
// a SHA-256-derived scalar over the domain separator, a 16-byte big-endian
// field-elements-per-blob count, the blob bytes, and the commitment.
func deriveBlobChallenge(blob []byte, commitment bls.G1Affine) bls.Scalar {
	buf := make([]byte, 0, len(blobOpeningDomainSeparator)+16+len(blob)+bls.BytesPerG1)
	buf = append(buf, blobOpeningDomainSeparator...)

	var countBuf [16]byte
	binary.BigEndian.PutUint64(countBuf[8:], serialization.FieldElementsPerBlob)
	buf = append(buf, countBuf[:]...)

	buf = append(buf, blob...)
	buf = append(buf, bls.G1ToCompressed(&commitment)...)

	return bls.HashToScalarBiasedReduce(buf)
}

// deriveBlobBatchChallenge computes the random linear combination weight r
// for a batch of blob KZG proofs.
func deriveBlobBatchChallenge(domainSize, batchSize uint64, commitments []bls.G1Affine, zs, ys []bls.Scalar, proofs []bls.G1Affine) bls.Scalar {
	n := len(commitments)
	buf := make([]byte, 0, len(eip4844BatchDomainSeparator)+16+n*(2*bls.BytesPerG1+2*serialization.BytesPerFieldElement))
	buf = append(buf, eip4844BatchDomainSeparator...)
	buf = appendUint64(buf, domainSize)
	buf = appendUint64(buf, batchSize)

	for i := 0; i < n; i++ {
		buf = append(buf, bls.G1ToCompressed(&commitments[i])...)
		buf = append(buf, bls.ScalarToCanonicalBytes(&zs[i])...)
		buf = append(buf, bls.ScalarToCanonicalBytes(&ys[i])...)
		buf = append(buf, bls.G1ToCompressed(&proofs[i])...)
	}

	return bls.HashToScalarBiasedReduce(buf)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}
