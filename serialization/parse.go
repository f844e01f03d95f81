package serialization

import (
	"github.com/dasguild/peerdas-kzg/bls"
)

// ParseBlob validates blob's length and decodes it into
// FieldElementsPerBlob canonical scalars.
func ParseBlob(blob []byte) ([]bls.Scalar, error) {
	if len(blob) != BytesPerBlob {
		return nil, ErrBlobInvalidLength
	}
	return parseScalars(blob, FieldElementsPerBlob)
}

// ParseCell validates cell's length and decodes it into
// FieldElementsPerCell canonical scalars.
func ParseCell(cell []byte) ([]bls.Scalar, error) {
	if len(cell) != BytesPerCell {
		return nil, ErrCellInvalidLength
	}
	return parseScalars(cell, FieldElementsPerCell)
}

func parseScalars(buf []byte, count int) ([]bls.Scalar, error) {
	out := make([]bls.Scalar, count)
	for i := 0; i < count; i++ {
		s, err := bls.ScalarFromCanonicalBytes(buf[i*BytesPerFieldElement : (i+1)*BytesPerFieldElement])
		if err != nil {
			return nil, ErrScalarNonCanonical
		}
		out[i] = s
	}
	return out, nil
}

// SerializeCell encodes scalars (length FieldElementsPerCell) as BytesPerCell
// big-endian bytes.
func SerializeCell(scalars []bls.Scalar) []byte {
	return serializeScalars(scalars)
}

// SerializeBlob encodes scalars (length FieldElementsPerBlob) as BytesPerBlob
// big-endian bytes.
func SerializeBlob(scalars []bls.Scalar) []byte {
	return serializeScalars(scalars)
}

func serializeScalars(scalars []bls.Scalar) []byte {
	out := make([]byte, 0, len(scalars)*BytesPerFieldElement)
	for i := range scalars {
		out = append(out, bls.ScalarToCanonicalBytes(&scalars[i])...)
	}
	return out
}

// ParseCommitment validates and decodes a 48-byte compressed G1 commitment.
func ParseCommitment(b []byte) (bls.G1Affine, error) {
	if len(b) != BytesPerCommitment {
		return bls.G1Affine{}, ErrCommitmentInvalidLength
	}
	p, err := bls.G1FromCompressed(b)
	if err != nil {
		return bls.G1Affine{}, err
	}
	return p, nil
}

// ParseProof validates and decodes a 48-byte compressed G1 proof.
func ParseProof(b []byte) (bls.G1Affine, error) {
	if len(b) != BytesPerProof {
		return bls.G1Affine{}, ErrCommitmentInvalidLength
	}
	p, err := bls.G1FromCompressed(b)
	if err != nil {
		return bls.G1Affine{}, err
	}
	return p, nil
}

// ValidateCellIndex checks idx is within [0, CellsPerExtBlob).
func ValidateCellIndex(idx uint64) error {
	if idx >= CellsPerExtBlob {
		return ErrCellIndexOutOfRange
	}
	return nil
}

// ValidateAscendingUnique checks that indices is strictly ascending, which
// for integer indices implies uniqueness.
func ValidateAscendingUnique(indices []uint64) error {
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return ErrCellIndicesNotUniquelyOrdered
		}
	}
	return nil
}
