// Package serialization implements canonical parsing and validation of the
// wire formats for blobs, cells, commitments, and proofs: the fixed byte
// lengths, range checks on indices, and ascending-order/uniqueness checks
// required before any cryptographic work begins.
package serialization

const (
	FieldElementsPerBlob    = 4096
	ExpansionFactor         = 2
	FieldElementsPerExtBlob = FieldElementsPerBlob * ExpansionFactor
	FieldElementsPerCell    = 64
	CellsPerExtBlob         = FieldElementsPerExtBlob / FieldElementsPerCell

	BytesPerFieldElement = 32
	BytesPerCommitment    = 48
	BytesPerProof         = 48
	BytesPerCell          = FieldElementsPerCell * BytesPerFieldElement
	BytesPerBlob          = FieldElementsPerBlob * BytesPerFieldElement
)
