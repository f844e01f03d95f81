package kzg_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/kzg"
	"github.com/dasguild/peerdas-kzg/serialization"
)

// TestProverVerifierRoundTrip is Scenario A: a blob whose i-th scalar is i,
// verified at a handful of cell indices, then a corrupted proof rejected.
func TestProverVerifierRoundTrip(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blob := blobFromIndices(serialization.FieldElementsPerBlob)
	commitment, err := ctx.BlobToCommitment(blob)
	c.Assert(err, qt.IsNil)

	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(blob)
	c.Assert(err, qt.IsNil)
	c.Assert(cells, qt.HasLen, serialization.CellsPerExtBlob)
	c.Assert(proofs, qt.HasLen, serialization.CellsPerExtBlob)

	indices := []uint64{0, 1, 63, 64, 127}
	commitmentIndices := make([]uint64, len(indices))
	cellIndices := make([]uint64, len(indices))
	batchCells := make([][]byte, len(indices))
	batchProofs := make([][]byte, len(indices))
	for i, k := range indices {
		commitmentIndices[i] = 0
		cellIndices[i] = k
		batchCells[i] = cells[k]
		batchProofs[i] = proofs[k]
	}

	ok, err := ctx.VerifyCellKZGProofBatch([][]byte{commitment}, commitmentIndices, cellIndices, batchCells, batchProofs)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	corrupted := append([]byte(nil), proofs[64]...)
	corrupted[0] ^= 0xFF
	batchProofs[3] = corrupted // proofs[64] is at position 3 in indices

	ok, err = ctx.VerifyCellKZGProofBatch([][]byte{commitment}, commitmentIndices, cellIndices, batchCells, batchProofs)
	c.Assert(kzg.IsProofInvalid(err), qt.IsTrue)
	c.Assert(ok, qt.IsFalse)
}

// TestDataOrderingProperty is P3: the first FIELD_ELEMENTS_PER_BLOB scalars
// of the flattened cells equal the original data, byte-for-byte.
func TestDataOrderingProperty(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blob := blobFromIndices(serialization.FieldElementsPerBlob)
	cells, err := ctx.ComputeCells(blob)
	c.Assert(err, qt.IsNil)

	flattened := make([]byte, 0, serialization.BytesPerBlob)
	for _, cell := range cells {
		flattened = append(flattened, cell...)
	}
	c.Assert(flattened[:serialization.BytesPerBlob], qt.DeepEquals, blob)
}

// TestRecoveryAtThreshold is Scenario B: drop the 64 even-indexed cells,
// recover from the 64 odd-indexed ones, and expect byte-identical output.
func TestRecoveryAtThreshold(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blob := blobFromIndices(serialization.FieldElementsPerBlob)
	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(blob)
	c.Assert(err, qt.IsNil)

	var oddIndices []uint64
	var oddCells [][]byte
	for k := uint64(1); k < serialization.CellsPerExtBlob; k += 2 {
		oddIndices = append(oddIndices, k)
		oddCells = append(oddCells, cells[k])
	}

	recoveredCells, recoveredProofs, err := ctx.RecoverCellsAndKZGProofs(oddIndices, oddCells)
	c.Assert(err, qt.IsNil)
	c.Assert(recoveredCells, qt.HasLen, serialization.CellsPerExtBlob)
	for k := 0; k < serialization.CellsPerExtBlob; k++ {
		c.Assert(recoveredCells[k], qt.DeepEquals, cells[k], qt.Commentf("cell %d", k))
		c.Assert(recoveredProofs[k], qt.DeepEquals, proofs[k], qt.Commentf("proof %d", k))
	}
}

// TestRecoveryBelowThreshold is Scenario C.
func TestRecoveryBelowThreshold(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blob := blobFromIndices(serialization.FieldElementsPerBlob)
	cells, _, err := ctx.ComputeCellsAndKZGProofs(blob)
	c.Assert(err, qt.IsNil)

	indices := make([]uint64, 63)
	partial := make([][]byte, 63)
	for i := 0; i < 63; i++ {
		indices[i] = uint64(i)
		partial[i] = cells[i]
	}

	_, _, err = ctx.RecoverCellsAndKZGProofs(indices, partial)
	c.Assert(err, qt.Equals, serialization.ErrNotEnoughCellsToReconstruct)
}

// TestRecoveryRejectsNonAscendingIndices is Scenario D.
func TestRecoveryRejectsNonAscendingIndices(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blob := blobFromIndices(serialization.FieldElementsPerBlob)
	cells, _, err := ctx.ComputeCellsAndKZGProofs(blob)
	c.Assert(err, qt.IsNil)

	indices := []uint64{1, 0}
	for k := uint64(2); k < serialization.CellsPerExtBlob/2; k++ {
		indices = append(indices, k)
	}
	partial := make([][]byte, len(indices))
	for i := range indices {
		partial[i] = cells[indices[i]]
	}

	_, _, err = ctx.RecoverCellsAndKZGProofs(indices, partial)
	c.Assert(err, qt.Equals, serialization.ErrCellIndicesNotUniquelyOrdered)
}

// TestVerifyCellKZGProofBatchEmptyVacuouslyTrue is Scenario G.
func TestVerifyCellKZGProofBatchEmptyVacuouslyTrue(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeVerifierOnly)

	ok, err := ctx.VerifyCellKZGProofBatch(nil, nil, nil, nil, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
}

// TestDedupEquivalence is Scenario E: verifying with a deduplicated
// commitments list gives the same result as verifying with repeats, as long
// as the commitment indices stay consistent.
func TestDedupEquivalence(t *testing.T) {
	c := qt.New(t)
	ctx := newTestContext(t, kzg.ModeProverNoPrecomp)

	blobA := blobFromIndices(serialization.FieldElementsPerBlob)
	blobB := blobFromUint64Seed(7)

	commitmentA, err := ctx.BlobToCommitment(blobA)
	c.Assert(err, qt.IsNil)
	commitmentB, err := ctx.BlobToCommitment(blobB)
	c.Assert(err, qt.IsNil)

	cellsA, proofsA, err := ctx.ComputeCellsAndKZGProofs(blobA)
	c.Assert(err, qt.IsNil)
	cellsB, proofsB, err := ctx.ComputeCellsAndKZGProofs(blobB)
	c.Assert(err, qt.IsNil)

	const sampleCount = 8
	var cellIndices, dedupCommitmentIndices, repeatCommitmentIndices []uint64
	var cells, proofs [][]byte
	var dedupCommitments, repeatCommitments [][]byte
	for i := 0; i < sampleCount; i++ {
		k := uint64(i)
		if i%2 == 0 {
			cells = append(cells, cellsA[k])
			proofs = append(proofs, proofsA[k])
			dedupCommitmentIndices = append(dedupCommitmentIndices, 0)
			repeatCommitmentIndices = append(repeatCommitmentIndices, uint64(len(repeatCommitments)))
			repeatCommitments = append(repeatCommitments, commitmentA)
		} else {
			cells = append(cells, cellsB[k])
			proofs = append(proofs, proofsB[k])
			dedupCommitmentIndices = append(dedupCommitmentIndices, 1)
			repeatCommitmentIndices = append(repeatCommitmentIndices, uint64(len(repeatCommitments)))
			repeatCommitments = append(repeatCommitments, commitmentB)
		}
		cellIndices = append(cellIndices, k)
	}
	dedupCommitments = [][]byte{commitmentA, commitmentB}

	okDedup, err := ctx.VerifyCellKZGProofBatch(dedupCommitments, dedupCommitmentIndices, cellIndices, cells, proofs)
	c.Assert(err, qt.IsNil)
	okRepeat, err := ctx.VerifyCellKZGProofBatch(repeatCommitments, repeatCommitmentIndices, cellIndices, cells, proofs)
	c.Assert(err, qt.IsNil)

	c.Assert(okDedup, qt.IsTrue)
	c.Assert(okRepeat, qt.Equals, okDedup)
}

func blobFromUint64Seed(seed uint64) []byte {
	out := make([]byte, 0, serialization.BytesPerBlob)
	cur := seed
	for i := 0; i < serialization.FieldElementsPerBlob; i++ {
		cur = cur*6364136223846793005 + 1
		var s bls.Scalar
		s.SetUint64(cur)
		out = append(out, bls.ScalarToCanonicalBytes(&s)...)
	}
	return out
}
