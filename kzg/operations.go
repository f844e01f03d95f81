package kzg

import (
	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/serialization"
	"github.com/dasguild/peerdas-kzg/verify"
)

// BlobToCommitment commits to a blob and returns the 48-byte compressed
// commitment.
func (c *Context) BlobToCommitment(blob []byte) ([]byte, error) {
	prover, err := c.requireProver()
	if err != nil {
		return nil, err
	}
	scalars, err := serialization.ParseBlob(blob)
	if err != nil {
		return nil, err
	}
	commitment, err := prover.CommitData(scalars)
	if err != nil {
		return nil, err
	}
	return bls.G1ToCompressed(&commitment), nil
}

// ComputeCellsAndKZGProofs returns all 128 cells and their opening proofs
// for a blob.
func (c *Context) ComputeCellsAndKZGProofs(blob []byte) (cells [][]byte, proofs [][]byte, err error) {
	prover, err := c.requireProver()
	if err != nil {
		return nil, nil, err
	}
	scalars, err := serialization.ParseBlob(blob)
	if err != nil {
		return nil, nil, err
	}
	poly, err := prover.DataToPoly(scalars)
	if err != nil {
		return nil, nil, err
	}
	cosets, proofPoints, err := prover.ComputeMultiOpeningProofs(poly)
	if err != nil {
		return nil, nil, err
	}
	return serializeCosets(cosets), serializeProofs(proofPoints), nil
}

// ComputeCells returns all 128 cells for a blob, without computing proofs.
func (c *Context) ComputeCells(blob []byte) ([][]byte, error) {
	prover, err := c.requireProver()
	if err != nil {
		return nil, err
	}
	scalars, err := serialization.ParseBlob(blob)
	if err != nil {
		return nil, err
	}
	poly, err := prover.DataToPoly(scalars)
	if err != nil {
		return nil, err
	}
	return serializeCosets(prover.ComputeCosetEvaluations(poly)), nil
}

// RecoverCellsAndKZGProofs reconstructs all 128 cells and their opening
// proofs from a partial, ascending-ordered set of cells.
func (c *Context) RecoverCellsAndKZGProofs(cellIndices []uint64, cells [][]byte) (recoveredCells [][]byte, proofs [][]byte, err error) {
	prover, err := c.requireProver()
	if err != nil {
		return nil, nil, err
	}
	if len(cellIndices) != len(cells) {
		return nil, nil, serialization.ErrNumCellIndicesNotEqualToCells
	}
	if len(cellIndices) > serialization.CellsPerExtBlob {
		return nil, nil, serialization.ErrTooManyCellsReceived
	}
	if len(cellIndices) < serialization.CellsPerExtBlob/serialization.ExpansionFactor {
		return nil, nil, serialization.ErrNotEnoughCellsToReconstruct
	}
	if err := serialization.ValidateAscendingUnique(cellIndices); err != nil {
		return nil, nil, err
	}
	for _, idx := range cellIndices {
		if err := serialization.ValidateCellIndex(idx); err != nil {
			return nil, nil, err
		}
	}

	present := make([]bool, serialization.CellsPerExtBlob)
	domainOrder := make([]bls.Scalar, serialization.FieldElementsPerExtBlob)
	cosetBits := log2(serialization.CellsPerExtBlob)
	cellBits := log2(serialization.FieldElementsPerCell)

	for i, idx := range cellIndices {
		scalars, err := serialization.ParseCell(cells[i])
		if err != nil {
			return nil, nil, err
		}
		present[idx] = true
		base := domain.ReverseBits(idx, cosetBits)
		for t, s := range scalars {
			pos := base + serialization.CellsPerExtBlob*domain.ReverseBits(uint64(t), cellBits)
			domainOrder[pos] = s
		}
	}

	var erasures []int
	for k := uint64(0); k < serialization.CellsPerExtBlob; k++ {
		if !present[k] {
			erasures = append(erasures, int(domain.ReverseBits(k, cosetBits)))
		}
	}

	recoveredPoly, err := c.recovery.RecoverPolynomialCoefficient(domainOrder, erasures)
	if err != nil {
		return nil, nil, err
	}

	cosets, proofPoints, err := prover.ComputeMultiOpeningProofs(recoveredPoly)
	if err != nil {
		return nil, nil, err
	}
	return serializeCosets(cosets), serializeProofs(proofPoints), nil
}

// VerifyCellKZGProofBatch verifies a batch of cell proofs. commitments is a
// deduplicated list; commitmentIndices, cellIndices, cells, and proofs are
// four parallel arrays (all equal length) describing each proof.
func (c *Context) VerifyCellKZGProofBatch(commitments [][]byte, commitmentIndices, cellIndices []uint64, cells, proofs [][]byte) (bool, error) {
	if len(commitmentIndices) != len(cellIndices) || len(cellIndices) != len(cells) || len(cells) != len(proofs) {
		return false, serialization.ErrBatchInputsLengthMismatch
	}

	parsedCommitments := make([]bls.G1Affine, len(commitments))
	for i, raw := range commitments {
		p, err := serialization.ParseCommitment(raw)
		if err != nil {
			return false, err
		}
		parsedCommitments[i] = p
	}

	inputs := make([]verify.BatchInput, len(cells))
	for i := range cells {
		evals, err := serialization.ParseCell(cells[i])
		if err != nil {
			return false, err
		}
		proof, err := serialization.ParseProof(proofs[i])
		if err != nil {
			return false, err
		}
		inputs[i] = verify.BatchInput{
			CommitmentIndex: commitmentIndices[i],
			CosetIndex:      cellIndices[i],
			Evals:           evals,
			Proof:           proof,
		}
	}

	return c.verifier.BatchVerify(parsedCommitments, inputs)
}

func serializeCosets(cosets [][]bls.Scalar) [][]byte {
	out := make([][]byte, len(cosets))
	for i, c := range cosets {
		out[i] = serialization.SerializeCell(c)
	}
	return out
}

func serializeProofs(proofs []bls.G1Affine) [][]byte {
	out := make([][]byte, len(proofs))
	for i := range proofs {
		out[i] = bls.G1ToCompressed(&proofs[i])
	}
	return out
}

func log2(n int) uint {
	var bits uint
	for v := n; v > 1; v >>= 1 {
		bits++
	}
	return bits
}
