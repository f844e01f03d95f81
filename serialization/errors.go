package serialization

import "errors"

var (
	ErrBlobInvalidLength             = errors.New("serialization: blob has invalid length")
	ErrCellInvalidLength             = errors.New("serialization: cell has invalid length")
	ErrCommitmentInvalidLength       = errors.New("serialization: commitment has invalid length")
	ErrScalarNonCanonical            = errors.New("serialization: scalar is not canonical")
	ErrCellIndexOutOfRange           = errors.New("serialization: cell index out of range")
	ErrCommitmentIndexOutOfRange     = errors.New("serialization: commitment index out of range")
	ErrCellIndicesNotUniquelyOrdered = errors.New("serialization: cell indices are not strictly ascending")
	ErrNotEnoughCellsToReconstruct   = errors.New("serialization: not enough cells to reconstruct the blob")
	ErrTooManyCellsReceived          = errors.New("serialization: too many cells received")
	ErrNumCellIndicesNotEqualToCells = errors.New("serialization: number of cell indices does not match number of cells")
	ErrBatchInputsLengthMismatch     = errors.New("serialization: batch verification inputs have mismatched lengths")
)
