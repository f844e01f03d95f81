package fk20

import (
	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/msm"
)

// BatchToeplitz precomputes, per FFT index of the circulant embedding
// shared by every one of numSlices same-shaped Toeplitz matrices, a
// FixedBase MSM table over the numSlices SRS-derived bases landing at that
// index. SumMatrixVectorMul then amortizes the h-polynomial aggregation
// step of FK20 into one MSM per FFT index instead of numSlices separate
// Toeplitz-matrix-by-SRS-vector products.
type BatchToeplitz struct {
	numSlices int
	dim       int
	circDom   *domain.Domain
	tables    []*msm.FixedBase // len == 2*dim
}

// NewBatchToeplitz builds the per-FFT-index MSM tables from numSlices SRS
// subsequences, each of length dim, derived from g1s as srsVectors[i][j] =
// reverse(g1s[:len(g1s)-numSlices])[i + j*numSlices], identity-padded to
// dim.
func NewBatchToeplitz(g1s []bls.G1Affine, numSlices, dim int, precompWidth uint) (*BatchToeplitz, error) {
	circDom, err := domain.New(uint64(2 * dim))
	if err != nil {
		return nil, err
	}

	truncated := g1s[:len(g1s)-numSlices]
	reversed := make([]bls.G1Affine, len(truncated))
	for i := range truncated {
		reversed[i] = truncated[len(truncated)-1-i]
	}

	identity := bls.G1Identity()
	srsVectors := make([][]bls.G1Affine, numSlices)
	for i := 0; i < numSlices; i++ {
		vec := make([]bls.G1Affine, 0, dim)
		for idx := i; idx < len(reversed); idx += numSlices {
			vec = append(vec, reversed[idx])
		}
		for len(vec) < dim {
			vec = append(vec, identity)
		}
		srsVectors[i] = vec[:dim]
	}

	fftSRS := make([][]bls.G1Affine, numSlices)
	for i, vec := range srsVectors {
		fftSRS[i] = circDom.FFTG1(vec)
	}

	tables := make([]*msm.FixedBase, circDom.Size)
	for j := range tables {
		bases := make([]bls.G1Affine, numSlices)
		for i := 0; i < numSlices; i++ {
			bases[i] = fftSRS[i][j]
		}
		if precompWidth > 0 {
			tables[j] = msm.NewPrecomp(bases, precompWidth)
		} else {
			tables[j] = msm.NewNoPrecomp(bases)
		}
	}

	return &BatchToeplitz{numSlices: numSlices, dim: dim, circDom: circDom, tables: tables}, nil
}

// SumMatrixVectorMul computes sum_i Toeplitz(rows[i]) * x_i folded across
// all numSlices slices at once, returning the first dim entries of the
// aggregated product (the rest of the circulant embedding is padding).
// rows[i] supplies the i-th Toeplitz matrix's first row; its first column
// is taken to be rows[i][0] followed by zeros, the shape FK20's
// h-polynomial aggregation always uses.
func (bt *BatchToeplitz) SumMatrixVectorMul(rows [][]bls.Scalar) ([]bls.G1Affine, error) {
	if len(rows) != bt.numSlices {
		return nil, ErrSliceCountMismatch
	}

	fftRows := make([][]bls.Scalar, bt.numSlices)
	for i, row := range rows {
		col := make([]bls.Scalar, bt.dim)
		col[0] = row[0]
		t, err := NewToeplitz(row, col)
		if err != nil {
			return nil, err
		}
		fftRows[i] = bt.circDom.FFTScalars(t.CirculantGeneratingRow())
	}

	sums := make([]bls.G1Jac, bt.circDom.Size)
	for j := range sums {
		scalarsAtJ := make([]bls.Scalar, bt.numSlices)
		for i := range fftRows {
			scalarsAtJ[i] = fftRows[i][j]
		}
		r, err := bt.tables[j].MSM(scalarsAtJ)
		if err != nil {
			return nil, err
		}
		sums[j] = r
	}

	sumsAffine := make([]bls.G1Affine, len(sums))
	for i := range sums {
		sumsAffine[i].FromJacobian(&sums[i])
	}
	return bt.circDom.IFFTG1TakeN(sumsAffine, bt.dim), nil
}
