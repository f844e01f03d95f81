package fk20

import (
	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/msm"
	"github.com/dasguild/peerdas-kzg/polynomial"
	"github.com/dasguild/peerdas-kzg/serialization"
)

// Prover commits to blob-sized polynomials and computes, for every coset of
// the extended evaluation domain, the coset's evaluations together with a
// single aggregated KZG opening proof — the FK20 multi-opening.
type Prover struct {
	commitKey  []bls.G1Affine // length FieldElementsPerBlob, monomial-basis SRS
	commitMSM  *msm.FixedBase

	polyDomain     *domain.Domain // size FieldElementsPerBlob
	extendedDomain *domain.Domain // size 2*FieldElementsPerBlob
	proofDomain    *domain.Domain // size CellsPerExtBlob

	numSlices int // FieldElementsPerCell
	dim       int // FieldElementsPerBlob / FieldElementsPerCell
	batch     *BatchToeplitz
}

// NewProver builds a Prover from a monomial-basis G1 commit key of at least
// FieldElementsPerBlob points. precompWidth, if nonzero, enables the
// windowed multiples table for both the commitment MSM and the
// per-FFT-index batched Toeplitz MSMs.
func NewProver(commitKey []bls.G1Affine, precompWidth uint) (*Prover, error) {
	if len(commitKey) < serialization.FieldElementsPerBlob {
		return nil, ErrCommitKeyTooShort
	}
	commitKey = commitKey[:serialization.FieldElementsPerBlob]

	polyDomain, err := domain.New(serialization.FieldElementsPerBlob)
	if err != nil {
		return nil, err
	}
	extendedDomain, err := domain.New(serialization.FieldElementsPerExtBlob)
	if err != nil {
		return nil, err
	}
	proofDomain, err := domain.New(serialization.CellsPerExtBlob)
	if err != nil {
		return nil, err
	}

	numSlices := serialization.FieldElementsPerCell
	dim := serialization.FieldElementsPerBlob / serialization.FieldElementsPerCell

	batch, err := NewBatchToeplitz(commitKey, numSlices, dim, precompWidth)
	if err != nil {
		return nil, err
	}

	var commitMSM *msm.FixedBase
	if precompWidth > 0 {
		commitMSM = msm.NewPrecomp(commitKey, precompWidth)
	} else {
		commitMSM = msm.NewNoPrecomp(commitKey)
	}

	return &Prover{
		commitKey:      commitKey,
		commitMSM:      commitMSM,
		polyDomain:     polyDomain,
		extendedDomain: extendedDomain,
		proofDomain:    proofDomain,
		numSlices:      numSlices,
		dim:            dim,
		batch:          batch,
	}, nil
}

// DataToPoly interpolates a length-FieldElementsPerBlob vector of
// bit-reversed evaluations (the wire order blob data is given in) into
// monomial coefficients.
func (p *Prover) DataToPoly(data []bls.Scalar) (polynomial.Coeff, error) {
	if len(data) > serialization.FieldElementsPerBlob {
		return nil, ErrPolynomialTooLong
	}
	reversed := make([]bls.Scalar, serialization.FieldElementsPerBlob)
	copy(reversed, data)
	domain.Permute(reversed)
	return polynomial.Coeff(p.polyDomain.IFFTScalars(reversed)), nil
}

// CommitPoly commits to poly (monomial coefficients) under the commit key.
func (p *Prover) CommitPoly(poly polynomial.Coeff) (bls.G1Affine, error) {
	if len(poly) > len(p.commitKey) {
		return bls.G1Affine{}, ErrPolynomialTooLong
	}
	padded := make([]bls.Scalar, len(p.commitKey))
	copy(padded, poly)
	r, err := p.commitMSM.MSM(padded)
	if err != nil {
		return bls.G1Affine{}, err
	}
	var out bls.G1Affine
	out.FromJacobian(&r)
	return out, nil
}

// CommitData interpolates data then commits to the resulting polynomial.
func (p *Prover) CommitData(data []bls.Scalar) (bls.G1Affine, error) {
	poly, err := p.DataToPoly(data)
	if err != nil {
		return bls.G1Affine{}, err
	}
	return p.CommitPoly(poly)
}

// ComputeCosetEvaluations evaluates poly over every coset of the extended
// domain, returning CellsPerExtBlob chunks of FieldElementsPerCell scalars
// each, in coset-index order.
func (p *Prover) ComputeCosetEvaluations(poly polynomial.Coeff) [][]bls.Scalar {
	evals := p.extendedDomain.FFTScalars(poly)
	domain.Permute(evals)

	cosets := make([][]bls.Scalar, serialization.CellsPerExtBlob)
	for k := range cosets {
		cosets[k] = append([]bls.Scalar(nil), evals[k*p.numSlices:(k+1)*p.numSlices]...)
	}
	return cosets
}

// ComputeMultiOpeningProofs computes, for a polynomial of degree less than
// FieldElementsPerBlob, the per-coset evaluations and their aggregated FK20
// opening proofs: cosets[k] and proofs[k] together attest that poly
// restricted to the k-th coset of the extended domain takes the values
// cosets[k].
func (p *Prover) ComputeMultiOpeningProofs(poly polynomial.Coeff) (cosets [][]bls.Scalar, proofs []bls.G1Affine, err error) {
	if len(poly) > serialization.FieldElementsPerBlob {
		return nil, nil, ErrPolynomialTooLong
	}
	padded := make([]bls.Scalar, serialization.FieldElementsPerBlob)
	copy(padded, poly)

	cosets = p.ComputeCosetEvaluations(padded)

	// Row i takes the coefficients of the reversed polynomial at stride
	// numSlices starting from offset i: rows[i][j] = padded[N-1-i-j*numSlices].
	rows := make([][]bls.Scalar, p.numSlices)
	for i := 0; i < p.numSlices; i++ {
		row := make([]bls.Scalar, p.dim)
		for j := 0; j < p.dim; j++ {
			idx := len(padded) - 1 - i - j*p.numSlices
			if idx >= 0 {
				row[j] = padded[idx]
			}
		}
		rows[i] = row
	}

	hExt, err := p.batch.SumMatrixVectorMul(rows)
	if err != nil {
		return nil, nil, err
	}

	proofs = p.proofDomain.FFTG1(hExt)
	domain.Permute(proofs)
	return cosets, proofs, nil
}
