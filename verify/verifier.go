// Package verify implements the FK20 batch verifier: it folds an
// arbitrary number of per-coset KZG opening proofs, against a
// deduplicated list of commitments, into a single two-pairing check via
// a Fiat-Shamir random linear combination.
package verify

import (
	"math/big"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/msm"
	"github.com/dasguild/peerdas-kzg/polynomial"
)

// VerificationKey holds everything BatchVerify needs that is fixed across
// calls: the G2 element at the coset-size power of tau (the pairing
// check's other leg), the G2 generator, and a G1 SRS prefix long enough to
// commit to any degree-<cosetSize interpolation polynomial.
type VerificationKey struct {
	TauPowCosetSizeG2 bls.G2Affine
	G2Gen             bls.G2Affine
	CommitKeyG1       []bls.G1Affine // length >= CosetSize

	CosetSize       int
	NumCosets       int // CELLS_PER_EXT_BLOB
	PolynomialBound int // FIELD_ELEMENTS_PER_BLOB

	extendedGen bls.Scalar // generator of the order-(CosetSize*NumCosets) subgroup
	cosetDomain *domain.Domain
	commitMSM   *msm.FixedBase
}

// NewVerificationKey builds a VerificationKey. tauPowCosetSizeG2 must equal
// [tau^cosetSize]_2 from the trusted setup.
func NewVerificationKey(commitKeyG1 []bls.G1Affine, tauPowCosetSizeG2 bls.G2Affine, cosetSize, numCosets, polynomialBound int) (*VerificationKey, error) {
	if len(commitKeyG1) < cosetSize {
		return nil, ErrCommitKeyTooShort
	}
	extendedDomain, err := domain.New(uint64(cosetSize * numCosets))
	if err != nil {
		return nil, err
	}
	cosetDomain, err := domain.New(uint64(cosetSize))
	if err != nil {
		return nil, err
	}

	prefix := commitKeyG1[:cosetSize]
	return &VerificationKey{
		TauPowCosetSizeG2: tauPowCosetSizeG2,
		G2Gen:             bls.G2Generator(),
		CommitKeyG1:       prefix,
		CosetSize:         cosetSize,
		NumCosets:         numCosets,
		PolynomialBound:   polynomialBound,
		extendedGen:       extendedDomain.Generator,
		cosetDomain:       cosetDomain,
		commitMSM:         msm.NewNoPrecomp(prefix),
	}, nil
}

// cosetGenerator returns the coset generator h_k = extendedGen^rbo(cosetIndex)
// for a bit-reversed coset index.
func (vk *VerificationKey) cosetGenerator(cosetIndex uint64) bls.Scalar {
	bits := uint(0)
	for n := vk.NumCosets; n > 1; n >>= 1 {
		bits++
	}
	rbo := domain.ReverseBits(cosetIndex, bits)
	var g bls.Scalar
	g.Exp(vk.extendedGen, new(big.Int).SetUint64(rbo))
	return g
}

// BatchVerify validates and verifies a batch of cell-proof inputs against
// commitments (a deduplicated list indexed by BatchInput.CommitmentIndex).
// An empty batch is vacuously valid.
func (vk *VerificationKey) BatchVerify(commitments []bls.G1Affine, inputs []BatchInput) (bool, error) {
	if len(inputs) == 0 {
		return true, nil
	}
	for _, in := range inputs {
		if in.CommitmentIndex >= uint64(len(commitments)) {
			return false, ErrCommitmentIndexOutOfRange
		}
		if in.CosetIndex >= uint64(vk.NumCosets) {
			return false, ErrCosetIndexOutOfRange
		}
		if len(in.Evals) != vk.CosetSize {
			return false, ErrCosetEvalsWrongLength
		}
	}

	r := deriveChallenge(uint64(vk.PolynomialBound), uint64(vk.CosetSize), commitments, inputs)

	proofPowers := make([]bls.Scalar, len(inputs))
	var cur bls.Scalar
	cur.SetOne()
	for i := range inputs {
		proofPowers[i] = cur
		cur.Mul(&cur, &r)
	}

	proofs := make([]bls.G1Affine, len(inputs))
	for i, in := range inputs {
		proofs[i] = in.Proof
	}
	pJac, err := bls.G1MultiExp(proofs, proofPowers)
	if err != nil {
		return false, err
	}
	var p bls.G1Affine
	p.FromJacobian(&pJac)

	commitmentWeights := make([]bls.Scalar, len(commitments))
	for i := range commitmentWeights {
		commitmentWeights[i].SetZero()
	}
	for i, in := range inputs {
		commitmentWeights[in.CommitmentIndex].Add(&commitmentWeights[in.CommitmentIndex], &proofPowers[i])
	}
	cJac, err := bls.G1MultiExp(commitments, commitmentWeights)
	if err != nil {
		return false, err
	}
	var cAgg bls.G1Affine
	cAgg.FromJacobian(&cJac)

	iAcc := make(polynomial.Coeff, vk.CosetSize)
	wWeights := make([]bls.Scalar, len(inputs))
	for i, in := range inputs {
		cosetGen := vk.cosetGenerator(in.CosetIndex)

		// Cell evaluations are in bit-reversed order within the coset; the
		// coset IFFT takes them in natural order.
		natural := append([]bls.Scalar(nil), in.Evals...)
		domain.Permute(natural)
		interp := vk.cosetDomain.CosetIFFTScalars(natural, cosetGen)
		var scaled bls.Scalar
		scaledCoeffs := make(polynomial.Coeff, len(interp))
		for j := range interp {
			scaled.Mul(&interp[j], &proofPowers[i])
			scaledCoeffs[j] = scaled
		}
		iAcc = polynomial.Add(iAcc, scaledCoeffs)

		var cosetGenPowN big.Int
		cosetGenPowN.SetUint64(uint64(vk.CosetSize))
		var genPow bls.Scalar
		genPow.Exp(cosetGen, &cosetGenPowN)
		wWeights[i].Mul(&genPow, &proofPowers[i])
	}

	commitIJac, err := vk.commitMSM.MSM(padCoeff(iAcc, vk.CosetSize))
	if err != nil {
		return false, err
	}
	var commitI bls.G1Affine
	commitI.FromJacobian(&commitIJac)

	wJac, err := bls.G1MultiExp(proofs, wWeights)
	if err != nil {
		return false, err
	}
	var w bls.G1Affine
	w.FromJacobian(&wJac)

	diff := bls.G1Sub(&cAgg, &commitI)
	rhs := bls.G1Add(&diff, &w)
	negG2Gen := bls.G2Affine{}
	negG2Gen.Neg(&vk.G2Gen)

	ok, err := bls.PairingCheck([]bls.G1Affine{p, rhs}, []bls.G2Affine{vk.TauPowCosetSizeG2, negG2Gen})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrInvalidProof
	}
	return true, nil
}

func padCoeff(c polynomial.Coeff, n int) polynomial.Coeff {
	out := make(polynomial.Coeff, n)
	copy(out, c)
	return out
}
