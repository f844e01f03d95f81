// Package rs implements Reed-Solomon erasure coding over the BLS12-381
// scalar field, specialised for "block-synchronised" erasure patterns: the
// same position is missing from every block of the codeword, which is
// exactly the pattern produced by PeerDAS's cell layout.
package rs

import (
	"math/big"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
	"github.com/dasguild/peerdas-kzg/internal/batchinvert"
	"github.com/dasguild/peerdas-kzg/polynomial"
)

// Config describes a Reed-Solomon code: a polynomial of length polyLen is
// encoded onto a codeword of length polyLen*expansionFactor, itself split
// into numBlocks blocks of blockSize scalars. All three parameters must be
// powers of two.
type Config struct {
	PolyLen         uint64
	ExpansionFactor uint64
	BlockSize       uint64

	codewordLen        uint64
	numBlocks          uint64
	acceptableErasures uint64

	codewordDomain *domain.Domain
	blockDomain    *domain.Domain
}

// NewConfig builds a Config, precomputing the domains used by Encode and
// Recover.
func NewConfig(polyLen, expansionFactor, blockSize uint64) (*Config, error) {
	codewordLen := polyLen * expansionFactor
	numBlocks := codewordLen / blockSize

	codewordDomain, err := domain.New(codewordLen)
	if err != nil {
		return nil, err
	}
	blockDomain, err := domain.New(blockSize)
	if err != nil {
		return nil, err
	}

	return &Config{
		PolyLen:            polyLen,
		ExpansionFactor:    expansionFactor,
		BlockSize:          blockSize,
		codewordLen:        codewordLen,
		numBlocks:          numBlocks,
		acceptableErasures: (codewordLen - polyLen) / numBlocks,
		codewordDomain:     codewordDomain,
		blockDomain:        blockDomain,
	}, nil
}

// CodewordLen returns polyLen*expansionFactor.
func (c *Config) CodewordLen() uint64 { return c.codewordLen }

// NumBlocks returns codewordLen/blockSize.
func (c *Config) NumBlocks() uint64 { return c.numBlocks }

// AcceptableErasures returns the maximum number of block erasure indices
// that can be recovered from.
func (c *Config) AcceptableErasures() uint64 { return c.acceptableErasures }

// Encode pads p to codewordLen with zeros (failing if p is longer than
// PolyLen) and evaluates it over the extended domain.
func (c *Config) Encode(p polynomial.Coeff) ([]bls.Scalar, error) {
	if uint64(len(p)) > c.PolyLen {
		return nil, ErrPolynomialTooLong
	}
	return c.codewordDomain.FFTScalars(p), nil
}

// RecoverPolynomialCoefficient reconstructs a degree-<PolyLen polynomial
// from a codeword that has the same block erasure index missing from every
// block (codewordWithErasures must already carry zeros at erased
// positions).
func (c *Config) RecoverPolynomialCoefficient(codewordWithErasures []bls.Scalar, blockErasureIndices []int) (polynomial.Coeff, error) {
	if uint64(len(blockErasureIndices)) > c.acceptableErasures {
		return nil, ErrTooManyBlockErasures
	}
	for _, idx := range blockErasureIndices {
		if idx < 0 || uint64(idx) >= c.BlockSize {
			return nil, ErrInvalidBlockIndex
		}
	}

	zCoeffs := c.vanishingPolyCoefficients(blockErasureIndices)

	// D*Z on the evaluation domain equals E*Z, since Z vanishes exactly at
	// the erased positions and E==D everywhere else.
	zEvalsOnDomain := c.codewordDomain.FFTScalars(zCoeffs)
	productEvals := make([]bls.Scalar, c.codewordLen)
	for i := range productEvals {
		productEvals[i].Mul(&codewordWithErasures[i], &zEvalsOnDomain[i])
	}
	dzCoeffs := c.codewordDomain.IFFTScalars(productEvals)

	// Divide by Z on a coset where Z has no roots.
	cosetGen := bls.MultiplicativeGenerator()
	dzCoset := c.codewordDomain.CosetFFTScalars(dzCoeffs, cosetGen)
	zCoset := c.codewordDomain.CosetFFTScalars(zCoeffs, cosetGen)

	zCosetInv, err := batchinvert.Invert(zCoset)
	if err != nil {
		return nil, ErrTooManyBlockErasures
	}

	dCoset := make([]bls.Scalar, c.codewordLen)
	for i := range dCoset {
		dCoset[i].Mul(&dzCoset[i], &zCosetInv[i])
	}
	recovered := c.codewordDomain.CosetIFFTScalars(dCoset, cosetGen)

	for i := c.PolyLen; i < c.codewordLen; i++ {
		if !recovered[i].IsZero() {
			return nil, ErrPolynomialHasInvalidLength
		}
	}
	return polynomial.Coeff(recovered[:c.PolyLen]), nil
}

// vanishingPolyCoefficients builds the monomial coefficients of
// Z(x) = v(x^numBlocks), where v is the vanishing polynomial of the block
// erasure indices over the block-size subgroup. Z vanishes at every
// position {omega^(idx + j*blockSize)} for j in [0, numBlocks), which is
// exactly the erased set under the block-synchronised pattern.
func (c *Config) vanishingPolyCoefficients(blockErasureIndices []int) polynomial.Coeff {
	roots := make([]bls.Scalar, len(blockErasureIndices))
	for i, idx := range blockErasureIndices {
		roots[i].Exp(c.blockDomain.Generator, new(big.Int).SetUint64(uint64(idx)))
	}
	v := polynomial.VanishingPoly(roots)

	z := make(polynomial.Coeff, c.codewordLen)
	for i, coeff := range v {
		z[uint64(i)*c.numBlocks] = coeff
	}
	return z
}

// VanishingPolyEvaluatesToZeroOnErasures is a small testing helper exposing
// the construction in vanishingPolyCoefficients so property tests (P8) can
// check it evaluates to zero exactly on the predicted positions, without
// reaching into unexported state.
func (c *Config) VanishingPolyEvaluatesToZeroOnErasures(blockErasureIndices []int) polynomial.Coeff {
	return c.vanishingPolyCoefficients(blockErasureIndices)
}
