package trustedsetup

import (
	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/domain"
)

// insecureTau is a fixed, publicly-known toxic waste value. A setup built
// from it carries no security whatsoever; it exists so tests and local
// experimentation can exercise the full commit/open/verify/recover pipeline
// without running a real ceremony.
var insecureTau = func() bls.Scalar {
	var s bls.Scalar
	s.SetUint64(0xc0ffee1337babe)
	return s
}()

// Insecure generates a toy Setup over polynomials of degree < n, using
// insecureTau as the secret. Never use this outside of tests.
func Insecure(n int) *Setup {
	g1gen := bls.G1Generator()
	g2gen := bls.G2Generator()

	g1Monomial := make([]bls.G1Affine, n)
	g2Monomial := make([]bls.G2Affine, n)
	var cur bls.Scalar
	cur.SetOne()
	for i := 0; i < n; i++ {
		g1Monomial[i] = bls.G1ScalarMul(&g1gen, &cur)
		g2Monomial[i] = bls.G2ScalarMul(&g2gen, &cur)
		cur.Mul(&cur, &insecureTau)
	}

	lagrange, err := toLagrange(g1Monomial)
	if err != nil {
		// n is caller-controlled and always a valid domain size in practice;
		// falling back to the monomial basis keeps Insecure panic-free for
		// the odd size a test might pass.
		lagrange = g1Monomial
	}

	return &Setup{
		G1Monomial: g1Monomial,
		G1Lagrange: lagrange,
		G2Monomial: g2Monomial,
	}
}

// toLagrange converts a monomial-basis G1 setup into the Lagrange basis over
// the same-size evaluation domain: the Lagrange-basis SRS point for domain
// position i is G1^(L_i(tau)), and an inverse FFT of the monomial points
// produces exactly that vector.
func toLagrange(monomial []bls.G1Affine) ([]bls.G1Affine, error) {
	d, err := domain.New(uint64(len(monomial)))
	if err != nil {
		return nil, err
	}
	return d.IFFTG1TakeN(monomial, len(monomial)), nil
}
