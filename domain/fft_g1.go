package domain

import "github.com/dasguild/peerdas-kzg/bls"

// FFTG1 evaluates a G1 "polynomial" (coefficients in G1, as used for the
// SRS and for FK20's h-polynomial commitments) over the domain's subgroup.
func (d *Domain) FFTG1(p []bls.G1Affine) []bls.G1Affine {
	a := d.padG1(p)
	fftG1InPlace(a, d.roots)
	return toAffine(a)
}

// IFFTG1 interpolates a G1 evaluation vector back to coefficient form.
func (d *Domain) IFFTG1(v []bls.G1Affine) []bls.G1Affine {
	return d.IFFTG1TakeN(v, -1)
}

// IFFTG1TakeN interpolates like IFFTG1 but, when n >= 0, skips the final
// scalar multiplication by 1/Size on coefficients beyond index n-1 and
// returns only the first n entries, saving work when the caller (FK20's
// BatchToeplitz) only needs a truncated prefix.
func (d *Domain) IFFTG1TakeN(v []bls.G1Affine, n int) []bls.G1Affine {
	a := d.padG1(v)
	fftG1InPlace(a, d.rootsInv)

	limit := len(a)
	if n >= 0 && n < limit {
		limit = n
	}
	out := make([]bls.G1Affine, limit)
	for i := 0; i < limit; i++ {
		p := bls.G1ScalarMul(toAffineOne(a[i]), &d.CardinalityInv)
		out[i] = p
	}
	return out
}

func (d *Domain) padG1(p []bls.G1Affine) []bls.G1Jac {
	out := make([]bls.G1Jac, d.Size)
	identity := bls.G1Identity()
	for i := range out {
		if i < len(p) {
			out[i].FromAffine(&p[i])
		} else {
			out[i].FromAffine(&identity)
		}
	}
	return out
}

func toAffine(a []bls.G1Jac) []bls.G1Affine {
	out := make([]bls.G1Affine, len(a))
	for i := range a {
		out[i].FromJacobian(&a[i])
	}
	return out
}

func toAffineOne(j bls.G1Jac) *bls.G1Affine {
	var p bls.G1Affine
	p.FromJacobian(&j)
	return &p
}

// fftG1InPlace mirrors fftScalarsInPlace's butterfly scaffold, but butterfly
// inputs/outputs are G1 points and the twiddle is applied as a scalar
// multiplication; an identity point or a +-1 twiddle short-circuits the
// corresponding group operation.
func fftG1InPlace(a []bls.G1Jac, roots []bls.Scalar) {
	n := len(a)
	Permute(a)

	var one, minusOne bls.Scalar
	one.SetOne()
	minusOne.Neg(&one)

	for blockSize := 2; blockSize <= n; blockSize <<= 1 {
		half := blockSize / 2
		stride := n / blockSize

		numBlocks := n / blockSize
		runButterflyLayer(numBlocks, func(blockIdx int) {
			base := blockIdx * blockSize
			for j := 0; j < half; j++ {
				w := &roots[j*stride]

				u := a[base+j]
				v := a[base+j+half]
				if !v.Z.IsZero() && !w.Equal(&one) {
					if w.Equal(&minusOne) {
						v.Neg(&v)
					} else {
						var wAffine bls.G1Affine
						wAffine.FromJacobian(&v)
						scaled := bls.G1ScalarMul(&wAffine, w)
						v.FromAffine(&scaled)
					}
				}

				sum := u
				sum.AddAssign(&v)

				negV := v
				negV.Neg(&negV)
				diff := u
				diff.AddAssign(&negV)

				a[base+j] = sum
				a[base+j+half] = diff
			}
		})
	}
}
