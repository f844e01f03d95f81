package domain

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dasguild/peerdas-kzg/bls"
)

// Parallelism bounds how many goroutines FFT butterfly layers may be split
// across. Set to 1 to force single-threaded execution (what the domain and
// rs tests do).
var Parallelism = runtime.NumCPU()

// FFTScalars evaluates p (padded with zeros to Size) over the domain's
// subgroup.
func (d *Domain) FFTScalars(p []bls.Scalar) []bls.Scalar {
	a := d.padScalars(p)
	fftScalarsInPlace(a, d.roots, false)
	return a
}

// IFFTScalars interpolates the evaluation vector v (padded with zeros to
// Size) back to monomial coefficients.
func (d *Domain) IFFTScalars(v []bls.Scalar) []bls.Scalar {
	a := d.padScalars(v)
	fftScalarsInPlace(a, d.rootsInv, false)
	for i := range a {
		a[i].Mul(&a[i], &d.CardinalityInv)
	}
	return a
}

// CosetFFTScalars evaluates p on the coset g*H by scaling coefficients by
// powers of g before a standard FFT.
func (d *Domain) CosetFFTScalars(p []bls.Scalar, g bls.Scalar) []bls.Scalar {
	a := d.padScalars(p)
	scaleByPowers(a, g)
	fftScalarsInPlace(a, d.roots, false)
	return a
}

// CosetIFFTScalars interpolates evaluations on the coset g*H, undoing the
// coset scaling with powers of g^-1 after a standard IFFT.
func (d *Domain) CosetIFFTScalars(v []bls.Scalar, g bls.Scalar) []bls.Scalar {
	a := d.IFFTScalars(v)
	var gInv bls.Scalar
	gInv.Inverse(&g)
	scaleByPowers(a, gInv)
	return a
}

func scaleByPowers(a []bls.Scalar, g bls.Scalar) {
	var cur bls.Scalar
	cur.SetOne()
	for i := range a {
		a[i].Mul(&a[i], &cur)
		cur.Mul(&cur, &g)
	}
}

func (d *Domain) padScalars(p []bls.Scalar) []bls.Scalar {
	out := make([]bls.Scalar, d.Size)
	copy(out, p)
	return out
}

// fftScalarsInPlace runs an iterative radix-2 DIT FFT using the roots table
// (roots for the forward transform, rootsInv for the inverse), which holds
// every power of the layer generator so each butterfly layer's twiddle is a
// table lookup rather than a recomputation.
func fftScalarsInPlace(a []bls.Scalar, roots []bls.Scalar, _ bool) {
	n := len(a)
	Permute(a)

	for blockSize := 2; blockSize <= n; blockSize <<= 1 {
		half := blockSize / 2
		stride := n / blockSize

		numBlocks := n / blockSize
		runButterflyLayer(numBlocks, func(blockIdx int) {
			base := blockIdx * blockSize
			for j := 0; j < half; j++ {
				w := &roots[j*stride]
				u := a[base+j]
				var v bls.Scalar
				v.Mul(&a[base+j+half], w)

				a[base+j].Add(&u, &v)
				a[base+j+half].Sub(&u, &v)
			}
		})
	}
}

// runButterflyLayer dispatches numBlocks independent butterfly blocks,
// splitting across Parallelism goroutines when there is enough work to be
// worth it, and otherwise iterating serially.
func runButterflyLayer(numBlocks int, work func(blockIdx int)) {
	if Parallelism <= 1 || numBlocks < 2*Parallelism {
		for i := 0; i < numBlocks; i++ {
			work(i)
		}
		return
	}

	var g errgroup.Group
	chunk := (numBlocks + Parallelism - 1) / Parallelism
	for start := 0; start < numBlocks; start += chunk {
		end := start + chunk
		if end > numBlocks {
			end = numBlocks
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				work(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
