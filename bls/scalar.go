// Package bls wraps github.com/consensys/gnark-crypto's BLS12-381
// implementation with the narrow surface the KZG/FK20 core needs:
// scalar field arithmetic with canonical (de)serialisation, G1/G2 group
// operations with compressed wire encoding, and a pairing product check.
package bls

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of Fr, the BLS12-381 scalar field.
type Scalar = fr.Element

// BytesPerFieldElement is the canonical big-endian wire length of a Scalar.
const BytesPerFieldElement = fr.Bytes

// rootOfUnity is the canonical primitive root of the BLS12-381 scalar field
// subgroup of order 2^32 (the field's two-adicity).
var rootOfUnity = func() fr.Element {
	var z fr.Element
	z.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")
	return z
}()

// TwoAdicity is the largest k such that 2^k divides |Fr|-1.
const TwoAdicity = 32

// RootOfUnity returns the canonical generator of the order-2^32 multiplicative
// subgroup of Fr.
func RootOfUnity() Scalar {
	return rootOfUnity
}

// multiplicativeGenerator is a generator of the full multiplicative group of
// Fr, used as the coset shift outside the power-of-two subgroups.
var multiplicativeGenerator = func() fr.Element {
	var z fr.Element
	z.SetUint64(7)
	return z
}()

// MultiplicativeGenerator returns a generator of Fr*.
func MultiplicativeGenerator() Scalar {
	return multiplicativeGenerator
}

// Modulus returns the field modulus |Fr|.
func Modulus() *big.Int {
	return fr.Modulus()
}

// ScalarFromCanonicalBytes parses 32 big-endian bytes as a Scalar, rejecting
// any value that is not strictly less than the field modulus.
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != BytesPerFieldElement {
		return s, errors.New("scalar must be exactly 32 bytes")
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(Modulus()) >= 0 {
		return s, ErrScalarNonCanonical
	}
	s.SetBigInt(v)
	return s, nil
}

// ScalarToCanonicalBytes serialises a Scalar as 32 canonical big-endian bytes.
func ScalarToCanonicalBytes(s *Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

// RootOfUnityForDomain returns a generator of the order-2^logN
// multiplicative subgroup of Fr, for logN no larger than TwoAdicity.
func RootOfUnityForDomain(logN uint) Scalar {
	var g Scalar = rootOfUnity
	exp := new(big.Int).Lsh(big.NewInt(1), TwoAdicity-logN)
	g.Exp(g, exp)
	return g
}

// HashToScalarBiasedReduce reduces a SHA-256 digest modulo |Fr|. The
// reduction is biased (256 bits mod a ~255-bit prime) but carries at least
// 128 bits of min-entropy, which is what Fiat-Shamir batch soundness here
// requires.
func HashToScalarBiasedReduce(transcript []byte) Scalar {
	digest := sha256.Sum256(transcript)
	var s Scalar
	v := new(big.Int).SetBytes(digest[:])
	v.Mod(v, Modulus())
	s.SetBigInt(v)
	return s
}
