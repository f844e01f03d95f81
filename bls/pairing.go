package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PairingCheck evaluates the pairing product check
//
//	prod_i e(g1s[i], g2s[i]) == 1
//
// which is used as the final KZG/FK20 verification equation with two
// terms. len(g1s) must equal len(g2s).
func PairingCheck(g1s []G1Affine, g2s []G2Affine) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, ErrPointInvalidLength
	}
	if len(g1s) == 0 {
		return true, nil
	}
	return bls12381.PairingCheck(g1s, g2s)
}
