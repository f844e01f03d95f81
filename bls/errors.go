package bls

import "errors"

// ErrScalarNonCanonical is returned when a 32-byte string is not strictly
// less than the field modulus.
var ErrScalarNonCanonical = errors.New("scalar is not canonical: >= field modulus")

// ErrPointInvalidLength is returned when a compressed point encoding has the
// wrong byte length.
var ErrPointInvalidLength = errors.New("point encoding has invalid length")

// ErrPointNotOnCurveOrSubgroup is returned when a compressed point decodes to
// a value off the curve or outside the prime-order subgroup.
var ErrPointNotOnCurveOrSubgroup = errors.New("point is not on curve or not in the correct subgroup")
