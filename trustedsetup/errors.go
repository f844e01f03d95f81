package trustedsetup

import "errors"

// ErrPointNotInSubgroup is returned when subgroup-membership checking is
// enabled and a parsed point turns out to lie outside the prime-order
// subgroup.
var ErrPointNotInSubgroup = errors.New("trustedsetup: point is not in the correct subgroup")
