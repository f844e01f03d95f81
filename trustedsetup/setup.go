// Package trustedsetup loads the Structured Reference String a Context
// needs to commit, open, and verify: the G1 monomial and Lagrange bases and
// the G2 monomial basis produced by the powers-of-tau ceremony.
package trustedsetup

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/dasguild/peerdas-kzg/bls"
)

// JSON is the wire shape of a trusted setup file: three arrays of
// "0x"-prefixed hex strings, one point per entry.
type JSON struct {
	G1Monomial []string `json:"g1_monomial"`
	G1Lagrange []string `json:"g1_lagrange"`
	G2Monomial []string `json:"g2_monomial"`
}

// Setup holds the parsed, deserialized SRS.
type Setup struct {
	G1Monomial []bls.G1Affine
	G1Lagrange []bls.G1Affine
	G2Monomial []bls.G2Affine
}

// LoadFile reads and parses a trusted setup from path. When checkSubgroup is
// true, every point is additionally checked for subgroup membership; this
// roughly doubles load time and is off by default since gnark-crypto's
// decompression already rejects points off the curve.
func LoadFile(path string, checkSubgroup bool) (*Setup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(raw, checkSubgroup)
}

// Load parses a trusted setup from its JSON encoding.
func Load(raw []byte, checkSubgroup bool) (*Setup, error) {
	var doc JSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	g1Monomial, err := parseG1s(doc.G1Monomial, checkSubgroup)
	if err != nil {
		return nil, err
	}
	g1Lagrange, err := parseG1s(doc.G1Lagrange, checkSubgroup)
	if err != nil {
		return nil, err
	}
	g2Monomial, err := parseG2s(doc.G2Monomial, checkSubgroup)
	if err != nil {
		return nil, err
	}

	return &Setup{
		G1Monomial: g1Monomial,
		G1Lagrange: g1Lagrange,
		G2Monomial: g2Monomial,
	}, nil
}

func decodeHexPoint(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

func parseG1s(in []string, checkSubgroup bool) ([]bls.G1Affine, error) {
	out := make([]bls.G1Affine, len(in))
	for i, s := range in {
		b, err := decodeHexPoint(s)
		if err != nil {
			return nil, err
		}
		p, err := bls.G1FromCompressed(b)
		if err != nil {
			return nil, err
		}
		if checkSubgroup && !p.IsInSubGroup() {
			return nil, ErrPointNotInSubgroup
		}
		out[i] = p
	}
	return out, nil
}

func parseG2s(in []string, checkSubgroup bool) ([]bls.G2Affine, error) {
	out := make([]bls.G2Affine, len(in))
	for i, s := range in {
		b, err := decodeHexPoint(s)
		if err != nil {
			return nil, err
		}
		p, err := bls.G2FromCompressed(b)
		if err != nil {
			return nil, err
		}
		if checkSubgroup && !p.IsInSubGroup() {
			return nil, ErrPointNotInSubgroup
		}
		out[i] = p
	}
	return out, nil
}
