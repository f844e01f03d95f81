// Package kzg wires the domain, polynomial, FK20, and Reed-Solomon
// packages together into the public PeerDAS operation surface: committing
// to a blob, computing cells and their opening proofs, recovering a full
// set of cells from a partial one, and batch-verifying cell proofs.
package kzg

import (
	"github.com/google/uuid"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/fk20"
	"github.com/dasguild/peerdas-kzg/log"
	"github.com/dasguild/peerdas-kzg/rs"
	"github.com/dasguild/peerdas-kzg/serialization"
	"github.com/dasguild/peerdas-kzg/verify"
)

// Mode selects how much proving machinery a Context builds. A node that
// only ever validates incoming cells should use ModeVerifierOnly and skip
// the (comparatively large) FK20 commit-key tables entirely.
type Mode int

const (
	// ModeVerifierOnly builds no prover: Context.BlobToCommitment,
	// ComputeCellsAndKZGProofs, ComputeCells, and RecoverCellsAndKZGProofs
	// all return ErrVerifierOnlyContext.
	ModeVerifierOnly Mode = iota
	// ModeProverNoPrecomp builds a prover that performs plain (non-windowed)
	// multi-scalar multiplications: lower memory, slower per call.
	ModeProverNoPrecomp
	// ModeProverPrecomp builds a prover with precomputed multiples
	// tables for fixed-base MSM: higher memory, faster per call.
	ModeProverPrecomp
)

// precompWidth is the signed-digit window width of the fixed-base MSM
// tables built when Mode is ModeProverPrecomp. It trades table memory for
// fewer point additions per scalar.
const precompWidth = 8

// Context holds the setup-derived state needed by every public operation:
// the FK20 prover (nil in verifier-only mode), the FK20 batch verifier, and
// the Reed-Solomon configuration used by cell recovery.
type Context struct {
	id uuid.UUID

	mode     Mode
	prover   *fk20.Prover
	verifier *verify.VerificationKey
	recovery *rs.Config

	g2Gen bls.G2Affine
	g2Tau bls.G2Affine // [tau]_2, feeds the single-point EIP-4844 pairing check
}

// NewContext builds a Context from a trusted setup's monomial bases.
// g1Monomial must have at least FieldElementsPerBlob points; g2Monomial
// must have at least FieldElementsPerCell+1 points, since index
// FieldElementsPerCell (tau^64) feeds the FK20 batch verifier's pairing
// check directly (the batch verifier's other leg is [tau^l]_2 where
// l == FieldElementsPerCell), while index 1 (tau^1) feeds the single-point
// EIP-4844 pairing check.
func NewContext(mode Mode, g1Monomial []bls.G1Affine, g2Monomial []bls.G2Affine) (*Context, error) {
	if len(g2Monomial) < serialization.FieldElementsPerCell+1 {
		return nil, ErrG2SetupTooShort
	}

	vk, err := verify.NewVerificationKey(
		g1Monomial,
		g2Monomial[serialization.FieldElementsPerCell],
		serialization.FieldElementsPerCell,
		serialization.CellsPerExtBlob,
		serialization.FieldElementsPerBlob,
	)
	if err != nil {
		return nil, err
	}

	recovery, err := rs.NewConfig(
		serialization.FieldElementsPerBlob,
		serialization.ExpansionFactor,
		serialization.CellsPerExtBlob,
	)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		id:       uuid.New(),
		mode:     mode,
		verifier: vk,
		recovery: recovery,
		g2Gen:    bls.G2Generator(),
		g2Tau:    g2Monomial[1],
	}

	if mode != ModeVerifierOnly {
		width := uint(0)
		if mode == ModeProverPrecomp {
			width = precompWidth
		}
		prover, err := fk20.NewProver(g1Monomial, width)
		if err != nil {
			return nil, err
		}
		ctx.prover = prover
	}

	log.Infow("kzg context ready", "id", ctx.id.String(), "mode", int(mode))
	return ctx, nil
}

func (c *Context) requireProver() (*fk20.Prover, error) {
	if c.prover == nil {
		return nil, ErrVerifierOnlyContext
	}
	return c.prover, nil
}
