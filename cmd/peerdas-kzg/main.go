// Command peerdas-kzg is a small demo driver over the kzg package: it loads
// a trusted setup (or falls back to an insecure toy one), builds a random
// blob, commits to it, computes its cells and KZG proofs, drops half of
// them, recovers the full set, and verifies a batch of the recovered cell
// proofs.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	flag "github.com/spf13/pflag"

	"github.com/dasguild/peerdas-kzg/config"
	"github.com/dasguild/peerdas-kzg/kzg"
	"github.com/dasguild/peerdas-kzg/log"
	"github.com/dasguild/peerdas-kzg/serialization"
	"github.com/dasguild/peerdas-kzg/trustedsetup"
)

func main() {
	fs := config.FlagSet("peerdas-kzg")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peerdas-kzg [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Commits to a random blob, computes its cells and proofs,\n")
		fmt.Fprintf(os.Stderr, "recovers from half of them, and verifies a batch.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Init(cfg.Log.Level, "stdout", nil)

	setup, err := loadSetup(cfg.TrustedSetup)
	if err != nil {
		log.Fatalf("load trusted setup: %v", err)
	}

	mode := kzg.ModeProverNoPrecomp
	if cfg.Precompute.Width > 0 {
		mode = kzg.ModeProverPrecomp
	}
	ctx, err := kzg.NewContext(mode, setup.G1Monomial, setup.G2Monomial)
	if err != nil {
		log.Fatalf("build context: %v", err)
	}

	blob := randomBlob()
	commitment, err := ctx.BlobToCommitment(blob)
	if err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Infow("committed to blob", "commitment", fmt.Sprintf("0x%x", commitment))

	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		log.Fatalf("compute cells: %v", err)
	}
	log.Infow("computed cells and proofs", "numCells", len(cells))

	var half []uint64
	var halfCells [][]byte
	for k := uint64(0); k < serialization.CellsPerExtBlob; k += 2 {
		half = append(half, k)
		halfCells = append(halfCells, cells[k])
	}

	recovered, recoveredProofs, err := ctx.RecoverCellsAndKZGProofs(half, halfCells)
	if err != nil {
		log.Fatalf("recover: %v", err)
	}
	log.Infow("recovered full cell set", "numCells", len(recovered))

	commitmentIndices := make([]uint64, len(half))
	cellIndices := make([]uint64, len(half))
	batchCells := make([][]byte, len(half))
	batchProofs := make([][]byte, len(half))
	for i, k := range half {
		cellIndices[i] = k
		batchCells[i] = recovered[k]
		batchProofs[i] = recoveredProofs[k]
	}

	ok, err := ctx.VerifyCellKZGProofBatch([][]byte{commitment}, commitmentIndices, cellIndices, batchCells, batchProofs)
	if err != nil {
		log.Fatalf("verify batch: %v", err)
	}
	log.Infow("batch verification result", "ok", ok)
}

func loadSetup(cfg config.TrustedSetupConfig) (*trustedsetup.Setup, error) {
	if cfg.Path == "" {
		log.Warnw("no trusted setup path given, using an insecure toy setup")
		return trustedsetup.Insecure(serialization.FieldElementsPerBlob), nil
	}
	return trustedsetup.LoadFile(cfg.Path, cfg.CheckSubgroup)
}

func randomBlob() []byte {
	out := make([]byte, serialization.BytesPerBlob)
	var el fr.Element
	for i := 0; i < serialization.FieldElementsPerBlob; i++ {
		el.MustSetRandom()
		copy(out[i*serialization.BytesPerFieldElement:], el.Marshal())
	}
	return out
}
