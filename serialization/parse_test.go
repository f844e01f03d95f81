package serialization_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/bls"
	"github.com/dasguild/peerdas-kzg/serialization"
)

func TestParseBlobRoundTrip(t *testing.T) {
	c := qt.New(t)

	scalars := make([]bls.Scalar, serialization.FieldElementsPerBlob)
	for i := range scalars {
		scalars[i].SetUint64(uint64(i))
	}
	encoded := serialization.SerializeBlob(scalars)
	c.Assert(encoded, qt.HasLen, serialization.BytesPerBlob)

	decoded, err := serialization.ParseBlob(encoded)
	c.Assert(err, qt.IsNil)
	for i := range scalars {
		c.Assert(decoded[i].Equal(&scalars[i]), qt.IsTrue)
	}
}

func TestParseBlobRejectsWrongLength(t *testing.T) {
	c := qt.New(t)

	_, err := serialization.ParseBlob(make([]byte, serialization.BytesPerBlob-1))
	c.Assert(err, qt.Equals, serialization.ErrBlobInvalidLength)
}

func TestParseBlobRejectsNonCanonicalScalar(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, serialization.BytesPerBlob)
	modulus := bls.Modulus()
	modulus.FillBytes(buf[:serialization.BytesPerFieldElement])

	_, err := serialization.ParseBlob(buf)
	c.Assert(err, qt.Equals, serialization.ErrScalarNonCanonical)
}

func TestParseCommitmentRejectsWrongLength(t *testing.T) {
	c := qt.New(t)

	_, err := serialization.ParseCommitment(make([]byte, serialization.BytesPerCommitment-1))
	c.Assert(err, qt.Equals, serialization.ErrCommitmentInvalidLength)
}

func TestParseCommitmentRoundTrip(t *testing.T) {
	c := qt.New(t)

	g := bls.G1Generator()
	encoded := bls.G1ToCompressed(&g)

	decoded, err := serialization.ParseCommitment(encoded)
	c.Assert(err, qt.IsNil)
	c.Assert(decoded.Equal(&g), qt.IsTrue)
}

func TestValidateCellIndex(t *testing.T) {
	c := qt.New(t)

	c.Assert(serialization.ValidateCellIndex(0), qt.IsNil)
	c.Assert(serialization.ValidateCellIndex(serialization.CellsPerExtBlob-1), qt.IsNil)
	c.Assert(serialization.ValidateCellIndex(serialization.CellsPerExtBlob), qt.Equals, serialization.ErrCellIndexOutOfRange)
}

func TestValidateAscendingUnique(t *testing.T) {
	c := qt.New(t)

	c.Assert(serialization.ValidateAscendingUnique([]uint64{0, 1, 2, 10}), qt.IsNil)
	c.Assert(serialization.ValidateAscendingUnique([]uint64{1, 0, 2}), qt.Equals, serialization.ErrCellIndicesNotUniquelyOrdered)
	c.Assert(serialization.ValidateAscendingUnique([]uint64{1, 1}), qt.Equals, serialization.ErrCellIndicesNotUniquelyOrdered)
}
