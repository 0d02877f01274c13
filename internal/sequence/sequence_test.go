package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFASTA(t *testing.T) {
	input := ">sp|P00533|EGFR_HUMAN Epidermal growth factor receptor\nmrpsgtag\nAALLALL\n\n;comment\n>second\r\nMKT AYI\r\n"

	records, err := ReadFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "sp|P00533|EGFR_HUMAN", records[0].ID)
	assert.Equal(t, "Epidermal growth factor receptor", records[0].Description)
	assert.Equal(t, "MRPSGTAGAALLALL", records[0].Seq)

	assert.Equal(t, "second", records[1].ID)
	assert.Equal(t, "MKTAYI", records[1].Seq)
}

func TestReadFASTARawSequence(t *testing.T) {
	records, err := ReadFASTA(strings.NewReader("\n  mktayi\nakqr\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].ID)
	assert.Equal(t, "MKTAYIAKQR", records[0].Seq)
}

func TestReadFASTAEmpty(t *testing.T) {
	_, err := ReadFASTA(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "MKTAYI", Clean(" mk\tta\nyi "))
	assert.Equal(t, "", Clean(" \n\t"))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "MKT", Prefix("MKTAYI", 3))
	assert.Equal(t, "MK", Prefix("MK", 50))
	assert.Equal(t, "αβ", Prefix("αβγ", 2))
	assert.Equal(t, "", Prefix("MKT", 0))
	assert.Len(t, Prefix(Sample, LogPrefixLen), LogPrefixLen)
}
