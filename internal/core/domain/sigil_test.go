package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/condalock/internal/core/domain"
)

func TestEncodeSigil(t *testing.T) {
	assert.Equal(t, "# ENVHASH: abcd\n", domain.EncodeSigil("abcd"))
}

func TestSigil_RoundTrip(t *testing.T) {
	hash := "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	doc := domain.EncodeSigil(hash) + "name: test\ndependencies:\n- python=3.6\n"

	got, err := domain.DecodeSigil(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestDecodeSigil_NotOnFirstLine(t *testing.T) {
	doc := `
        # ENVHASH: abcd
        name: test
        channels:
        - conda-forge
        dependencies:
        - python=3.6
`
	got, err := domain.DecodeSigil(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestDecodeSigil_FirstMatchWins(t *testing.T) {
	doc := "name: test\n# ENVHASH: first\n# ENVHASH: second\n"

	got, err := domain.DecodeSigil(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestDecodeSigil_Missing(t *testing.T) {
	doc := `
        name: test
        channels:
        - conda-forge
        dependencies:
        - python=3.6
`
	_, err := domain.DecodeSigil(strings.NewReader(doc))
	require.ErrorIs(t, err, domain.ErrNoSigil)
}

func TestDecodeSigil_OverlongLine(t *testing.T) {
	doc := strings.Repeat("x", 2*1024*1024) + "\n" + domain.EncodeSigil("abcd")

	_, err := domain.DecodeSigil(strings.NewReader(doc))
	require.ErrorIs(t, err, domain.ErrLockfileReadFailed)
	assert.NotErrorIs(t, err, domain.ErrNoSigil)
}
