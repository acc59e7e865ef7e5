package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLoginID(t *testing.T) {
	got := GenerateLoginID("OIJDOD", "jd", 2024, 12)
	assert.Equal(t, "OIJDODJD20240012", got)

	got = GenerateLoginID("OIJDOD", "AB", 2023, 1)
	assert.Equal(t, "OIJDODAB20230001", got)
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := GenerateTempPassword(8)
	require.NoError(t, err)
	assert.Len(t, pw, 8)

	// Zero length falls back to the default
	pw, err = GenerateTempPassword(0)
	require.NoError(t, err)
	assert.Len(t, pw, 8)

	// Two consecutive passwords should differ
	other, err := GenerateTempPassword(8)
	require.NoError(t, err)
	assert.NotEqual(t, pw, other)
}
