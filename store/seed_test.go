package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishdash/models"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
restaurants:
  - name: Taco Fiesta
    cuisine: MEXICAN
    website: taco.example
    rating: 4.3
    deliveryFee: 20
    minimumOrderAmount: 150
    currencyUsed: USD
  - name: Spice Delight
    cuisine: INDIAN
    deliveryFee: 0
    minimumOrderAmount: 99
`)

	reqs, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, models.CuisineMexican, reqs[0].Cuisine)
	assert.Equal(t, models.CurrencyUSD, reqs[0].CurrencyUsed)
	require.NotNil(t, reqs[1].DeliveryFee)
	assert.Equal(t, 0, *reqs[1].DeliveryFee)
}

func TestLoadSeedRejectsInvalid(t *testing.T) {
	_, err := LoadSeed(writeSeed(t, "restaurants:\n  - name: X\n    deliveryFee: 1\n"))
	assert.ErrorIs(t, err, models.ErrMissingField)

	_, err = LoadSeed(writeSeed(t, "restaurants:\n  - name: X\n    cuisine: FUSION\n"))
	assert.Error(t, err)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")
}
