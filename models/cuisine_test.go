package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisinesOrderAndLabels(t *testing.T) {
	list := Cuisines()
	require.Len(t, list, 23)
	assert.Equal(t, CuisineItalian, list[0].Name)
	assert.Equal(t, "Italian", list[0].DisplayName)
	assert.Equal(t, CuisineOther, list[len(list)-1].Name)

	seen := map[Cuisine]bool{}
	for _, c := range list {
		assert.False(t, seen[c.Name], "duplicate cuisine %s", c.Name)
		seen[c.Name] = true
		assert.NotEqual(t, string(c.Name), c.DisplayName)
	}

	// stable across calls
	assert.Equal(t, list, Cuisines())
}

func TestParseCuisine(t *testing.T) {
	tests := []struct {
		raw     string
		want    Cuisine
		wantErr bool
	}{
		{raw: "MEXICAN", want: CuisineMexican},
		{raw: "TAMIL", want: CuisineTamil},
		{raw: "randomString", wantErr: true},
		{raw: "mexican", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCuisine(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownCuisine))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCuisineJSON(t *testing.T) {
	var req RestaurantRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cuisine":"THAI","currencyUsed":"GBP"}`), &req))
	assert.Equal(t, CuisineThai, req.Cuisine)
	assert.Equal(t, CurrencyGBP, req.CurrencyUsed)

	err := json.Unmarshal([]byte(`{"cuisine":"FUSION"}`), &req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCuisine))

	err = json.Unmarshal([]byte(`{"currencyUsed":"XXX"}`), &req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	out, err := json.Marshal(RestaurantResponse{ID: 1, Name: "Taco Fiesta", Cuisine: CuisineMexican})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"cuisine":"MEXICAN"`)
}
