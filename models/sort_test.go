package models

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Restaurant {
	return []Restaurant{
		{ID: 1, Name: "Spice Delight", Rating: 4.1, AverageDeliveryTimeInMinutes: 40, DeliveryFee: 30, MinimumOrderAmount: 200},
		{ID: 2, Name: "Burger Bistro", Rating: 4.8, AverageDeliveryTimeInMinutes: 20, DeliveryFee: 50, MinimumOrderAmount: 100},
		{ID: 3, Name: "Taco Fiesta", Rating: 3.9, AverageDeliveryTimeInMinutes: 30, DeliveryFee: 10, MinimumOrderAmount: 300},
	}
}

func ids(list []Restaurant) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestSortKeyCompare(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int64
	}{
		{SortByName, []int64{2, 1, 3}},
		{SortByRating, []int64{2, 1, 3}},
		{SortByDeliveryTime, []int64{2, 3, 1}},
		{SortByDeliveryFee, []int64{3, 1, 2}},
		{SortByMinOrderAmount, []int64{2, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			list := sample()
			slices.SortStableFunc(list, tt.key.Compare)
			assert.Equal(t, tt.want, ids(list))
		})
	}
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("DELIVERY_FEE")
	require.NoError(t, err)
	assert.Equal(t, SortByDeliveryFee, k)

	_, err = ParseSortKey("PRICE")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}
