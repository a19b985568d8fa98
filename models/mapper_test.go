package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRestaurantFromRequestCopiesEveryField(t *testing.T) {
	req := RestaurantRequest{
		Name:                         "Pasta Palace",
		Cuisine:                      CuisineItalian,
		Address:                      "1 Via Roma",
		Rating:                       4.5,
		ContactNumber:                9876543210,
		Website:                      "pasta.example",
		AverageDeliveryTimeInMinutes: 35,
		DeliveryFee:                  intPtr(40),
		MinimumOrderAmount:           intPtr(250),
		CurrencyUsed:                 CurrencyINR,
	}

	r := RestaurantFromRequest(req)
	assert.Zero(t, r.ID)

	r.ID = 7
	resp := ResponseFromRestaurant(r)
	assert.Equal(t, RestaurantResponse{
		ID:                           7,
		Name:                         "Pasta Palace",
		Cuisine:                      CuisineItalian,
		Address:                      "1 Via Roma",
		Rating:                       4.5,
		ContactNumber:                9876543210,
		Website:                      "pasta.example",
		AverageDeliveryTimeInMinutes: 35,
		DeliveryFee:                  40,
		MinimumOrderAmount:           250,
		CurrencyUsed:                 CurrencyINR,
	}, resp)
}

func TestApplyRequestKeepsID(t *testing.T) {
	r := Restaurant{ID: 42, Name: "Old", Website: "old.example", DeliveryFee: 1}
	r.ApplyRequest(RestaurantRequest{Name: "New", DeliveryFee: intPtr(5), MinimumOrderAmount: intPtr(6)})

	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, "New", r.Name)
	assert.Empty(t, r.Website)
	assert.Equal(t, 5, r.DeliveryFee)
	assert.Equal(t, 6, r.MinimumOrderAmount)
}

func TestResponsesFromRestaurantsNeverNil(t *testing.T) {
	out := ResponsesFromRestaurants(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestValidate(t *testing.T) {
	ok := RestaurantRequest{Name: "A", DeliveryFee: intPtr(0), MinimumOrderAmount: intPtr(0)}
	assert.NoError(t, ok.Validate())

	noName := ok
	noName.Name = "  "
	assert.ErrorIs(t, noName.Validate(), ErrMissingField)

	noFee := ok
	noFee.DeliveryFee = nil
	err := noFee.Validate()
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "deliveryFee")

	noMin := ok
	noMin.MinimumOrderAmount = nil
	assert.ErrorContains(t, noMin.Validate(), "minimumOrderAmount")
}
