package models

// RestaurantFromRequest builds a new, unsaved restaurant from a request.
func RestaurantFromRequest(req RestaurantRequest) Restaurant {
	var r Restaurant
	r.ApplyRequest(req)
	return r
}

// ApplyRequest overwrites every mutable field from req. ID is left untouched.
func (r *Restaurant) ApplyRequest(req RestaurantRequest) {
	r.Name = req.Name
	r.Cuisine = req.Cuisine
	r.Address = req.Address
	r.Rating = req.Rating
	r.ContactNumber = req.ContactNumber
	r.Website = req.Website
	r.AverageDeliveryTimeInMinutes = req.AverageDeliveryTimeInMinutes
	r.DeliveryFee = derefInt(req.DeliveryFee)
	r.MinimumOrderAmount = derefInt(req.MinimumOrderAmount)
	r.CurrencyUsed = req.CurrencyUsed
}

func ResponseFromRestaurant(r Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:                           r.ID,
		Name:                         r.Name,
		Cuisine:                      r.Cuisine,
		Address:                      r.Address,
		Rating:                       r.Rating,
		ContactNumber:                r.ContactNumber,
		Website:                      r.Website,
		AverageDeliveryTimeInMinutes: r.AverageDeliveryTimeInMinutes,
		DeliveryFee:                  r.DeliveryFee,
		MinimumOrderAmount:           r.MinimumOrderAmount,
		CurrencyUsed:                 r.CurrencyUsed,
	}
}

// ResponsesFromRestaurants maps a list preserving order. The result is never nil
// so it encodes as [] rather than null.
func ResponsesFromRestaurants(list []Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ResponseFromRestaurant(r))
	}
	return out
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
