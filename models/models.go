package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by Validate when a required field is absent.
var ErrMissingField = errors.New("missing required field")

// Restaurant is the persisted record for a dining establishment. ID is assigned
// by the store on first save and never changes afterwards.
type Restaurant struct {
	ID                           int64    `db:"id"`
	Name                         string   `db:"name"`
	Cuisine                      Cuisine  `db:"cuisine"`
	Address                      string   `db:"address"`
	Rating                       float64  `db:"rating"`
	ContactNumber                int64    `db:"contact_number"`
	Website                      string   `db:"website"`
	AverageDeliveryTimeInMinutes int      `db:"average_delivery_time_in_minutes"`
	DeliveryFee                  int      `db:"delivery_fee"`
	MinimumOrderAmount           int      `db:"minimum_order_amount"`
	CurrencyUsed                 Currency `db:"currency_used"`
}

// RestaurantRequest is the body accepted by create and update. Any identifier
// in the body is ignored; updates take the id from the path.
type RestaurantRequest struct {
	Name                         string   `json:"name" yaml:"name"`
	Cuisine                      Cuisine  `json:"cuisine" yaml:"cuisine"`
	Address                      string   `json:"address" yaml:"address"`
	Rating                       float64  `json:"rating" yaml:"rating"`
	ContactNumber                int64    `json:"contactNumber" yaml:"contactNumber"`
	Website                      string   `json:"website" yaml:"website"`
	AverageDeliveryTimeInMinutes int      `json:"averageDeliveryTimeInMinutes" yaml:"averageDeliveryTimeInMinutes"`
	DeliveryFee                  *int     `json:"deliveryFee" yaml:"deliveryFee"`
	MinimumOrderAmount           *int     `json:"minimumOrderAmount" yaml:"minimumOrderAmount"`
	CurrencyUsed                 Currency `json:"currencyUsed" yaml:"currencyUsed"`
}

// Validate reports the first required field that is missing.
func (r RestaurantRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case r.DeliveryFee == nil:
		return fmt.Errorf("%w: deliveryFee", ErrMissingField)
	case r.MinimumOrderAmount == nil:
		return fmt.Errorf("%w: minimumOrderAmount", ErrMissingField)
	}
	return nil
}

// RestaurantResponse is the wire shape returned for a stored restaurant.
type RestaurantResponse struct {
	ID                           int64    `json:"id"`
	Name                         string   `json:"name"`
	Cuisine                      Cuisine  `json:"cuisine,omitempty"`
	Address                      string   `json:"address,omitempty"`
	Rating                       float64  `json:"rating"`
	ContactNumber                int64    `json:"contactNumber"`
	Website                      string   `json:"website,omitempty"`
	AverageDeliveryTimeInMinutes int      `json:"averageDeliveryTimeInMinutes"`
	DeliveryFee                  int      `json:"deliveryFee"`
	MinimumOrderAmount           int      `json:"minimumOrderAmount"`
	CurrencyUsed                 Currency `json:"currencyUsed,omitempty"`
}
