package models

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnknownSortKey is returned when a value does not name a supported ordering.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the ordering applied to a restaurant listing.
type SortKey string

const (
	SortByName           SortKey = "NAME"
	SortByRating         SortKey = "RATING"
	SortByDeliveryTime   SortKey = "DELIVERY_TIME"
	SortByDeliveryFee    SortKey = "DELIVERY_FEE"
	SortByMinOrderAmount SortKey = "MIN_ORDER_AMOUNT"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch k := SortKey(raw); k {
	case SortByName, SortByRating, SortByDeliveryTime, SortByDeliveryFee, SortByMinOrderAmount:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
}

// Compare orders two restaurants for the key. Rating sorts highest first,
// every other key ascending.
func (k SortKey) Compare(a, b Restaurant) int {
	switch k {
	case SortByName:
		return cmp.Compare(a.Name, b.Name)
	case SortByRating:
		return cmp.Compare(b.Rating, a.Rating)
	case SortByDeliveryTime:
		return cmp.Compare(a.AverageDeliveryTimeInMinutes, b.AverageDeliveryTimeInMinutes)
	case SortByDeliveryFee:
		return cmp.Compare(a.DeliveryFee, b.DeliveryFee)
	case SortByMinOrderAmount:
		return cmp.Compare(a.MinimumOrderAmount, b.MinimumOrderAmount)
	}
	return 0
}
