// Package store persists restaurant records.
package store

import (
	"context"
	"errors"

	"dishdash/models"
)

var (
	// ErrNotFound is returned when no restaurant matches the lookup.
	ErrNotFound = errors.New("restaurant not found")
	// ErrDuplicateWebsite is returned when a save would give two restaurants the same website.
	ErrDuplicateWebsite = errors.New("website already in use")
)

// RestaurantStore is the persistence contract the service depends on.
type RestaurantStore interface {
	FindByID(ctx context.Context, id int64) (models.Restaurant, error)
	FindByWebsite(ctx context.Context, website string) (models.Restaurant, error)
	// FindRestaurants lists restaurants in id order. A nil filter places no
	// constraint; search is a case-insensitive substring match on name.
	FindRestaurants(ctx context.Context, cuisine *models.Cuisine, search *string) ([]models.Restaurant, error)
	// Save inserts r when r.ID is zero and overwrites the stored row otherwise.
	Save(ctx context.Context, r models.Restaurant) (models.Restaurant, error)
	DeleteByID(ctx context.Context, id int64) error
	CountByCuisine(ctx context.Context) (map[models.Cuisine]int, error)
	Ping(ctx context.Context) error
}
