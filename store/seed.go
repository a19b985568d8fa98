package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dishdash/models"
)

type seedFile struct {
	Restaurants []models.RestaurantRequest `yaml:"restaurants"`
}

// LoadSeed reads a YAML fixture of the form
//
//	restaurants:
//	  - name: Taco Fiesta
//	    cuisine: MEXICAN
//	    deliveryFee: 20
//	    minimumOrderAmount: 150
func LoadSeed(path string) ([]models.RestaurantRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i, req := range f.Restaurants {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("seed restaurant %d: %w", i+1, err)
		}
	}
	return f.Restaurants, nil
}
