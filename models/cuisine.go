package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCuisine is returned when a value does not name a supported cuisine.
var ErrUnknownCuisine = errors.New("unknown cuisine")

// Cuisine is the culinary category a restaurant is listed under. It travels on
// the wire and in storage as its symbolic name (e.g. "MEXICAN").
type Cuisine string

const (
	CuisineItalian       Cuisine = "ITALIAN"
	CuisineChinese       Cuisine = "CHINESE"
	CuisineMexican       Cuisine = "MEXICAN"
	CuisineJapanese      Cuisine = "JAPANESE"
	CuisineIndian        Cuisine = "INDIAN"
	CuisineAmerican      Cuisine = "AMERICAN"
	CuisineFrench        Cuisine = "FRENCH"
	CuisineThai          Cuisine = "THAI"
	CuisineGreek         Cuisine = "GREEK"
	CuisineSpanish       Cuisine = "SPANISH"
	CuisineAsian         Cuisine = "ASIAN"
	CuisineMediterranean Cuisine = "MEDITERRANEAN"
	CuisineGerman        Cuisine = "GERMAN"
	CuisineBrazilian     Cuisine = "BRAZILIAN"
	CuisineVietnamese    Cuisine = "VIETNAMESE"
	CuisineKorean        Cuisine = "KOREAN"
	CuisineCajun         Cuisine = "CAJUN"
	CuisineCaribbean     Cuisine = "CARIBBEAN"
	CuisineMoroccan      Cuisine = "MOROCCAN"
	CuisineAustralian    Cuisine = "AUSTRALIAN"
	CuisineAndhra        Cuisine = "ANDHRA"
	CuisineTamil         Cuisine = "TAMIL"
	CuisineOther         Cuisine = "OTHER"
)

// cuisineLabels keeps the canonical order of the enumeration.
var cuisineLabels = []struct {
	cuisine Cuisine
	label   string
}{
	{CuisineItalian, "Italian"},
	{CuisineChinese, "Chinese"},
	{CuisineMexican, "Mexican"},
	{CuisineJapanese, "Japanese"},
	{CuisineIndian, "Indian"},
	{CuisineAmerican, "American"},
	{CuisineFrench, "French"},
	{CuisineThai, "Thai"},
	{CuisineGreek, "Greek"},
	{CuisineSpanish, "Spanish"},
	{CuisineAsian, "Asian"},
	{CuisineMediterranean, "Mediterranean"},
	{CuisineGerman, "German"},
	{CuisineBrazilian, "Brazilian"},
	{CuisineVietnamese, "Vietnamese"},
	{CuisineKorean, "Korean"},
	{CuisineCajun, "Cajun"},
	{CuisineCaribbean, "Caribbean"},
	{CuisineMoroccan, "Moroccan"},
	{CuisineAustralian, "Australian"},
	{CuisineAndhra, "Andhra"},
	{CuisineTamil, "Tamil"},
	{CuisineOther, "Other"},
}

// CuisineInfo pairs a cuisine's wire identifier with its display label.
type CuisineInfo struct {
	Name        Cuisine `json:"name"`
	DisplayName string  `json:"displayName"`
}

// Cuisines returns every supported cuisine in canonical order.
func Cuisines() []CuisineInfo {
	out := make([]CuisineInfo, 0, len(cuisineLabels))
	for _, c := range cuisineLabels {
		out = append(out, CuisineInfo{Name: c.cuisine, DisplayName: c.label})
	}
	return out
}

// ParseCuisine converts a symbolic name into a Cuisine. Matching is exact.
func ParseCuisine(raw string) (Cuisine, error) {
	for _, c := range cuisineLabels {
		if string(c.cuisine) == raw {
			return c.cuisine, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCuisine, raw)
}

// UnmarshalText rejects unknown symbols so request bodies cannot carry them.
// An empty value leaves the cuisine unset.
func (c *Cuisine) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ""
		return nil
	}
	parsed, err := ParseCuisine(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
