package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCurrency is returned when a value does not name a supported currency.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency is the ISO-4217 code a restaurant prices its menu in.
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
)

var currencies = []Currency{
	CurrencyGBP,
	CurrencyINR,
	CurrencyCAD,
	CurrencyUSD,
	CurrencyEUR,
	CurrencyAUD,
	CurrencyJPY,
}

// Currencies returns every supported currency code.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

func ParseCurrency(raw string) (Currency, error) {
	for _, c := range currencies {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
}

func (c *Currency) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ""
		return nil
	}
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
