package calc

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/geometry"
)

var (
	// ErrInvalidInput is returned when a numeric field is negative or
	// missing where required. The wrapped message names the field.
	ErrInvalidInput = pkgerrors.New("invalid input")

	// ErrInvalidGeometry mirrors the geometry package sentinel so
	// callers can match either through the calc API.
	ErrInvalidGeometry = geometry.ErrInvalidGeometry

	// ErrUnknownPriceKey is returned by ApplyPriceOverride for a key
	// the calculator does not price.
	ErrUnknownPriceKey = pkgerrors.New("unknown price key")
)

func invalidInputf(format string, args ...interface{}) error {
	return pkgerrors.Wrapf(ErrInvalidInput, format, args...)
}

func unknownPriceKeyf(domain, key string) error {
	return pkgerrors.Wrapf(ErrUnknownPriceKey, "%s: %s", domain, key)
}

func requireNonNegative(name string, v float64) error {
	if v < 0 {
		return invalidInputf("%s cannot be negative, got %g", name, v)
	}
	return nil
}
