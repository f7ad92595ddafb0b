package calc

import (
	"errors"
	"math"
	"testing"
)

func TestConcreteSlab(t *testing.T) {
	c := NewConcreteCalculator()
	if err := c.SetInput(ConcreteInput{
		SlabLength:      6,
		SlabWidth:       4,
		SlabThicknessCm: 20,
		SlabCount:       2,
		ConcDensity:     2400,
		ConcCost:        60,
		RebarIntensity:  100,
		RebarCost:       640,
		FormworkRate:    8,
	}); err != nil {
		t.Fatalf("SetInput returned error: %v", err)
	}

	res, err := c.Compute()
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	volume := 6.0 * 4.0 * 0.2 * 2       // 9.6 m3
	formArea := 2.0 * (6 + 4) * 0.2 * 2 // 8 m2
	rebarKg := volume * 100
	want := volume*60 + rebarKg/1000*640 + formArea*8

	if got := findQuantity(t, res, "Concrete volume", "m3"); math.Abs(got-volume) > 1e-9 {
		t.Fatalf("expected volume %g, got %g", volume, got)
	}
	if got := findQuantity(t, res, "Formwork area", "m2"); math.Abs(got-formArea) > 1e-9 {
		t.Fatalf("expected formwork %g, got %g", formArea, got)
	}
	if got := findQuantity(t, res, "Rebar mass", "kg"); math.Abs(got-rebarKg) > 1e-9 {
		t.Fatalf("expected rebar %g kg, got %g", rebarKg, got)
	}
	if math.Abs(res.Total-want) > 1e-9 {
		t.Fatalf("expected total %g, got %g", want, res.Total)
	}
}

func TestConcreteMultipleElementGroups(t *testing.T) {
	c := NewConcreteCalculator()
	if err := c.SetInput(ConcreteInput{
		SlabLength:      5,
		SlabWidth:       5,
		SlabThicknessCm: 15,
		SlabCount:       1,

		WallLength:      10,
		WallHeight:      3,
		WallThicknessCm: 20,
		WallCount:       2,

		IsoLength:      1.5,
		IsoWidth:       1.5,
		IsoThicknessCm: 40,
		IsoCount:       6,

		ConcDensity:    2400,
		ConcCost:       60,
		RebarIntensity: 90,
		RebarCost:      640,
		FormworkRate:   8,
	}); err != nil {
		t.Fatalf("SetInput returned error: %v", err)
	}

	res, err := c.Compute()
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	slab := 5.0 * 5.0 * 0.15
	walls := 10.0 * 3.0 * 0.2 * 2
	iso := 1.5 * 1.5 * 0.4 * 6
	volume := slab + walls + iso
	if got := findQuantity(t, res, "Concrete volume", "m3"); math.Abs(got-volume) > 1e-9 {
		t.Fatalf("expected combined volume %g, got %g", volume, got)
	}
	if got := findQuantity(t, res, "Wall volume", "m3"); math.Abs(got-walls) > 1e-9 {
		t.Fatalf("expected wall volume %g, got %g", walls, got)
	}
}

func TestConcreteActiveElementRequiresDimensions(t *testing.T) {
	c := NewConcreteCalculator()
	if err := c.SetInput(ConcreteInput{
		WallCount:   1, // active wall group with zero dimensions
		ConcDensity: 2400,
		ConcCost:    60,
	}); err != nil {
		t.Fatalf("SetInput returned error: %v", err)
	}
	if _, err := c.Compute(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConcreteEmptyInputYieldsZero(t *testing.T) {
	c := NewConcreteCalculator()
	res, err := c.Compute()
	if err != nil {
		t.Fatalf("Compute on empty input returned error: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("expected zero total, got %g", res.Total)
	}
}
