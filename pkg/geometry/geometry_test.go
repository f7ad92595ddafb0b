package geometry

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWallArea(t *testing.T) {
	got, err := WallArea(10, 2)
	if err != nil {
		t.Fatalf("WallArea returned error: %v", err)
	}
	if !almostEqual(got, 20) {
		t.Fatalf("expected 20, got %g", got)
	}
}

func TestWallAreaZeroDimension(t *testing.T) {
	if _, err := WallArea(0, 2); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for zero length, got %v", err)
	}
	if _, err := WallArea(10, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for zero height, got %v", err)
	}
}

func TestHalfCircleArcArea(t *testing.T) {
	got, err := HalfCircleArcArea(1.5, 2)
	if err != nil {
		t.Fatalf("HalfCircleArcArea returned error: %v", err)
	}
	if !almostEqual(got, math.Pi*1.5*2) {
		t.Fatalf("expected %g, got %g", math.Pi*1.5*2, got)
	}
}

func TestRacewayWallArea(t *testing.T) {
	// H * (3L + 2*pi*(W/2)) with L=8, W=3, H=2.
	want := 2.0 * (3.0*8.0 + 2.0*math.Pi*1.5)
	got, err := RacewayWallArea(8, 3, 2)
	if err != nil {
		t.Fatalf("RacewayWallArea returned error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestRacetrackPlanArea(t *testing.T) {
	// W*(L-W) + pi*(W/2)^2 with L=11, W=3.
	want := 3.0*8.0 + math.Pi*1.5*1.5
	got, err := RacetrackPlanArea(11, 3)
	if err != nil {
		t.Fatalf("RacetrackPlanArea returned error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestRacetrackPlanAreaRequiresStraightSection(t *testing.T) {
	if _, err := RacetrackPlanArea(3, 3); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry when L <= W, got %v", err)
	}
}

func TestRacetrackFilletRun(t *testing.T) {
	want := 4.0*8.0 + 2.0*math.Pi*1.5
	got, err := RacetrackFilletRun(11, 3)
	if err != nil {
		t.Fatalf("RacetrackFilletRun returned error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestFilletVolumeAtLimit(t *testing.T) {
	// A radius exactly at the limit is accepted.
	got, err := FilletVolume(10, 0.5, 0.5)
	if err != nil {
		t.Fatalf("FilletVolume at limit returned error: %v", err)
	}
	want := 10 * math.Pi * 0.25 / 4.0
	if !almostEqual(got, want) {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestFilletVolumeBeyondLimit(t *testing.T) {
	if _, err := FilletVolume(10, 0.51, 0.5); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry beyond limit, got %v", err)
	}
}

func TestVolumes(t *testing.T) {
	v, err := PrismVolume(31.5, 0.2)
	if err != nil {
		t.Fatalf("PrismVolume returned error: %v", err)
	}
	if !almostEqual(v, 6.3) {
		t.Fatalf("expected 6.3, got %g", v)
	}

	v, err = BoxVolume(12, 1.5, 0.8)
	if err != nil {
		t.Fatalf("BoxVolume returned error: %v", err)
	}
	if !almostEqual(v, 14.4) {
		t.Fatalf("expected 14.4, got %g", v)
	}

	if _, err := BoxVolume(12, 0, 0.8); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for zero width, got %v", err)
	}
}
