// Package geometry provides the closed-form area and volume formulas
// shared by the domain calculators. All functions are pure and reject
// dimensionally impossible shapes.
package geometry

import (
	"math"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidGeometry is returned when a required dimension is not
// strictly positive or a radius does not fit its containing dimension.
var ErrInvalidGeometry = pkgerrors.New("invalid geometry")

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return pkgerrors.Wrapf(ErrInvalidGeometry, "%s must be > 0, got %g", name, v)
	}
	return nil
}

// WallArea is the face area of a straight wall.
func WallArea(length, height float64) (float64, error) {
	if err := requirePositive("length", length); err != nil {
		return 0, err
	}
	if err := requirePositive("height", height); err != nil {
		return 0, err
	}
	return length * height, nil
}

// HalfCircleArcArea is the face area of a half-circle arc wall:
// arc length pi*r times the wall height.
func HalfCircleArcArea(radius, height float64) (float64, error) {
	if err := requirePositive("radius", radius); err != nil {
		return 0, err
	}
	if err := requirePositive("height", height); err != nil {
		return 0, err
	}
	return math.Pi * radius * height, nil
}

// RacewayWallArea is the total wall area of one raceway reactor:
// two long outer side walls and one central wall of length L, plus two
// half-circle end arches of radius W/2, so A = H * (3L + 2*pi*(W/2)).
func RacewayWallArea(length, width, height float64) (float64, error) {
	if err := requirePositive("length", length); err != nil {
		return 0, err
	}
	if err := requirePositive("width", width); err != nil {
		return 0, err
	}
	if err := requirePositive("height", height); err != nil {
		return 0, err
	}
	r := width / 2.0
	run := 3.0*length + 2.0*math.Pi*r
	return run * height, nil
}

// RacetrackPlanArea is the footprint of a racetrack shape: a central
// rectangle of length totalLength-width capped by two semicircles of
// radius width/2. totalLength must exceed width so that a straight
// section exists between the arcs.
func RacetrackPlanArea(totalLength, width float64) (float64, error) {
	if err := requirePositive("total length", totalLength); err != nil {
		return 0, err
	}
	if err := requirePositive("width", width); err != nil {
		return 0, err
	}
	if totalLength <= width {
		return 0, pkgerrors.Wrapf(ErrInvalidGeometry,
			"total length %g must be greater than width %g", totalLength, width)
	}
	rectLength := totalLength - width
	r := width / 2.0
	return width*rectLength + math.Pi*r*r, nil
}

// RacetrackFilletRun is the total run length of floor-to-wall fillets
// in a racetrack base with a central divider wall: the outer perimeter
// 2*L_rect + 2*pi*R plus both sides of the divider, 2*L_rect.
func RacetrackFilletRun(totalLength, width float64) (float64, error) {
	if err := requirePositive("total length", totalLength); err != nil {
		return 0, err
	}
	if err := requirePositive("width", width); err != nil {
		return 0, err
	}
	if totalLength <= width {
		return 0, pkgerrors.Wrapf(ErrInvalidGeometry,
			"total length %g must be greater than width %g", totalLength, width)
	}
	rectLength := totalLength - width
	r := width / 2.0
	return 4.0*rectLength + 2.0*math.Pi*r, nil
}

// FilletSectionArea is the cross-section of a quarter-circle fillet.
func FilletSectionArea(radius float64) (float64, error) {
	if err := requirePositive("fillet radius", radius); err != nil {
		return 0, err
	}
	return math.Pi * radius * radius / 4.0, nil
}

// FilletVolume sweeps a quarter-circle fillet of the given radius along
// a run. The radius may not exceed limit (typically half the available
// width); a radius exactly at the limit is accepted.
func FilletVolume(run, radius, limit float64) (float64, error) {
	if err := requirePositive("run", run); err != nil {
		return 0, err
	}
	if radius > limit {
		return 0, pkgerrors.Wrapf(ErrInvalidGeometry,
			"fillet radius %g exceeds limit %g", radius, limit)
	}
	section, err := FilletSectionArea(radius)
	if err != nil {
		return 0, err
	}
	return run * section, nil
}

// PrismVolume is a plan area extruded to a depth.
func PrismVolume(area, depth float64) (float64, error) {
	if err := requirePositive("area", area); err != nil {
		return 0, err
	}
	if err := requirePositive("depth", depth); err != nil {
		return 0, err
	}
	return area * depth, nil
}

// BoxVolume is the volume of a rectangular solid (slab, footing or
// trench segment).
func BoxVolume(length, width, depth float64) (float64, error) {
	if err := requirePositive("length", length); err != nil {
		return 0, err
	}
	if err := requirePositive("width", width); err != nil {
		return 0, err
	}
	if err := requirePositive("depth", depth); err != nil {
		return 0, err
	}
	return length * width * depth, nil
}
