package calc

import (
	"math"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/geometry"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// LandPrepInput holds the earthworks tab state: platform preparation
// and reactor trench excavation. Depths and lift thickness are
// centimetres. Compaction settings shape the reported effort metrics
// only; cost is strictly excavated volume times the unit rate.
type LandPrepInput struct {
	SiteArea    float64 `json:"site_area"`
	SiteDepthCm float64 `json:"site_depth_cm"`

	TrenchLength  float64 `json:"trench_length"`
	TrenchWidth   float64 `json:"trench_width"`
	TrenchDepthCm float64 `json:"trench_depth_cm"`
	TrenchCount   int     `json:"trench_count"`

	CompactionTargetPct float64 `json:"compaction_target_pct"`
	LiftThicknessCm     float64 `json:"lift_thickness_cm"`
	PassesPerLift       int     `json:"passes_per_lift"`

	CostPerM3Cut float64 `json:"cost_per_m3_cut"`
}

func DefaultLandPrepInput() LandPrepInput {
	return LandPrepInput{
		CompactionTargetPct: refdata.CompactionTargetPct,
		LiftThicknessCm:     refdata.LiftThicknessCm,
		PassesPerLift:       refdata.PassesPerLift,
		CostPerM3Cut:        refdata.ExcavationCostPerM3USD,
	}
}

// LandPrepCalculator computes cut volumes, compaction effort metrics
// and the excavation cost.
type LandPrepCalculator struct {
	in LandPrepInput
}

func NewLandPrepCalculator() *LandPrepCalculator {
	return &LandPrepCalculator{in: DefaultLandPrepInput()}
}

func (c *LandPrepCalculator) Domain() Domain { return DomainLandPrep }

func (c *LandPrepCalculator) SetInput(in LandPrepInput) error {
	if in.LiftThicknessCm == 0 {
		in.LiftThicknessCm = refdata.LiftThicknessCm
	}
	if in.PassesPerLift == 0 {
		in.PassesPerLift = refdata.PassesPerLift
	}
	c.in = in
	return nil
}

func (c *LandPrepCalculator) Input() LandPrepInput { return c.in }

func (c *LandPrepCalculator) DefaultPricing() map[string]float64 {
	return map[string]float64{"cost_per_m3_cut": refdata.ExcavationCostPerM3USD}
}

func (c *LandPrepCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	if key != "cost_per_m3_cut" {
		return unknownPriceKeyf("land preparation", key)
	}
	c.in.CostPerM3Cut = value
	return nil
}

func (c *LandPrepCalculator) Compute() (*Result, error) {
	in := c.in

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"site_area", in.SiteArea},
		{"site_depth_cm", in.SiteDepthCm},
		{"trench_length", in.TrenchLength},
		{"trench_width", in.TrenchWidth},
		{"trench_depth_cm", in.TrenchDepthCm},
		{"cost_per_m3_cut", in.CostPerM3Cut},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if in.TrenchCount < 0 {
		return nil, invalidInputf("trench_count cannot be negative, got %d", in.TrenchCount)
	}
	if in.LiftThicknessCm <= 0 {
		return nil, invalidInputf("lift_thickness_cm must be > 0, got %g", in.LiftThicknessCm)
	}
	if in.PassesPerLift <= 0 {
		return nil, invalidInputf("passes_per_lift must be at least 1, got %d", in.PassesPerLift)
	}

	siteDepth := in.SiteDepthCm / 100.0
	trenchDepth := in.TrenchDepthCm / 100.0
	lift := in.LiftThicknessCm / 100.0

	// Platform disturbed volume.
	var siteVolume float64
	if in.SiteArea > 0 && siteDepth > 0 {
		v, err := geometry.PrismVolume(in.SiteArea, siteDepth)
		if err != nil {
			return nil, err
		}
		siteVolume = v
	}

	// Trench cut volume; the trench section is active while count > 0.
	var trenchVolume float64
	if in.TrenchCount > 0 {
		v, err := geometry.BoxVolume(in.TrenchLength, in.TrenchWidth, trenchDepth)
		if err != nil {
			return nil, invalidInputf("trench: %v", err)
		}
		trenchVolume = v * float64(in.TrenchCount)
	}

	cutVolume := siteVolume + trenchVolume

	// Compaction areas: platform plan plus trench base and long sides.
	platformArea := in.SiteArea
	var trenchCompArea float64
	if in.TrenchCount > 0 {
		n := float64(in.TrenchCount)
		base := in.TrenchLength * in.TrenchWidth * n
		sides := 2.0 * in.TrenchLength * trenchDepth * n
		trenchCompArea = base + sides
	}
	compArea := platformArea + trenchCompArea

	// Lifts and roller passes, reported but never costed.
	var platformLifts, trenchLifts int
	if in.SiteArea > 0 && siteDepth > 0 {
		platformLifts = int(math.Ceil(siteDepth / lift))
	}
	if in.TrenchCount > 0 && trenchDepth > 0 {
		trenchLifts = int(math.Ceil(trenchDepth / lift))
	}
	passes := float64(in.PassesPerLift)
	areaPasses := platformArea*float64(platformLifts)*passes +
		trenchCompArea*float64(trenchLifts)*passes

	total := cutVolume * in.CostPerM3Cut

	return &Result{
		Domain: DomainLandPrep,
		Quantities: []Quantity{
			{Name: "Platform disturbed volume", Value: siteVolume, Unit: "m3"},
			{Name: "Trench cut volume", Value: trenchVolume, Unit: "m3"},
			{Name: "Total cut volume", Value: cutVolume, Unit: "m3"},
			{Name: "Platform compaction area", Value: platformArea, Unit: "m2"},
			{Name: "Trench compaction area", Value: trenchCompArea, Unit: "m2"},
			{Name: "Total compaction area", Value: compArea, Unit: "m2"},
			{Name: "Platform lifts", Value: float64(platformLifts), Unit: "lifts"},
			{Name: "Trench lifts", Value: float64(trenchLifts), Unit: "lifts"},
			{Name: "Compaction effort", Value: areaPasses, Unit: "m2*passes"},
			{Name: "Compaction target", Value: in.CompactionTargetPct, Unit: "%"},
		},
		Items: []LineItem{
			{Description: "Excavation", Quantity: cutVolume, Unit: "m3", UnitPrice: in.CostPerM3Cut, Amount: total},
		},
		Total: total,
	}, nil
}
