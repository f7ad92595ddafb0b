package calc

import (
	"github.com/ashpursglove/ashs-construction-calculator/pkg/geometry"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// SweetSandInput holds the sand tab state. Plan dimensions are metres;
// the fill height and the floor-to-wall fillet radius are entered in
// centimetres, matching the original form.
type SweetSandInput struct {
	LengthTotal    float64 `json:"length_total"`
	Width          float64 `json:"width"`
	FillHeightCm   float64 `json:"fill_height"`
	CornerRadiusCm float64 `json:"corner_radius"`
	BulkDensity    float64 `json:"bulk_density"`
	CostPerTon     float64 `json:"cost_per_ton"`
}

func DefaultSweetSandInput() SweetSandInput {
	return SweetSandInput{
		BulkDensity: refdata.SandDensityKgM3,
		CostPerTon:  refdata.SandCostPerTonUSD,
	}
}

// SweetSandCalculator computes fill volume, mass and cost for a
// racetrack-shaped reactor base with optional corner fillets.
type SweetSandCalculator struct {
	in SweetSandInput
}

func NewSweetSandCalculator() *SweetSandCalculator {
	return &SweetSandCalculator{in: DefaultSweetSandInput()}
}

func (c *SweetSandCalculator) Domain() Domain { return DomainSweetSand }

func (c *SweetSandCalculator) SetInput(in SweetSandInput) error {
	if in.BulkDensity == 0 {
		in.BulkDensity = refdata.SandDensityKgM3
	}
	c.in = in
	return nil
}

func (c *SweetSandCalculator) Input() SweetSandInput { return c.in }

func (c *SweetSandCalculator) DefaultPricing() map[string]float64 {
	return map[string]float64{"cost_per_ton": refdata.SandCostPerTonUSD}
}

func (c *SweetSandCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	if key != "cost_per_ton" {
		return unknownPriceKeyf("sweet sand", key)
	}
	c.in.CostPerTon = value
	return nil
}

func (c *SweetSandCalculator) Compute() (*Result, error) {
	in := c.in

	// An untouched tab contributes nothing.
	if in.LengthTotal == 0 && in.Width == 0 && in.FillHeightCm == 0 {
		return &Result{Domain: DomainSweetSand}, nil
	}

	if in.CostPerTon < 0 {
		return nil, invalidInputf("cost_per_ton cannot be negative, got %g", in.CostPerTon)
	}
	if in.BulkDensity <= 0 {
		return nil, invalidInputf("bulk_density must be > 0, got %g", in.BulkDensity)
	}
	if in.FillHeightCm <= 0 {
		return nil, invalidInputf("fill_height must be > 0, got %g", in.FillHeightCm)
	}
	if in.CornerRadiusCm < 0 {
		return nil, invalidInputf("corner_radius cannot be negative, got %g", in.CornerRadiusCm)
	}

	depth := in.FillHeightCm / 100.0
	filletRadius := in.CornerRadiusCm / 100.0

	planArea, err := geometry.RacetrackPlanArea(in.LengthTotal, in.Width)
	if err != nil {
		return nil, err
	}
	baseVolume, err := geometry.PrismVolume(planArea, depth)
	if err != nil {
		return nil, err
	}

	var filletVolume float64
	if filletRadius > 0 {
		run, err := geometry.RacetrackFilletRun(in.LengthTotal, in.Width)
		if err != nil {
			return nil, err
		}
		// The fillet cannot be deeper than half the internal width.
		filletVolume, err = geometry.FilletVolume(run, filletRadius, in.Width/2.0)
		if err != nil {
			return nil, err
		}
	}

	totalVolume := baseVolume + filletVolume
	weightKg := totalVolume * in.BulkDensity
	weightTons := weightKg / 1000.0
	total := weightTons * in.CostPerTon

	rectLength := in.LengthTotal - in.Width

	return &Result{
		Domain: DomainSweetSand,
		Quantities: []Quantity{
			{Name: "Straight section length", Value: rectLength, Unit: "m"},
			{Name: "Arc radius", Value: in.Width / 2.0, Unit: "m"},
			{Name: "Plan area", Value: planArea, Unit: "m2"},
			{Name: "Base fill volume", Value: baseVolume, Unit: "m3"},
			{Name: "Corner fillet volume", Value: filletVolume, Unit: "m3"},
			{Name: "Total volume", Value: totalVolume, Unit: "m3"},
			{Name: "Weight", Value: weightKg, Unit: "kg"},
			{Name: "Weight", Value: weightTons, Unit: "t"},
		},
		Items: []LineItem{
			{Description: "Sweet sand fill", Quantity: weightTons, Unit: "t", UnitPrice: in.CostPerTon, Amount: total},
		},
		Total: total,
	}, nil
}
