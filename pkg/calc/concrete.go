package calc

import (
	"github.com/ashpursglove/ashs-construction-calculator/pkg/geometry"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// ConcreteInput holds the concrete works tab state: four element
// groups (slab/base, strip footing, wall, isolated footing) sharing
// one set of material rates. Thicknesses are centimetres. Slab, wall
// and isolated-footing groups are active while their count is above
// zero; the strip footing group is active when any of its dimensions
// is set.
type ConcreteInput struct {
	SlabLength      float64 `json:"slab_length"`
	SlabWidth       float64 `json:"slab_width"`
	SlabThicknessCm float64 `json:"slab_thickness_cm"`
	SlabCount       int     `json:"slab_count"`

	StripLength      float64 `json:"strip_length"`
	StripWidth       float64 `json:"strip_width"`
	StripThicknessCm float64 `json:"strip_thickness_cm"`

	WallLength      float64 `json:"wall_length"`
	WallHeight      float64 `json:"wall_height"`
	WallThicknessCm float64 `json:"wall_thickness_cm"`
	WallCount       int     `json:"wall_count"`

	IsoLength      float64 `json:"iso_length"`
	IsoWidth       float64 `json:"iso_width"`
	IsoThicknessCm float64 `json:"iso_thickness_cm"`
	IsoCount       int     `json:"iso_count"`

	ConcDensity    float64 `json:"conc_density"`
	ConcCost       float64 `json:"conc_cost"`
	RebarIntensity float64 `json:"rebar_intensity"`
	RebarCost      float64 `json:"rebar_cost"`
	FormworkRate   float64 `json:"formwork_rate"`
}

func DefaultConcreteInput() ConcreteInput {
	return ConcreteInput{
		ConcDensity:    refdata.ConcreteDensityKgM3,
		ConcCost:       refdata.ConcreteCostPerM3USD,
		RebarIntensity: refdata.RebarIntensityKgM3,
		RebarCost:      refdata.RebarCostPerTonUSD,
		FormworkRate:   refdata.FormworkRatePerM2USD,
	}
}

// concreteElement is one computed element group.
type concreteElement struct {
	name     string
	volume   float64 // m3
	formArea float64 // m2, approximate vertical formwork
}

// ConcreteCalculator computes concrete volume, rebar mass, formwork
// area and costs across all element groups.
type ConcreteCalculator struct {
	in ConcreteInput
}

func NewConcreteCalculator() *ConcreteCalculator {
	return &ConcreteCalculator{in: DefaultConcreteInput()}
}

func (c *ConcreteCalculator) Domain() Domain { return DomainConcrete }

func (c *ConcreteCalculator) SetInput(in ConcreteInput) error {
	if in.ConcDensity == 0 {
		in.ConcDensity = refdata.ConcreteDensityKgM3
	}
	c.in = in
	return nil
}

func (c *ConcreteCalculator) Input() ConcreteInput { return c.in }

func (c *ConcreteCalculator) DefaultPricing() map[string]float64 {
	return map[string]float64{
		"conc_cost":     refdata.ConcreteCostPerM3USD,
		"rebar_cost":    refdata.RebarCostPerTonUSD,
		"formwork_rate": refdata.FormworkRatePerM2USD,
	}
}

func (c *ConcreteCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	switch key {
	case "conc_cost":
		c.in.ConcCost = value
	case "rebar_cost":
		c.in.RebarCost = value
	case "formwork_rate":
		c.in.FormworkRate = value
	default:
		return unknownPriceKeyf("concrete", key)
	}
	return nil
}

func (c *ConcreteCalculator) elements() ([]concreteElement, error) {
	in := c.in
	var out []concreteElement

	if in.SlabCount > 0 {
		v, err := geometry.BoxVolume(in.SlabLength, in.SlabWidth, in.SlabThicknessCm/100.0)
		if err != nil {
			return nil, invalidInputf("slab: %v", err)
		}
		t := in.SlabThicknessCm / 100.0
		n := float64(in.SlabCount)
		out = append(out, concreteElement{
			name:     "Slab / base",
			volume:   v * n,
			formArea: 2.0 * (in.SlabLength + in.SlabWidth) * t * n,
		})
	}

	if in.StripLength > 0 || in.StripWidth > 0 || in.StripThicknessCm > 0 {
		v, err := geometry.BoxVolume(in.StripLength, in.StripWidth, in.StripThicknessCm/100.0)
		if err != nil {
			return nil, invalidInputf("strip footing: %v", err)
		}
		t := in.StripThicknessCm / 100.0
		out = append(out, concreteElement{
			name:     "Strip footing",
			volume:   v,
			formArea: 2.0 * in.StripLength * t, // two long sides formed, ends ignored
		})
	}

	if in.WallCount > 0 {
		v, err := geometry.BoxVolume(in.WallLength, in.WallHeight, in.WallThicknessCm/100.0)
		if err != nil {
			return nil, invalidInputf("wall: %v", err)
		}
		n := float64(in.WallCount)
		out = append(out, concreteElement{
			name:     "Wall",
			volume:   v * n,
			formArea: 2.0 * in.WallLength * in.WallHeight * n, // both faces
		})
	}

	if in.IsoCount > 0 {
		v, err := geometry.BoxVolume(in.IsoLength, in.IsoWidth, in.IsoThicknessCm/100.0)
		if err != nil {
			return nil, invalidInputf("isolated footing: %v", err)
		}
		t := in.IsoThicknessCm / 100.0
		n := float64(in.IsoCount)
		out = append(out, concreteElement{
			name:     "Isolated footing",
			volume:   v * n,
			formArea: 2.0 * (in.IsoLength + in.IsoWidth) * t * n, // four vertical sides
		})
	}

	return out, nil
}

func (c *ConcreteCalculator) Compute() (*Result, error) {
	in := c.in

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"conc_cost", in.ConcCost},
		{"rebar_intensity", in.RebarIntensity},
		{"rebar_cost", in.RebarCost},
		{"formwork_rate", in.FormworkRate},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if in.ConcDensity <= 0 {
		return nil, invalidInputf("conc_density must be > 0, got %g", in.ConcDensity)
	}

	elems, err := c.elements()
	if err != nil {
		return nil, err
	}

	var totalVolume, totalFormArea float64
	for _, e := range elems {
		totalVolume += e.volume
		totalFormArea += e.formArea
	}

	concWeightKg := totalVolume * in.ConcDensity
	rebarKg := totalVolume * in.RebarIntensity
	rebarTons := rebarKg / 1000.0

	concCost := totalVolume * in.ConcCost
	rebarCost := rebarTons * in.RebarCost
	formCost := totalFormArea * in.FormworkRate
	total := concCost + rebarCost + formCost

	res := &Result{
		Domain: DomainConcrete,
		Quantities: []Quantity{
			{Name: "Concrete volume", Value: totalVolume, Unit: "m3"},
			{Name: "Concrete weight", Value: concWeightKg, Unit: "kg"},
			{Name: "Formwork area", Value: totalFormArea, Unit: "m2"},
			{Name: "Rebar mass", Value: rebarKg, Unit: "kg"},
			{Name: "Rebar mass", Value: rebarTons, Unit: "t"},
		},
		Items: []LineItem{
			{Description: "Ready-mix concrete", Quantity: totalVolume, Unit: "m3", UnitPrice: in.ConcCost, Amount: concCost},
			{Description: "Reinforcement steel", Quantity: rebarTons, Unit: "t", UnitPrice: in.RebarCost, Amount: rebarCost},
			{Description: "Formwork", Quantity: totalFormArea, Unit: "m2", UnitPrice: in.FormworkRate, Amount: formCost},
		},
		Total: total,
	}
	for _, e := range elems {
		res.Quantities = append(res.Quantities, Quantity{
			Name:  e.name + " volume",
			Value: e.volume,
			Unit:  "m3",
		})
	}
	return res, nil
}
