package calc

import (
	"math"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/geometry"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// BreezeBlockInput holds the blockwork tab state. Lengths and heights
// are metres. A geometry section (walls, arcs, reactors) participates
// only while its count is above zero; an active section with a
// non-positive dimension fails the compute.
type BreezeBlockInput struct {
	BlockName          string  `json:"block_name"`
	CostPerBlock       float64 `json:"cost_per_block"`
	PalletFee          float64 `json:"pallet_fee"`
	MortarAllowancePct float64 `json:"mortar_allowance_pct"`

	WallLength float64 `json:"wall_length"`
	WallHeight float64 `json:"wall_height"`
	WallCount  int     `json:"wall_count"`

	ArcRadius float64 `json:"arc_radius"`
	ArcHeight float64 `json:"arc_height"`
	ArcCount  int     `json:"arc_count"`

	ReactorLength float64 `json:"reactor_length"`
	ReactorWidth  float64 `json:"reactor_width"`
	ReactorHeight float64 `json:"reactor_height"`
	ReactorCount  int     `json:"reactor_count"`
}

// DefaultBreezeBlockInput starts from the first block type with its
// reference price and no geometry.
func DefaultBreezeBlockInput() BreezeBlockInput {
	b := refdata.DefaultBlock()
	return BreezeBlockInput{
		BlockName:    b.Name,
		CostPerBlock: b.DefaultCostUSD,
	}
}

// BreezeBlockCalculator computes block, pallet and cost figures for
// straight walls, half-circle arcs and raceway reactors.
type BreezeBlockCalculator struct {
	in BreezeBlockInput
}

func NewBreezeBlockCalculator() *BreezeBlockCalculator {
	return &BreezeBlockCalculator{in: DefaultBreezeBlockInput()}
}

func (c *BreezeBlockCalculator) Domain() Domain { return DomainBreezeBlock }

// SetInput replaces the tab state. Selecting a different block type
// resets the block price to that block's reference default when the
// caller did not carry an override.
func (c *BreezeBlockCalculator) SetInput(in BreezeBlockInput) error {
	if in.BlockName == "" {
		return invalidInputf("block_name is required")
	}
	b, err := refdata.BlockByName(in.BlockName)
	if err != nil {
		return invalidInputf("block_name: %v", err)
	}
	if in.CostPerBlock == 0 {
		in.CostPerBlock = b.DefaultCostUSD
	}
	c.in = in
	return nil
}

func (c *BreezeBlockCalculator) Input() BreezeBlockInput { return c.in }

func (c *BreezeBlockCalculator) DefaultPricing() map[string]float64 {
	b, err := refdata.BlockByName(c.in.BlockName)
	if err != nil {
		b = refdata.DefaultBlock()
	}
	return map[string]float64{
		"cost_per_block": b.DefaultCostUSD,
		"pallet_fee":     0,
	}
}

func (c *BreezeBlockCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	switch key {
	case "cost_per_block":
		c.in.CostPerBlock = value
	case "pallet_fee":
		c.in.PalletFee = value
	default:
		return unknownPriceKeyf("breeze block", key)
	}
	return nil
}

func (c *BreezeBlockCalculator) Compute() (*Result, error) {
	block, err := refdata.BlockByName(c.in.BlockName)
	if err != nil {
		return nil, invalidInputf("block_name: %v", err)
	}
	return computeBreezeBlock(c.in, block)
}

// computeBreezeBlock is the pure derivation, split out so the block
// table lookup can be bypassed in tests.
func computeBreezeBlock(in BreezeBlockInput, block refdata.BlockType) (*Result, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"cost_per_block", in.CostPerBlock},
		{"pallet_fee", in.PalletFee},
		{"mortar_allowance_pct", in.MortarAllowancePct},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if in.MortarAllowancePct >= 100 {
		return nil, invalidInputf("mortar_allowance_pct must be below 100, got %g", in.MortarAllowancePct)
	}
	if in.WallCount < 0 || in.ArcCount < 0 || in.ReactorCount < 0 {
		return nil, invalidInputf("section counts cannot be negative")
	}

	var wallArea, arcArea, reactorArea float64

	if in.WallCount > 0 {
		a, err := geometry.WallArea(in.WallLength, in.WallHeight)
		if err != nil {
			return nil, err
		}
		wallArea = a * float64(in.WallCount)
	}
	if in.ArcCount > 0 {
		a, err := geometry.HalfCircleArcArea(in.ArcRadius, in.ArcHeight)
		if err != nil {
			return nil, err
		}
		arcArea = a * float64(in.ArcCount)
	}
	if in.ReactorCount > 0 {
		a, err := geometry.RacewayWallArea(in.ReactorLength, in.ReactorWidth, in.ReactorHeight)
		if err != nil {
			return nil, err
		}
		reactorArea = a * float64(in.ReactorCount)
	}

	totalArea := wallArea + arcArea + reactorArea

	// Mortar joints reduce the wall area each block actually covers.
	effectiveFace := block.FaceArea() * (1.0 - in.MortarAllowancePct/100.0)

	var blocks, pallets, leftover int
	if totalArea > 0 && effectiveFace > 0 {
		blocks = int(math.Ceil(totalArea / effectiveFace))
	}
	perPallet := block.BlocksPerPallet
	if perPallet < 1 {
		perPallet = 1
	}
	if blocks > 0 {
		pallets = int(math.Ceil(float64(blocks) / float64(perPallet)))
		leftover = pallets*perPallet - blocks
	}

	blockCost := float64(blocks) * in.CostPerBlock
	palletCost := float64(pallets) * in.PalletFee
	total := blockCost + palletCost

	res := &Result{
		Domain: DomainBreezeBlock,
		Quantities: []Quantity{
			{Name: "Straight wall area", Value: wallArea, Unit: "m2"},
			{Name: "Arc wall area", Value: arcArea, Unit: "m2"},
			{Name: "Reactor wall area", Value: reactorArea, Unit: "m2"},
			{Name: "Total area", Value: totalArea, Unit: "m2"},
			{Name: "Blocks required", Value: float64(blocks), Unit: "blocks"},
			{Name: "Pallets required", Value: float64(pallets), Unit: "pallets"},
			{Name: "Leftover blocks", Value: float64(leftover), Unit: "blocks"},
		},
		Items: []LineItem{
			{Description: block.Name, Quantity: float64(blocks), Unit: "blocks", UnitPrice: in.CostPerBlock, Amount: blockCost},
		},
		Total: total,
	}
	if in.PalletFee > 0 {
		res.Items = append(res.Items, LineItem{
			Description: "Pallet handling",
			Quantity:    float64(pallets),
			Unit:        "pallets",
			UnitPrice:   in.PalletFee,
			Amount:      palletCost,
		})
	}
	return res, nil
}
