// Package refdata holds the static reference tables used by the
// calculators: block sizes and pallet counts, trade and equipment
// defaults, and material constants. Prices are rough KSA retail
// defaults converted to USD (1 SAR ~ 0.27 USD) and can be overridden
// per project at any time.
package refdata

import (
	pkgerrors "github.com/pkg/errors"
)

// BlockType describes one commercial block size.
type BlockType struct {
	Name            string
	LengthM         float64
	HeightM         float64
	ThicknessM      float64
	BlocksPerPallet int
	DefaultCostUSD  float64
}

// FaceArea is the wall area one block covers, mortar ignored.
func (b BlockType) FaceArea() float64 {
	return b.LengthM * b.HeightM
}

var blockTypes = []BlockType{
	// Standard hollow blocks (common KSA sizes).
	{Name: "40 x 20 x 20 cm (hollow)", LengthM: 0.40, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 108, DefaultCostUSD: 0.55},
	{Name: "40 x 20 x 15 cm (hollow)", LengthM: 0.40, HeightM: 0.20, ThicknessM: 0.15, BlocksPerPallet: 120, DefaultCostUSD: 0.50},
	{Name: "40 x 20 x 10 cm (hollow)", LengthM: 0.40, HeightM: 0.20, ThicknessM: 0.10, BlocksPerPallet: 150, DefaultCostUSD: 0.45},

	// Larger / smaller face dimensions.
	{Name: "30 x 20 x 20 cm (hollow)", LengthM: 0.30, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 144, DefaultCostUSD: 0.48},
	{Name: "20 x 20 x 20 cm (hollow)", LengthM: 0.20, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 216, DefaultCostUSD: 0.40},
	{Name: "50 x 20 x 20 cm (hollow)", LengthM: 0.50, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 86, DefaultCostUSD: 0.70},

	// Solid blocks (heavier, more expensive).
	{Name: "40 x 20 x 20 cm (solid)", LengthM: 0.40, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 96, DefaultCostUSD: 0.85},
	{Name: "30 x 20 x 20 cm (solid)", LengthM: 0.30, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 128, DefaultCostUSD: 0.75},

	// Lightweight AAC partition blocks.
	{Name: "AAC 60 x 20 x 20 cm", LengthM: 0.60, HeightM: 0.20, ThicknessM: 0.20, BlocksPerPallet: 72, DefaultCostUSD: 1.60},
	{Name: "AAC 60 x 25 x 20 cm", LengthM: 0.60, HeightM: 0.25, ThicknessM: 0.20, BlocksPerPallet: 60, DefaultCostUSD: 1.90},
}

// BlockNames returns the available block type names in a stable order
// for use in drop-downs and listings.
func BlockNames() []string {
	names := make([]string, 0, len(blockTypes))
	for _, b := range blockTypes {
		names = append(names, b.Name)
	}
	return names
}

// BlockByName retrieves a BlockType by its display name.
func BlockByName(name string) (BlockType, error) {
	for _, b := range blockTypes {
		if b.Name == name {
			return b, nil
		}
	}
	return BlockType{}, pkgerrors.Errorf("unknown block type %q", name)
}

// DefaultBlock is the block type selected on a fresh project.
func DefaultBlock() BlockType {
	return blockTypes[0]
}
