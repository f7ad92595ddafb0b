// Package calc implements the six domain calculators. Each calculator
// owns its input state and derives a Result on demand; computing never
// mutates a previously returned Result, so a failed compute leaves the
// last valid state intact.
package calc

// Domain identifies one calculator tab.
type Domain string

const (
	DomainBreezeBlock Domain = "breeze_block"
	DomainSweetSand   Domain = "sweet_sand"
	DomainConcrete    Domain = "concrete"
	DomainLandPrep    Domain = "land_prep"
	DomainManpower    Domain = "manpower"
	DomainEquipment   Domain = "equipment"
)

// Domains returns all domains in summary display order.
func Domains() []Domain {
	return []Domain{
		DomainBreezeBlock,
		DomainSweetSand,
		DomainConcrete,
		DomainLandPrep,
		DomainManpower,
		DomainEquipment,
	}
}

// Title is the human-readable domain name used in reports.
func (d Domain) Title() string {
	switch d {
	case DomainBreezeBlock:
		return "Blockwork (breeze blocks)"
	case DomainSweetSand:
		return "Sweet sand (reactor base)"
	case DomainConcrete:
		return "Concrete works"
	case DomainLandPrep:
		return "Land preparation"
	case DomainManpower:
		return "Manpower"
	case DomainEquipment:
		return "Equipment & machinery"
	}
	return string(d)
}

// Quantity is one derived geometric or operational figure.
type Quantity struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// LineItem is one priced row of a domain cost breakdown.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Result is the derived output of one domain: quantities, the itemized
// cost breakdown and the domain grand total. It is recomputed whole on
// every change and never partially mutated.
type Result struct {
	Domain     Domain     `json:"domain"`
	Quantities []Quantity `json:"quantities"`
	Items      []LineItem `json:"items"`
	Total      float64    `json:"total"`
}

// Clone returns a deep copy so report snapshots cannot alias live state.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := &Result{Domain: r.Domain, Total: r.Total}
	c.Quantities = append([]Quantity(nil), r.Quantities...)
	c.Items = append([]LineItem(nil), r.Items...)
	return c
}

// Calculator is the capability set every domain tab implements.
type Calculator interface {
	Domain() Domain
	// Compute derives a fresh Result from the current input and the
	// static reference tables.
	Compute() (*Result, error)
	// DefaultPricing maps pricing keys to their reference defaults.
	DefaultPricing() map[string]float64
	// ApplyPriceOverride replaces one unit price on the current input.
	ApplyPriceOverride(key string, value float64) error
}
