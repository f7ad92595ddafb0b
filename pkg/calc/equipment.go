package calc

import (
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// EquipmentLine is one fleet entry. The hire rate is USD per operating
// hour; the json key keeps the legacy project-file name. A machine
// with zero units or zero utilisation is inactive.
type EquipmentLine struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	HireRate     float64 `json:"hire_rate_day"`
	FuelLPH      float64 `json:"fuel_lph"`
	UtilPct      float64 `json:"util_pct"`
	Mobilisation float64 `json:"mobilisation"`
}

// EquipmentInput holds the plant tab state: the fleet, the operating
// schedule, fuel price and overheads.
type EquipmentInput struct {
	Rows []EquipmentLine `json:"rows"`

	Days        int     `json:"days"`
	HoursPerDay float64 `json:"hours_per_day"`
	FuelPrice   float64 `json:"fuel_price"`

	OverheadPct        float64 `json:"overhead_pct"`
	Mobilisation       float64 `json:"mobilisation"`
	Demobilisation     float64 `json:"demobilisation"`
	DailyPlantOverhead float64 `json:"daily_plant_overhead"`
	MiscAllowance      float64 `json:"misc_plant_allow"`
}

// DefaultEquipmentInput starts from the reference fleet with zero
// units on a standard 30-day, 8-hour schedule.
func DefaultEquipmentInput() EquipmentInput {
	machines := refdata.Machines()
	rows := make([]EquipmentLine, 0, len(machines))
	for _, m := range machines {
		rows = append(rows, EquipmentLine{
			Name:     m.Name,
			HireRate: m.RateUSD,
			FuelLPH:  m.FuelLPH,
			UtilPct:  refdata.DefaultUtilisationPct,
		})
	}
	return EquipmentInput{
		Rows:        rows,
		Days:        refdata.DefaultWorkingDays,
		HoursPerDay: refdata.DefaultHoursPerDay,
		FuelPrice:   refdata.FuelPricePerLitreUSD,
	}
}

// EquipmentCalculator computes machine hours, fuel and hire costs.
type EquipmentCalculator struct {
	in EquipmentInput
}

func NewEquipmentCalculator() *EquipmentCalculator {
	return &EquipmentCalculator{in: DefaultEquipmentInput()}
}

func (c *EquipmentCalculator) Domain() Domain { return DomainEquipment }

func (c *EquipmentCalculator) SetInput(in EquipmentInput) error {
	c.in = in
	return nil
}

func (c *EquipmentCalculator) Input() EquipmentInput { return c.in }

func (c *EquipmentCalculator) DefaultPricing() map[string]float64 {
	p := map[string]float64{"fuel_price": refdata.FuelPricePerLitreUSD}
	for _, m := range refdata.Machines() {
		p["hire:"+m.Name] = m.RateUSD
	}
	return p
}

// ApplyPriceOverride accepts "fuel_price" or "hire:<machine>" keys.
func (c *EquipmentCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	if key == "fuel_price" {
		c.in.FuelPrice = value
		return nil
	}
	const prefix = "hire:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		name := key[len(prefix):]
		for i := range c.in.Rows {
			if c.in.Rows[i].Name == name {
				c.in.Rows[i].HireRate = value
				return nil
			}
		}
	}
	return unknownPriceKeyf("equipment", key)
}

func (c *EquipmentCalculator) Compute() (*Result, error) {
	in := c.in

	if in.Days <= 0 {
		return nil, invalidInputf("days must be greater than zero, got %d", in.Days)
	}
	if in.HoursPerDay <= 0 {
		return nil, invalidInputf("hours_per_day must be > 0, got %g", in.HoursPerDay)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"fuel_price", in.FuelPrice},
		{"overhead_pct", in.OverheadPct},
		{"mobilisation", in.Mobilisation},
		{"demobilisation", in.Demobilisation},
		{"daily_plant_overhead", in.DailyPlantOverhead},
		{"misc_plant_allow", in.MiscAllowance},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}

	scheduleHours := float64(in.Days) * in.HoursPerDay

	var totalHours, totalFuel, subtotal float64
	var items []LineItem
	for _, row := range in.Rows {
		if row.Count < 0 {
			return nil, invalidInputf("%s: count cannot be negative", row.Name)
		}
		if row.HireRate < 0 || row.FuelLPH < 0 || row.Mobilisation < 0 {
			return nil, invalidInputf("%s: rates cannot be negative", row.Name)
		}
		if row.UtilPct < 0 || row.UtilPct > 100 {
			return nil, invalidInputf("%s: util_pct must be within 0-100, got %g", row.Name, row.UtilPct)
		}
		if row.Count == 0 || row.UtilPct == 0 {
			continue // inactive machine
		}

		hours := float64(row.Count) * scheduleHours * row.UtilPct / 100.0
		hire := hours * row.HireRate
		fuelLitres := hours * row.FuelLPH
		fuel := fuelLitres * in.FuelPrice
		cost := hire + fuel + row.Mobilisation

		totalHours += hours
		totalFuel += fuelLitres
		subtotal += cost
		items = append(items, LineItem{
			Description: row.Name,
			Quantity:    hours,
			Unit:        "h",
			UnitPrice:   row.HireRate,
			Amount:      cost,
		})
	}

	overhead := subtotal * in.OverheadPct / 100.0
	mobCost := in.Mobilisation + in.Demobilisation
	plantOverhead := in.DailyPlantOverhead * float64(in.Days)
	total := subtotal + overhead + mobCost + plantOverhead + in.MiscAllowance

	if overhead > 0 {
		items = append(items, LineItem{Description: "Plant overhead", Quantity: in.OverheadPct, Unit: "%", Amount: overhead})
	}
	if mobCost > 0 {
		items = append(items, LineItem{Description: "Mobilisation / demobilisation", Quantity: 1, Unit: "lump", Amount: mobCost})
	}
	if plantOverhead > 0 {
		items = append(items, LineItem{Description: "Daily plant overhead", Quantity: float64(in.Days), Unit: "days", UnitPrice: in.DailyPlantOverhead, Amount: plantOverhead})
	}
	if in.MiscAllowance > 0 {
		items = append(items, LineItem{Description: "Misc plant allowance", Quantity: 1, Unit: "lump", Amount: in.MiscAllowance})
	}

	return &Result{
		Domain: DomainEquipment,
		Quantities: []Quantity{
			{Name: "Machine hours", Value: totalHours, Unit: "h"},
			{Name: "Fuel consumption", Value: totalFuel, Unit: "L"},
			{Name: "Plant subtotal", Value: subtotal, Unit: "USD"},
		},
		Items: items,
		Total: total,
	}, nil
}
