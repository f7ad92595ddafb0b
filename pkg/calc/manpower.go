package calc

import (
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

// TradeLine is the workforce entry for one trade. A trade with zero
// workers or a zero rate is inactive.
type TradeLine struct {
	Trade   string  `json:"trade"`
	Workers int     `json:"workers"`
	Rate    float64 `json:"rate"`
}

// ManpowerInput holds the labour tab state: workforce by trade, the
// working pattern, and lump/percentage overheads.
type ManpowerInput struct {
	Workforce []TradeLine `json:"workforce"`

	Days        int     `json:"days"`
	HoursNormal float64 `json:"hours_normal"`
	HoursOT     float64 `json:"hours_ot"`
	OTFactor    float64 `json:"ot_factor"`

	OverheadPct    float64 `json:"overhead_pct"`
	Mobilisation   float64 `json:"mobilisation"`
	Demobilisation float64 `json:"demobilisation"`
	DailyOverhead  float64 `json:"daily_overhead"`
	MiscAllowance  float64 `json:"misc_allowance"`
}

// DefaultManpowerInput starts from the reference trade table with zero
// headcounts and a standard 30-day, 8-hour pattern.
func DefaultManpowerInput() ManpowerInput {
	trades := refdata.Trades()
	wf := make([]TradeLine, 0, len(trades))
	for _, t := range trades {
		wf = append(wf, TradeLine{Trade: t.Trade, Rate: t.RateUSD})
	}
	return ManpowerInput{
		Workforce:   wf,
		Days:        refdata.DefaultWorkingDays,
		HoursNormal: refdata.DefaultHoursPerDay,
		OTFactor:    refdata.OvertimeFactor,
	}
}

// ManpowerCalculator computes man-hours and labour cost per trade plus
// mobilisation and overheads.
type ManpowerCalculator struct {
	in ManpowerInput
}

func NewManpowerCalculator() *ManpowerCalculator {
	return &ManpowerCalculator{in: DefaultManpowerInput()}
}

func (c *ManpowerCalculator) Domain() Domain { return DomainManpower }

func (c *ManpowerCalculator) SetInput(in ManpowerInput) error {
	if in.OTFactor == 0 {
		in.OTFactor = refdata.OvertimeFactor
	}
	c.in = in
	return nil
}

func (c *ManpowerCalculator) Input() ManpowerInput { return c.in }

func (c *ManpowerCalculator) DefaultPricing() map[string]float64 {
	p := make(map[string]float64)
	for _, t := range refdata.Trades() {
		p["rate:"+t.Trade] = t.RateUSD
	}
	return p
}

// ApplyPriceOverride accepts "rate:<trade>" keys to override one
// trade's hourly rate.
func (c *ManpowerCalculator) ApplyPriceOverride(key string, value float64) error {
	if err := requireNonNegative(key, value); err != nil {
		return err
	}
	const prefix = "rate:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		trade := key[len(prefix):]
		for i := range c.in.Workforce {
			if c.in.Workforce[i].Trade == trade {
				c.in.Workforce[i].Rate = value
				return nil
			}
		}
	}
	return unknownPriceKeyf("manpower", key)
}

func (c *ManpowerCalculator) Compute() (*Result, error) {
	in := c.in

	if in.Days <= 0 {
		return nil, invalidInputf("days must be greater than zero, got %d", in.Days)
	}
	if in.HoursNormal < 0 || in.HoursOT < 0 {
		return nil, invalidInputf("working hours cannot be negative")
	}
	if in.OTFactor < 1.0 {
		return nil, invalidInputf("ot_factor must be at least 1.0, got %g", in.OTFactor)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"overhead_pct", in.OverheadPct},
		{"mobilisation", in.Mobilisation},
		{"demobilisation", in.Demobilisation},
		{"daily_overhead", in.DailyOverhead},
		{"misc_allowance", in.MiscAllowance},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}

	days := float64(in.Days)

	var totalManhours, subtotal float64
	var items []LineItem
	for _, tl := range in.Workforce {
		if tl.Workers < 0 {
			return nil, invalidInputf("%s: workers cannot be negative", tl.Trade)
		}
		if tl.Rate < 0 {
			return nil, invalidInputf("%s: rate cannot be negative", tl.Trade)
		}
		if tl.Workers == 0 || tl.Rate == 0 {
			continue // inactive trade
		}

		n := float64(tl.Workers)
		manhours := n * days * (in.HoursNormal + in.HoursOT)
		costNormal := n * days * in.HoursNormal * tl.Rate
		costOT := n * days * in.HoursOT * tl.Rate * in.OTFactor
		cost := costNormal + costOT

		totalManhours += manhours
		subtotal += cost
		items = append(items, LineItem{
			Description: tl.Trade,
			Quantity:    manhours,
			Unit:        "man-h",
			UnitPrice:   tl.Rate,
			Amount:      cost,
		})
	}

	overhead := subtotal * in.OverheadPct / 100.0
	mobCost := in.Mobilisation + in.Demobilisation
	siteOverhead := in.DailyOverhead * days
	total := subtotal + overhead + mobCost + siteOverhead + in.MiscAllowance

	if overhead > 0 {
		items = append(items, LineItem{Description: "Labour overhead", Quantity: in.OverheadPct, Unit: "%", Amount: overhead})
	}
	if mobCost > 0 {
		items = append(items, LineItem{Description: "Mobilisation / demobilisation", Quantity: 1, Unit: "lump", Amount: mobCost})
	}
	if siteOverhead > 0 {
		items = append(items, LineItem{Description: "Daily site overhead", Quantity: days, Unit: "days", UnitPrice: in.DailyOverhead, Amount: siteOverhead})
	}
	if in.MiscAllowance > 0 {
		items = append(items, LineItem{Description: "Misc / contingency", Quantity: 1, Unit: "lump", Amount: in.MiscAllowance})
	}

	return &Result{
		Domain: DomainManpower,
		Quantities: []Quantity{
			{Name: "Total man-hours", Value: totalManhours, Unit: "man-h"},
			{Name: "Labour subtotal", Value: subtotal, Unit: "USD"},
		},
		Items: items,
		Total: total,
	}, nil
}
