package refdata

// Material constants and default unit rates. These mirror the defaults
// a fresh project starts from; every one of them can be overridden per
// project and the override round-trips through save/load.
const (
	// Sweet sand.
	SandDensityKgM3   = 1600.0 // typical dry bulk density
	SandCostPerTonUSD = 13.3   // ~80 SAR/m3 soft white sand at 1600 kg/m3

	// Concrete works.
	ConcreteDensityKgM3  = 2400.0
	ConcreteCostPerM3USD = 60.0
	RebarIntensityKgM3   = 100.0
	RebarCostPerTonUSD   = 640.0 // ~2400 SAR/t
	FormworkRatePerM2USD = 8.0

	// Land preparation.
	ExcavationCostPerM3USD = 3.0
	CompactionTargetPct    = 95.0
	LiftThicknessCm        = 20.0
	PassesPerLift          = 4

	// Schedules.
	DefaultWorkingDays = 30
	DefaultHoursPerDay = 8.0
	OvertimeFactor     = 1.5

	// Equipment.
	FuelPricePerLitreUSD  = 0.50
	DefaultUtilisationPct = 70.0
)

// TradeRate is a site trade with its default hourly rate.
type TradeRate struct {
	Trade   string
	RateUSD float64
}

// Trades returns the default workforce table in display order.
func Trades() []TradeRate {
	return []TradeRate{
		{"General Labourer", 5.0},
		{"Carpenter / Formwork", 7.0},
		{"Steel Fixer", 7.5},
		{"Concrete Crew / Finisher", 6.5},
		{"Mason / Block Layer", 6.5},
		{"Electrician", 8.0},
		{"Plumber / Pipefitter", 7.5},
		{"Equipment Operator", 8.0},
		{"Foreman / Supervisor", 10.0},
		{"Site Engineer / Manager", 12.0},
		{"Safety Officer / HSE", 9.0},
	}
}

// MachineRate is an equipment fleet entry with default hire rate and
// fuel burn. Rates are USD per operating hour, fuel in litres per hour.
type MachineRate struct {
	Name     string
	RateUSD  float64
	FuelLPH  float64
}

// Machines returns the default equipment fleet in display order.
func Machines() []MachineRate {
	return []MachineRate{
		{"20t Excavator", 90.0, 18.0},
		{"Wheel Loader", 80.0, 15.0},
		{"Vibratory Roller", 60.0, 10.0},
		{"Water Tanker", 55.0, 8.0},
		{"Concrete Pump", 120.0, 20.0},
		{"Mobile Crane", 150.0, 22.0},
		{"Tipper Truck", 70.0, 14.0},
		{"Telehandler / Forklift", 65.0, 9.0},
	}
}
