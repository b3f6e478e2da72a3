package revenue

import "math"

// Calculator bounds and defaults for the landing page ROI sliders.
const (
	MinRate     = 25
	MaxRate     = 300
	DefaultRate = 75
	RateStep    = 5

	MinHours     = 5
	MaxHours     = 60
	DefaultHours = 30
	HoursStep    = 1

	WorkingWeeks = 50
)

// Rates applied to annual revenue.
const (
	UnderchargedRate = 0.08
	LatePayRate      = 0.035
	TaxRate          = 0.05
)

// ROI is the revenue a freelancer is estimated to leave on the table.
type ROI struct {
	Annual       int
	Undercharged int
	LatePay      int
	TaxSavings   int
	Total        int
}

// Estimate computes the ROI breakdown for an hourly rate and weekly hours.
// Inputs are clamped to the slider ranges. Each line item is rounded before
// summing.
func Estimate(rate, hours int) ROI {
	rate = clamp(rate, MinRate, MaxRate)
	hours = clamp(hours, MinHours, MaxHours)

	annual := rate * hours * WorkingWeeks
	r := ROI{
		Annual:       annual,
		Undercharged: round(float64(annual) * UnderchargedRate),
		LatePay:      round(float64(annual) * LatePayRate),
		TaxSavings:   round(float64(annual) * TaxRate),
	}
	r.Total = r.Undercharged + r.LatePay + r.TaxSavings
	return r
}

// Inputs holds the two slider positions.
type Inputs struct {
	Rate  int
	Hours int
}

// DefaultInputs returns the initial slider positions.
func DefaultInputs() Inputs {
	return Inputs{Rate: DefaultRate, Hours: DefaultHours}
}

// AdjustRate moves the rate slider by steps, staying in range.
func (in Inputs) AdjustRate(steps int) Inputs {
	in.Rate = clamp(in.Rate+steps*RateStep, MinRate, MaxRate)
	return in
}

// AdjustHours moves the hours slider by steps, staying in range.
func (in Inputs) AdjustHours(steps int) Inputs {
	in.Hours = clamp(in.Hours+steps*HoursStep, MinHours, MaxHours)
	return in
}

// Estimate is shorthand for Estimate(in.Rate, in.Hours).
func (in Inputs) Estimate() ROI {
	return Estimate(in.Rate, in.Hours)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round matches half-up rounding on the non-negative values used here.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
