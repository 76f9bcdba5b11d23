// Package roi provides the standalone ROI estimator: pure arithmetic on three
// bounded inputs, unrelated to the evaluation pipeline.
package roi

// Input bounds. Out-of-range values are clamped, never rejected.
const (
	MinManagers = 1
	MaxManagers = 500

	MinHoursSaved = 1
	MaxHoursSaved = 20

	MinHourlyCost = 20
	MaxHourlyCost = 300
)

// Inputs are the estimator's three knobs.
type Inputs struct {
	// Managers is the number of managers doing QA.
	Managers int `json:"managers"`
	// HoursSaved is hours saved per manager per week.
	HoursSaved int `json:"hours_saved"`
	// HourlyCost is the fully-loaded hourly cost in dollars.
	HourlyCost int `json:"hourly_cost"`
}

// Estimate holds the two derived numbers.
type Estimate struct {
	// WeeklyHours is total hours saved per week across all managers.
	WeeklyHours int `json:"weekly_hours"`
	// WeeklySavings is the weekly dollar savings.
	WeeklySavings int `json:"weekly_savings"`
}

// Clamp returns a copy of in with every field forced into its allowed range.
func Clamp(in Inputs) Inputs {
	in.Managers = clamp(in.Managers, MinManagers, MaxManagers)
	in.HoursSaved = clamp(in.HoursSaved, MinHoursSaved, MaxHoursSaved)
	in.HourlyCost = clamp(in.HourlyCost, MinHourlyCost, MaxHourlyCost)
	return in
}

// Estimate computes the weekly totals after clamping the inputs.
func (in Inputs) Estimate() Estimate {
	in = Clamp(in)
	weeklyHours := in.Managers * in.HoursSaved
	return Estimate{
		WeeklyHours:   weeklyHours,
		WeeklySavings: weeklyHours * in.HourlyCost,
	}
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
