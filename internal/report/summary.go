package report

import (
	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// NoBreakEvenLabel is shown when the new unit never catches up.
const NoBreakEvenLabel = "No Break-Even"

// Summary is the presentation view of one evaluation.
type Summary struct {
	TraceID string `json:"trace_id,omitempty"`

	Current          string  `json:"current"`
	New              string  `json:"new"`
	Workload         string  `json:"workload"`
	Scaling          string  `json:"scaling"`
	Country          string  `json:"country"`
	GridIntensity    float64 `json:"grid_intensity_g_per_kwh"`
	SingleComparison bool    `json:"single_comparison"`

	BreakEvenFound       bool    `json:"break_even_found"`
	BreakEvenYears       float64 `json:"break_even_years"`
	BreakEvenDays        int     `json:"break_even_days"`
	BreakEvenLabel       string  `json:"break_even_label"`
	BreakEvenEmissionsKg float64 `json:"break_even_emissions_kg"`
	DisplayYears         int     `json:"display_years"`

	EmbodiedCarbonKg float64               `json:"embodied_carbon_kg"`
	CurrentCapex     carbon.CapexBreakdown `json:"current_capex"`
	NewCapex         carbon.CapexBreakdown `json:"new_capex"`
	CurrentOpex      carbon.OpexBreakdown  `json:"current_opex"`
	NewOpex          carbon.OpexBreakdown  `json:"new_opex"`

	CurrentPerformance float64 `json:"current_performance"`
	NewPerformance     float64 `json:"new_performance"`
	PerformanceRatio   float64 `json:"performance_ratio"`
	PowerRatio         float64 `json:"power_ratio"`
	RatioPrecision     int     `json:"ratio_precision"`

	CurrentSeries []float64         `json:"current_series"`
	NewSeries     []float64         `json:"new_series"`
	Savings       breakeven.Savings `json:"savings"`
}

// Summarize builds the presentation view of an evaluation.
func Summarize(e breakeven.Evaluation) Summary {
	sel := e.Scenario
	cmp := e.Comparison
	be := e.BreakEven

	s := Summary{
		Current:          sel.Part(breakeven.RoleCurrent),
		New:              sel.Part(breakeven.RoleNew),
		Workload:         string(sel.Workload),
		Scaling:          sel.Scaling.String(),
		Country:          sel.Country,
		GridIntensity:    e.GridIntensity,
		SingleComparison: sel.SingleComparison,

		BreakEvenFound: be.Found,
		BreakEvenLabel: NoBreakEvenLabel,
		DisplayYears:   be.Year,

		CurrentCapex: cmp.OldCapex,
		NewCapex:     cmp.NewCapex,
		CurrentOpex:  cmp.OldOpex,
		NewOpex:      cmp.NewOpex,

		CurrentPerformance: e.OldPerformance,
		NewPerformance:     e.NewPerformance,
		PerformanceRatio:   safeRatio(e.NewPerformance, e.OldPerformance),
		PowerRatio:         safeRatio(cmp.NewPowerKW, cmp.OldPowerKW),

		CurrentSeries: be.OldSeries,
		NewSeries:     be.NewSeries,
		Savings:       e.Savings,
	}
	s.RatioPrecision = RatioPrecision(s.PerformanceRatio, s.PowerRatio)

	if len(cmp.NewSeries) > 0 {
		s.EmbodiedCarbonKg = cmp.NewSeries[0]
	}
	if be.Found {
		s.BreakEvenYears = be.Point.X
		s.BreakEvenDays = YearsToDays(be.Point.X)
		s.BreakEvenEmissionsKg = be.Point.Y
		s.BreakEvenLabel = FormatYears(be.Point.X, true)
	}
	return s
}

// safeRatio returns a/b, or 0 when b is 0.
func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
