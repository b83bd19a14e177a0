// Package breakeven compares the accumulated carbon of a current and a new
// hardware unit and resolves the year at which replacing pays off.
package breakeven

import (
	"fmt"
	"strings"

	"github.com/rshade/carbon-breakeven/internal/carbon"
	"github.com/rshade/carbon-breakeven/internal/geometry"
)

const (
	// DefaultTimeHorizon is the number of yearly samples projected per series.
	// It is chosen far beyond any realistic break-even so that the endpoint
	// segments span the true crossing.
	DefaultTimeHorizon = 1000

	// FallbackWindowYears is the display window used when no break-even exists.
	FallbackWindowYears = 3
)

// Role identifies which side of the comparison a unit is on.
type Role int

// Comparison roles.
const (
	RoleCurrent Role = iota
	RoleNew
)

// String returns the display label of the role.
func (r Role) String() string {
	switch r {
	case RoleCurrent:
		return "current"
	case RoleNew:
		return "new"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == RoleCurrent {
		return RoleNew
	}
	return RoleCurrent
}

// ScalingMode selects how the two roles are coupled.
type ScalingMode int

// Scaling modes.
const (
	// ScalingNone keeps the roles independent.
	ScalingNone ScalingMode = iota

	// ScalingUtilization rescales the other role's utilization whenever one
	// role's utilization changes, keeping aggregate throughput equal.
	ScalingUtilization

	// ScalingEmissions scales the current unit's yearly operational carbon by
	// the performance ratio new/current, modeling an N-for-1 consolidation.
	ScalingEmissions
)

// String returns the display name of the mode.
func (m ScalingMode) String() string {
	switch m {
	case ScalingNone:
		return "None"
	case ScalingUtilization:
		return "Utilization"
	case ScalingEmissions:
		return "Emissions"
	default:
		return fmt.Sprintf("ScalingMode(%d)", int(m))
	}
}

// ParseScalingMode parses a mode name case-insensitively. An empty name is
// ScalingNone.
func ParseScalingMode(s string) (ScalingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ScalingNone, nil
	case "utilization":
		return ScalingUtilization, nil
	case "emissions":
		return ScalingEmissions, nil
	default:
		return ScalingNone, fmt.Errorf("%w: %q", ErrUnknownScaling, s)
	}
}

// MarshalText encodes the mode as its display name.
func (m ScalingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name accepted by ParseScalingMode.
func (m *ScalingMode) UnmarshalText(text []byte) error {
	parsed, err := ParseScalingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ComparisonParams are the scenario inputs of GenerateComparison.
type ComparisonParams struct {
	// TimeHorizon is the number of yearly samples per series.
	TimeHorizon int

	// GridIntensity is the grid carbon intensity in g CO2e per kWh.
	GridIntensity float64

	// OldUtilization and NewUtilization are percentages in [0, 100].
	OldUtilization float64
	NewUtilization float64

	// Scaling is the active scaling mode.
	Scaling ScalingMode

	// SingleComparison compares the current unit against its own embodied
	// carbon instead of against a different part.
	SingleComparison bool
}

// ComparisonResult holds both accumulated-carbon series and their breakdowns.
type ComparisonResult struct {
	// OldSeries is the current unit's accumulated operational carbon; it
	// starts at 0 because the unit's embodied carbon is already amortized.
	OldSeries []float64 `json:"old_series"`

	// NewSeries is the new unit's accumulated carbon, starting at its
	// embodied carbon. In single comparison mode only NewSeries[0] matters:
	// it is the current unit's own embodied carbon.
	NewSeries []float64 `json:"new_series"`

	OldCapex carbon.CapexBreakdown `json:"old_capex"`
	NewCapex carbon.CapexBreakdown `json:"new_capex"`
	OldOpex  carbon.OpexBreakdown  `json:"old_opex"`
	NewOpex  carbon.OpexBreakdown  `json:"new_opex"`

	// OldPowerKW and NewPowerKW are the normalized power draws in kW.
	OldPowerKW float64 `json:"old_power_kw"`
	NewPowerKW float64 `json:"new_power_kw"`

	// SingleComparison records the mode the result was generated in.
	SingleComparison bool `json:"single_comparison"`
}

// BreakEven is the resolved crossing of the two series.
type BreakEven struct {
	// Found is false when the curves never cross within the horizon.
	Found bool `json:"found"`

	// Point is the crossing (year, kg CO2e). Zero when Found is false.
	Point geometry.Point `json:"point"`

	// Year is ceil(Point.X + 1), or FallbackWindowYears when not Found.
	Year int `json:"year"`

	// OldSeries and NewSeries are the series truncated to Year entries.
	OldSeries []float64 `json:"old_series"`
	NewSeries []float64 `json:"new_series"`
}
