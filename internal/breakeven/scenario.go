package breakeven

import (
	"fmt"
	"math"
	"slices"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// ScenarioSelection is the caller-owned set of choices driving one
// evaluation. It is a value: every change produces a new selection and a
// full recomputation.
type ScenarioSelection struct {
	Workload           carbon.Workload `json:"workload"`
	Scaling            ScalingMode     `json:"scaling"`
	Current            string          `json:"current"`
	New                string          `json:"new"`
	CurrentUtilization float64         `json:"current_utilization"`
	NewUtilization     float64         `json:"new_utilization"`
	Country            string          `json:"country"`
	SingleComparison   bool            `json:"single_comparison"`
	TimeHorizon        int             `json:"time_horizon"`
}

// Part returns the part name selected for the role. In single comparison
// mode both roles resolve to the current part.
func (s ScenarioSelection) Part(r Role) string {
	if r == RoleNew && !s.SingleComparison {
		return s.New
	}
	return s.Current
}

// Utilization returns the utilization selected for the role.
func (s ScenarioSelection) Utilization(r Role) float64 {
	if r == RoleNew {
		return s.NewUtilization
	}
	return s.CurrentUtilization
}

func (s ScenarioSelection) withUtilization(r Role, u float64) ScenarioSelection {
	if r == RoleNew {
		s.NewUtilization = u
	} else {
		s.CurrentUtilization = u
	}
	return s
}

// SetUtilization returns a selection with the role's utilization set to u.
// Under ScalingUtilization (outside single comparison mode) the other
// role's utilization is rescaled to keep throughput equal.
func (s ScenarioSelection) SetUtilization(r Role, u float64, table carbon.HardwareTable) (ScenarioSelection, error) {
	if u < 0 || u > carbon.MaxUtilization || math.IsNaN(u) {
		return s, fmt.Errorf("%w: %v", ErrInvalidUtilization, u)
	}
	next := s.withUtilization(r, u)
	if s.Scaling != ScalingUtilization || s.SingleComparison {
		return next, nil
	}

	changed, err := table.Get(s.Part(r))
	if err != nil {
		return s, err
	}
	other, err := table.Get(s.Part(r.Other()))
	if err != nil {
		return s, err
	}

	scaled, err := ScaleUtilization(u, changed.Score(s.Workload), other.Score(s.Workload))
	if err != nil {
		return s, fmt.Errorf("propagating %s utilization: %w", r, err)
	}
	logger.Debug().
		Stringer("role", r).
		Float64("utilization", u).
		Float64("other_utilization", scaled).
		Msg("propagated utilization")
	return next.withUtilization(r.Other(), scaled), nil
}

// AvailableWorkloads returns the workloads every selected part supports.
// In single comparison mode only the current part is considered.
func (s ScenarioSelection) AvailableWorkloads(table carbon.HardwareTable) ([]carbon.Workload, error) {
	current, err := table.Get(s.Current)
	if err != nil {
		return nil, err
	}
	if s.SingleComparison {
		return carbon.SupportedWorkloads(current), nil
	}
	next, err := table.Get(s.New)
	if err != nil {
		return nil, err
	}
	return carbon.SupportedWorkloads(current, next), nil
}

// Normalize returns a selection whose workload is supported by the
// selected parts, falling back to the first workload in presentation order
// when the active one is disabled. A pairing that supports no workload is
// returned unchanged with ErrUnsupportedWorkload.
func (s ScenarioSelection) Normalize(table carbon.HardwareTable) (ScenarioSelection, error) {
	available, err := s.AvailableWorkloads(table)
	if err != nil {
		return s, err
	}
	if slices.Contains(available, s.Workload) {
		return s, nil
	}
	fallback := carbon.Workloads()[0]
	if !slices.Contains(available, fallback) {
		if len(available) == 0 {
			return s, fmt.Errorf("%w: no workload supported by %s and %s",
				ErrUnsupportedWorkload, s.Part(RoleCurrent), s.Part(RoleNew))
		}
		fallback = available[0]
	}
	logger.Debug().
		Str("workload", string(s.Workload)).
		Str("fallback", string(fallback)).
		Msg("workload unsupported by selection, falling back")
	s.Workload = fallback
	return s, nil
}

// Evaluation is the full result of one scenario.
type Evaluation struct {
	Scenario       ScenarioSelection `json:"scenario"`
	GridIntensity  float64           `json:"grid_intensity"`
	OldPerformance float64           `json:"old_performance"`
	NewPerformance float64           `json:"new_performance"`
	Comparison     ComparisonResult  `json:"comparison"`
	BreakEven      BreakEven         `json:"break_even"`
	Savings        Savings           `json:"savings"`
}

// Evaluate runs the whole pipeline for a selection: it builds both systems
// from the spec table, generates the comparison, and resolves the
// break-even point. Savings are computed over the truncated series.
func Evaluate(s ScenarioSelection, table carbon.HardwareTable) (Evaluation, error) {
	if _, ok := carbon.ParseWorkload(string(s.Workload)); !ok {
		return Evaluation{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, s.Workload)
	}
	for _, r := range []Role{RoleCurrent, RoleNew} {
		if u := s.Utilization(r); u < 0 || u > carbon.MaxUtilization || math.IsNaN(u) {
			return Evaluation{}, fmt.Errorf("%w: %s utilization %v", ErrInvalidUtilization, r, u)
		}
	}
	if s.TimeHorizon <= 0 {
		s.TimeHorizon = DefaultTimeHorizon
	}

	oldSys, err := buildSystem(s, RoleCurrent, table)
	if err != nil {
		return Evaluation{}, err
	}
	newSys, err := buildSystem(s, RoleNew, table)
	if err != nil {
		return Evaluation{}, err
	}

	intensity := carbon.GetGridIntensity(s.Country)
	result, err := GenerateComparison(oldSys, newSys, ComparisonParams{
		TimeHorizon:      s.TimeHorizon,
		GridIntensity:    intensity,
		OldUtilization:   s.CurrentUtilization,
		NewUtilization:   s.NewUtilization,
		Scaling:          s.Scaling,
		SingleComparison: s.SingleComparison,
	})
	if err != nil {
		return Evaluation{}, err
	}

	be := Resolve(result)
	logger.Debug().
		Str("current", s.Part(RoleCurrent)).
		Str("new", s.Part(RoleNew)).
		Str("workload", string(s.Workload)).
		Stringer("scaling", s.Scaling).
		Bool("found", be.Found).
		Int("year", be.Year).
		Msg("evaluated scenario")

	return Evaluation{
		Scenario:       s,
		GridIntensity:  intensity,
		OldPerformance: oldSys.Performance,
		NewPerformance: newSys.Performance,
		Comparison:     result,
		BreakEven:      be,
		Savings:        ComputeSavings(be.OldSeries, be.NewSeries),
	}, nil
}

func buildSystem(s ScenarioSelection, r Role, table carbon.HardwareTable) (carbon.System, error) {
	spec, err := table.Get(s.Part(r))
	if err != nil {
		return carbon.System{}, fmt.Errorf("%s hardware: %w", r, err)
	}
	if !spec.Supports(s.Workload) {
		return carbon.System{}, fmt.Errorf("%w: %s has no %s score", ErrUnsupportedWorkload, spec.Name, s.Workload)
	}
	return carbon.SystemFromSpec(spec, s.Workload)
}
