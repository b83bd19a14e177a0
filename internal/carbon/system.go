package carbon

import (
	"fmt"
	"math"
)

// System is one hardware unit prepared for carbon accounting. It is an
// immutable value; construct it with NewSystem or SystemFromSpec.
type System struct {
	// DieAreaCM2 is the die area in cm².
	DieAreaCM2 float64

	// Performance is the score of the active workload, 0 when unsupported.
	Performance float64

	// LifetimeYears is the rated lifetime. Informational only.
	LifetimeYears int

	// VRAMCapacityGB is the VRAM capacity in GB.
	VRAMCapacityGB float64

	// ProcessNodeNM is the manufacturing process node in nm.
	ProcessNodeNM int

	// MaxPowerW is the power draw at 100% utilization in watts.
	MaxPowerW float64

	// IdlePowerW is the power draw at 0% utilization in watts.
	IdlePowerW float64

	// Memory is the VRAM technology class.
	Memory MemoryType

	// HBMStacks is the number of VRAM stacks, at least 1.
	HBMStacks int
}

// SystemParams holds the raw inputs for NewSystem. Nil optional fields take
// their documented defaults.
type SystemParams struct {
	DieAreaCM2     float64
	Performance    float64
	LifetimeYears  int
	VRAMCapacityGB float64
	ProcessNodeNM  int
	MaxPowerW      float64
	IdlePowerW     *float64 // nil defaults to DefaultIdleFraction × MaxPowerW
	Memory         MemoryType
	HBMStacks      *int // nil or < 1 is treated as 1
}

// NewSystem validates p and returns the resulting System.
// Negative or non-finite die area, VRAM capacity, or power values are
// rejected with ErrInvalidSystem, as is an idle draw above the max draw.
func NewSystem(p SystemParams) (System, error) {
	checks := []struct {
		name  string
		value float64
	}{
		{"die area", p.DieAreaCM2},
		{"vram capacity", p.VRAMCapacityGB},
		{"max power", p.MaxPowerW},
	}
	for _, c := range checks {
		if c.value < 0 || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return System{}, fmt.Errorf("%w: %s must be a finite non-negative number, got %v",
				ErrInvalidSystem, c.name, c.value)
		}
	}

	idle := p.MaxPowerW * DefaultIdleFraction
	if p.IdlePowerW != nil {
		idle = *p.IdlePowerW
	}
	if idle < 0 || math.IsNaN(idle) {
		return System{}, fmt.Errorf("%w: idle power must be non-negative, got %v", ErrInvalidSystem, idle)
	}
	if idle > p.MaxPowerW {
		return System{}, fmt.Errorf("%w: idle power %v exceeds max power %v",
			ErrInvalidSystem, idle, p.MaxPowerW)
	}

	stacks := 1
	if p.HBMStacks != nil && *p.HBMStacks >= 1 {
		stacks = *p.HBMStacks
	}

	return System{
		DieAreaCM2:     p.DieAreaCM2,
		Performance:    p.Performance,
		LifetimeYears:  p.LifetimeYears,
		VRAMCapacityGB: p.VRAMCapacityGB,
		ProcessNodeNM:  p.ProcessNodeNM,
		MaxPowerW:      p.MaxPowerW,
		IdlePowerW:     idle,
		Memory:         p.Memory,
		HBMStacks:      stacks,
	}, nil
}

// SystemFromSpec builds a System from a spec table entry using the score of
// the given workload as its performance indicator. Die areas are converted
// from mm² to cm².
func SystemFromSpec(spec HardwareSpec, workload Workload) (System, error) {
	sys, err := NewSystem(SystemParams{
		DieAreaCM2:     spec.DieAreaMM2 / MM2PerCM2,
		Performance:    spec.Score(workload),
		LifetimeYears:  DefaultLifetimeYears,
		VRAMCapacityGB: spec.VRAMCapacityGB,
		ProcessNodeNM:  spec.ProcessNodeNM,
		MaxPowerW:      spec.MaxPowerW,
		IdlePowerW:     spec.IdlePowerW,
		Memory:         spec.Memory,
		HBMStacks:      spec.HBMStacks,
	})
	if err != nil {
		return System{}, fmt.Errorf("building system for %s: %w", spec.Name, err)
	}
	return sys, nil
}
