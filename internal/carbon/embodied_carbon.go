package carbon

import (
	"fmt"
	"math"
)

// ChipYield returns the Poisson die yield exp(-D0 × area) for a die area in
// cm². It lies in (0, 1] for non-negative areas and falls as the die grows.
func ChipYield(dieAreaCM2 float64) float64 {
	return math.Exp(-DefectDensity * dieAreaCM2)
}

// VRAMYield returns the VRAM yield HBMStackYield^stacks.
func VRAMYield(stacks int) float64 {
	if stacks < 1 {
		stacks = 1
	}
	return math.Pow(HBMStackYield, float64(stacks))
}

// CalculateCapex returns the embodied manufacturing carbon of the system.
//
// The chip term follows the ACT logic model divided by the die yield:
//
//	chip = ((CIFab × EPA(node) + GPA(node) + MPA) × area) / ChipYield(area)
//
// The VRAM term is capacity × EmbodiedPerGB(memory) / VRAMYield(stacks).
// Unknown process nodes or memory types contribute 0 to their terms. The
// result does not depend on utilization, time, or location.
func CalculateCapex(s System) CapexBreakdown {
	perArea := CIFab*GetEnergyPerArea(s.ProcessNodeNM) + GetGasPerArea(s.ProcessNodeNM) + MaterialsPerArea
	chip := (perArea * s.DieAreaCM2) / ChipYield(s.DieAreaCM2)

	vram := (s.VRAMCapacityGB * GetVRAMEmbodiedPerGB(s.Memory)) / VRAMYield(s.HBMStacks)

	return CapexBreakdown{
		Chip:  chip,
		Total: chip + vram,
	}
}

// DescribeCapex returns a human-readable explanation of the capex figure.
func DescribeCapex(s System) string {
	capex := CalculateCapex(s)
	return fmt.Sprintf("Embodied carbon: %g cm² die at %dnm (yield %.3f) = %.2f kgCO2e, "+
		"%g GB %s over %d stack(s) = %.2f kgCO2e, total %.2f kgCO2e",
		s.DieAreaCM2, s.ProcessNodeNM, ChipYield(s.DieAreaCM2), capex.Chip,
		s.VRAMCapacityGB, s.Memory, s.HBMStacks, capex.Total-capex.Chip, capex.Total)
}
