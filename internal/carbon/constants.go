// Package carbon provides embodied and operational carbon accounting for
// GPU hardware using a die-yield manufacturing model and grid intensity.
package carbon

const (
	// CIFab is the carbon intensity of the fabrication grid in kg CO2e per kWh.
	// Source: Taiwan grid average, where most leading-edge dies are fabricated.
	CIFab = 0.486

	// MaterialsPerArea is the carbon cost of procuring wafer materials in
	// kg CO2e per cm² of die.
	MaterialsPerArea = 0.5

	// DefectDensity is the Poisson defect density D0 in defects per cm².
	DefectDensity = 0.1

	// HBMStackYield is the per-stack yield applied to VRAM embodied carbon.
	// The VRAM yield is HBMStackYield raised to the stack count.
	HBMStackYield = 0.96

	// HoursPerYear approximates a year as 52 weeks of 24×7 operation (8736 h).
	// This is intentionally not calendar exact.
	HoursPerYear = 24 * 7 * 52

	// DefaultIdleFraction is the fraction of max power assumed for idle draw
	// when the spec table does not list an idle value.
	DefaultIdleFraction = 0.1

	// DefaultLifetimeYears is the rated lifetime recorded on every System.
	// It is informational only and does not enter any calculation.
	DefaultLifetimeYears = 20

	// DefaultUtilization is the utilization percentage used for both roles
	// when a scenario does not provide one.
	DefaultUtilization = 40.0

	// MaxUtilization is the upper bound of the utilization percentage scale.
	MaxUtilization = 100.0

	// MM2PerCM2 converts spec-table die areas (mm²) to cm².
	MM2PerCM2 = 100.0

	// WattsPerKilowatt converts W to kW.
	WattsPerKilowatt = 1000.0

	// GramsPerKilogram converts grid intensities (g/kWh) to kg/kWh.
	GramsPerKilogram = 1000.0
)
