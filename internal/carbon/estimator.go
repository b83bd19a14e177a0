package carbon

// NormalizedPowerKW interpolates the power draw linearly between idle power
// at utilization 0 and max power at utilization 100, in kW.
//
// Utilization is a percentage. Values outside [0, 100] are extrapolated, not
// clamped; clamping is the caller's job.
func NormalizedPowerKW(s System, utilization float64) float64 {
	slope := (s.MaxPowerW - s.IdlePowerW) / MaxUtilization
	return (s.IdlePowerW + utilization*slope) / WattsPerKilowatt
}

// CalculateOpex returns the operational profile of the system.
//
// The calculation:
//  1. Power (kW) = NormalizedPowerKW(utilization)
//  2. Energy (kWh/year) = Power × HoursPerYear (8736)
//  3. Carbon (kg CO2e/year) = Energy × gridIntensity / 1000
//
// gridIntensity is in g CO2e per kWh.
func CalculateOpex(s System, utilization, gridIntensity float64) OpexBreakdown {
	powerKW := NormalizedPowerKW(s, utilization)
	energyKWh := powerKW * HoursPerYear
	perYear := energyKWh * (gridIntensity / GramsPerKilogram)

	return OpexBreakdown{
		Chip:    powerKW,
		Total:   powerKW,
		PerYear: perYear,
	}
}

// AccumProjectedOpex projects accumulated operational carbon over
// timeHorizon yearly samples: series[i] = i × PerYear. The series is exactly
// linear and starts at 0. A non-positive horizon yields an empty series.
func AccumProjectedOpex(s System, timeHorizon int, utilization, gridIntensity float64) ([]float64, OpexBreakdown) {
	opex := CalculateOpex(s, utilization, gridIntensity)
	if timeHorizon <= 0 {
		return []float64{}, opex
	}

	projected := make([]float64, timeHorizon)
	for i := range projected {
		projected[i] = float64(i) * opex.PerYear
	}
	return projected, opex
}
