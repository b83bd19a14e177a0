package breakeven

import (
	"fmt"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// GenerateComparison projects the accumulated carbon of the current (old)
// and new systems over params.TimeHorizon years.
//
// The old series starts at 0: the deployed unit's embodied carbon is treated
// as amortized. The new series starts at the new unit's embodied carbon.
// Under ScalingEmissions the old series is multiplied by perfNew/perfOld.
//
// In single comparison mode newSys is ignored: NewSeries is the current
// unit's own embodied carbon held constant over the horizon, and the new
// breakdowns repeat the current ones.
func GenerateComparison(oldSys, newSys carbon.System, params ComparisonParams) (ComparisonResult, error) {
	if params.SingleComparison {
		return singleComparison(oldSys, params), nil
	}

	oldSeries, oldOpex := carbon.AccumProjectedOpex(oldSys, params.TimeHorizon, params.OldUtilization, params.GridIntensity)
	newSeries, newOpex := carbon.AccumProjectedOpex(newSys, params.TimeHorizon, params.NewUtilization, params.GridIntensity)

	if params.Scaling == ScalingEmissions {
		factor, err := EmissionsFactor(oldSys.Performance, newSys.Performance)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("applying emissions scaling: %w", err)
		}
		for i := range oldSeries {
			oldSeries[i] *= factor
		}
		logger.Debug().Float64("factor", factor).Msg("scaled current system emissions")
	}

	oldCapex := carbon.CalculateCapex(oldSys)
	newCapex := carbon.CalculateCapex(newSys)

	for i := range newSeries {
		newSeries[i] += newCapex.Total
	}

	return ComparisonResult{
		OldSeries:  oldSeries,
		NewSeries:  newSeries,
		OldCapex:   oldCapex,
		NewCapex:   newCapex,
		OldOpex:    oldOpex,
		NewOpex:    newOpex,
		OldPowerKW: oldOpex.Total,
		NewPowerKW: newOpex.Total,
	}, nil
}

func singleComparison(sys carbon.System, params ComparisonParams) ComparisonResult {
	series, opex := carbon.AccumProjectedOpex(sys, params.TimeHorizon, params.OldUtilization, params.GridIntensity)
	capex := carbon.CalculateCapex(sys)

	embodied := make([]float64, len(series))
	for i := range embodied {
		embodied[i] = capex.Total
	}

	return ComparisonResult{
		OldSeries:        series,
		NewSeries:        embodied,
		OldCapex:         capex,
		NewCapex:         capex,
		OldOpex:          opex,
		NewOpex:          opex,
		OldPowerKW:       opex.Total,
		NewPowerKW:       opex.Total,
		SingleComparison: true,
	}
}
