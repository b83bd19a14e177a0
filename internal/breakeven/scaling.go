package breakeven

import (
	"fmt"
	"math"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// ScaleUtilization returns the utilization the other role needs to deliver
// the same throughput as the changed role at utilization u:
//
//	other = clamp(u × perfChanged / perfOther, 0, 100)
//
// A zero, negative, or NaN performance on either side returns
// ErrZeroPerformance.
func ScaleUtilization(u, perfChanged, perfOther float64) (float64, error) {
	if !validPerformance(perfChanged) || !validPerformance(perfOther) {
		return 0, fmt.Errorf("%w: scaling utilization between %v and %v",
			ErrZeroPerformance, perfChanged, perfOther)
	}
	return carbon.ClampUtilization(u * perfChanged / perfOther), nil
}

// EmissionsFactor returns the factor applied to the current unit's yearly
// operational carbon under ScalingEmissions: perfNew / perfOld. perfOld must
// be positive and finite; perfNew may also be 0.
func EmissionsFactor(perfOld, perfNew float64) (float64, error) {
	if !validPerformance(perfOld) || (perfNew != 0 && !validPerformance(perfNew)) {
		return 0, fmt.Errorf("%w: emissions factor %v/%v", ErrZeroPerformance, perfNew, perfOld)
	}
	return perfNew / perfOld, nil
}

func validPerformance(p float64) bool {
	return p > 0 && !math.IsInf(p, 0)
}
