package breakeven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

func systemsFor(t *testing.T, workload carbon.Workload) (carbon.System, carbon.System) {
	t.Helper()
	table := testTable(t)
	oldSpec, err := table.Get("Old")
	require.NoError(t, err)
	newSpec, err := table.Get("New")
	require.NoError(t, err)

	oldSys, err := carbon.SystemFromSpec(oldSpec, workload)
	require.NoError(t, err)
	newSys, err := carbon.SystemFromSpec(newSpec, workload)
	require.NoError(t, err)
	return oldSys, newSys
}

func TestGenerateComparison_SeriesStartingPoints(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)

	result, err := GenerateComparison(oldSys, newSys, ComparisonParams{
		TimeHorizon:    100,
		GridIntensity:  344,
		OldUtilization: 40,
		NewUtilization: 40,
	})
	require.NoError(t, err)

	require.Len(t, result.OldSeries, 100)
	require.Len(t, result.NewSeries, 100)
	assert.Equal(t, 0.0, result.OldSeries[0])
	assert.Equal(t, result.NewCapex.Total, result.NewSeries[0])
	assert.Equal(t, carbon.CalculateCapex(newSys), result.NewCapex)
	assert.Equal(t, carbon.CalculateCapex(oldSys), result.OldCapex)

	oldOpex := carbon.CalculateOpex(oldSys, 40, 344)
	newOpex := carbon.CalculateOpex(newSys, 40, 344)
	assert.Equal(t, oldOpex, result.OldOpex)
	assert.Equal(t, newOpex, result.NewOpex)
	assert.Equal(t, oldOpex.Total, result.OldPowerKW)
	assert.Equal(t, newOpex.Total, result.NewPowerKW)

	for i := 1; i < 100; i++ {
		assert.InDelta(t, oldOpex.PerYear, result.OldSeries[i]-result.OldSeries[i-1], 1e-6)
		assert.InDelta(t, newOpex.PerYear, result.NewSeries[i]-result.NewSeries[i-1], 1e-6)
	}
}

func TestGenerateComparison_EmissionsScaling(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)
	params := ComparisonParams{
		TimeHorizon:    10,
		GridIntensity:  344,
		OldUtilization: 40,
		NewUtilization: 40,
	}

	plain, err := GenerateComparison(oldSys, newSys, params)
	require.NoError(t, err)

	params.Scaling = ScalingEmissions
	scaled, err := GenerateComparison(oldSys, newSys, params)
	require.NoError(t, err)

	// New is twice as fast, so one new unit replaces two old ones.
	for i := range plain.OldSeries {
		assert.InDelta(t, 2*plain.OldSeries[i], scaled.OldSeries[i], 1e-9)
	}
	assert.Equal(t, plain.NewSeries, scaled.NewSeries)
	assert.Equal(t, plain.OldOpex, scaled.OldOpex, "breakdowns stay unscaled")
}

func TestGenerateComparison_UtilizationModeLeavesSeriesAlone(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)
	params := ComparisonParams{TimeHorizon: 10, GridIntensity: 344, OldUtilization: 80, NewUtilization: 40}

	plain, err := GenerateComparison(oldSys, newSys, params)
	require.NoError(t, err)

	params.Scaling = ScalingUtilization
	scaled, err := GenerateComparison(oldSys, newSys, params)
	require.NoError(t, err)

	assert.Equal(t, plain, scaled)
}

func TestGenerateComparison_EmissionsScalingZeroPerformance(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)
	oldSys.Performance = 0

	_, err := GenerateComparison(oldSys, newSys, ComparisonParams{
		TimeHorizon: 10,
		Scaling:     ScalingEmissions,
	})
	assert.ErrorIs(t, err, ErrZeroPerformance)
}

func TestGenerateComparison_SingleComparison(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)

	result, err := GenerateComparison(oldSys, newSys, ComparisonParams{
		TimeHorizon:      DefaultTimeHorizon,
		GridIntensity:    344,
		OldUtilization:   40,
		NewUtilization:   40,
		Scaling:          ScalingEmissions,
		SingleComparison: true,
	})
	require.NoError(t, err)

	assert.True(t, result.SingleComparison)
	assert.Equal(t, result.OldCapex, result.NewCapex)
	assert.Equal(t, carbon.CalculateCapex(oldSys).Total, result.NewSeries[0])
	assert.Equal(t, result.OldOpex, result.NewOpex)
	require.Len(t, result.NewSeries, DefaultTimeHorizon)
	for i, v := range result.NewSeries {
		require.Equal(t, result.NewSeries[0], v, "embodied line must be flat at year %d", i)
	}

	be := Resolve(result)
	require.True(t, be.Found, "operating a unit always catches up with its embodied carbon")
	assert.InDelta(t, result.NewSeries[0]/result.OldOpex.PerYear, be.Point.X, 1e-9)
}

func TestGenerateComparison_UnknownGridNeverBreaksEven(t *testing.T) {
	oldSys, newSys := systemsFor(t, carbon.WorkloadFP32)

	result, err := GenerateComparison(oldSys, newSys, ComparisonParams{
		TimeHorizon:    DefaultTimeHorizon,
		GridIntensity:  0,
		OldUtilization: 40,
		NewUtilization: 40,
	})
	require.NoError(t, err)

	be := Resolve(result)
	assert.False(t, be.Found)
	assert.Len(t, be.NewSeries, FallbackWindowYears)
}
