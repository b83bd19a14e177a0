package carbon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGridIntensities_AllWithinValidRange validates that every listed grid
// intensity is physically plausible in g CO2e per kWh. Even coal-heavy
// grids stay below 1200 g/kWh.
func TestGridIntensities_AllWithinValidRange(t *testing.T) {
	const minValid = 0.0
	const maxValid = 1200.0

	for country, intensity := range GridIntensities {
		t.Run(country, func(t *testing.T) {
			assert.Greater(t, intensity, minValid,
				"grid intensity for %s should be > 0 (got %f)", country, intensity)
			assert.LessOrEqual(t, intensity, maxValid,
				"grid intensity for %s should be <= 1200 g/kWh (got %f)", country, intensity)
		})
	}
}

func TestGetGridIntensity(t *testing.T) {
	tests := []struct {
		country string
		want    float64
	}{
		{"Germany", 344},
		{"Sweden", 25},
		{"Poland", 652},
		{"Atlantis", 0},
		{"", 0},
		{"germany", 0}, // lookups are exact
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, GetGridIntensity(tt.country))
		})
	}
}

func TestCountries_Sorted(t *testing.T) {
	got := Countries()

	assert.Len(t, got, len(GridIntensities))
	assert.True(t, sort.StringsAreSorted(got))
	assert.Contains(t, got, "Germany")
}
