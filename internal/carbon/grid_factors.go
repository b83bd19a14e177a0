package carbon

import "sort"

// GridIntensities maps country names to yearly average grid carbon intensity
// in g CO2e per kWh.
//
// Source: Electricity Maps yearly lifecycle averages
// Data vintage: 2024
// Reference: https://www.electricitymaps.com/
var GridIntensities = map[string]float64{
	"Australia":      549,
	"Austria":        110,
	"Belgium":        147,
	"Brazil":         98,
	"Canada":         128,
	"China":          582,
	"Czechia":        420,
	"Denmark":        143,
	"Finland":        71,
	"France":         33,
	"Germany":        344,
	"India":          713,
	"Ireland":        282,
	"Italy":          287,
	"Japan":          483,
	"Netherlands":    268,
	"Norway":         30,
	"Poland":         652,
	"Portugal":       123,
	"South Africa":   707,
	"Spain":          125,
	"Sweden":         25,
	"Switzerland":    46,
	"United Kingdom": 211,
	"United States":  369,
}

// GetGridIntensity returns the grid intensity for the country in g CO2e/kWh.
// Countries not listed yield 0, which zeroes operational carbon rather than
// failing the estimate.
func GetGridIntensity(country string) float64 {
	if v, ok := GridIntensities[country]; ok {
		return v
	}
	logger.Debug().Str("country", country).Msg("no grid intensity for country, using 0")
	return 0
}

// Countries returns the listed country names in alphabetical order.
func Countries() []string {
	names := make([]string, 0, len(GridIntensities))
	for name := range GridIntensities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
