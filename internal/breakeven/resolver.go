package breakeven

import (
	"math"

	"github.com/rshade/carbon-breakeven/internal/geometry"
)

// Resolve finds the break-even point of a comparison and truncates both
// series to the display window.
//
// Both series are exactly linear, so each is reduced to the segment between
// its first and last samples. In single comparison mode the second segment
// is a horizontal line at NewSeries[0]. A crossing at x gives a window of
// ceil(x + 1) years; no crossing gives FallbackWindowYears.
func Resolve(result ComparisonResult) BreakEven {
	point, found := crossing(result)

	year := FallbackWindowYears
	if found {
		year = int(math.Ceil(point.X + 1))
	}

	return BreakEven{
		Found:     found,
		Point:     point,
		Year:      year,
		OldSeries: truncate(result.OldSeries, year),
		NewSeries: truncate(result.NewSeries, year),
	}
}

func crossing(result ComparisonResult) (geometry.Point, bool) {
	old, cmp := result.OldSeries, result.NewSeries
	if len(old) == 0 || len(cmp) == 0 {
		return geometry.Point{}, false
	}

	last := float64(len(old) - 1)
	oldLine := geometry.Segment{
		A: geometry.Point{X: 0, Y: old[0]},
		B: geometry.Point{X: last, Y: old[len(old)-1]},
	}

	var newLine geometry.Segment
	if result.SingleComparison {
		embodied := cmp[0]
		newLine = geometry.Segment{
			A: geometry.Point{X: 0, Y: embodied},
			B: geometry.Point{X: last, Y: embodied},
		}
	} else {
		newLine = geometry.Segment{
			A: geometry.Point{X: 0, Y: cmp[0]},
			B: geometry.Point{X: float64(len(cmp) - 1), Y: cmp[len(cmp)-1]},
		}
	}

	return geometry.Intersect(oldLine, newLine)
}

// truncate returns a copy of the first n entries of s.
func truncate(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	copy(out, s[:n])
	return out
}
