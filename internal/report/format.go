// Package report turns break-even evaluations into summaries for display
// as text or JSON.
package report

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	daysPerYear  = 365.0
	daysPerMonth = daysPerYear / 12
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with the given precision and thousand separators.
// Example: FormatFloat(1234.567, 1) returns "1,234.6".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	formatted := fmt.Sprintf("%.*f", precision, f)
	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")

	var whole int64
	if _, err := fmt.Sscan(intPart, &whole); err != nil {
		return sign + formatted
	}
	if whole == 0 && (!hasFrac || strings.Trim(fracPart, "0") == "") {
		sign = ""
	}

	out := sign + FormatNumber(whole)
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

// TrimZeroFraction removes an all-zero fraction such as ".0" or ".000".
func TrimZeroFraction(s string) string {
	intPart, frac, ok := strings.Cut(s, ".")
	if ok && strings.Trim(frac, "0") == "" {
		return intPart
	}
	return s
}

// YearsToDays converts a fractional year into whole days.
func YearsToDays(years float64) int {
	return int(math.Round(years * daysPerYear))
}

// FormatYears renders a fractional year as "2 years, 3 months" or, with
// withDays, "2 years, 3 months, 4 days". Zero components are omitted.
func FormatYears(years float64, withDays bool) string {
	totalDays := years * daysPerYear
	wholeYears := math.Floor(totalDays / daysPerYear)
	remaining := totalDays - wholeYears*daysPerYear

	wholeMonths := math.Floor(remaining / daysPerMonth)
	days := math.Round(remaining - wholeMonths*daysPerMonth)

	var parts []string
	if wholeYears > 0 {
		parts = append(parts, plural(int(wholeYears), "year"))
	}
	if wholeMonths > 0 {
		parts = append(parts, plural(int(wholeMonths), "month"))
	}
	if withDays && days > 0 {
		parts = append(parts, plural(int(days), "day"))
	}

	if len(parts) == 0 {
		if withDays {
			return "0 days"
		}
		return "0 months"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// WithinPercent reports whether a and b differ by at most x (a fraction,
// 0.1 = 10%) of their mean.
func WithinPercent(a, b, x float64) bool {
	avg := (a + b) / 2
	if avg == 0 {
		return a == b
	}
	return math.Abs(a-b)/math.Abs(avg) <= x
}

// RatioPrecision returns the number of decimals used to show two ratios
// side by side: 3 when they are within 10% of each other so the difference
// stays visible, 1 otherwise.
func RatioPrecision(perfRatio, powerRatio float64) int {
	if WithinPercent(perfRatio, powerRatio, 0.1) {
		return 3
	}
	return 1
}
