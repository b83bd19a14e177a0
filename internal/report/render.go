package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
)

// Terminal colors for the text summary.
const (
	colorHeader = lipgloss.Color("#7D56F4")
	colorLabel  = lipgloss.Color("245")
	colorOK     = lipgloss.Color("42")
	colorWarn   = lipgloss.Color("214")
)

const (
	labelWidth  = 24
	columnWidth = 14
)

// WriteJSON encodes the summary as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// WriteText renders the summary for a terminal. Styling is dropped when w
// is not a color-capable terminal.
func WriteText(w io.Writer, s Summary) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(colorHeader)
	label := r.NewStyle().Foreground(colorLabel).Width(labelWidth)
	value := r.NewStyle().Bold(true)

	var sb strings.Builder
	row := func(name, v string) {
		sb.WriteString(label.Render(name))
		sb.WriteString(value.Render(v))
		sb.WriteString("\n")
	}

	heading := fmt.Sprintf("Carbon Break-Even: %s → %s (%s)", s.Current, s.New, s.Workload)
	if s.SingleComparison {
		heading = fmt.Sprintf("Carbon Break-Even: keep %s (%s)", s.Current, s.Workload)
	}
	sb.WriteString(title.Render(heading))
	sb.WriteString("\n\n")

	row("Country", fmt.Sprintf("%s (%s gCO₂e/kWh)", s.Country, FormatFloat(s.GridIntensity, 0)))
	row("Scaling", s.Scaling)

	breakEven := r.NewStyle().Bold(true).Foreground(colorWarn).Render(NoBreakEvenLabel)
	if s.BreakEvenFound {
		breakEven = r.NewStyle().Bold(true).Foreground(colorOK).Render(
			fmt.Sprintf("%s (%s days)", s.BreakEvenLabel, FormatNumber(int64(s.BreakEvenDays))))
	}
	sb.WriteString(label.Render("Break-Even"))
	sb.WriteString(breakEven)
	sb.WriteString("\n")
	if s.BreakEvenFound {
		row("Break-Even Emissions", kg(s.BreakEvenEmissionsKg))
	}

	embodied := "Embodied Carbon (New)"
	if s.SingleComparison {
		embodied = "Embodied Carbon (Current)"
	}
	row(embodied, kg(s.EmbodiedCarbonKg))
	row("Power (Current)", FormatFloat(s.CurrentOpex.Total, 3)+" kW")
	row("Yearly Opex (Current)", kg(s.CurrentOpex.PerYear)+"/yr")
	if !s.SingleComparison {
		row("Power (New)", FormatFloat(s.NewOpex.Total, 3)+" kW")
		row("Yearly Opex (New)", kg(s.NewOpex.PerYear)+"/yr")
		row("Performance Ratio", FormatFloat(s.PerformanceRatio, s.RatioPrecision))
		row("Power Ratio", FormatFloat(s.PowerRatio, s.RatioPrecision))
	}

	sb.WriteString("\n")
	sb.WriteString(title.Render("Accumulated Emissions (kgCO₂e)"))
	sb.WriteString("\n")
	writeSeriesTable(&sb, s)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func writeSeriesTable(sb *strings.Builder, s Summary) {
	newColumn := "New"
	if s.SingleComparison {
		newColumn = "Embodied"
	}
	fmt.Fprintf(sb, "%-6s%*s%*s%*s\n", "Year",
		columnWidth, "Current", columnWidth, newColumn, columnWidth, "Savings")

	n := min(len(s.CurrentSeries), len(s.NewSeries))
	for i := range n {
		saving := 0.0
		if i < len(s.Savings.Absolute) {
			saving = s.Savings.Absolute[i]
		}
		fmt.Fprintf(sb, "%-6d%*s%*s%*s\n", i,
			columnWidth, FormatFloat(s.CurrentSeries[i], 1),
			columnWidth, FormatFloat(s.NewSeries[i], 1),
			columnWidth, FormatFloat(saving, 1))
	}
}

func kg(v float64) string {
	return FormatFloat(v, 1) + " kgCO₂e"
}
