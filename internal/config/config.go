// Package config loads comparison scenarios from YAML files and
// CARBON_BREAKEVEN_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CARBON_BREAKEVEN_"

// Scenario is the on-disk form of a comparison. Enumerations stay strings
// here and are parsed by Selection.
type Scenario struct {
	Workload           string  `yaml:"workload"`
	Scaling            string  `yaml:"scaling"`
	Current            string  `yaml:"current"`
	New                string  `yaml:"new"`
	CurrentUtilization float64 `yaml:"current_utilization"`
	NewUtilization     float64 `yaml:"new_utilization"`
	Country            string  `yaml:"country"`
	SingleComparison   bool    `yaml:"single_comparison"`
	TimeHorizon        int     `yaml:"time_horizon"`
}

// Default returns the scenario used when nothing is configured.
func Default() Scenario {
	country := ""
	if countries := carbon.Countries(); len(countries) > 0 {
		country = countries[0]
	}
	return Scenario{
		Workload:           string(carbon.WorkloadFP16),
		Scaling:            breakeven.ScalingNone.String(),
		CurrentUtilization: carbon.DefaultUtilization,
		NewUtilization:     carbon.DefaultUtilization,
		Country:            country,
		TimeHorizon:        breakeven.DefaultTimeHorizon,
	}
}

// Load reads defaults, then the YAML file at path (skipped when empty),
// then environment overrides.
func Load(path string, logger zerolog.Logger) (Scenario, error) {
	sc := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Scenario{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return Scenario{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("loaded scenario file")
	}
	applyEnv(&sc, logger)
	return sc, nil
}

func applyEnv(sc *Scenario, logger zerolog.Logger) {
	strVars := map[string]*string{
		"WORKLOAD": &sc.Workload,
		"SCALING":  &sc.Scaling,
		"CURRENT":  &sc.Current,
		"NEW":      &sc.New,
		"COUNTRY":  &sc.Country,
	}
	for key, dst := range strVars {
		if v := os.Getenv(EnvPrefix + key); v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	floatVars := map[string]*float64{
		"CURRENT_UTILIZATION": &sc.CurrentUtilization,
		"NEW_UTILIZATION":     &sc.NewUtilization,
	}
	for key, dst := range floatVars {
		raw := os.Getenv(EnvPrefix + key)
		if raw == "" {
			continue
		}
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			*dst = parsed
		} else {
			logger.Warn().Str("value", raw).Msgf("invalid %s%s, keeping %v", EnvPrefix, key, *dst)
		}
	}

	if raw := os.Getenv(EnvPrefix + "TIME_HORIZON"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			sc.TimeHorizon = parsed
		} else {
			logger.Warn().Str("value", raw).Msgf("invalid %sTIME_HORIZON, keeping %d", EnvPrefix, sc.TimeHorizon)
		}
	}

	if strings.ToLower(os.Getenv(EnvPrefix+"SINGLE_COMPARISON")) == "true" {
		sc.SingleComparison = true
	}
}

// Selection converts the scenario into an engine selection. A missing or
// identical new part turns on single comparison.
func (sc Scenario) Selection() (breakeven.ScenarioSelection, error) {
	if strings.TrimSpace(sc.Current) == "" {
		return breakeven.ScenarioSelection{}, ErrMissingPart
	}
	workload, ok := carbon.ParseWorkload(strings.ToUpper(strings.TrimSpace(sc.Workload)))
	if !ok {
		return breakeven.ScenarioSelection{}, fmt.Errorf("%w: %q", breakeven.ErrUnknownWorkload, sc.Workload)
	}
	scaling, err := breakeven.ParseScalingMode(sc.Scaling)
	if err != nil {
		return breakeven.ScenarioSelection{}, err
	}

	sel := breakeven.ScenarioSelection{
		Workload:           workload,
		Scaling:            scaling,
		Current:            sc.Current,
		New:                sc.New,
		CurrentUtilization: sc.CurrentUtilization,
		NewUtilization:     sc.NewUtilization,
		Country:            sc.Country,
		SingleComparison:   sc.SingleComparison,
		TimeHorizon:        sc.TimeHorizon,
	}
	if sel.New == "" || sel.New == sel.Current {
		sel.New = sel.Current
		sel.SingleComparison = true
	}
	return sel, nil
}
