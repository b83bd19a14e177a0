package carbon

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices for hardware specs.
const (
	colName         = 0  // name
	colYear         = 1  // year
	colProcessNode  = 2  // process_nm
	colDieArea      = 3  // die_area_mm2
	colVRAM         = 4  // vram_gb
	colMemoryType   = 5  // memory_type
	colHBMStacks    = 6  // hbm_stacks (optional)
	colMaxPower     = 7  // tdp_max_w
	colIdlePower    = 8  // tdp_idle_w (optional)
	colFP16         = 9  // fp16
	colFP32         = 10 // fp32
	colFP64         = 11 // fp64
	colMatrixBench  = 12 // bench_s_matrix
	hardwareColumns = 13
)

//go:embed data/hardware_specs.csv
var hardwareSpecsCSV string

// HardwareSpec is one row of the static hardware spec table.
type HardwareSpec struct {
	// Name identifies the part (e.g., "A100").
	Name string `json:"name"`

	// Year is the release year, used for presentation ordering.
	Year int `json:"year"`

	// ProcessNodeNM is the manufacturing process node in nm.
	ProcessNodeNM int `json:"process_nm"`

	// DieAreaMM2 is the die area in mm².
	DieAreaMM2 float64 `json:"die_area_mm2"`

	// VRAMCapacityGB is the VRAM capacity in GB.
	VRAMCapacityGB float64 `json:"vram_gb"`

	// Memory is the VRAM technology class.
	Memory MemoryType `json:"memory_type"`

	// HBMStacks is the number of VRAM stacks, nil when not listed.
	HBMStacks *int `json:"hbm_stacks,omitempty"`

	// MaxPowerW is the max power draw (TDP) in watts.
	MaxPowerW float64 `json:"tdp_max_w"`

	// IdlePowerW is the idle power draw in watts, nil when not listed.
	IdlePowerW *float64 `json:"tdp_idle_w,omitempty"`

	// Scores holds the performance score per workload. A missing or zero
	// score means the workload is unsupported on this part.
	Scores map[Workload]float64 `json:"scores"`
}

// Score returns the performance score for the workload, 0 when unsupported.
func (h HardwareSpec) Score(w Workload) float64 {
	return h.Scores[w]
}

// Supports reports whether the part has a positive score for the workload.
func (h HardwareSpec) Supports(w Workload) bool {
	return h.Score(w) > 0
}

// HardwareTable maps part names to their specs.
type HardwareTable map[string]HardwareSpec

// Get returns the spec for name, or ErrUnknownHardware.
func (t HardwareTable) Get(name string) (HardwareSpec, error) {
	spec, ok := t[name]
	if !ok {
		return HardwareSpec{}, fmt.Errorf("%w: %q", ErrUnknownHardware, name)
	}
	return spec, nil
}

// List returns all specs ordered by release year, then name.
func (t HardwareTable) List() []HardwareSpec {
	specs := make([]HardwareSpec, 0, len(t))
	for _, s := range t {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Year != specs[j].Year {
			return specs[i].Year < specs[j].Year
		}
		return specs[i].Name < specs[j].Name
	})
	return specs
}

// SupportedWorkloads returns, in presentation order, the workloads every
// given spec has a positive score for.
func SupportedWorkloads(specs ...HardwareSpec) []Workload {
	var out []Workload
	for _, w := range Workloads() {
		ok := true
		for _, s := range specs {
			if !s.Supports(w) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}

var (
	defaultHardware     HardwareTable
	defaultHardwareOnce sync.Once
)

// DefaultHardware returns the embedded hardware spec table. The table is
// parsed once on first use and must not be modified by callers.
func DefaultHardware() HardwareTable {
	defaultHardwareOnce.Do(func() {
		table, err := ParseHardwareSpecs(strings.NewReader(hardwareSpecsCSV))
		if err != nil {
			logger.Error().Err(err).Msg("failed to parse embedded hardware specs")
			table = HardwareTable{}
		}
		defaultHardware = table
	})
	return defaultHardware
}

// GetHardwareSpec looks up a part in the embedded table.
func GetHardwareSpec(name string) (HardwareSpec, bool) {
	spec, ok := DefaultHardware()[name]
	return spec, ok
}

// ParseHardwareSpecs reads a hardware spec CSV with a header row.
// Rows with a missing name, too few columns, or unparseable required numbers
// are skipped with a warning. Optional cells (hbm_stacks, tdp_idle_w) may be
// empty. Empty or unparseable score cells count as 0 (unsupported).
func ParseHardwareSpecs(r io.Reader) (HardwareTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrMalformedSpecTable, err)
	}

	table := make(HardwareTable)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed hardware specs CSV row")
			continue
		}

		spec, err := parseHardwareRecord(record)
		if err != nil {
			logger.Warn().Err(err).Strs("record", record).Msg("skipping invalid hardware specs CSV row")
			continue
		}
		table[spec.Name] = spec
	}
	return table, nil
}

func parseHardwareRecord(record []string) (HardwareSpec, error) {
	if len(record) < hardwareColumns {
		return HardwareSpec{}, fmt.Errorf("expected %d columns, got %d", hardwareColumns, len(record))
	}

	field := func(i int) string { return strings.TrimSpace(record[i]) }

	name := field(colName)
	if name == "" {
		return HardwareSpec{}, errors.New("empty name")
	}

	year, err := strconv.Atoi(field(colYear))
	if err != nil {
		return HardwareSpec{}, fmt.Errorf("year: %w", err)
	}
	node, err := strconv.Atoi(field(colProcessNode))
	if err != nil {
		return HardwareSpec{}, fmt.Errorf("process node: %w", err)
	}
	dieArea, err := strconv.ParseFloat(field(colDieArea), 64)
	if err != nil || dieArea < 0 {
		return HardwareSpec{}, fmt.Errorf("invalid die area %q", field(colDieArea))
	}
	vram, err := strconv.ParseFloat(field(colVRAM), 64)
	if err != nil || vram < 0 {
		return HardwareSpec{}, fmt.Errorf("invalid vram %q", field(colVRAM))
	}
	maxPower, err := strconv.ParseFloat(field(colMaxPower), 64)
	if err != nil || maxPower < 0 {
		return HardwareSpec{}, fmt.Errorf("invalid max power %q", field(colMaxPower))
	}

	spec := HardwareSpec{
		Name:           name,
		Year:           year,
		ProcessNodeNM:  node,
		DieAreaMM2:     dieArea,
		VRAMCapacityGB: vram,
		Memory:         MemoryType(field(colMemoryType)),
		MaxPowerW:      maxPower,
		Scores: map[Workload]float64{
			WorkloadFP16:        parseScore(field(colFP16)),
			WorkloadFP32:        parseScore(field(colFP32)),
			WorkloadFP64:        parseScore(field(colFP64)),
			WorkloadMatrixBench: parseScore(field(colMatrixBench)),
		},
	}

	if s := field(colHBMStacks); s != "" {
		stacks, err := strconv.Atoi(s)
		if err != nil {
			return HardwareSpec{}, fmt.Errorf("hbm stacks: %w", err)
		}
		spec.HBMStacks = &stacks
	}
	if s := field(colIdlePower); s != "" {
		idle, err := strconv.ParseFloat(s, 64)
		if err != nil || idle < 0 || idle > maxPower {
			return HardwareSpec{}, fmt.Errorf("invalid idle power %q", s)
		}
		spec.IdlePowerW = &idle
	}

	return spec, nil
}

// parseScore parses a performance score; empty, negative, or non-finite
// cells are 0.
func parseScore(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
