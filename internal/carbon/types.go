package carbon

// MemoryType is the VRAM technology class of a hardware part.
type MemoryType string

// Known VRAM technology classes.
const (
	MemoryHBM2  MemoryType = "HBM2"
	MemoryHBM3  MemoryType = "HBM3"
	MemoryGDDR5 MemoryType = "GDDR5"
	MemoryGDDR6 MemoryType = "GDDR6"
)

// Workload selects which performance score of a hardware part is used as
// its performance indicator.
type Workload string

// Supported workloads, in presentation order.
const (
	WorkloadFP16        Workload = "FP16"
	WorkloadFP32        Workload = "FP32"
	WorkloadFP64        Workload = "FP64"
	WorkloadMatrixBench Workload = "BENCH_S_MATRIX"
)

// Workloads lists every workload in presentation order.
func Workloads() []Workload {
	return []Workload{WorkloadFP16, WorkloadFP32, WorkloadFP64, WorkloadMatrixBench}
}

// ParseWorkload returns the workload matching s and whether it is known.
func ParseWorkload(s string) (Workload, bool) {
	for _, w := range Workloads() {
		if string(w) == s {
			return w, true
		}
	}
	return "", false
}

// CapexBreakdown is the one-time manufacturing carbon of a System in kg CO2e.
type CapexBreakdown struct {
	// Chip is the embodied carbon of the GPU die.
	Chip float64 `json:"chip"`

	// Total is Chip plus the VRAM embodied carbon.
	Total float64 `json:"total"`
}

// OpexBreakdown is the operational profile of a System at one utilization
// and grid intensity.
type OpexBreakdown struct {
	// Chip is the normalized power draw of the GPU in kW.
	Chip float64 `json:"chip_kw"`

	// Total is the total power draw in kW. Only the GPU draws power in this
	// model so it always equals Chip.
	Total float64 `json:"total_kw"`

	// PerYear is the operational carbon in kg CO2e per year.
	PerYear float64 `json:"per_year_kg"`
}
