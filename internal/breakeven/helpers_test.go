package breakeven

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// testTableCSV describes three parts with round numbers: Old and New differ
// by a factor of two in FP32 performance, and NoHalf has no FP16 score.
const testTableCSV = `name,year,process_nm,die_area_mm2,vram_gb,memory_type,hbm_stacks,tdp_max_w,tdp_idle_w,fp16,fp32,fp64,bench_s_matrix
Old,2017,12,800,32,HBM2,4,300,30,20,10,5,8
New,2022,4,800,80,HBM3,5,400,40,80,20,10,16
NoHalf,2014,28,500,24,GDDR5,,300,,0,8,3,0
`

func testTable(t *testing.T) carbon.HardwareTable {
	t.Helper()
	table, err := carbon.ParseHardwareSpecs(strings.NewReader(testTableCSV))
	require.NoError(t, err)
	require.Len(t, table, 3)
	return table
}

// linearSeries returns n samples of start + i×step.
func linearSeries(n int, start, step float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = start + float64(i)*step
	}
	return s
}
