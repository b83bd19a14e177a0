package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFabFactorLookups(t *testing.T) {
	tests := []struct {
		node       int
		wantEnergy float64
		wantGas    float64
	}{
		{4, 2.75, 0.327},
		{7, 1.52, 0.275},
		{12, 1.3, 0.177},
		{28, 0.9, 0.1375},
		{6, 0, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantEnergy, GetEnergyPerArea(tt.node), "energy for %dnm", tt.node)
		assert.Equal(t, tt.wantGas, GetGasPerArea(tt.node), "gas for %dnm", tt.node)
	}
}

func TestFabFactors_SmallerNodesCostMore(t *testing.T) {
	assert.Greater(t, GetEnergyPerArea(5), GetEnergyPerArea(7))
	assert.Greater(t, GetEnergyPerArea(7), GetEnergyPerArea(16))
	assert.Greater(t, GetGasPerArea(5), GetGasPerArea(28))
}

func TestGetVRAMEmbodiedPerGB(t *testing.T) {
	assert.Equal(t, 0.29, GetVRAMEmbodiedPerGB(MemoryGDDR5))
	assert.Equal(t, 0.36, GetVRAMEmbodiedPerGB(MemoryGDDR6))
	assert.Equal(t, 0.28, GetVRAMEmbodiedPerGB(MemoryHBM2))
	assert.Equal(t, 0.24, GetVRAMEmbodiedPerGB(MemoryHBM3))
	assert.Equal(t, 0.0, GetVRAMEmbodiedPerGB("DDR4"))
}
