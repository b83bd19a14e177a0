package carbon

// EnergyPerArea maps process nodes (nm) to fab energy in kWh per cm² of die.
// Source: ACT (Gupta et al., "Architectural Carbon Modeling Tool"), logic fabs.
var EnergyPerArea = map[int]float64{
	4:  2.75,
	5:  2.75,
	7:  1.52,
	8:  1.52,
	12: 1.3,
	16: 1.2,
	28: 0.9,
}

// GasPerArea maps process nodes (nm) to direct fab gas emissions in
// kg CO2e per cm² of die.
// Source: ACT (Gupta et al.), logic fabs.
var GasPerArea = map[int]float64{
	4:  0.327,
	5:  0.327,
	7:  0.275,
	8:  0.275,
	12: 0.177,
	16: 0.160,
	28: 0.1375,
}

// VRAMEmbodiedPerGB maps VRAM technology classes to embodied carbon in
// kg CO2e per GB.
var VRAMEmbodiedPerGB = map[MemoryType]float64{
	MemoryGDDR5: 0.29,
	MemoryGDDR6: 0.36,
	MemoryHBM2:  0.28,
	MemoryHBM3:  0.24,
}

// GetEnergyPerArea returns the fab energy for the process node, or 0 when
// the node is not listed. The zero makes the term drop out of the capex sum.
func GetEnergyPerArea(nodeNM int) float64 {
	if v, ok := EnergyPerArea[nodeNM]; ok {
		return v
	}
	logger.Debug().Int("process_node_nm", nodeNM).Msg("no fab energy factor for process node")
	return 0
}

// GetGasPerArea returns the fab gas emissions for the process node, or 0
// when the node is not listed.
func GetGasPerArea(nodeNM int) float64 {
	if v, ok := GasPerArea[nodeNM]; ok {
		return v
	}
	logger.Debug().Int("process_node_nm", nodeNM).Msg("no fab gas factor for process node")
	return 0
}

// GetVRAMEmbodiedPerGB returns the embodied carbon per GB for the memory
// type, or 0 when the type is not listed.
func GetVRAMEmbodiedPerGB(memory MemoryType) float64 {
	if v, ok := VRAMEmbodiedPerGB[memory]; ok {
		return v
	}
	logger.Debug().Str("memory_type", string(memory)).Msg("no embodied factor for memory type")
	return 0
}
