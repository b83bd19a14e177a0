package carbon

// ClampUtilization restricts a utilization percentage to [0, 100].
func ClampUtilization(u float64) float64 {
	return Clamp(u, 0, MaxUtilization)
}

// Clamp restricts a value to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
