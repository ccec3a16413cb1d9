package supervise

// normalizeMaxRSS converts a raw ru_maxrss value to bytes given the size of
// the platform's reporting unit.
func normalizeMaxRSS(raw, unit int64) int64 {
	return raw * unit
}
