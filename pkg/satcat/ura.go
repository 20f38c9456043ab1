package satcat

// uraEph are the URA RAa step values (ref. ICD-GPS-200, 20.3.3.3.1.1),
// in meters, used to convert a broadcast URA/SISA value into its index.
var uraEph = []float64{
	2.4, 3.4, 4.85, 6.85, 9.65, 13.65, 24.0, 48.0, 96.0, 192.0, 384.0, 768.0,
	1536.0, 3072.0, 6144.0, 0.0,
}

// URAIndex returns the index of the first step value >= value, 15 if
// value exceeds every step.
func URAIndex(value float64) int {
	for i, v := range uraEph {
		if v >= value {
			return i
		}
	}
	return len(uraEph) - 1
}
