package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampIndex keeps a cursor inside a list of n rows. An empty list yields 0.
func ClampIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	return Clamp(idx, 0, n-1)
}
