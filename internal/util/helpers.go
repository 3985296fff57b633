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

// Cycle moves idx by delta within [0, n), wrapping at both ends.
func Cycle(idx, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}
