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

// ClampFloat constrains a float to a range.
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Contains reports whether s holds v.
func Contains(s []string, v string) bool {
	return IndexOf(s, v) >= 0
}

// IndexOf returns the position of v in s, or -1.
func IndexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// Remove returns s without the first occurrence of v.
func Remove(s []string, v string) []string {
	i := IndexOf(s, v)
	if i < 0 {
		return s
	}
	return append(s[:i], s[i+1:]...)
}
