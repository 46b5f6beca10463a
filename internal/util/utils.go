package util

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SmoothStep performs cubic interpolation between a and b
func SmoothStep(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	t = t * t * (3 - 2*t)
	return a + t*(b-a)
}
