package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomUniform maps a draw from rnd onto [low, high)
func RandomUniform(rnd func() float64, low, high float64) float64 {
	return low + rnd()*(high-low)
}

// RandomIndex picks an index in [0, n) using a draw from rnd.
// Returns -1 when n is not positive.
func RandomIndex(rnd func() float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(rnd() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
