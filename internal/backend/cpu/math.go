package cpu

import "math"

// Digamma computes the logarithmic derivative of the gamma function for
// x > 0, using the recurrence psi(x) = psi(x+1) - 1/x to push the argument
// above 6 and then the asymptotic expansion.
func Digamma(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	result := 0.0
	for x < 6 {
		result -= 1 / x
		x++
	}
	// Asymptotic series: ln(x) - 1/(2x) - sum B_2n / (2n x^2n).
	inv := 1 / x
	inv2 := inv * inv
	result += math.Log(x) - 0.5*inv
	result -= inv2 * (1.0/12 - inv2*(1.0/120-inv2*(1.0/252-inv2*(1.0/240-inv2/132))))
	return result
}

// Trigamma computes the second logarithmic derivative of the gamma
// function for x > 0 (needed for the digamma backward pass).
func Trigamma(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	result := 0.0
	for x < 6 {
		result += 1 / (x * x)
		x++
	}
	inv := 1 / x
	inv2 := inv * inv
	// 1/x + 1/(2x^2) + sum B_2n / x^(2n+1).
	result += inv + 0.5*inv2
	result += inv * inv2 * (1.0/6 - inv2*(1.0/30-inv2*(1.0/42-inv2/30)))
	return result
}
