package dist

import (
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// gammaSample draws from Gamma(alpha, 1) using the Marsaglia-Tsang
// squeeze method, with the alpha < 1 boost Gamma(alpha) =
// Gamma(alpha+1) * U^(1/alpha).
func gammaSample(alpha float64) float64 {
	if alpha < 1 {
		u := tensor.RandUniform()
		return gammaSample(alpha+1) * math.Pow(u, 1/alpha)
	}
	d := alpha - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := tensor.RandNormal()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := tensor.RandUniform()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}

// betaSample draws from Beta(a, b) via two gamma draws.
func betaSample(a, b float64) float64 {
	ga := gammaSample(a)
	gb := gammaSample(b)
	x := ga / (ga + gb)
	// Keep strictly inside (0, 1) so log densities stay finite.
	const eps = 1e-12
	if x < eps {
		x = eps
	}
	if x > 1-eps {
		x = 1 - eps
	}
	return x
}

// categoricalSample draws an index from the given probabilities.
func categoricalSample(probs []float64) int {
	u := tensor.RandUniform()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if u < acc {
			return i
		}
	}
	return len(probs) - 1
}

// softmaxInPlace converts a logits row into probabilities.
func softmaxInPlace(row []float64) {
	maxv := math.Inf(-1)
	for _, v := range row {
		if v > maxv {
			maxv = v
		}
	}
	total := 0.0
	for i, v := range row {
		row[i] = math.Exp(v - maxv)
		total += row[i]
	}
	for i := range row {
		row[i] /= total
	}
}
