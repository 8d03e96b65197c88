package rating

import "math"

// phi is the standard normal cumulative distribution function.
func phi(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// phiInverse is the quantile function of the standard normal distribution.
func phiInverse(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
