package tensor

import "math"

// unary runs an elementwise function over a tensor into a fresh buffer.
func unary(t *Dense, f func(float64) float64) *Dense {
	out := Zeros(t.shape)
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// Log computes the elementwise natural logarithm. Negative inputs yield NaN
// and zero yields -Inf; domain errors are value-level, never faults.
func Log(t *Dense) *Dense {
	return unary(t, math.Log)
}

// Log1p computes elementwise log(1+x), accurate near zero. Inputs below -1
// yield NaN.
func Log1p(t *Dense) *Dense {
	return unary(t, math.Log1p)
}

// Tanh computes the elementwise hyperbolic tangent.
func Tanh(t *Dense) *Dense {
	return unary(t, math.Tanh)
}

// Arctanh computes the elementwise inverse hyperbolic tangent. |x| > 1
// yields NaN, x = ±1 yields ±Inf.
func Arctanh(t *Dense) *Dense {
	return unary(t, math.Atanh)
}

// Arcsin computes the elementwise inverse sine. |x| > 1 yields NaN.
func Arcsin(t *Dense) *Dense {
	return unary(t, math.Asin)
}
