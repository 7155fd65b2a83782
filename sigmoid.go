package nudgenet

import "math"

// Sigmoid returns the standard logistic function 1/(1+e^-x). It is defined over the full
// float64 domain: Sigmoid(+Inf) == 1, Sigmoid(-Inf) == 0, and NaN propagates as NaN.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDeriv returns the derivative of Sigmoid at x, which is s*(1-s) for s = Sigmoid(x).
// It is 0 at both infinities and reaches its maximum of 0.25 at x == 0.
func SigmoidDeriv(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}
