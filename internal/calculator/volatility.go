package calculator

import "math"

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// Returns 0 for fewer than 2 values.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// AnnualizedVolatility computes the sample std-dev of simple returns scaled by sqrt(periodsPerYear).
// Defined as 0 when fewer than 2 returns are available.
func AnnualizedVolatility(prices []float64, periodsPerYear int) (float64, error) {
	returns, err := SimpleReturns(prices)
	if err != nil {
		return 0, err
	}
	if len(returns) < 2 {
		return 0, nil
	}
	return SampleStdDev(returns) * math.Sqrt(float64(periodsPerYear)), nil
}
