package calculator

import (
	"errors"
	"math"
)

// TradingDaysPerYear is the annualization factor for daily series.
const TradingDaysPerYear = 252

// ErrNonPositivePrice is returned when a price series contains a price <= 0.
var ErrNonPositivePrice = errors.New("prices must be strictly positive")

// ErrNonFinitePrice is returned when a price series contains NaN or an infinity.
var ErrNonFinitePrice = errors.New("prices must be finite")

// ErrNoPrices is returned for an empty price series.
var ErrNoPrices = errors.New("no prices provided")

// SimpleReturns computes r_i = p_i/p_(i-1) - 1 for i = 1..n-1.
// Returns an empty slice when fewer than 2 prices are given.
func SimpleReturns(prices []float64) ([]float64, error) {
	if err := checkPrices(prices); err != nil {
		return nil, err
	}
	if len(prices) < 2 {
		return []float64{}, nil
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = prices[i]/prices[i-1] - 1
	}
	return returns, nil
}

func checkPrices(prices []float64) error {
	if len(prices) == 0 {
		return ErrNoPrices
	}
	for _, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrNonFinitePrice
		}
		if p <= 0 {
			return ErrNonPositivePrice
		}
	}
	return nil
}
