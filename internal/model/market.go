package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is one (trading date, closing price) point.
type Observation struct {
	Date  time.Time
	Close decimal.Decimal
}

// PriceSeries holds observations in file order (ascending date assumed).
type PriceSeries struct {
	Observations []Observation
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Observations) }

// Closes returns the closing prices as float64 for arithmetic passes.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Observations))
	for i, o := range s.Observations {
		closes[i] = o.Close.InexactFloat64()
	}
	return closes
}
