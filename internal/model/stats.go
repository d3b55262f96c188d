package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStats holds the descriptive statistics of one run.
type ReportStats struct {
	Count                int
	Open                 decimal.Decimal
	Close                decimal.Decimal
	AnnualizedVolatility float64
	MaxDrawdown          float64 // 0.0 ~ 1.0
	FirstDate            time.Time
	LastDate             time.Time
}
