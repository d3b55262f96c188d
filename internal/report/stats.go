package report

import (
	"errors"

	"PriceReport/internal/calculator"
	"PriceReport/internal/model"
)

// ComputeStats derives the report statistics from a price series. It performs no I/O.
func ComputeStats(series model.PriceSeries) (model.ReportStats, error) {
	n := series.Len()
	if n == 0 {
		return model.ReportStats{}, &model.DataError{Op: "compute stats", Err: errors.New("empty price series")}
	}
	prices := series.Closes()

	vol, err := calculator.AnnualizedVolatility(prices, calculator.TradingDaysPerYear)
	if err != nil {
		return model.ReportStats{}, &model.DataError{Op: "compute volatility", Err: err}
	}
	mdd, err := calculator.MaxDrawdown(prices)
	if err != nil {
		return model.ReportStats{}, &model.DataError{Op: "compute drawdown", Err: err}
	}

	first, last := series.Observations[0], series.Observations[n-1]
	return model.ReportStats{
		Count:                n,
		Open:                 first.Close,
		Close:                last.Close,
		AnnualizedVolatility: vol,
		MaxDrawdown:          mdd,
		FirstDate:            first.Date,
		LastDate:             last.Date,
	}, nil
}
