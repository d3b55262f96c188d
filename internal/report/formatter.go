package report

import (
	"fmt"
	"strings"
	"time"

	"PriceReport/internal/model"
)

const dateLayout = "2006-01-02"

// Format renders the statistics as the fixed-layout daily report.
func Format(stats model.ReportStats, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("Daily Report (UTC)\n")
	b.WriteString("------------------\n")
	b.WriteString(fmt.Sprintf("Date: %s\n", generatedAt.UTC().Format(dateLayout)))
	b.WriteString(fmt.Sprintf("Period: %s to %s\n", stats.FirstDate.Format(dateLayout), stats.LastDate.Format(dateLayout)))
	b.WriteString(fmt.Sprintf("Observations: %d\n", stats.Count))
	b.WriteString(fmt.Sprintf("Open: %s\n", stats.Open.StringFixed(4)))
	b.WriteString(fmt.Sprintf("Close: %s\n", stats.Close.StringFixed(4)))
	b.WriteString(fmt.Sprintf("Volatility (annualized): %.4f\n", stats.AnnualizedVolatility))
	b.WriteString(fmt.Sprintf("Max Drawdown: %.4f\n", stats.MaxDrawdown))

	return b.String()
}

// FileName returns the report file name keyed by the UTC date of t.
func FileName(t time.Time) string {
	return "report_" + t.UTC().Format(dateLayout) + ".txt"
}
