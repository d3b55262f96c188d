package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Layout(t *testing.T) {
	stats, err := ComputeStats(series(100, 90, 120))
	require.NoError(t, err)

	got := Format(stats, time.Date(2024, 1, 3, 22, 15, 0, 0, time.UTC))
	want := "Daily Report (UTC)\n" +
		"------------------\n" +
		"Date: 2024-01-03\n" +
		"Period: 2024-01-01 to 2024-01-03\n" +
		"Observations: 3\n" +
		"Open: 100.0000\n" +
		"Close: 120.0000\n" +
		"Volatility (annualized): 4.8642\n" +
		"Max Drawdown: 0.1000\n"
	assert.Equal(t, want, got)
}

func TestFormat_UsesUTCDate(t *testing.T) {
	stats, err := ComputeStats(series(10))
	require.NoError(t, err)

	// 23:30 on Jan 3 in UTC-5 is already Jan 4 in UTC.
	local := time.Date(2024, 1, 3, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Contains(t, Format(stats, local), "Date: 2024-01-04\n")
	assert.Equal(t, "report_2024-01-04.txt", FileName(local))
}
