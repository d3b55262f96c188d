package calculator

// MaxDrawdown returns the largest peak-to-trough decline as a fraction of the peak (0.0~1.0).
// Single forward pass; 0 for a non-decreasing series.
func MaxDrawdown(prices []float64) (float64, error) {
	if err := checkPrices(prices); err != nil {
		return 0, err
	}
	peak := prices[0]
	maxDD := 0.0
	for _, p := range prices[1:] {
		if dd := (peak - p) / peak; dd > maxDD {
			maxDD = dd
		}
		if p > peak {
			peak = p
		}
	}
	return maxDD, nil
}
