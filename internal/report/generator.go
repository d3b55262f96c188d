package report

import (
	"fmt"
	"log"
	"time"

	"PriceReport/internal/loader"
)

// Generator runs the load -> compute -> format -> write pipeline once.
type Generator struct {
	InputPath string
	OutputDir string
	Now       func() time.Time // defaults to time.Now
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator(inputPath, outputDir string) *Generator {
	return &Generator{InputPath: inputPath, OutputDir: outputDir, Now: time.Now}
}

// Run produces the report for the current UTC date and returns its path.
// Nothing is written unless every earlier step succeeded.
func (g *Generator) Run() (string, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	today := now().UTC()

	series, err := loader.LoadCSV(g.InputPath)
	if err != nil {
		return "", fmt.Errorf("load: %w", err)
	}
	stats, err := ComputeStats(series)
	if err != nil {
		return "", fmt.Errorf("compute: %w", err)
	}
	log.Printf("[INFO] stats: count=%d vol=%.4f mdd=%.4f", stats.Count, stats.AnnualizedVolatility, stats.MaxDrawdown)

	path, err := WriteFile(g.OutputDir, FileName(today), Format(stats, today))
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return path, nil
}
