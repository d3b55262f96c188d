package main

import (
	"log"
	"os"

	"PriceReport/internal/config"
	"PriceReport/internal/model"
	"PriceReport/internal/report"
)

const (
	exitDataError   = 1
	exitIOError     = 2
	exitConfigError = 3
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] daily report starting...")

	// Load config
	cfgPath := config.DefaultPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[FATAL] load config: %v", err)
		os.Exit(exitConfigError)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[FATAL] config validation: %v", err)
		os.Exit(exitConfigError)
	}
	log.Printf("[INFO] input: %s, output dir: %s", cfg.InputPath, cfg.OutputDir)

	path, err := report.NewGenerator(cfg.InputPath, cfg.OutputDir).Run()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		os.Exit(exitCode(err))
	}
	log.Printf("[INFO] report saved: %s", path)
}

// exitCode maps a pipeline error to the process exit status.
// Unclassified errors are treated as I/O failures.
func exitCode(err error) int {
	if model.IsDataError(err) {
		return exitDataError
	}
	return exitIOError
}
