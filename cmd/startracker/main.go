// Command startracker runs the spot-extraction and star-identification
// pipeline against a raw image, calibration, and feature catalog, and
// reports the identified stars.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"startracker/internal/config"
	"startracker/internal/diagnostics"
	"startracker/internal/legacy"
	"startracker/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML run configuration")
	imagePath := flag.String("image", "", "Path to raw 12-bit packed image")
	calibPath := flag.String("calib", "", "Path to calibration file")
	catalogPath := flag.String("catalog", "", "Path to K-vector feature catalog")
	threshold := flag.Int("threshold", -1, "Override threshold (default from config)")
	minArea := flag.Int("minarea", -1, "Override minimum spot area (default from config)")
	epsilon := flag.Float64("epsilon", -1, "Override identification tolerance in degrees (default from config)")
	statsMode := flag.Bool("stats", false, "Print summary statistics footer")
	jsonMode := flag.Bool("json", false, "Print the report as JSON instead of text")
	debugPNG := flag.String("debug-png", "", "Write a diagnostics PNG to this path")
	legacyMode := flag.Bool("legacy", false, "Use the legacy SQLite-backed 2-star identifier instead of the Pyramid method")
	legacyDB := flag.String("legacy-db", "", "Path to the legacy SQLite feature database (required with -legacy)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("startracker: %v", err)
		os.Exit(1)
	}
	if *imagePath != "" {
		cfg.ImagePath = *imagePath
	}
	if *calibPath != "" {
		cfg.CalibPath = *calibPath
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *minArea >= 0 {
		cfg.MinArea = *minArea
	}
	if *epsilon >= 0 {
		cfg.EpsilonDeg = *epsilon
	}
	if *debugPNG != "" {
		cfg.DebugPNGPath = *debugPNG
	}

	if cfg.ImagePath == "" || cfg.CalibPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: startracker -image <path> -calib <path> [-catalog <path> | -legacy -legacy-db <path>] [-stats] [-json] [-debug-png <path>]")
		os.Exit(1)
	}

	if *legacyMode {
		if err := runLegacy(cfg, *legacyDB, *statsMode, *jsonMode); err != nil {
			log.Printf("startracker: %v", err)
			os.Exit(1)
		}
		return
	}

	if cfg.CatalogPath == "" {
		fmt.Fprintln(os.Stderr, "startracker: -catalog is required unless -legacy is given")
		os.Exit(1)
	}

	result, err := pipeline.Run(cfg)
	if err != nil {
		log.Printf("startracker: %v", err)
		os.Exit(1)
	}

	if cfg.DebugPNGPath != "" {
		if err := diagnostics.Render(result, cfg.DebugPNGPath); err != nil {
			log.Printf("startracker: %v", err)
			os.Exit(1)
		}
	}

	report := pipeline.Summarize(result)
	printReport(report, *statsMode, *jsonMode)
}

func runLegacy(cfg *config.Config, dbPath string, statsMode, jsonMode bool) error {
	if dbPath == "" {
		return fmt.Errorf("startracker: -legacy-db is required with -legacy")
	}

	result, err := legacy.Run(cfg, dbPath)
	if err != nil {
		return err
	}

	report := pipeline.Summarize(&pipeline.Result{
		Frame:   result.Frame,
		Spots:   result.Spots,
		Vectors: result.Vectors,
		IDs:     result.IDs,
	})
	printReport(report, statsMode, jsonMode)
	return nil
}

func printReport(report pipeline.Report, statsMode, jsonMode bool) {
	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	for _, row := range report.Rows {
		fmt.Printf("%.3f\t%.3f\t%d\t%d\n", row.X, row.Y, row.Area, row.ID)
	}
	if statsMode {
		fmt.Printf("\nidentified: %d/%d\narea mean: %.3f\narea stddev: %.3f\n",
			report.Identified, report.Total, report.AreaMean, report.AreaStddev)
	}
}
