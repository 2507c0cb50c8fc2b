package main

import (
	"flag"
	"os"

	"mlscomp/config"
	"mlscomp/ingest"
	"mlscomp/report"
	"mlscomp/services"
	"mlscomp/storage"
	"mlscomp/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	inputPath := flag.String("input", cfg.InputCSVPath, "Path to the MLS CSV export")
	mergePath := flag.String("merge", cfg.MergeCSVPath, "Optional second CSV export to merge in")
	outputPath := flag.String("output", cfg.OutputCSVPath, "Path for the processed CSV export")
	referenceMLS := flag.String("reference", cfg.ReferenceMLS, "MLS # of the reference record (empty = no reference)")
	flag.Parse()

	logger.Info("=== MLS Comp Analyzer starting ===")
	logger.Info("Input: %s | merge: %s | reference MLS: %q", *inputPath, orNone(*mergePath), *referenceMLS)

	reader := ingest.NewReader(logger)
	header, raws, err := reader.ReadFile(*inputPath)
	if err != nil {
		logger.Error("Failed to read input CSV: %v", err)
		os.Exit(1)
	}
	if len(raws) == 0 {
		logger.Error("Input file has no data rows. Exiting.")
		os.Exit(1)
	}

	pipeline := services.NewPipeline(logger)
	records := pipeline.Ingest(raws)

	if *mergePath != "" {
		mergeHeader, mergeRaws, err := reader.ReadFile(*mergePath)
		if err != nil {
			logger.Error("Failed to read merge CSV: %v", err)
			os.Exit(1)
		}
		header = unionHeader(header, mergeHeader)

		merger := services.NewMerger(logger)
		records = merger.Merge(records, mergeRaws)
	}

	// Reference deltas always come last: merge never recomputes them.
	pipeline.Recompute(records, *referenceMLS)

	statsSvc := services.NewStatsService(logger)
	stats := statsSvc.Summarize(records)

	report.PrintComps(os.Stdout, records)
	report.PrintStats(os.Stdout, stats)

	extraCols := storage.ExtraColumns(header)
	csvWriter, err := storage.NewCSVWriter(*outputPath, extraCols)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	if err := csvWriter.Write(records); err != nil {
		logger.Error("CSV export failed: %v", err)
	} else {
		logger.Info("Processed dataset exported to %s", *outputPath)
	}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), cfg.DBMaxRetries, logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(records); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Dataset stored in PostgreSQL (table: properties)")
		}
	}
}

// unionHeader appends the columns of b that a does not already have,
// so pass-through extras from a merged file survive into the export.
func unionHeader(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, col := range a {
		seen[col] = struct{}{}
	}
	out := append([]string{}, a...)
	for _, col := range b {
		if _, ok := seen[col]; !ok {
			out = append(out, col)
		}
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
