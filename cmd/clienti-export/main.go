package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/avaloro/clienti-export/internal/config"
	"github.com/avaloro/clienti-export/internal/exporter"
	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/reader"
	"github.com/avaloro/clienti-export/internal/schema"
	"github.com/avaloro/clienti-export/internal/summary"
	"github.com/avaloro/clienti-export/internal/table"
	"github.com/avaloro/clienti-export/pkg/checksum"
)

func setup() (string, string, *config.Config, error) {
	if len(os.Args) < 2 {
		return "", "", nil, fmt.Errorf("please provide the input file path as a command-line argument")
	}
	inputPath := os.Args[1]

	outputPath := defaultOutputPath(inputPath)
	if len(os.Args) > 2 {
		outputPath = os.Args[2]
	}

	cfg, err := config.New()
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	return inputPath, outputPath, cfg, nil
}

func defaultOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_clienti.xlsx"
}

func execute(inputPath, outputPath string, cfg *config.Config) error {
	layout := schema.Clienti()

	log.Printf("Reading file: %s", inputPath)
	records, decodeErrors, err := reader.ReadFile(layout, inputPath)
	if err != nil {
		return err
	}

	for _, decodeErr := range decodeErrors {
		log.Printf("WARN: %s", decodeErr.Error())
	}
	if len(decodeErrors) > 0 {
		log.Printf("Finished reading with %d decode errors", len(decodeErrors))
	}

	if len(records) == 0 {
		log.Println("No records found to export")
		return nil
	}
	log.Printf("Found %d records", len(records))

	previewRecords(records, cfg.PreviewRecords)

	tbl := table.Project(layout, records)
	sum := summary.Summarize(layout, tbl)
	logFieldUsage(sum)

	digest, err := checksum.File(inputPath)
	if err != nil {
		log.Printf("WARN: could not fingerprint input file: %v", err)
		digest = ""
	}

	log.Printf("Exporting to workbook: %s", outputPath)
	err = exporter.Write(tbl, sum, exporter.Metadata{
		SourcePath:     inputPath,
		SourceChecksum: digest,
	}, exporter.Options{
		DataSheet:          cfg.DataSheetName,
		SummarySheet:       cfg.SummarySheetName,
		IncludeSummary:     cfg.IncludeSummary,
		MaxDataColWidth:    float64(cfg.MaxDataColumnWidth),
		MaxSummaryColWidth: float64(cfg.MaxSummaryColumnWidth),
	}, outputPath)
	if err != nil {
		return err
	}

	if info, err := os.Stat(outputPath); err == nil {
		log.Printf("Workbook created: %s (%d bytes)", outputPath, info.Size())
	}
	return nil
}

func previewRecords(records []*models.Record, count int) {
	if count > len(records) {
		count = len(records)
	}
	for i := 0; i < count; i++ {
		record := records[i]
		log.Printf("Record #%d (line %d): progressivo=%v codice=%v ragione_sociale=%v citta=%v",
			i+1, record.LineNumber,
			record.Value("progressivo"), record.Value("codice"),
			record.Value("ragione_sociale"), record.Value("citta"))
		for _, warning := range record.Warnings {
			log.Printf("  WARN: %s", warning)
		}
	}
}

func logFieldUsage(sum *models.Summary) {
	populated := 0
	for _, field := range sum.Fields {
		if field.NonEmpty > 0 {
			populated++
		}
	}
	log.Printf("Field usage: %d of %d fields populated across %d records",
		populated, sum.TotalFields, sum.TotalRecords)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	startTime := time.Now()

	inputPath, outputPath, cfg, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	if err := execute(inputPath, outputPath, cfg); err != nil {
		log.Fatalf("Error during export: %v", err)
	}

	log.Printf("Execution time: %s", time.Since(startTime))
}
