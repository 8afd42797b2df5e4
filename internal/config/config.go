package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the export options, overridable through environment variables.
type Config struct {
	DataSheetName         string
	SummarySheetName      string
	IncludeSummary        bool
	MaxDataColumnWidth    int
	MaxSummaryColumnWidth int
	PreviewRecords        int
}

func New() (*Config, error) {
	cfg := &Config{
		DataSheetName:         "Cliente_Data",
		SummarySheetName:      "Summary",
		IncludeSummary:        true,
		MaxDataColumnWidth:    50,
		MaxSummaryColumnWidth: 30,
		PreviewRecords:        3,
	}

	if v := os.Getenv("CLIENTI_DATA_SHEET"); v != "" {
		cfg.DataSheetName = v
	}
	if v := os.Getenv("CLIENTI_SUMMARY_SHEET"); v != "" {
		cfg.SummarySheetName = v
	}

	var err error
	cfg.IncludeSummary, err = getEnvAsBool("CLIENTI_INCLUDE_SUMMARY", cfg.IncludeSummary)
	if err != nil {
		return nil, err
	}

	cfg.MaxDataColumnWidth, err = getEnvAsInt("CLIENTI_MAX_DATA_COLUMN_WIDTH", cfg.MaxDataColumnWidth)
	if err != nil {
		return nil, err
	}

	cfg.MaxSummaryColumnWidth, err = getEnvAsInt("CLIENTI_MAX_SUMMARY_COLUMN_WIDTH", cfg.MaxSummaryColumnWidth)
	if err != nil {
		return nil, err
	}

	cfg.PreviewRecords, err = getEnvAsInt("CLIENTI_PREVIEW_RECORDS", cfg.PreviewRecords)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}

	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: expected a boolean, got '%s'", key, valueStr)
	}

	return value, nil
}
