package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteResultsFile writes a run summary to a JSON file, creating parent
// directories as needed.
func WriteResultsFile(path string, summary RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// ReadResultsFile reads back a summary previously written by
// WriteResultsFile.
func ReadResultsFile(path string) (RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunSummary{}, fmt.Errorf("read results file: %w", err)
	}
	var summary RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return RunSummary{}, fmt.Errorf("parse results: %w", err)
	}
	return summary, nil
}
