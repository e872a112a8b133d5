package services

import (
	"fmt"
	"os"

	"github.com/username/brokercomm/src/csvcodec"
	"github.com/username/brokercomm/src/reports"
)

// GenerateReport runs one report transform over raw CSV text:
// parse -> transform -> serialize.
func GenerateReport(input string, fn reports.ReportFunc) (string, error) {
	rows := csvcodec.Parse(input)
	derived, err := fn(rows)
	if err != nil {
		return "", err
	}
	return csvcodec.Serialize(derived), nil
}

// WriteReportToFile reads all text from inputPath, generates the report, and
// writes the result to outputPath, overwriting any existing file. An I/O
// failure is fatal to the run; there are no retries.
func WriteReportToFile(inputPath, outputPath string, fn reports.ReportFunc) error {
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("error reading report input '%s': %w", inputPath, err)
	}

	output, err := GenerateReport(string(input), fn)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error writing report output '%s': %w", outputPath, err)
	}
	return nil
}
