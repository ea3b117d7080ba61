package reporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/thirukguru/aws-reporter/service/surveyor"
)

func (s *service) WriteCSV(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error {
	return s.writeDelimited(outputPath, surveyors, reportName, overwrite, ',')
}

func (s *service) WriteTSV(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error {
	return s.writeDelimited(outputPath, surveyors, reportName, overwrite, '\t')
}

func (s *service) writeDelimited(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool, comma rune) error {
	def, ok := s.Definition(reportName)
	if !ok {
		return fmt.Errorf("unknown report %q", reportName)
	}

	f, err := createOutputFile(outputPath, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := w.WriteAll(extractRows(def, surveyors)); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return f.Close()
}

// createOutputFile opens the report file for writing. Without overwrite an
// existing file is an error rather than silently replaced.
func createOutputFile(outputPath string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(outputPath, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("output file %s already exists (use --overwrite to replace it)", outputPath)
		}
		return nil, fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	return f, nil
}
