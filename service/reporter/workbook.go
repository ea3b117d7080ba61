package reporter

import (
	"fmt"
	"os"

	"github.com/thirukguru/aws-reporter/service/surveyor"
	"github.com/xuri/excelize/v2"
)

// Excel rejects sheet names longer than 31 characters.
const maxSheetNameLen = 31

func (s *service) WriteWorkbook(outputPath string, surveyors []surveyor.Service, reportNames []string, overwrite bool) error {
	if len(reportNames) == 0 {
		return fmt.Errorf("no reports requested")
	}

	if !overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("output file %s already exists (use --overwrite to replace it)", outputPath)
		}
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for idx, name := range reportNames {
		def, ok := s.Definition(name)
		if !ok {
			return fmt.Errorf("unknown report %q", name)
		}

		sheet := sheetName(def.Name)
		if idx == 0 {
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := wb.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}

		for rowIdx, row := range extractRows(def, surveyors) {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to address row %d: %w", rowIdx+1, err)
			}
			cells := make([]any, len(row))
			for i, v := range row {
				cells[i] = v
			}
			if err := wb.SetSheetRow(sheet, cell, &cells); err != nil {
				return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
			}
		}
	}

	if err := wb.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

func sheetName(reportName string) string {
	if len(reportName) > maxSheetNameLen {
		return reportName[:maxSheetNameLen]
	}
	return reportName
}
