package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/thirukguru/aws-reporter/service/surveyor"
)

func (s *service) WriteJSON(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error {
	def, ok := s.Definition(reportName)
	if !ok {
		return fmt.Errorf("unknown report %q", reportName)
	}

	records := make([]map[string]any, 0)
	for _, sv := range surveyors {
		for _, inf := range sv.InformersByType(def.EntityType) {
			record := make(map[string]any, len(def.PruneSpecs))
			for _, spec := range def.PruneSpecs {
				value, ok := inf.Value(spec.Path)
				if !ok {
					record[spec.Name] = nil
					continue
				}
				record[spec.Name] = value
			}
			records = append(records, record)
		}
	}

	f, err := createOutputFile(outputPath, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return f.Close()
}
