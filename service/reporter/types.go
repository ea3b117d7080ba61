// Package reporter holds the report catalog and output writers.
package reporter

import (
	"fmt"

	"github.com/thirukguru/aws-reporter/service/surveyor"
)

// Format is an output format for report files.
type Format string

// Supported output formats.
const (
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatJSON     Format = "json"
	FormatWorkbook Format = "xls"
)

// ParseFormat validates a format flag value.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatCSV, FormatTSV, FormatJSON, FormatWorkbook:
		return Format(raw), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected csv, tsv, xls, or json)", raw)
	}
}

// Ext returns the file extension for the format. The workbook format is
// written as modern XLSX.
func (f Format) Ext() string {
	switch f {
	case FormatTSV:
		return ".tsv"
	case FormatJSON:
		return ".json"
	case FormatWorkbook:
		return ".xlsx"
	default:
		return ".csv"
	}
}

// MultiReport reports whether the format can hold more than one report in a
// single output file.
func (f Format) MultiReport() bool {
	return f == FormatWorkbook
}

// PruneSpec selects one report column: a label and the field path it reads.
type PruneSpec struct {
	Name string
	Path string
}

// Definition pairs an entity type with the columns extracted into a report.
type Definition struct {
	Name       string
	EntityType string
	PruneSpecs []PruneSpec
}

// Service exposes the report catalog and write operations.
type Service interface {
	ReportNames() []string
	ReportDefinitions() []Definition
	Definition(name string) (Definition, bool)
	// EntityTypes resolves the deduplicated entity types the given reports
	// need. Unknown report names are an error.
	EntityTypes(reportNames ...string) ([]string, error)
	WriteCSV(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error
	WriteTSV(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error
	WriteJSON(outputPath string, surveyors []surveyor.Service, reportName string, overwrite bool) error
	WriteWorkbook(outputPath string, surveyors []surveyor.Service, reportNames []string, overwrite bool) error
}

type service struct {
	definitions []Definition
	byName      map[string]Definition
}

// NewService creates a reporter backed by the built-in catalog.
func NewService() Service {
	return NewServiceWithDefinitions(catalog)
}

// NewServiceWithDefinitions creates a reporter with a custom catalog (for testing).
func NewServiceWithDefinitions(definitions []Definition) Service {
	byName := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		byName[def.Name] = def
	}
	return &service{definitions: definitions, byName: byName}
}
