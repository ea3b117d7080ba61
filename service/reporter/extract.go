package reporter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/thirukguru/aws-reporter/service/surveyor"
)

// extractRows builds the report rows for one definition: the header row from
// the prune spec names, then one row per matching informer across all
// surveyors.
func extractRows(def Definition, surveyors []surveyor.Service) [][]string {
	rows := [][]string{headerRow(def)}
	for _, sv := range surveyors {
		for _, inf := range sv.InformersByType(def.EntityType) {
			row := make([]string, 0, len(def.PruneSpecs))
			for _, spec := range def.PruneSpecs {
				value, ok := inf.Value(spec.Path)
				if !ok {
					row = append(row, "")
					continue
				}
				row = append(row, formatCell(value))
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func headerRow(def Definition) []string {
	header := make([]string, 0, len(def.PruneSpecs))
	for _, spec := range def.PruneSpecs {
		header = append(header, spec.Name)
	}
	return header
}

// formatCell renders a resolved field value as report text. Slices join with
// commas, maps render as sorted key=value pairs, and numbers drop the float64
// artifacts of the JSON round trip.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, formatCell(elem))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+formatCell(v[k]))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
