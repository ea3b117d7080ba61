package reporter

import "strings"

// ResolveOutputPath appends the format's file extension to the output path
// unless it is already there. A suffix belonging to a different format is kept
// as part of the name, so "out.json" written as csv becomes "out.json.csv".
func ResolveOutputPath(outputPath string, format Format) string {
	ext := format.Ext()
	if strings.HasSuffix(strings.ToLower(outputPath), ext) {
		return outputPath
	}
	return outputPath + ext
}
