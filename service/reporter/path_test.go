package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format Format
		want   string
	}{
		{"appends csv extension", "aws_report", FormatCSV, "aws_report.csv"},
		{"appends tsv extension", "aws_report", FormatTSV, "aws_report.tsv"},
		{"appends json extension", "aws_report", FormatJSON, "aws_report.json"},
		{"xls format gets xlsx extension", "aws_report", FormatWorkbook, "aws_report.xlsx"},
		{"keeps matching extension", "report.csv", FormatCSV, "report.csv"},
		{"matching extension is case-insensitive", "report.CSV", FormatCSV, "report.CSV"},
		{"foreign extension is kept as part of the name", "out.json", FormatCSV, "out.json.csv"},
		{"directory components survive", "reports/out", FormatJSON, "reports/out.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOutputPath(tt.path, tt.format))
		})
	}
}

func TestResolveOutputPathIdempotent(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatTSV, FormatJSON, FormatWorkbook} {
		once := ResolveOutputPath("aws_report", format)
		assert.Equal(t, once, ResolveOutputPath(once, format))
	}
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"csv", "tsv", "xls", "json"} {
		got, err := ParseFormat(raw)
		assert.NoError(t, err)
		assert.Equal(t, Format(raw), got)
	}

	_, err := ParseFormat("yaml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestFormatMultiReport(t *testing.T) {
	assert.True(t, FormatWorkbook.MultiReport())
	assert.False(t, FormatCSV.MultiReport())
	assert.False(t, FormatTSV.MultiReport())
	assert.False(t, FormatJSON.MultiReport())
}
