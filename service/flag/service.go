// Package flag parses the aws-reporter command line.
package flag

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/thirukguru/aws-reporter/model"
)

// NewService creates a flag service parsing os.Args.
func NewService() Service {
	return NewServiceWithArgs(os.Args[1:])
}

// NewServiceWithArgs creates a flag service parsing the given arguments (for testing).
func NewServiceWithArgs(args []string) Service {
	return &service{
		fs:   pflag.NewFlagSet("aws-reporter", pflag.ContinueOnError),
		args: args,
	}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	format := s.fs.StringP("format", "f", "csv", "Output format (csv, tsv, xls, or json)")
	reports := s.fs.StringSliceP("reports", "r", nil, "Report names to generate")
	profiles := s.fs.StringSliceP("profiles", "p", nil, "AWS profiles to survey")
	outputFile := s.fs.StringP("outputfile", "o", "aws_report", "Output file path (extension normalized to the format)")
	overwrite := s.fs.Bool("overwrite", false, "Allow overwriting an existing output file")
	noExpand := s.fs.Bool("no-expand", false, "Skip per-resource expansion")
	showPaths := s.fs.Bool("show-paths", false, "Print field paths discovered by the survey and exit")
	showReportPaths := s.fs.Bool("show-report-paths", false, "Print the selected report definitions' paths and exit")
	verbose := s.fs.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	version := s.fs.Bool("version", false, "Show version information")
	store := s.fs.Bool("store", false, "Persist a survey run summary in the local SQLite database")
	dbPath := s.fs.String("db-path", "", "Custom SQLite database path (default ~/.aws-reporter/history.db)")

	if err := s.fs.Parse(s.args); err != nil {
		return model.Flags{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	flags := model.Flags{
		Format:          *format,
		Reports:         *reports,
		Profiles:        *profiles,
		OutputFile:      *outputFile,
		Overwrite:       *overwrite,
		NoExpand:        *noExpand,
		ShowPaths:       *showPaths,
		ShowReportPaths: *showReportPaths,
		Verbose:         *verbose,
		Version:         *version,
		Store:           *store,
		DBPath:          *dbPath,
	}

	return flags, nil
}

// Usage returns the help text for the flag set.
func (s *service) Usage() string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "Usage: aws-reporter -r <report> [-r <report> ...] [flags]")
	fmt.Fprintln(&buf, "       aws-reporter history [--limit N] [--db-path ...]")
	fmt.Fprintln(&buf, "       aws-reporter db <vacuum|reindex|purge> [--db-path ...]")
	fmt.Fprintln(&buf)
	fmt.Fprint(&buf, s.fs.FlagUsages())
	return buf.String()
}
