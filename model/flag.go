// Package model contains shared data structures for aws-reporter.
package model

// Flags holds the parsed command-line flags.
type Flags struct {
	Format          string
	Reports         []string
	Profiles        []string
	OutputFile      string
	Overwrite       bool
	NoExpand        bool
	ShowPaths       bool
	ShowReportPaths bool
	Verbose         int
	Version         bool
	Store           bool
	DBPath          string
}
