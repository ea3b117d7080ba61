// Package main is the entry point for the aws-reporter application.
package main

import (
	"fmt"
	"os"

	"github.com/thirukguru/aws-reporter/model"
	"github.com/thirukguru/aws-reporter/service/flag"
	"github.com/thirukguru/aws-reporter/shared/banner"
	"github.com/thirukguru/aws-reporter/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return err
	}

	logging.Init(flags.Verbose)

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if flags.Version {
		fmt.Printf("aws-reporter %s (commit %s, built %s)\n", versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	if len(flags.Reports) > 0 && flags.Format != "json" {
		banner.DrawBannerTitle()
	}

	return runReportWorkflow(flags, versionInfo, flagService.Usage())
}
