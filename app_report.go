package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/thirukguru/aws-reporter/model"
	"github.com/thirukguru/aws-reporter/service/awsconfig"
	"github.com/thirukguru/aws-reporter/service/reporter"
	"github.com/thirukguru/aws-reporter/service/storage"
	"github.com/thirukguru/aws-reporter/service/surveyor"
	"github.com/thirukguru/aws-reporter/shared/logging"
	"github.com/thirukguru/aws-reporter/shared/spinner"
)

// Constructor seams so the workflow can run against fakes in tests.
var (
	newReporter = reporter.NewService
	newSurveyor = func(profiles []string) surveyor.Service {
		return surveyor.NewService(awsconfig.NewService(), profiles, true)
	}
	newStorage = storage.NewService
)

func runReportWorkflow(flags model.Flags, versionInfo model.VersionInfo, usage string) error {
	if len(flags.Reports) == 0 {
		fmt.Println(usage)
		fmt.Println("Available reports:")
		for _, name := range newReporter().ReportNames() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	reporterService := newReporter()

	entityTypes, err := reporterService.EntityTypes(flags.Reports...)
	if err != nil {
		return fmt.Errorf("%w; available reports: %s", err, strings.Join(reporterService.ReportNames(), ", "))
	}

	if flags.ShowReportPaths {
		for _, name := range flags.Reports {
			def, _ := reporterService.Definition(name)
			fmt.Printf("%s (%s):\n", def.Name, def.EntityType)
			for _, spec := range def.PruneSpecs {
				fmt.Printf("  %-24s %s\n", spec.Name, spec.Path)
			}
		}
		return nil
	}

	format, err := reporter.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	outputPath := reporter.ResolveOutputPath(flags.OutputFile, format)

	// Preconditions before any network call.
	if len(flags.Reports) > 1 && !format.MultiReport() {
		return fmt.Errorf("format %s holds a single report per file; use xls for multiple reports", format)
	}
	if !flags.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("output file %s already exists (use --overwrite to replace it)", outputPath)
		}
	}

	surveyorService := newSurveyor(flags.Profiles)
	ctx := context.Background()

	spinner.StartSpinner("surveying AWS resources...")
	start := time.Now()
	err = surveyorService.Survey(ctx, entityTypes...)
	spinner.StopSpinner()
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}
	duration := time.Since(start)
	logging.L().Info().Dur("duration", duration).Msg("survey finished")

	if !flags.NoExpand {
		spinner.StartSpinner("expanding resource details...")
		err = surveyorService.Expand(ctx)
		spinner.StopSpinner()
		if err != nil {
			return fmt.Errorf("expand failed: %w", err)
		}
	}

	if flags.ShowPaths {
		for _, p := range surveyorService.AllPaths() {
			fmt.Println(p)
		}
		return nil
	}

	surveyors := []surveyor.Service{surveyorService}
	switch format {
	case reporter.FormatCSV:
		err = reporterService.WriteCSV(outputPath, surveyors, flags.Reports[0], flags.Overwrite)
	case reporter.FormatTSV:
		err = reporterService.WriteTSV(outputPath, surveyors, flags.Reports[0], flags.Overwrite)
	case reporter.FormatJSON:
		err = reporterService.WriteJSON(outputPath, surveyors, flags.Reports[0], flags.Overwrite)
	case reporter.FormatWorkbook:
		err = reporterService.WriteWorkbook(outputPath, surveyors, flags.Reports, flags.Overwrite)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", outputPath)

	if flags.Store {
		if err := storeRun(ctx, flags, versionInfo, surveyorService, outputPath, string(format), duration); err != nil {
			return fmt.Errorf("failed to store run history: %w", err)
		}
	}
	return nil
}

func storeRun(ctx context.Context, flags model.Flags, versionInfo model.VersionInfo, sv surveyor.Service, outputPath, format string, duration time.Duration) error {
	store, err := newStorage(flags.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	counts := make(map[string]int)
	accounts := make([]string, 0, 1)
	for _, inf := range sv.Informers() {
		counts[inf.EntityType()]++
		if acct, ok := inf.Data()["Account"].(string); ok && acct != "" && !slices.Contains(accounts, acct) {
			accounts = append(accounts, acct)
		}
	}

	_, err = store.SaveRun(ctx, storage.SaveRunInput{
		AccountIDs:   strings.Join(accounts, ","),
		Profiles:     strings.Join(sv.Profiles(), ","),
		DurationSec:  int64(duration.Seconds()),
		Reports:      strings.Join(flags.Reports, ","),
		OutputFormat: format,
		OutputFile:   outputPath,
		Version:      versionInfo.Version,
		EntityCounts: counts,
	})
	return err
}
