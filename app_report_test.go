package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/aws-reporter/model"
	"github.com/thirukguru/aws-reporter/service/informer"
	"github.com/thirukguru/aws-reporter/service/surveyor"
)

type fakeSurveyor struct {
	surveyCalls   int
	expandCalls   int
	surveyedTypes []string
	informers     []*informer.Informer
}

func (f *fakeSurveyor) Survey(ctx context.Context, entityTypes ...string) error {
	f.surveyCalls++
	f.surveyedTypes = entityTypes
	return nil
}

func (f *fakeSurveyor) Expand(ctx context.Context) error {
	f.expandCalls++
	return nil
}

func (f *fakeSurveyor) Informers() []*informer.Informer { return f.informers }
func (f *fakeSurveyor) AllPaths() []string              { return []string{"Account", "VpcId"} }
func (f *fakeSurveyor) Profiles() []string              { return []string{"dev"} }

func (f *fakeSurveyor) InformersByType(entityType string) []*informer.Informer {
	var out []*informer.Informer
	for _, inf := range f.informers {
		if inf.EntityType() == entityType {
			out = append(out, inf)
		}
	}
	return out
}

func installFakeSurveyor(t *testing.T) *fakeSurveyor {
	t.Helper()
	fake := &fakeSurveyor{}

	vpc, err := informer.New("vpc", struct {
		VpcId     string
		CidrBlock string
	}{"vpc-0abc", "10.0.0.0/16"}, informer.Metadata{Profile: "dev", Region: "us-east-1", Account: "111122223333"}, nil)
	require.NoError(t, err)
	fake.informers = []*informer.Informer{vpc}

	orig := newSurveyor
	newSurveyor = func(profiles []string) surveyor.Service { return fake }
	t.Cleanup(func() { newSurveyor = orig })
	return fake
}

func testVersion() model.VersionInfo {
	return model.VersionInfo{Version: "test", Commit: "none", Date: "unknown"}
}

func TestWorkflowNoReportsPrintsUsage(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{Format: "csv"}, testVersion(), "usage")
	require.NoError(t, err)
	assert.Zero(t, fake.surveyCalls, "usage path must not survey")
}

func TestWorkflowUnknownReportFailsBeforeSurvey(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{
		Format:     "csv",
		Reports:    []string{"no-such-report"},
		OutputFile: filepath.Join(t.TempDir(), "out"),
	}, testVersion(), "usage")
	assert.ErrorContains(t, err, "unknown report")
	assert.ErrorContains(t, err, "available reports")
	assert.Zero(t, fake.surveyCalls)
}

func TestWorkflowInvalidFormatFailsBeforeSurvey(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{
		Format:     "yaml",
		Reports:    []string{"vpcs"},
		OutputFile: filepath.Join(t.TempDir(), "out"),
	}, testVersion(), "usage")
	assert.ErrorContains(t, err, "unsupported format")
	assert.Zero(t, fake.surveyCalls)
}

func TestWorkflowMultiReportNeedsWorkbook(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{
		Format:     "csv",
		Reports:    []string{"vpcs", "subnets"},
		OutputFile: filepath.Join(t.TempDir(), "out"),
	}, testVersion(), "usage")
	assert.ErrorContains(t, err, "single report per file")
	assert.Zero(t, fake.surveyCalls)
}

func TestWorkflowExistingOutputFailsBeforeSurvey(t *testing.T) {
	fake := installFakeSurveyor(t)

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))

	err := runReportWorkflow(model.Flags{
		Format:     "json",
		Reports:    []string{"vpcs"},
		OutputFile: out,
	}, testVersion(), "usage")
	assert.ErrorContains(t, err, "already exists")
	assert.Zero(t, fake.surveyCalls, "overwrite check must run before any network call")
}

func TestWorkflowShowReportPathsSkipsSurvey(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{
		Format:          "csv",
		Reports:         []string{"vpcs"},
		ShowReportPaths: true,
	}, testVersion(), "usage")
	require.NoError(t, err)
	assert.Zero(t, fake.surveyCalls)
}

func TestWorkflowShowPathsSkipsWrite(t *testing.T) {
	fake := installFakeSurveyor(t)
	out := filepath.Join(t.TempDir(), "out")

	err := runReportWorkflow(model.Flags{
		Format:     "csv",
		Reports:    []string{"vpcs"},
		OutputFile: out,
		ShowPaths:  true,
	}, testVersion(), "usage")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.surveyCalls)
	assert.NoFileExists(t, out+".csv")
}

func TestWorkflowWritesJSONReport(t *testing.T) {
	fake := installFakeSurveyor(t)
	out := filepath.Join(t.TempDir(), "out")

	err := runReportWorkflow(model.Flags{
		Format:     "json",
		Reports:    []string{"vpcs"},
		OutputFile: out,
	}, testVersion(), "usage")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.surveyCalls)
	assert.Equal(t, []string{"vpc"}, fake.surveyedTypes)
	assert.Equal(t, 1, fake.expandCalls)

	b, err := os.ReadFile(out + ".json")
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(b, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "vpc-0abc", records[0]["VpcId"])
}

func TestWorkflowNoExpandSkipsExpansion(t *testing.T) {
	fake := installFakeSurveyor(t)

	err := runReportWorkflow(model.Flags{
		Format:     "csv",
		Reports:    []string{"vpcs"},
		OutputFile: filepath.Join(t.TempDir(), "out"),
		NoExpand:   true,
	}, testVersion(), "usage")
	require.NoError(t, err)
	assert.Zero(t, fake.expandCalls)
}

func TestWorkflowStoresRunHistory(t *testing.T) {
	installFakeSurveyor(t)
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "history.db")

	err := runReportWorkflow(model.Flags{
		Format:     "csv",
		Reports:    []string{"vpcs"},
		OutputFile: filepath.Join(tmp, "out"),
		Store:      true,
		DBPath:     dbPath,
	}, testVersion(), "usage")
	require.NoError(t, err)

	store, err := newStorage(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.GetRecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "111122223333", runs[0].AccountIDs)
	assert.Equal(t, "dev", runs[0].Profiles)
	assert.Equal(t, 1, runs[0].TotalResources)
	assert.Equal(t, "vpcs", runs[0].Reports)
	assert.Equal(t, "csv", runs[0].OutputFormat)
}
