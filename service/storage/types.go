package storage

import (
	"context"
	"time"
)

// Service persists survey run history and answers history queries.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	GetEntityCounts(runID int64) ([]EntityCount, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveRunInput is the payload saved for a completed survey run.
type SaveRunInput struct {
	RunUUID      string
	AccountIDs   string
	Profiles     string
	DurationSec  int64
	Reports      string
	OutputFormat string
	OutputFile   string
	Version      string
	EntityCounts map[string]int
}

// RunSummary provides compact survey run metadata.
type RunSummary struct {
	RunID          int64
	RunUUID        string
	AccountIDs     string
	Profiles       string
	RunTimestamp   time.Time
	TotalResources int
	Reports        string
	OutputFormat   string
	OutputFile     string
	Version        string
}

// EntityCount is a per-entity-type resource count within one run.
type EntityCount struct {
	EntityType    string
	ResourceCount int
}
