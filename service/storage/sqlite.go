package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.aws-reporter/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	total := 0
	for _, count := range input.EntityCounts {
		total += count
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO survey_runs (
			run_uuid, account_ids, profiles, run_duration, total_resources,
			reports, output_format, output_file, cli_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.AccountIDs, input.Profiles, input.DurationSec, total,
		input.Reports, input.OutputFormat, input.OutputFile, input.Version)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	types := make([]string, 0, len(input.EntityCounts))
	for t := range input.EntityCounts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_entities(run_id, entity_type, resource_count)
			VALUES (?, ?, ?)
		`, runID, t, input.EntityCounts[t])
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT run_id, run_uuid, account_ids, profiles, run_timestamp,
			total_resources, reports, output_format, output_file, cli_version
		FROM survey_runs
		ORDER BY run_timestamp DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.RunUUID, &r.AccountIDs, &r.Profiles, &r.RunTimestamp,
			&r.TotalResources, &r.Reports, &r.OutputFormat, &r.OutputFile, &r.Version); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *service) GetEntityCounts(runID int64) ([]EntityCount, error) {
	rows, err := s.db.Query(`
		SELECT entity_type, resource_count
		FROM run_entities WHERE run_id=? ORDER BY entity_type ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []EntityCount{}
	for rows.Next() {
		var c EntityCount
		if err := rows.Scan(&c.EntityType, &c.ResourceCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM survey_runs WHERE run_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
