package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS survey_runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    account_ids     TEXT NOT NULL,
    profiles        TEXT NOT NULL,
    run_timestamp   DATETIME DEFAULT CURRENT_TIMESTAMP,
    run_duration    INTEGER,
    total_resources INTEGER DEFAULT 0,
    reports         TEXT,
    output_format   TEXT,
    output_file     TEXT,
    cli_version     TEXT,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON survey_runs(run_timestamp DESC);

CREATE TABLE IF NOT EXISTS run_entities (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          INTEGER NOT NULL,
    entity_type     TEXT NOT NULL,
    resource_count  INTEGER NOT NULL,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES survey_runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_entities_run ON run_entities(run_id);
CREATE INDEX IF NOT EXISTS idx_run_entities_type ON run_entities(entity_type);
`
