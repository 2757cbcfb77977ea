//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers Postgres instance with the
// planning engine's schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	application_id      TEXT PRIMARY KEY,
	main_applicant_id   TEXT NOT NULL,
	main_applicant_name TEXT NOT NULL DEFAULT '',
	household_members   JSONB NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS financial_profiles (
	person_id TEXT PRIMARY KEY,
	profile   JSONB NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS uploaded_files (
	person_key       TEXT NOT NULL,
	document_type_id TEXT NOT NULL,
	file_name        TEXT NOT NULL,
	file_path        TEXT NOT NULL DEFAULT '',
	uploaded         BOOLEAN NOT NULL DEFAULT TRUE,
	uploaded_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (person_key, document_type_id, file_name)
);

CREATE TABLE IF NOT EXISTS extraction_structures (
	application_id TEXT PRIMARY KEY,
	structure      JSONB NOT NULL,
	revision       BIGINT NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS extraction_audit (
	id             BIGSERIAL PRIMARY KEY,
	occurred_at    TIMESTAMPTZ NOT NULL,
	application_id TEXT NOT NULL,
	action         TEXT NOT NULL,
	actor_id       TEXT NOT NULL DEFAULT '',
	detail         TEXT NOT NULL DEFAULT '',
	request_id     TEXT NOT NULL DEFAULT ''
);
`

// NewPostgresContainer starts a Postgres container, applies the schema, and
// returns an open connection.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("belegplan"),
		tcpostgres.WithUsername("belegplan"),
		tcpostgres.WithPassword("belegplan"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping postgres: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// Truncate clears the given tables. Use between tests to ensure isolation.
func (p *PostgresContainer) Truncate(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}
