package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"belegplan/internal/structure/models"
)

// PostgresStructureStore persists structures as one JSONB document per
// application, with a revision column guarding against concurrent writers.
type PostgresStructureStore struct {
	db *sql.DB
}

func NewPostgresStructureStore(db *sql.DB) *PostgresStructureStore {
	return &PostgresStructureStore{db: db}
}

func (s *PostgresStructureStore) Save(ctx context.Context, applicationID string, structure *models.ExtractionStructure) error {
	if structure == nil {
		return fmt.Errorf("extraction structure is required")
	}

	expected := structure.Revision
	structure.Revision = expected + 1
	structure.UpdatedAt = time.Now()
	raw, err := json.Marshal(structure)
	if err != nil {
		structure.Revision = expected
		return fmt.Errorf("encode extraction structure: %w", err)
	}

	// The whole blob is written or nothing is: a single upsert guarded by
	// the revision the caller loaded.
	query := `
		INSERT INTO extraction_structures (application_id, structure, revision, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (application_id) DO UPDATE SET
			structure = EXCLUDED.structure,
			revision = EXCLUDED.revision,
			updated_at = EXCLUDED.updated_at
		WHERE extraction_structures.revision = $5
	`
	res, err := s.db.ExecContext(ctx, query,
		applicationID, raw, structure.Revision, structure.UpdatedAt, expected,
	)
	if err != nil {
		structure.Revision = expected
		return fmt.Errorf("save extraction structure: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		structure.Revision = expected
		return fmt.Errorf("save extraction structure: %w", err)
	}
	if affected == 0 {
		structure.Revision = expected
		return ErrRevisionConflict
	}
	return nil
}

func (s *PostgresStructureStore) Load(ctx context.Context, applicationID string) (*models.ExtractionStructure, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT structure FROM extraction_structures WHERE application_id = $1`, applicationID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load extraction structure: %w", err)
	}

	var structure models.ExtractionStructure
	if err := json.Unmarshal(raw, &structure); err != nil {
		return nil, fmt.Errorf("decode extraction structure: %w", err)
	}
	return &structure, nil
}

// PostgresInventoryStore reads the upload subsystem's file inventory.
type PostgresInventoryStore struct {
	db *sql.DB
}

func NewPostgresInventoryStore(db *sql.DB) *PostgresInventoryStore {
	return &PostgresInventoryStore{db: db}
}

func (s *PostgresInventoryStore) ListUploadedFiles(ctx context.Context, personKey, documentTypeID string) ([]models.UploadedFile, error) {
	query := `
		SELECT file_name, file_path, uploaded_at, uploaded
		FROM uploaded_files
		WHERE person_key = $1 AND document_type_id = $2
		ORDER BY uploaded_at
	`
	rows, err := s.db.QueryContext(ctx, query, personKey, documentTypeID)
	if err != nil {
		return nil, fmt.Errorf("list uploaded files: %w", err)
	}
	defer rows.Close()

	var files []models.UploadedFile
	for rows.Next() {
		var f models.UploadedFile
		if err := rows.Scan(&f.FileName, &f.FilePath, &f.UploadedAt, &f.Uploaded); err != nil {
			return nil, fmt.Errorf("scan uploaded file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate uploaded files: %w", err)
	}
	return files, nil
}
