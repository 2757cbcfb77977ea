// Package store persists extraction structures as one JSON document per
// application and reads the upload subsystem's file inventory.
package store

import (
	"context"

	"belegplan/internal/structure/models"
	dErrors "belegplan/pkg/domain-errors"
)

var (
	// ErrNotFound is returned when no structure exists for an application.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "extraction structure not found")

	// ErrRevisionConflict is returned when a save carries a stale revision:
	// another writer persisted the structure after the caller loaded it.
	ErrRevisionConflict = dErrors.New(dErrors.CodeConflict, "extraction structure was modified concurrently")
)

// StructureStore persists the extraction structure wholesale. Save expects
// the revision the caller loaded and rejects stale writes; on success the
// structure's revision is advanced.
type StructureStore interface {
	Save(ctx context.Context, applicationID string, s *models.ExtractionStructure) error
	Load(ctx context.Context, applicationID string) (*models.ExtractionStructure, error)
}

// InventoryStore lists the files a person has uploaded for a document type.
// Owned by the upload subsystem; read-only here.
type InventoryStore interface {
	ListUploadedFiles(ctx context.Context, personKey, documentTypeID string) ([]models.UploadedFile, error)
}
