package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"belegplan/internal/structure/models"
)

// InMemoryStructureStore keeps structures in memory. Entries are stored as
// serialized blobs so loads return independent copies, matching the
// wholesale-blob semantics of the postgres store.
type InMemoryStructureStore struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	revisions map[string]int64
}

func NewInMemoryStructureStore() *InMemoryStructureStore {
	return &InMemoryStructureStore{
		blobs:     make(map[string][]byte),
		revisions: make(map[string]int64),
	}
}

func (s *InMemoryStructureStore) Save(_ context.Context, applicationID string, structure *models.ExtractionStructure) error {
	if structure == nil {
		return fmt.Errorf("extraction structure is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.revisions[applicationID]; current != structure.Revision {
		return ErrRevisionConflict
	}

	structure.Revision++
	structure.UpdatedAt = time.Now()
	raw, err := json.Marshal(structure)
	if err != nil {
		structure.Revision--
		return fmt.Errorf("encode extraction structure: %w", err)
	}
	s.blobs[applicationID] = raw
	s.revisions[applicationID] = structure.Revision
	return nil
}

func (s *InMemoryStructureStore) Load(_ context.Context, applicationID string) (*models.ExtractionStructure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[applicationID]
	if !ok {
		return nil, ErrNotFound
	}
	var structure models.ExtractionStructure
	if err := json.Unmarshal(raw, &structure); err != nil {
		return nil, fmt.Errorf("decode extraction structure: %w", err)
	}
	return &structure, nil
}

// InMemoryInventoryStore fakes the upload subsystem's file inventory.
type InMemoryInventoryStore struct {
	mu    sync.RWMutex
	files map[string][]models.UploadedFile
}

func NewInMemoryInventoryStore() *InMemoryInventoryStore {
	return &InMemoryInventoryStore{files: make(map[string][]models.UploadedFile)}
}

func inventoryKey(personKey, documentTypeID string) string {
	return personKey + "/" + documentTypeID
}

func (s *InMemoryInventoryStore) PutFiles(personKey, documentTypeID string, files []models.UploadedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[inventoryKey(personKey, documentTypeID)] = files
}

func (s *InMemoryInventoryStore) ListUploadedFiles(_ context.Context, personKey, documentTypeID string) ([]models.UploadedFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UploadedFile{}, s.files[inventoryKey(personKey, documentTypeID)]...), nil
}
