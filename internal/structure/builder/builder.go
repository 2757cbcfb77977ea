// Package builder expands consolidated extraction tasks against the uploaded
// file inventory into the pre-populated extraction structure.
package builder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"belegplan/internal/catalog"
	planmodels "belegplan/internal/planner/models"
	"belegplan/internal/structure/models"
	"belegplan/internal/structure/store"
)

// Build creates the structure for one application from its plan's tasks.
// Every (person, document type) pair in the tasks gets a node even when no
// file has been uploaded yet; each uploaded file gets a placeholder value
// record per relevant value, shaped by the field's declared category.
func Build(ctx context.Context, applicationID string, tasks []planmodels.ExtractionTask, inventory store.InventoryStore, table *catalog.Catalog) (*models.ExtractionStructure, error) {
	structure := &models.ExtractionStructure{
		ApplicationID: applicationID,
		UpdatedAt:     time.Now(),
		Persons:       make(map[string]map[string]*models.DocumentExtraction),
	}

	for _, task := range tasks {
		docs, ok := structure.Persons[task.PersonID]
		if !ok {
			docs = make(map[string]*models.DocumentExtraction)
			structure.Persons[task.PersonID] = docs
		}

		files, err := inventory.ListUploadedFiles(ctx, task.PersonID, task.DocumentTypeID)
		if err != nil {
			return nil, fmt.Errorf("list uploads for %s/%s: %w", task.PersonID, task.DocumentTypeID, err)
		}

		node := &models.DocumentExtraction{
			RelevantValues: relevantValues(task),
			Files:          make(map[string]*models.FileExtraction),
		}
		for _, f := range files {
			if !f.Uploaded {
				continue
			}
			node.NumberOfFiles++
			node.Files[f.FileName] = newFileNode(f, task, table)
		}
		docs[task.DocumentTypeID] = node
	}

	return structure, nil
}

func newFileNode(f models.UploadedFile, task planmodels.ExtractionTask, table *catalog.Catalog) *models.FileExtraction {
	node := &models.FileExtraction{
		FilePath:   f.FilePath,
		UploadedAt: f.UploadedAt,
		Values:     make(map[string]*models.ValueRecord, len(task.Values)),
	}
	for _, v := range task.Values {
		node.Values[v.ValueFieldID] = models.NewPlaceholder(table.CategoryOf(v.ValueFieldID))
	}
	return node
}

func relevantValues(task planmodels.ExtractionTask) []string {
	ids := make([]string, 0, len(task.Values))
	for _, v := range task.Values {
		ids = append(ids, v.ValueFieldID)
	}
	sort.Strings(ids)
	return ids
}
