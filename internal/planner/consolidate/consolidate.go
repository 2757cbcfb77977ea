// Package consolidate merges per-purpose requirement sets into one scan task
// per (document type, person).
package consolidate

import (
	"sort"

	"belegplan/internal/catalog"
	"belegplan/internal/planner/models"
)

type taskKey struct {
	documentTypeID string
	personID       string
}

// Consolidate deduplicates requirement entries into extraction tasks.
// Entries without a document type are skipped: those facts stay declared but
// unverifiable and the review workflow surfaces them to a human. Task order
// is insertion order - the first requirement that introduces a key - so runs
// are reproducible given stable input order.
func Consolidate(requirements []models.PersonValueRequirement, table *catalog.Catalog) []models.ExtractionTask {
	tasks := make(map[taskKey]*models.ExtractionTask)
	var order []taskKey

	for _, req := range requirements {
		for _, m := range req.Mappings {
			if m.DocumentTypeID == "" {
				continue
			}
			key := taskKey{documentTypeID: m.DocumentTypeID, personID: req.Person.ID}
			task, ok := tasks[key]
			if !ok {
				task = &models.ExtractionTask{
					DocumentTypeID: m.DocumentTypeID,
					DocumentTitle:  table.DocumentTitle(m.DocumentTypeID),
					PersonID:       req.Person.ID,
					PersonName:     req.Person.DisplayName,
				}
				tasks[key] = task
				order = append(order, key)
			}
			mergeValue(task, m, req.CalcType, table)
		}
	}

	out := make([]models.ExtractionTask, 0, len(order))
	for _, key := range order {
		out = append(out, *tasks[key])
	}
	return out
}

// mergeValue adds a mapping's fact to the task, or merges it into an
// existing entry: search terms are unioned and the calc type escalates to
// 'both' when a second purpose contributes the same field.
func mergeValue(task *models.ExtractionTask, m catalog.Mapping, calc catalog.CalcType, table *catalog.Catalog) {
	for i := range task.Values {
		if task.Values[i].ValueFieldID != m.ValueFieldID {
			continue
		}
		task.Values[i].SearchTerms = unionTerms(task.Values[i].SearchTerms, m.SearchTerms)
		if task.Values[i].CalcType != calc {
			task.Values[i].CalcType = catalog.CalcBoth
		}
		if m.Required {
			task.Values[i].Required = true
		}
		return
	}

	dataType := catalog.TypeText
	if field, ok := table.Field(m.ValueFieldID); ok {
		dataType = field.DataType
	}
	task.Values = append(task.Values, models.ValueToExtract{
		ValueFieldID: m.ValueFieldID,
		SearchTerms:  unionTerms(nil, m.SearchTerms),
		CalcType:     calc,
		DataType:     dataType,
		Required:     m.Required,
	})
}

// unionTerms returns the sorted union of two term sets. Sorting makes the
// result independent of processing order.
func unionTerms(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, t := range a {
		seen[t] = struct{}{}
	}
	for _, t := range b {
		seen[t] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
