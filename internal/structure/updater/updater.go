// Package updater applies extractor results to an existing structure. It
// never grows the structure: results that address a person, document, file,
// or value the structure does not know are counted and dropped.
package updater

import (
	"context"
	"log/slog"

	"belegplan/internal/platform/metrics"
	"belegplan/internal/structure/models"
)

// Result is one extractor output for a single value in a single file.
type Result struct {
	PersonKey      string         `json:"person_key"`
	DocumentTypeID string         `json:"document_type_id"`
	FileName       string         `json:"file_name"`
	ValueFieldID   string         `json:"value_field_id"`
	Extracted      map[string]any `json:"extracted"`
}

// Updater mutates structures in place. The caller owns persistence.
type Updater struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Updater)

func WithLogger(l *slog.Logger) Option {
	return func(u *Updater) { u.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Updater) { u.metrics = m }
}

func New(opts ...Option) *Updater {
	u := &Updater{logger: slog.Default()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Apply writes one result into the structure. It returns true when the
// result landed and false when it was skipped because the addressed node
// does not exist.
func (u *Updater) Apply(ctx context.Context, structure *models.ExtractionStructure, res Result) bool {
	doc := structure.Document(res.PersonKey, res.DocumentTypeID)
	if doc == nil {
		return u.skip(ctx, structure, res, "unknown person or document type")
	}
	file, ok := doc.Files[res.FileName]
	if !ok {
		return u.skip(ctx, structure, res, "unknown file")
	}
	record, ok := file.Values[res.ValueFieldID]
	if !ok {
		return u.skip(ctx, structure, res, "value not relevant for document")
	}

	confidence, method := record.ApplyExtracted(res.Extracted)
	if confidence > 0 {
		file.Confidence = confidence
	}
	if method != "" {
		file.MethodUsed = method
	}
	if u.metrics != nil {
		u.metrics.UpdatesApplied.Inc()
	}
	return true
}

// ApplyAll applies a batch and returns how many results were applied and how
// many were skipped. A batch with skips is not an error: extraction runs
// against files that may have been re-planned since.
func (u *Updater) ApplyAll(ctx context.Context, structure *models.ExtractionStructure, results []Result) (applied, skipped int) {
	for _, res := range results {
		if u.Apply(ctx, structure, res) {
			applied++
		} else {
			skipped++
		}
	}
	return applied, skipped
}

func (u *Updater) skip(ctx context.Context, structure *models.ExtractionStructure, res Result, reason string) bool {
	structure.SkippedUpdates++
	if u.metrics != nil {
		u.metrics.UpdatesSkipped.Inc()
	}
	u.logger.WarnContext(ctx, "skipping extraction result",
		"application_id", structure.ApplicationID,
		"person_key", res.PersonKey,
		"document_type_id", res.DocumentTypeID,
		"file_name", res.FileName,
		"value_field_id", res.ValueFieldID,
		"reason", reason,
	)
	return false
}
