// Package service orchestrates the extraction structure lifecycle: generate
// from the current plan, persist with revision checks, and fold extractor
// results back in.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"belegplan/internal/audit"
	"belegplan/internal/catalog"
	planmodels "belegplan/internal/planner/models"
	"belegplan/internal/platform/metrics"
	"belegplan/internal/platform/middleware"
	"belegplan/internal/structure/builder"
	"belegplan/internal/structure/models"
	"belegplan/internal/structure/store"
	"belegplan/internal/structure/updater"
	dErrors "belegplan/pkg/domain-errors"
)

// Planner supplies the extraction plan a structure is generated from.
type Planner interface {
	CreatePlan(ctx context.Context, applicationID string) (*planmodels.ExtractionPlan, error)
}

// Service generates, persists, and updates extraction structures.
type Service struct {
	planner   Planner
	table     *catalog.Catalog
	structs   store.StructureStore
	inventory store.InventoryStore
	updater   *updater.Updater
	logger    *slog.Logger
	metrics   *metrics.Metrics
	auditor   *audit.Publisher
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// New constructs the structure Service.
func New(planner Planner, table *catalog.Catalog, structs store.StructureStore, inventory store.InventoryStore, opts ...Option) *Service {
	s := &Service{
		planner:   planner,
		table:     table,
		structs:   structs,
		inventory: inventory,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updater = updater.New(updater.WithLogger(s.logger), updater.WithMetrics(s.metrics))
	return s
}

// Generate builds a fresh structure from the application's current plan and
// file inventory. It does not persist: the caller decides whether the result
// replaces the stored structure.
func (s *Service) Generate(ctx context.Context, applicationID string) (*models.ExtractionStructure, error) {
	plan, err := s.planner.CreatePlan(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	structure, err := builder.Build(ctx, applicationID, plan.Tasks, s.inventory, s.table)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build extraction structure")
	}

	if s.metrics != nil {
		s.metrics.StructuresBuilt.Inc()
	}
	s.auditor.Emit(ctx, audit.Event{
		ApplicationID: applicationID,
		Action:        audit.ActionStructureGenerated,
		ActorID:       middleware.GetUserID(ctx),
		RequestID:     middleware.GetRequestID(ctx),
	})
	return structure, nil
}

// Save persists the structure wholesale. The structure's revision must match
// the stored one; a mismatch surfaces as a conflict the client resolves by
// reloading.
func (s *Service) Save(ctx context.Context, applicationID string, structure *models.ExtractionStructure) error {
	if structure == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "extraction structure is required")
	}
	structure.ApplicationID = applicationID

	if err := s.structs.Save(ctx, applicationID, structure); err != nil {
		if errors.Is(err, store.ErrRevisionConflict) {
			if s.metrics != nil {
				s.metrics.SaveConflicts.Inc()
			}
			return err
		}
		return dErrors.Wrap(err, dErrors.CodePersistence, "save extraction structure")
	}

	if s.metrics != nil {
		s.metrics.StructureSaves.Inc()
	}
	s.auditor.Emit(ctx, audit.Event{
		ApplicationID: applicationID,
		Action:        audit.ActionStructureSaved,
		ActorID:       middleware.GetUserID(ctx),
		Detail:        fmt.Sprintf("revision %d", structure.Revision),
		RequestID:     middleware.GetRequestID(ctx),
	})
	return nil
}

// Load returns the stored structure for an application.
func (s *Service) Load(ctx context.Context, applicationID string) (*models.ExtractionStructure, error) {
	structure, err := s.structs.Load(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodePersistence, "load extraction structure")
	}
	if s.metrics != nil {
		s.metrics.StructureLoads.Inc()
	}
	return structure, nil
}

// UpdateWithResults folds a batch of extractor results into the stored
// structure and persists it under the loaded revision. Skipped results do not
// fail the batch; they are counted on the structure and reported back.
func (s *Service) UpdateWithResults(ctx context.Context, applicationID string, results []updater.Result) (*models.ExtractionStructure, int, error) {
	structure, err := s.Load(ctx, applicationID)
	if err != nil {
		return nil, 0, err
	}

	applied, skipped := s.updater.ApplyAll(ctx, structure, results)
	if skipped > 0 {
		s.auditor.Emit(ctx, audit.Event{
			ApplicationID: applicationID,
			Action:        audit.ActionUpdateSkipped,
			ActorID:       middleware.GetUserID(ctx),
			Detail:        fmt.Sprintf("%d of %d results skipped", skipped, len(results)),
			RequestID:     middleware.GetRequestID(ctx),
		})
	}

	if err := s.Save(ctx, applicationID, structure); err != nil {
		return nil, 0, err
	}

	s.auditor.Emit(ctx, audit.Event{
		ApplicationID: applicationID,
		Action:        audit.ActionExtractionUpdated,
		ActorID:       middleware.GetUserID(ctx),
		Detail:        fmt.Sprintf("%d results applied", applied),
		RequestID:     middleware.GetRequestID(ctx),
	})
	return structure, skipped, nil
}
