// Package service assembles extraction plans: load the household, resolve
// requirements per purpose, consolidate into scan tasks.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"belegplan/internal/audit"
	"belegplan/internal/catalog"
	household "belegplan/internal/household/models"
	"belegplan/internal/planner/cache"
	"belegplan/internal/planner/consolidate"
	"belegplan/internal/planner/models"
	"belegplan/internal/planner/resolver"
	"belegplan/internal/platform/metrics"
	"belegplan/internal/platform/middleware"
)

// HouseholdLoader provides the applicants a plan is computed over.
type HouseholdLoader interface {
	LoadHousehold(ctx context.Context, applicationID string) ([]household.Applicant, error)
}

// Service computes extraction plans and their summary view.
type Service struct {
	loader  HouseholdLoader
	table   *catalog.Catalog
	cache   cache.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor *audit.Publisher
}

// Option configures a Service.
type Option func(*Service)

func WithCache(c cache.Store) Option {
	return func(s *Service) {
		s.cache = c
	}
}

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

// New constructs a planning Service around an injected rule table.
func New(loader HouseholdLoader, table *catalog.Catalog, opts ...Option) *Service {
	s := &Service{loader: loader, table: table}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePlan computes the extraction plan for an application. Pure read: the
// plan is rebuilt from declared data on every call and never persisted. A
// configured cache only shortcuts recomputation within its TTL.
func (s *Service) CreatePlan(ctx context.Context, applicationID string) (*models.ExtractionPlan, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, applicationID); err == nil {
			if s.metrics != nil {
				s.metrics.PlanCacheHits.Inc()
			}
			return cached, nil
		} else if !errors.Is(err, cache.ErrNotFound) && s.logger != nil {
			s.logger.WarnContext(ctx, "plan cache read failed", "error", err)
		}
		if s.metrics != nil {
			s.metrics.PlanCacheMisses.Inc()
		}
	}

	start := time.Now()
	applicants, err := s.loader.LoadHousehold(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	householdIncome, availableMonthly := resolver.ResolveAll(applicants, s.table)

	requirements := make([]models.PersonValueRequirement, 0, len(householdIncome)+len(availableMonthly))
	requirements = append(requirements, householdIncome...)
	requirements = append(requirements, availableMonthly...)
	tasks := consolidate.Consolidate(requirements, s.table)

	plan := &models.ExtractionPlan{
		ApplicationID:          applicationID,
		HouseholdIncome:        householdIncome,
		AvailableMonthlyIncome: availableMonthly,
		Tasks:                  tasks,
		Counts:                 countPlan(applicants, tasks),
		CreatedAt:              time.Now(),
	}

	if s.metrics != nil {
		s.metrics.PlansCreated.Inc()
		s.metrics.PlanDuration.Observe(time.Since(start).Seconds())
	}
	s.auditor.Emit(ctx, audit.Event{
		ApplicationID: applicationID,
		Action:        audit.ActionPlanCreated,
		ActorID:       middleware.GetUserID(ctx),
		RequestID:     middleware.GetRequestID(ctx),
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, applicationID, plan); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "plan cache write failed", "error", err)
		}
	}
	return plan, nil
}

// Summary returns the denormalized view of the plan used by reviewers and
// extraction prompts.
func (s *Service) Summary(ctx context.Context, applicationID string) (*models.Summary, error) {
	plan, err := s.CreatePlan(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		ApplicationID:          applicationID,
		HouseholdIncome:        s.summarize(plan.HouseholdIncome),
		AvailableMonthlyIncome: s.summarize(plan.AvailableMonthlyIncome),
		ValuesPerPerson:        make(map[string]int),
	}
	for _, task := range plan.Tasks {
		summary.ValuesPerPerson[task.PersonID] += len(task.Values)
	}
	return summary, nil
}

func (s *Service) summarize(requirements []models.PersonValueRequirement) []models.PersonSummary {
	out := make([]models.PersonSummary, 0, len(requirements))
	for _, req := range requirements {
		ps := models.PersonSummary{
			PersonID:   req.Person.ID,
			PersonName: req.Person.DisplayName,
		}
		for _, m := range req.Mappings {
			label := m.ValueFieldID
			if field, ok := s.table.Field(m.ValueFieldID); ok {
				label = field.Label
			}
			sv := models.SummaryValue{
				ValueFieldID: m.ValueFieldID,
				Label:        label,
				SearchTerms:  m.SearchTerms,
			}
			if m.DocumentTypeID != "" {
				sv.DocumentTitle = s.table.DocumentTitle(m.DocumentTypeID)
			}
			ps.Values = append(ps.Values, sv)
		}
		out = append(out, ps)
	}
	return out
}

func countPlan(applicants []household.Applicant, tasks []models.ExtractionTask) models.PlanCounts {
	counts := models.PlanCounts{
		Persons:         len(applicants),
		DocumentsToScan: len(tasks),
	}
	for _, t := range tasks {
		counts.ValuesToExtract += len(t.Values)
	}
	return counts
}
