package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the planning engine.
type Metrics struct {
	PlansCreated      prometheus.Counter
	PlanDuration      prometheus.Histogram
	PlanCacheHits     prometheus.Counter
	PlanCacheMisses   prometheus.Counter
	StructuresBuilt   prometheus.Counter
	StructureSaves    prometheus.Counter
	StructureLoads    prometheus.Counter
	SaveConflicts     prometheus.Counter
	UpdatesApplied    prometheus.Counter
	UpdatesSkipped    prometheus.Counter
	ProfileLoadErrors prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on the given registerer. Tests pass a fresh
// registry so parallel suites do not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PlansCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_plans_created_total",
			Help: "Total number of extraction plans computed.",
		}),
		PlanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "belegplan_plan_duration_seconds",
			Help:    "Time spent computing an extraction plan.",
			Buckets: prometheus.DefBuckets,
		}),
		PlanCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_plan_cache_hits_total",
			Help: "Plan cache lookups that returned a cached plan.",
		}),
		PlanCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_plan_cache_misses_total",
			Help: "Plan cache lookups that fell through to a fresh computation.",
		}),
		StructuresBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_structures_built_total",
			Help: "Total number of extraction structures generated.",
		}),
		StructureSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_structure_saves_total",
			Help: "Total number of extraction structure writes.",
		}),
		StructureLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_structure_loads_total",
			Help: "Total number of extraction structure reads.",
		}),
		SaveConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_structure_save_conflicts_total",
			Help: "Structure writes rejected because the caller held a stale revision.",
		}),
		UpdatesApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_extraction_updates_applied_total",
			Help: "Extractor results merged into a structure.",
		}),
		UpdatesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_extraction_updates_skipped_total",
			Help: "Extractor results that addressed a node the plan never created.",
		}),
		ProfileLoadErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "belegplan_profile_load_errors_total",
			Help: "Household loads that failed on the core applicant record.",
		}),
	}
}
