// Package models defines the ephemeral planning output types. Plans are pure
// functions of profile and rule table; they are rebuilt per request and never
// persisted.
package models

import (
	"time"

	"belegplan/internal/catalog"
	household "belegplan/internal/household/models"
)

// PersonValueRequirement is the ordered list of rule-table entries whose
// presence predicate a person's profile satisfies, for one calculation
// purpose.
type PersonValueRequirement struct {
	Person   household.Person  `json:"person"`
	CalcType catalog.CalcType  `json:"calc_type"`
	Mappings []catalog.Mapping `json:"mappings"`
}

// ValueToExtract is one fact a scan task must look for.
type ValueToExtract struct {
	ValueFieldID string           `json:"value_field_id"`
	SearchTerms  []string         `json:"search_terms"`
	CalcType     catalog.CalcType `json:"calc_type"`
	DataType     catalog.DataType `json:"data_type"`
	Required     bool             `json:"required"`
}

// ExtractionTask is the consolidated unit of work: one scan job per
// (document type, person) with every fact that document should supply.
type ExtractionTask struct {
	DocumentTypeID string           `json:"document_type_id"`
	DocumentTitle  string           `json:"document_title"`
	PersonID       string           `json:"person_id"`
	PersonName     string           `json:"person_name"`
	Values         []ValueToExtract `json:"values_to_extract"`
}

// PlanCounts summarizes one planning run.
type PlanCounts struct {
	Persons         int `json:"persons"`
	DocumentsToScan int `json:"documents_to_scan"`
	ValuesToExtract int `json:"values_to_extract"`
}

// ExtractionPlan is the aggregate result of one planning run.
type ExtractionPlan struct {
	ApplicationID          string                   `json:"application_id"`
	HouseholdIncome        []PersonValueRequirement `json:"household_income"`
	AvailableMonthlyIncome []PersonValueRequirement `json:"available_monthly_income"`
	Tasks                  []ExtractionTask         `json:"tasks"`
	Counts                 PlanCounts               `json:"counts"`
	CreatedAt              time.Time                `json:"created_at"`
}

// SummaryValue is one fact in the denormalized plan summary.
type SummaryValue struct {
	ValueFieldID  string   `json:"value_field_id"`
	Label         string   `json:"label"`
	DocumentTitle string   `json:"document_title,omitempty"`
	SearchTerms   []string `json:"search_terms,omitempty"`
}

// PersonSummary lists the facts one person must corroborate, per purpose.
type PersonSummary struct {
	PersonID   string         `json:"person_id"`
	PersonName string         `json:"person_name"`
	Values     []SummaryValue `json:"values"`
}

// Summary is the human/AI-prompt-friendly view of a plan.
type Summary struct {
	ApplicationID          string          `json:"application_id"`
	HouseholdIncome        []PersonSummary `json:"household_income"`
	AvailableMonthlyIncome []PersonSummary `json:"available_monthly_income"`
	ValuesPerPerson        map[string]int  `json:"values_per_person"`
}
